package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "EduDesk API",
        "description": "School administration backend: students, teachers and notices.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Students", "description": "Student records and academic history"},
        {"name": "Teachers", "description": "Teacher roster management"},
        {"name": "Notices", "description": "School notices and attached documents"},
        {"name": "Dashboard", "description": "Aggregate counters"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Student"}}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Create student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Confirmation"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ErrorMessage"}},
                    "409": {"description": "Duplicate studentId", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student by query id",
                "parameters": [
                    {"name": "id", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/Confirmation"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            }
        },
        "/api/students/export": {
            "get": {
                "tags": ["Students"],
                "summary": "Export the student roster",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "produces": ["text/csv", "application/pdf"],
                "responses": {
                    "200": {"description": "Roster file"}
                }
            }
        },
        "/api/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Student"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            },
            "patch": {
                "tags": ["Students"],
                "summary": "Update student (partial)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated document", "schema": {"$ref": "#/definitions/Student"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/Confirmation"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            }
        },
        "/api/teachers": {
            "get": {
                "tags": ["Teachers"],
                "summary": "List teachers",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Teacher"}}}
                }
            },
            "post": {
                "tags": ["Teachers"],
                "summary": "Create teacher",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTeacherRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Confirmation"}},
                    "409": {"description": "Duplicate teacherId", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            },
            "delete": {
                "tags": ["Teachers"],
                "summary": "Delete teacher by query id",
                "parameters": [
                    {"name": "id", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/Confirmation"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            }
        },
        "/api/teachers/{id}": {
            "get": {
                "tags": ["Teachers"],
                "summary": "Get teacher",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Teacher"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            },
            "patch": {
                "tags": ["Teachers"],
                "summary": "Update teacher (partial)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateTeacherRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated document", "schema": {"$ref": "#/definitions/Teacher"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            },
            "delete": {
                "tags": ["Teachers"],
                "summary": "Delete teacher",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/Confirmation"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            }
        },
        "/api/notices": {
            "get": {
                "tags": ["Notices"],
                "summary": "List notices (public feed)",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Notice"}}}
                }
            },
            "post": {
                "tags": ["Notices"],
                "summary": "Create notice",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateNoticeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Confirmation"}}
                }
            },
            "delete": {
                "tags": ["Notices"],
                "summary": "Delete notice by query id",
                "parameters": [
                    {"name": "id", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/Confirmation"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            }
        },
        "/api/notices/{id}": {
            "get": {
                "tags": ["Notices"],
                "summary": "Get notice",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Notice"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            },
            "patch": {
                "tags": ["Notices"],
                "summary": "Update notice (partial)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateNoticeRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated document", "schema": {"$ref": "#/definitions/Notice"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            },
            "delete": {
                "tags": ["Notices"],
                "summary": "Delete notice",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/Confirmation"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            }
        },
        "/api/dashboard/stats": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Aggregate counters for the dashboard",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DashboardStats"}}
                }
            }
        }
    },
    "definitions": {
        "Student": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "studentId": {"type": "string"},
                "name": {"type": "string"},
                "name_bn": {"type": "string"},
                "phone": {"type": "string"},
                "photo": {"type": "string"},
                "gender": {"type": "string", "enum": ["Male", "Female", "Other"]},
                "dateOfBirth": {"type": "string"},
                "birthCertificate": {"type": "string"},
                "guardian": {"$ref": "#/definitions/Guardian"},
                "status": {"type": "string", "enum": ["active", "inactive", "new-admission"]},
                "academicHistory": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/AcademicEntry"}
                },
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "Guardian": {
            "type": "object",
            "properties": {
                "fName": {"type": "string"},
                "mName": {"type": "string"}
            }
        },
        "AcademicEntry": {
            "type": "object",
            "properties": {
                "session": {"type": "string"},
                "class": {"type": "string"},
                "roll": {"type": "integer"},
                "result": {"type": "string"}
            }
        },
        "Teacher": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "teacherId": {"type": "string"},
                "name": {"type": "string"},
                "gender": {"type": "string"},
                "dateOfBirth": {"type": "string"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "subject": {"type": "string"},
                "address": {"type": "string"},
                "joiningDate": {"type": "string"},
                "status": {"type": "string", "enum": ["Active", "Inactive"]}
            }
        },
        "Notice": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "date": {"type": "string"},
                "author": {"type": "string"},
                "isPublished": {"type": "boolean"},
                "targetClass": {"type": "array", "items": {"type": "string"}},
                "documents": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/NoticeDocument"}
                }
            }
        },
        "NoticeDocument": {
            "type": "object",
            "properties": {
                "url": {"type": "string"},
                "name": {"type": "string"},
                "type": {"type": "string"},
                "size": {"type": "integer"}
            }
        },
        "DashboardStats": {
            "type": "object",
            "properties": {
                "totalStudents": {"type": "integer"},
                "activeStudents": {"type": "integer"},
                "totalTeachers": {"type": "integer"},
                "activeTeachers": {"type": "integer"},
                "totalNotices": {"type": "integer"},
                "publishedNotices": {"type": "integer"}
            }
        },
        "CreateStudentRequest": {
            "type": "object",
            "properties": {
                "studentId": {"type": "string"},
                "name": {"type": "string"},
                "name_bn": {"type": "string"},
                "phone": {"type": "string"},
                "photo": {"type": "string"},
                "gender": {"type": "string"},
                "dateOfBirth": {"type": "string"},
                "birthCertificate": {"type": "string"},
                "guardian": {"$ref": "#/definitions/Guardian"},
                "status": {"type": "string"},
                "academicHistory": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/AcademicEntry"}
                }
            },
            "required": ["name"]
        },
        "UpdateStudentRequest": {
            "type": "object",
            "properties": {
                "studentId": {"type": "string"},
                "name": {"type": "string"},
                "name_bn": {"type": "string"},
                "phone": {"type": "string"},
                "photo": {"type": "string"},
                "gender": {"type": "string"},
                "dateOfBirth": {"type": "string"},
                "birthCertificate": {"type": "string"},
                "guardian": {"$ref": "#/definitions/Guardian"},
                "status": {"type": "string"},
                "academicHistory": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/AcademicEntry"}
                }
            }
        },
        "CreateTeacherRequest": {
            "type": "object",
            "properties": {
                "teacherId": {"type": "string"},
                "name": {"type": "string"},
                "gender": {"type": "string"},
                "dateOfBirth": {"type": "string"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "subject": {"type": "string"},
                "address": {"type": "string"},
                "joiningDate": {"type": "string"},
                "status": {"type": "string"}
            },
            "required": ["name"]
        },
        "UpdateTeacherRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "gender": {"type": "string"},
                "dateOfBirth": {"type": "string"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "subject": {"type": "string"},
                "address": {"type": "string"},
                "joiningDate": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "CreateNoticeRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "date": {"type": "string"},
                "author": {"type": "string"},
                "isPublished": {"type": "boolean"},
                "targetClass": {"type": "array", "items": {"type": "string"}},
                "documents": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/NoticeDocument"}
                }
            }
        },
        "UpdateNoticeRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "date": {"type": "string"},
                "author": {"type": "string"},
                "isPublished": {"type": "boolean"},
                "targetClass": {"type": "array", "items": {"type": "string"}},
                "documents": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/NoticeDocument"}
                }
            }
        },
        "Confirmation": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "data": {"type": "object"}
            }
        },
        "ErrorMessage": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
