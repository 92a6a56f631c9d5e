package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edudesk/edudesk-api/internal/models"
)

func TestTeacherCreateAndList(t *testing.T) {
	api := newTestAPI(t)

	created := api.do(http.MethodPost, "/api/teachers", `{"name":"Rahima Khatun","subject":"Mathematics","email":"rahima@example.edu"}`)
	require.Equal(t, http.StatusCreated, created.Code)
	assert.Contains(t, created.Body.String(), "Data created")

	rec := api.do(http.MethodGet, "/api/teachers", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var teachers []models.Teacher
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &teachers))
	require.Len(t, teachers, 1)
	assert.Equal(t, "Rahima Khatun", teachers[0].Name)
	assert.Equal(t, models.TeacherStatusActive, teachers[0].Status)
}

func TestTeacherCreateAcceptsDateOnlyJoiningDate(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/teachers", `{"name":"Jamal Uddin","joiningDate":"2019-01-06"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var body struct {
		Data models.Teacher `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, time.Date(2019, time.January, 6, 0, 0, 0, 0, time.UTC), body.Data.JoiningDate)
}

func TestTeacherCreateInvalidEmail(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/teachers", `{"name":"Rahima","email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTeacherPatchStatus(t *testing.T) {
	api := newTestAPI(t)

	created := api.do(http.MethodPost, "/api/teachers", `{"name":"Jamal Uddin","subject":"English"}`)
	var envelope struct {
		Data models.Teacher `json:"data"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &envelope))

	rec := api.do(http.MethodPatch, "/api/teachers/"+envelope.Data.ID.Hex(), `{"status":"Inactive"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var updated models.Teacher
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, models.TeacherStatusInactive, updated.Status)
	assert.Equal(t, "English", updated.Subject)
	assert.Equal(t, envelope.Data.TeacherID, updated.TeacherID)
}

func TestTeacherDeleteByQuery(t *testing.T) {
	api := newTestAPI(t)

	created := api.do(http.MethodPost, "/api/teachers", `{"name":"Jamal Uddin"}`)
	var envelope struct {
		Data models.Teacher `json:"data"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &envelope))

	rec := api.do(http.MethodDelete, "/api/teachers?id="+envelope.Data.ID.Hex(), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Teacher deleted successfully")
	assert.Empty(t, api.teachers.items)
}

func TestTeacherDeleteUnknownID(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodDelete, "/api/teachers/"+primitive.NewObjectID().Hex(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Teacher not found")
}
