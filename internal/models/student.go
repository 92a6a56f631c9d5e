package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender enumerates the accepted gender values for students and teachers.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// StudentStatus tracks a student's enrollment state.
type StudentStatus string

const (
	StudentStatusActive       StudentStatus = "active"
	StudentStatusInactive     StudentStatus = "inactive"
	StudentStatusNewAdmission StudentStatus = "new-admission"
)

// Guardian holds the names of a student's parents. It has no identity of
// its own and lives entirely inside the owning student document.
type Guardian struct {
	FatherName string `bson:"fName,omitempty" json:"fName,omitempty"`
	MotherName string `bson:"mName,omitempty" json:"mName,omitempty"`
}

// AcademicEntry records one session of a student's academic history.
// Entries keep their insertion order.
type AcademicEntry struct {
	Session string `bson:"session,omitempty" json:"session,omitempty"`
	Class   string `bson:"class,omitempty" json:"class,omitempty"`
	Roll    int    `bson:"roll,omitempty" json:"roll,omitempty"`
	Result  string `bson:"result,omitempty" json:"result,omitempty"`
}

// Student represents a learner document. StudentID is the human-readable
// identifier, unique across the collection and distinct from the internal
// document id.
type Student struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	StudentID        string             `bson:"studentId" json:"studentId"`
	Name             string             `bson:"name" json:"name"`
	NameBn           string             `bson:"name_bn,omitempty" json:"name_bn,omitempty"`
	Phone            string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Photo            string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Gender           Gender             `bson:"gender,omitempty" json:"gender,omitempty"`
	DateOfBirth      *time.Time         `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	BirthCertificate string             `bson:"birthCertificate,omitempty" json:"birthCertificate,omitempty"`
	Guardian         *Guardian          `bson:"guardian,omitempty" json:"guardian,omitempty"`
	Status           StudentStatus      `bson:"status" json:"status"`
	AcademicHistory  []AcademicEntry    `bson:"academicHistory" json:"academicHistory"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
