package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeacherStatus tracks whether a teacher is currently employed.
type TeacherStatus string

const (
	TeacherStatusActive   TeacherStatus = "Active"
	TeacherStatusInactive TeacherStatus = "Inactive"
)

// Teacher represents a staff document. TeacherID is unique and immutable
// after creation.
type Teacher struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TeacherID   string             `bson:"teacherId" json:"teacherId"`
	Name        string             `bson:"name" json:"name"`
	Gender      Gender             `bson:"gender,omitempty" json:"gender,omitempty"`
	DateOfBirth *time.Time         `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Subject     string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Address     string             `bson:"address,omitempty" json:"address,omitempty"`
	JoiningDate time.Time          `bson:"joiningDate" json:"joiningDate"`
	Status      TeacherStatus      `bson:"status" json:"status"`
}
