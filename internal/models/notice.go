package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NoticeDocument describes one file attached to a notice: the URL returned
// by the external file host plus the original filename, MIME type and size.
type NoticeDocument struct {
	URL  string `bson:"url" json:"url"`
	Name string `bson:"name" json:"name"`
	Type string `bson:"type" json:"type"`
	Size int64  `bson:"size" json:"size"`
}

// Notice represents a published announcement document. TargetClass carries
// audience tags such as "Class 6"; both lists keep insertion order.
type Notice struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Date        time.Time          `bson:"date" json:"date"`
	Author      string             `bson:"author,omitempty" json:"author,omitempty"`
	IsPublished bool               `bson:"isPublished" json:"isPublished"`
	TargetClass []string           `bson:"targetClass" json:"targetClass"`
	Documents   []NoticeDocument   `bson:"documents" json:"documents"`
}

// DashboardStats aggregates collection counts for the admin landing page.
type DashboardStats struct {
	TotalStudents    int64 `json:"totalStudents"`
	ActiveStudents   int64 `json:"activeStudents"`
	TotalTeachers    int64 `json:"totalTeachers"`
	ActiveTeachers   int64 `json:"activeTeachers"`
	TotalNotices     int64 `json:"totalNotices"`
	PublishedNotices int64 `json:"publishedNotices"`
}
