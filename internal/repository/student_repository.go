package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edudesk/edudesk-api/internal/models"
)

// StudentRepository manages persistence for student documents.
type StudentRepository struct {
	col     *mongo.Collection
	observe StoreObserver
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *mongo.Database, observe StoreObserver) *StudentRepository {
	return &StudentRepository{col: db.Collection("students"), observe: observe}
}

// EnsureIndexes creates the unique index backing studentId uniqueness.
func (r *StudentRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "studentId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create studentId index: %w", err)
	}
	return nil
}

// List returns the full collection in insertion order.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	defer r.observe.since("students", "list", time.Now())
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer cursor.Close(ctx)

	students := []models.Student{}
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("decode students: %w", err)
	}
	return students, nil
}

// FindByID fetches a student by internal document id. A malformed id is
// treated the same as an unknown one.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	defer r.observe.since("students", "findOne", time.Now())
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var student models.Student
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&student); err != nil {
		return nil, err
	}
	return &student, nil
}

// ExistsByStudentID reports whether another document already claims the
// given studentId.
func (r *StudentRepository) ExistsByStudentID(ctx context.Context, studentID, excludeID string) (bool, error) {
	defer r.observe.since("students", "exists", time.Now())
	filter := bson.M{"studentId": studentID}
	if excludeID != "" {
		if oid, err := primitive.ObjectIDFromHex(excludeID); err == nil {
			filter["_id"] = bson.M{"$ne": oid}
		}
	}
	count, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count studentId %s: %w", studentID, err)
	}
	return count > 0, nil
}

// Create inserts the student and backfills its generated document id.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	defer r.observe.since("students", "insertOne", time.Now())
	res, err := r.col.InsertOne(ctx, student)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		student.ID = oid
	}
	return nil
}

// Update applies the given $set document and returns the updated student.
func (r *StudentRepository) Update(ctx context.Context, id string, set bson.M) (*models.Student, error) {
	defer r.observe.since("students", "findOneAndUpdate", time.Now())
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Student
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the student and returns the removed document.
func (r *StudentRepository) Delete(ctx context.Context, id string) (*models.Student, error) {
	defer r.observe.since("students", "findOneAndDelete", time.Now())
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var deleted models.Student
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}

// Count returns the number of documents matching the filter.
func (r *StudentRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	defer r.observe.since("students", "count", time.Now())
	if filter == nil {
		filter = bson.M{}
	}
	count, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count students: %w", err)
	}
	return count, nil
}
