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

// TeacherRepository manages persistence for teacher documents.
type TeacherRepository struct {
	col     *mongo.Collection
	observe StoreObserver
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *mongo.Database, observe StoreObserver) *TeacherRepository {
	return &TeacherRepository{col: db.Collection("teachers"), observe: observe}
}

// EnsureIndexes creates the unique index backing teacherId uniqueness.
func (r *TeacherRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "teacherId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create teacherId index: %w", err)
	}
	return nil
}

// List returns the full collection in insertion order.
func (r *TeacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	defer r.observe.since("teachers", "list", time.Now())
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	defer cursor.Close(ctx)

	teachers := []models.Teacher{}
	if err := cursor.All(ctx, &teachers); err != nil {
		return nil, fmt.Errorf("decode teachers: %w", err)
	}
	return teachers, nil
}

// FindByID fetches a teacher by internal document id.
func (r *TeacherRepository) FindByID(ctx context.Context, id string) (*models.Teacher, error) {
	defer r.observe.since("teachers", "findOne", time.Now())
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var teacher models.Teacher
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// ExistsByTeacherID reports whether another document already claims the
// given teacherId.
func (r *TeacherRepository) ExistsByTeacherID(ctx context.Context, teacherID, excludeID string) (bool, error) {
	defer r.observe.since("teachers", "exists", time.Now())
	filter := bson.M{"teacherId": teacherID}
	if excludeID != "" {
		if oid, err := primitive.ObjectIDFromHex(excludeID); err == nil {
			filter["_id"] = bson.M{"$ne": oid}
		}
	}
	count, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count teacherId %s: %w", teacherID, err)
	}
	return count > 0, nil
}

// Create inserts the teacher and backfills its generated document id.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	defer r.observe.since("teachers", "insertOne", time.Now())
	res, err := r.col.InsertOne(ctx, teacher)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		teacher.ID = oid
	}
	return nil
}

// Update applies the given $set document and returns the updated teacher.
func (r *TeacherRepository) Update(ctx context.Context, id string, set bson.M) (*models.Teacher, error) {
	defer r.observe.since("teachers", "findOneAndUpdate", time.Now())
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Teacher
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the teacher and returns the removed document.
func (r *TeacherRepository) Delete(ctx context.Context, id string) (*models.Teacher, error) {
	defer r.observe.since("teachers", "findOneAndDelete", time.Now())
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var deleted models.Teacher
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}

// Count returns the number of documents matching the filter.
func (r *TeacherRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	defer r.observe.since("teachers", "count", time.Now())
	if filter == nil {
		filter = bson.M{}
	}
	count, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count teachers: %w", err)
	}
	return count, nil
}
