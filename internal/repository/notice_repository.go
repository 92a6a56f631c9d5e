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

// NoticeRepository manages persistence for notice documents.
type NoticeRepository struct {
	col     *mongo.Collection
	observe StoreObserver
}

// NewNoticeRepository constructs a NoticeRepository.
func NewNoticeRepository(db *mongo.Database, observe StoreObserver) *NoticeRepository {
	return &NoticeRepository{col: db.Collection("notices"), observe: observe}
}

// List returns the full collection in insertion order.
func (r *NoticeRepository) List(ctx context.Context) ([]models.Notice, error) {
	defer r.observe.since("notices", "list", time.Now())
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}
	defer cursor.Close(ctx)

	notices := []models.Notice{}
	if err := cursor.All(ctx, &notices); err != nil {
		return nil, fmt.Errorf("decode notices: %w", err)
	}
	return notices, nil
}

// FindByID fetches a notice by internal document id.
func (r *NoticeRepository) FindByID(ctx context.Context, id string) (*models.Notice, error) {
	defer r.observe.since("notices", "findOne", time.Now())
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var notice models.Notice
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&notice); err != nil {
		return nil, err
	}
	return &notice, nil
}

// Create inserts the notice and backfills its generated document id.
func (r *NoticeRepository) Create(ctx context.Context, notice *models.Notice) error {
	defer r.observe.since("notices", "insertOne", time.Now())
	res, err := r.col.InsertOne(ctx, notice)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		notice.ID = oid
	}
	return nil
}

// Update applies the given $set document and returns the updated notice.
func (r *NoticeRepository) Update(ctx context.Context, id string, set bson.M) (*models.Notice, error) {
	defer r.observe.since("notices", "findOneAndUpdate", time.Now())
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Notice
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the notice and returns the removed document.
func (r *NoticeRepository) Delete(ctx context.Context, id string) (*models.Notice, error) {
	defer r.observe.since("notices", "findOneAndDelete", time.Now())
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var deleted models.Notice
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}

// Count returns the number of documents matching the filter.
func (r *NoticeRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	defer r.observe.since("notices", "count", time.Now())
	if filter == nil {
		filter = bson.M{}
	}
	count, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count notices: %w", err)
	}
	return count, nil
}
