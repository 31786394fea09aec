package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// maxAuditQueryLimit caps a single audit query.
const maxAuditQueryLimit = 500

// AuditDocument is an audit entry as stored in MongoDB.
type AuditDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Timestamp time.Time          `bson:"timestamp"`
	Action    string             `bson:"action"`
	Outcome   string             `bson:"outcome"`
	RequestID string             `bson:"request_id,omitempty"`
	Subject   string             `bson:"subject,omitempty"`
	Actor     string             `bson:"actor,omitempty"`
	Error     string             `bson:"error,omitempty"`
	Fields    bson.M             `bson:"fields,omitempty"`
}

// AuditQueryOptions filters audit documents. Empty fields match everything.
type AuditQueryOptions struct {
	Action    string
	RequestID string
	Subject   string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}

// AuditRepository persists audit documents.
type AuditRepository struct {
	collection *mongo.Collection
}

// NewAuditRepository creates a repository over the audit collection.
func NewAuditRepository(db *MongoDB) *AuditRepository {
	return &AuditRepository{collection: db.Audit}
}

// Create inserts one document, assigning an id and timestamp when missing.
func (r *AuditRepository) Create(ctx context.Context, doc *AuditDocument) error {
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if doc.Timestamp.IsZero() {
		doc.Timestamp = time.Now().UTC()
	}

	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// Query returns matching documents, newest first.
func (r *AuditRepository) Query(ctx context.Context, opts AuditQueryOptions) ([]*AuditDocument, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(clampLimit(opts.Limit)))
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, auditFilter(opts), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	entries := make([]*AuditDocument, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Count returns the number of matching documents.
func (r *AuditRepository) Count(ctx context.Context, opts AuditQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, auditFilter(opts))
}

func auditFilter(opts AuditQueryOptions) bson.M {
	filter := bson.M{}
	if opts.Action != "" {
		filter["action"] = opts.Action
	}
	if opts.RequestID != "" {
		filter["request_id"] = opts.RequestID
	}
	if opts.Subject != "" {
		filter["subject"] = opts.Subject
	}
	if opts.StartTime != nil || opts.EndTime != nil {
		window := bson.M{}
		if opts.StartTime != nil {
			window["$gte"] = *opts.StartTime
		}
		if opts.EndTime != nil {
			window["$lte"] = *opts.EndTime
		}
		filter["timestamp"] = window
	}
	return filter
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > maxAuditQueryLimit {
		return maxAuditQueryLimit
	}
	return limit
}
