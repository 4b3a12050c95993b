package auditlogRepo

import (
	"context"
	"fmt"
	"time"

	"healthverse/database"
	"healthverse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAuditLogRepo implements AuditLogRepository using MongoDB.
type MongoAuditLogRepo struct {
	coll *mongo.Collection
}

// NewMongoAuditLogRepo creates a new AuditLogRepository backed by MongoDB.
func NewMongoAuditLogRepo() AuditLogRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("securityLogs")
	repo := &MongoAuditLogRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAuditLogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Insert stores one audit event.
func (r *MongoAuditLogRepo) Insert(entry *models.SecurityLog) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to insert security log: %w", err)
	}
	return nil
}

// Recent returns the most recent audit events, newest first.
func (r *MongoAuditLogRepo) Recent(limit int64) ([]models.SecurityLog, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query security logs: %w", err)
	}
	defer cursor.Close(ctx)

	var logs []models.SecurityLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("failed to decode security logs: %w", err)
	}
	return logs, nil
}
