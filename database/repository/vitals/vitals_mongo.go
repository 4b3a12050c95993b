package vitalsRepo

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

// MongoVitalsRepo implements VitalsRepository using MongoDB.
type MongoVitalsRepo struct {
	coll *mongo.Collection
}

// NewMongoVitalsRepo creates a new VitalsRepository backed by MongoDB.
func NewMongoVitalsRepo() VitalsRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("vitalsLog")
	repo := &MongoVitalsRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoVitalsRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "patient_id", Value: 1}, {Key: "timestamp", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Insert stores one vitals measurement.
func (r *MongoVitalsRepo) Insert(record *models.VitalsRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return fmt.Errorf("failed to insert vitals record: %w", err)
	}
	return nil
}

// GetByPatient returns the vitals history for a patient, newest first.
func (r *MongoVitalsRepo) GetByPatient(patientID string) ([]models.VitalsRecord, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"patient_id": patientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query vitals log: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.VitalsRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode vitals records: %w", err)
	}
	return records, nil
}
