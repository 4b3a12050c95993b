package labreportRepo

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

// MongoLabReportRepo implements LabReportRepository using MongoDB.
type MongoLabReportRepo struct {
	coll *mongo.Collection
}

// NewMongoLabReportRepo creates a new LabReportRepository backed by MongoDB.
func NewMongoLabReportRepo() LabReportRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("labReports")
	repo := &MongoLabReportRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoLabReportRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "patient_id", Value: 1}, {Key: "uploaded_at", Value: -1}}},
		{Keys: bson.D{{Key: "doctor_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Insert stores lab report metadata after the file upload succeeded.
func (r *MongoLabReportRepo) Insert(report *models.LabReport) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if report.UploadedAt.IsZero() {
		report.UploadedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, report)
	if err != nil {
		return fmt.Errorf("failed to insert lab report: %w", err)
	}
	return nil
}

// GetByPatient returns a patient's lab reports, newest first.
func (r *MongoLabReportRepo) GetByPatient(patientID string) ([]models.LabReport, error) {
	return r.find(bson.M{"patient_id": patientID})
}

// GetByDoctor returns the lab reports a doctor uploaded, newest first.
func (r *MongoLabReportRepo) GetByDoctor(doctorID string) ([]models.LabReport, error) {
	return r.find(bson.M{"doctor_id": doctorID})
}

func (r *MongoLabReportRepo) find(filter bson.M) ([]models.LabReport, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query lab reports: %w", err)
	}
	defer cursor.Close(ctx)

	var reports []models.LabReport
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode lab reports: %w", err)
	}
	return reports, nil
}
