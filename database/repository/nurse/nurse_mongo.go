package nurseRepo

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

// MongoNurseRepo implements NurseRepository using MongoDB.
type MongoNurseRepo struct {
	coll *mongo.Collection
}

// NewMongoNurseRepo creates a new NurseRepository backed by MongoDB.
func NewMongoNurseRepo() NurseRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("nurses")
	repo := &MongoNurseRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoNurseRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "uid", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new nurse profile document.
func (r *MongoNurseRepo) Create(nurse *models.Nurse) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	nurse.CreatedAt = now
	nurse.UpdatedAt = now
	if nurse.AssignedPatients == nil {
		nurse.AssignedPatients = []string{}
	}
	if nurse.Schedule == nil {
		nurse.Schedule = []models.ShiftAssignment{}
	}

	_, err := r.coll.InsertOne(ctx, nurse)
	if err != nil {
		return fmt.Errorf("failed to create nurse profile: %w", err)
	}
	return nil
}

// GetByUID retrieves a nurse profile by account UID.
func (r *MongoNurseRepo) GetByUID(uid string) (*models.Nurse, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var nurse models.Nurse
	if err := r.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&nurse); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("nurse with uid %s not found", uid)
		}
		return nil, fmt.Errorf("failed to fetch nurse %s: %w", uid, err)
	}
	return &nurse, nil
}

// GetAll returns every nurse profile.
func (r *MongoNurseRepo) GetAll() ([]models.Nurse, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query nurses: %w", err)
	}
	defer cursor.Close(ctx)

	var nurses []models.Nurse
	if err := cursor.All(ctx, &nurses); err != nil {
		return nil, fmt.Errorf("failed to decode nurses: %w", err)
	}
	return nurses, nil
}

// AssignPatient adds a patient to the nurse's assignment list, once.
func (r *MongoNurseRepo) AssignPatient(nurseUID, patientID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"uid": nurseUID}
	update := bson.M{
		"$addToSet": bson.M{"assigned_patients": patientID},
		"$set":      bson.M{"updated_at": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to assign patient to nurse %s: %w", nurseUID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("nurse with uid %s not found", nurseUID)
	}
	return nil
}

// UpdateSchedule replaces the nurse's weekly schedule.
func (r *MongoNurseRepo) UpdateSchedule(nurseUID string, schedule []models.ShiftAssignment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"uid": nurseUID}
	update := bson.M{"$set": bson.M{"schedule": schedule, "updated_at": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update schedule for nurse %s: %w", nurseUID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("nurse with uid %s not found", nurseUID)
	}
	return nil
}
