package doctorRepo

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

// MongoDoctorRepo implements DoctorRepository using MongoDB.
type MongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo creates a new DoctorRepository backed by MongoDB.
func NewMongoDoctorRepo() DoctorRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("doctors")
	repo := &MongoDoctorRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDoctorRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "uid", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "service_ids", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new doctor profile document.
func (r *MongoDoctorRepo) Create(doc *models.Doctor) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create doctor profile: %w", err)
	}
	return nil
}

// GetByUID retrieves a doctor profile by account UID.
func (r *MongoDoctorRepo) GetByUID(uid string) (*models.Doctor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc models.Doctor
	if err := r.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("doctor with uid %s not found", uid)
		}
		return nil, fmt.Errorf("failed to fetch doctor %s: %w", uid, err)
	}
	return &doc, nil
}

// GetAll returns every doctor profile.
func (r *MongoDoctorRepo) GetAll() ([]models.Doctor, error) {
	return r.find(bson.M{})
}

// GetByService returns the doctors whose capability set contains serviceID.
func (r *MongoDoctorRepo) GetByService(serviceID string) ([]models.Doctor, error) {
	return r.find(bson.M{"service_ids": serviceID})
}

func (r *MongoDoctorRepo) find(filter bson.M) ([]models.Doctor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []models.Doctor
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode doctors: %w", err)
	}
	return docs, nil
}

// Update modifies an existing doctor profile document.
func (r *MongoDoctorRepo) Update(doc *models.Doctor) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	doc.UpdatedAt = time.Now()
	filter := bson.M{"uid": doc.UID}
	update := bson.M{"$set": doc}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update doctor %s: %w", doc.UID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("doctor with uid %s not found", doc.UID)
	}
	return nil
}
