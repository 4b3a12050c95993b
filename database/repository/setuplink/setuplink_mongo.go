package setuplinkRepo

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

// MongoSetupLinkRepo implements SetupLinkRepository using MongoDB.
type MongoSetupLinkRepo struct {
	coll *mongo.Collection
}

// NewMongoSetupLinkRepo creates a new SetupLinkRepository backed by MongoDB.
func NewMongoSetupLinkRepo() SetupLinkRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("userSetupLinks")
	repo := &MongoSetupLinkRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSetupLinkRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "token", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create stores a setup link, replacing any previous link for the user.
func (r *MongoSetupLinkRepo) Create(link *models.SetupLink) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"user_id": link.UserID}
	update := bson.M{"$set": link}
	opts := options.Update().SetUpsert(true)

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to store setup link: %w", err)
	}
	return nil
}

// GetByUserID retrieves the setup link issued for a user.
func (r *MongoSetupLinkRepo) GetByUserID(userID string) (*models.SetupLink, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var link models.SetupLink
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&link); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("setup link for user %s not found", userID)
		}
		return nil, fmt.Errorf("failed to fetch setup link: %w", err)
	}
	return &link, nil
}

// GetAll returns every setup link, newest first.
func (r *MongoSetupLinkRepo) GetAll() ([]models.SetupLink, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query setup links: %w", err)
	}
	defer cursor.Close(ctx)

	var links []models.SetupLink
	if err := cursor.All(ctx, &links); err != nil {
		return nil, fmt.Errorf("failed to decode setup links: %w", err)
	}
	return links, nil
}

// SetStatus updates the status of a user's setup link.
func (r *MongoSetupLinkRepo) SetStatus(userID, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID}
	update := bson.M{"$set": bson.M{"status": status}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update setup link for user %s: %w", userID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("setup link for user %s not found", userID)
	}
	return nil
}
