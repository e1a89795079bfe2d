package renterRepo

import (
	"context"
	"fmt"
	"time"

	"rentride/database"
	"rentride/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RenterRepository defines data access for renter accounts.
type RenterRepository interface {
	GetByID(id string) (*models.Renter, error)
	GetByEmail(email string) (*models.Renter, error)
	Create(renter *models.Renter) error
}

// MongoRenterRepo implements RenterRepository using MongoDB.
type MongoRenterRepo struct {
	coll *mongo.Collection
}

// NewMongoRenterRepo creates a new instance of RenterRepository using MongoDB.
func NewMongoRenterRepo() RenterRepository {
	coll := database.MongoClient.Database("rentride").Collection("renters")
	repo := &MongoRenterRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRenterRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a renter by its unique ID.
func (r *MongoRenterRepo) GetByID(id string) (*models.Renter, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var renter models.Renter
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&renter); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch renter with id %s: %w", id, err)
	}
	return &renter, nil
}

// GetByEmail retrieves a renter by email. Returns nil when no account exists.
func (r *MongoRenterRepo) GetByEmail(email string) (*models.Renter, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var renter models.Renter
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&renter); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch renter with email %s: %w", email, err)
	}
	return &renter, nil
}

// Create inserts a new renter document.
func (r *MongoRenterRepo) Create(renter *models.Renter) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	renter.CreatedAt = now
	renter.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, renter); err != nil {
		return fmt.Errorf("failed to create renter: %w", err)
	}
	return nil
}
