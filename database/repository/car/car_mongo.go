package carRepo

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

// MongoCarRepo implements CarRepository using MongoDB.
type MongoCarRepo struct {
	coll *mongo.Collection
}

// NewMongoCarRepo creates a new instance of CarRepository using MongoDB.
func NewMongoCarRepo() CarRepository {
	coll := database.MongoClient.Database("rentride").Collection("cars")
	repo := &MongoCarRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCarRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "plate_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "available", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a car by its unique ID.
func (r *MongoCarRepo) GetByID(id string) (*models.Car, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var car models.Car
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&car); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch car with id %s: %w", id, err)
	}
	return &car, nil
}

// List returns catalog entries, optionally filtered to available cars.
func (r *MongoCarRepo) List(onlyAvailable bool) ([]models.Car, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{}
	if onlyAvailable {
		filter["available"] = true
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	defer cursor.Close(ctx)

	var cars []models.Car
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, fmt.Errorf("failed to decode cars: %w", err)
	}
	return cars, nil
}

// Create inserts a new car document.
func (r *MongoCarRepo) Create(car *models.Car) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	car.CreatedAt = now
	car.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, car); err != nil {
		return fmt.Errorf("failed to create car: %w", err)
	}
	return nil
}

// Update modifies an existing car document.
func (r *MongoCarRepo) Update(car *models.Car) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	car.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": car.ID}, bson.M{"$set": car})
	if err != nil {
		return fmt.Errorf("failed to update car with id %s: %w", car.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("car with id %s not found", car.ID)
	}
	return nil
}

// SetHeldUntil stamps the denormalized hold marker on a car document.
func (r *MongoCarRepo) SetHeldUntil(id string, until time.Time) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"held_until": until, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set hold marker on car %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("car with id %s not found", id)
	}
	return nil
}

// ClearHeldUntil removes the denormalized hold marker.
func (r *MongoCarRepo) ClearHeldUntil(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$unset": bson.M{"held_until": ""},
		"$set":   bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to clear hold marker on car %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("car with id %s not found", id)
	}
	return nil
}
