package repository

import (
	"context"
	"time"

	"travlr/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TravellerRepository defines the interface for traveller data operations.
type TravellerRepository interface {
	Create(ctx context.Context, traveller *models.Traveller) error
	FindAll(ctx context.Context) ([]models.Traveller, error)
}

// travellerRepository implements TravellerRepository using MongoDB.
type travellerRepository struct {
	collection *mongo.Collection
}

// NewTravellerRepository creates a new TravellerRepository.
func NewTravellerRepository(db *mongo.Database) TravellerRepository {
	return &travellerRepository{
		collection: db.Collection("travellers"),
	}
}

// Create inserts a new traveller into the database.
func (r *travellerRepository) Create(ctx context.Context, traveller *models.Traveller) error {
	traveller.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, traveller)
	if err != nil {
		return err
	}

	traveller.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindAll returns all travellers, soonest tour first.
func (r *travellerRepository) FindAll(ctx context.Context) ([]models.Traveller, error) {
	opts := options.Find().SetSort(bson.D{{Key: "tourDate", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var travellers []models.Traveller
	if err := cursor.All(ctx, &travellers); err != nil {
		return nil, err
	}

	if travellers == nil {
		travellers = []models.Traveller{}
	}

	return travellers, nil
}
