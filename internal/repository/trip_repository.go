// Package repository provides data access operations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	apperrors "travlr/internal/errors"
	"travlr/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TripRepository defines the interface for trip data operations. Trips are
// addressed by their public trip code rather than the Mongo object id.
type TripRepository interface {
	Create(ctx context.Context, trip *models.Trip) error
	FindByCode(ctx context.Context, code string) (*models.Trip, error)
	Find(ctx context.Context, query *models.TripQuery) ([]models.Trip, int64, error)
	Update(ctx context.Context, code string, update *models.UpdateTripRequest) (*models.Trip, error)
	Delete(ctx context.Context, code string) error
	SetImage(ctx context.Context, code, imageKey string) error
	EnsureIndexes(ctx context.Context) error
}

// tripRepository implements TripRepository using MongoDB.
type tripRepository struct {
	collection *mongo.Collection
}

// NewTripRepository creates a new TripRepository.
func NewTripRepository(db *mongo.Database) TripRepository {
	return &tripRepository{
		collection: db.Collection("trips"),
	}
}

// EnsureIndexes creates the unique index on the trip code.
func (r *tripRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Create inserts a new trip into the database.
func (r *tripRepository) Create(ctx context.Context, trip *models.Trip) error {
	// Check if a trip with this code already exists
	existing, _ := r.FindByCode(ctx, trip.Code)
	if existing != nil {
		return apperrors.ErrTripCodeTaken
	}

	now := time.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, trip)
	if err != nil {
		// The unique index closes the race the pre-check leaves open
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrTripCodeTaken
		}
		return err
	}

	trip.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByCode finds a trip by its public code.
func (r *tripRepository) FindByCode(ctx context.Context, code string) (*models.Trip, error) {
	var trip models.Trip

	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&trip)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, err
	}

	return &trip, nil
}

// buildFilter translates a normalized trip query into a Mongo filter document.
func buildFilter(query *models.TripQuery) bson.M {
	filter := bson.M{}

	if query.Resort != "" {
		filter["resort"] = query.Resort
	}

	if query.Search != "" {
		filter["name"] = bson.M{"$regex": query.Search, "$options": "i"}
	}

	if query.PriceMin != nil || query.PriceMax != nil {
		price := bson.M{}
		if query.PriceMin != nil {
			price["$gte"] = *query.PriceMin
		}
		if query.PriceMax != nil {
			price["$lte"] = *query.PriceMax
		}
		filter["perPerson"] = price
	}

	if query.FromDate != nil || query.ToDate != nil {
		start := bson.M{}
		if query.FromDate != nil {
			start["$gte"] = *query.FromDate
		}
		if query.ToDate != nil {
			start["$lte"] = *query.ToDate
		}
		filter["start"] = start
	}

	return filter
}

// Find returns trips matching the query plus the total match count before
// pagination.
func (r *tripRepository) Find(ctx context.Context, query *models.TripQuery) ([]models.Trip, int64, error) {
	filter := buildFilter(query)

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	sortDir := 1
	if query.SortDesc {
		sortDir = -1
	}
	skip := (query.Page - 1) * query.Limit

	opts := options.Find().
		SetSort(bson.D{{Key: query.SortBy, Value: sortDir}}).
		SetSkip(int64(skip)).
		SetLimit(int64(query.Limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var trips []models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, 0, err
	}

	// Return empty slice instead of nil
	if trips == nil {
		trips = []models.Trip{}
	}

	return trips, total, nil
}

// Update applies a partial update to a trip identified by code.
func (r *tripRepository) Update(ctx context.Context, code string, update *models.UpdateTripRequest) (*models.Trip, error) {
	updateDoc := bson.M{"updatedAt": time.Now()}

	if update.Code != nil && *update.Code != code {
		// Check the new code is not already taken
		existing, _ := r.FindByCode(ctx, *update.Code)
		if existing != nil {
			return nil, apperrors.ErrTripCodeTaken
		}
		updateDoc["code"] = *update.Code
	}

	if update.Name != nil {
		updateDoc["name"] = *update.Name
	}
	if update.Length != nil {
		updateDoc["length"] = *update.Length
	}
	if update.Date != nil {
		updateDoc["start"] = *update.Date
	}
	if update.Location != nil {
		updateDoc["resort"] = *update.Location
	}
	if update.Price != nil {
		updateDoc["perPerson"] = *update.Price
	}
	if update.Image != nil {
		updateDoc["image"] = *update.Image
	}
	if update.Description != nil {
		updateDoc["description"] = *update.Description
	}

	after := options.After
	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"code": code},
		bson.M{"$set": updateDoc},
		options.FindOneAndUpdate().SetReturnDocument(after),
	)

	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTripNotFound
		}
		if mongo.IsDuplicateKeyError(result.Err()) {
			return nil, apperrors.ErrTripCodeTaken
		}
		return nil, result.Err()
	}

	var trip models.Trip
	if err := result.Decode(&trip); err != nil {
		return nil, err
	}

	return &trip, nil
}

// Delete removes a trip from the database.
func (r *tripRepository) Delete(ctx context.Context, code string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"code": code})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrTripNotFound
	}

	return nil
}

// SetImage records the stored image key on a trip.
func (r *tripRepository) SetImage(ctx context.Context, code, imageKey string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"code": code},
		bson.M{"$set": bson.M{"image": imageKey, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrTripNotFound
	}

	return nil
}
