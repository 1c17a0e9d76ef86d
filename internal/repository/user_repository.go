package repository

import (
	"context"
	"errors"
	"time"

	apperrors "travlr/internal/errors"
	"travlr/internal/models"
	"travlr/pkg/crypto"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, salt, hash string) error
	SetRole(ctx context.Context, id primitive.ObjectID, role string) error
	IncrementLoginAttempts(ctx context.Context, id primitive.ObjectID) (int, error)
	LockAccount(ctx context.Context, id primitive.ObjectID, until time.Time) error
	ResetLoginAttempts(ctx context.Context, id primitive.ObjectID) error
	EnsureIndexes(ctx context.Context) error
}

// userRepository implements UserRepository using MongoDB. Contact and payment
// fields are encrypted before they touch the wire and decrypted on the way out.
type userRepository struct {
	collection *mongo.Collection
	encryptor  *crypto.Encryptor
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *mongo.Database, encryptor *crypto.Encryptor) UserRepository {
	return &userRepository{
		collection: db.Collection("users"),
		encryptor:  encryptor,
	}
}

// EnsureIndexes creates the unique index on the user email.
func (r *userRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// encryptPII encrypts the sensitive fields in place. Encrypt is a no-op for
// empty and already-encrypted values, so the call is safe to repeat.
func (r *userRepository) encryptPII(user *models.User) error {
	var err error
	if user.Phone, err = r.encryptor.Encrypt(user.Phone); err != nil {
		return err
	}
	if user.Address, err = r.encryptor.Encrypt(user.Address); err != nil {
		return err
	}
	if user.PaymentInfo, err = r.encryptor.Encrypt(user.PaymentInfo); err != nil {
		return err
	}
	return nil
}

// decryptPII decrypts the sensitive fields in place.
func (r *userRepository) decryptPII(user *models.User) error {
	var err error
	if user.Phone, err = r.encryptor.Decrypt(user.Phone); err != nil {
		return err
	}
	if user.Address, err = r.encryptor.Decrypt(user.Address); err != nil {
		return err
	}
	if user.PaymentInfo, err = r.encryptor.Decrypt(user.PaymentInfo); err != nil {
		return err
	}
	return nil
}

// Create inserts a new user into the database.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	// Check if user with email already exists
	existing, _ := r.FindByEmail(ctx, user.Email)
	if existing != nil {
		return apperrors.ErrUserAlreadyExists
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := r.encryptPII(user); err != nil {
		return err
	}

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrUserAlreadyExists
		}
		return err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)

	// Hand the caller back plaintext fields
	return r.decryptPII(user)
}

// FindByID finds a user by their ID.
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if err := r.decryptPII(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

// FindByEmail finds a user by their email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if err := r.decryptPII(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

// FindAll returns all users.
func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	for i := range users {
		if err := r.decryptPII(&users[i]); err != nil {
			return nil, err
		}
	}

	// Return empty slice instead of nil
	if users == nil {
		users = []models.User{}
	}

	return users, nil
}

// UpdatePassword replaces a user's salt and hash.
func (r *userRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, salt, hash string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"salt": salt, "hash": hash, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// SetRole replaces a user's role.
func (r *userRepository) SetRole(ctx context.Context, id primitive.ObjectID, role string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": role, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// IncrementLoginAttempts bumps the failed-login counter and returns the new
// count.
func (r *userRepository) IncrementLoginAttempts(ctx context.Context, id primitive.ObjectID) (int, error) {
	after := options.After
	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"loginAttempts": 1}},
		options.FindOneAndUpdate().SetReturnDocument(after),
	)

	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, result.Err()
	}

	var user models.User
	if err := result.Decode(&user); err != nil {
		return 0, err
	}

	return user.LoginAttempts, nil
}

// LockAccount sets the lockout deadline on a user.
func (r *userRepository) LockAccount(ctx context.Context, id primitive.ObjectID, until time.Time) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"lockUntil": until}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// ResetLoginAttempts clears the failed-login counter and any lockout.
func (r *userRepository) ResetLoginAttempts(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$set":   bson.M{"loginAttempts": 0},
			"$unset": bson.M{"lockUntil": ""},
		},
	)
	return err
}
