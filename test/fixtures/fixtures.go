// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"time"

	"travlr/internal/models"
	"travlr/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ===== User Fixtures =====

// UserBuilder provides a fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder with sensible defaults. The default
// password is "password123".
func NewUser() *UserBuilder {
	b := &UserBuilder{
		user: models.User{
			ID:        primitive.NewObjectID(),
			Name:      "Test User",
			Email:     fmt.Sprintf("test-%s@example.com", primitive.NewObjectID().Hex()[:8]),
			Role:      models.RoleUser,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	return b.WithPassword("password123")
}

func (b *UserBuilder) WithID(id primitive.ObjectID) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.user.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

// WithPassword derives and stores fresh salt and hash for the password.
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	salt, hash, err := auth.SetPassword(password)
	if err != nil {
		panic(fmt.Sprintf("fixtures: hash password: %v", err))
	}
	b.user.Salt = salt
	b.user.Hash = hash
	return b
}

func (b *UserBuilder) WithRole(role string) *UserBuilder {
	b.user.Role = role
	return b
}

func (b *UserBuilder) AsManager() *UserBuilder {
	b.user.Role = models.RoleManager
	return b
}

func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.user.Role = models.RoleAdmin
	return b
}

func (b *UserBuilder) WithPhone(phone string) *UserBuilder {
	b.user.Phone = phone
	return b
}

func (b *UserBuilder) WithAddress(address string) *UserBuilder {
	b.user.Address = address
	return b
}

func (b *UserBuilder) WithPaymentInfo(info string) *UserBuilder {
	b.user.PaymentInfo = info
	return b
}

// Locked marks the account as locked out for the next hour.
func (b *UserBuilder) Locked() *UserBuilder {
	b.user.LoginAttempts = 5
	b.user.LockUntil = time.Now().Add(time.Hour)
	return b
}

func (b *UserBuilder) Build() models.User {
	return b.user
}

func (b *UserBuilder) BuildPtr() *models.User {
	return &b.user
}

// ===== Trip Fixtures =====

// TripBuilder provides a fluent API for building test trips.
type TripBuilder struct {
	trip models.Trip
}

// NewTrip creates a new TripBuilder with sensible defaults.
func NewTrip() *TripBuilder {
	return &TripBuilder{
		trip: models.Trip{
			ID:          primitive.NewObjectID(),
			Code:        "GALR210214",
			Name:        "Gale Reef",
			Length:      4,
			Start:       time.Date(2026, 2, 14, 8, 0, 0, 0, time.UTC),
			Resort:      "Emerald Bay, 3 stars",
			PerPerson:   799,
			Description: "Four nights on the reef.",
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		},
	}
}

func (b *TripBuilder) WithCode(code string) *TripBuilder {
	b.trip.Code = code
	return b
}

func (b *TripBuilder) WithName(name string) *TripBuilder {
	b.trip.Name = name
	return b
}

func (b *TripBuilder) WithResort(resort string) *TripBuilder {
	b.trip.Resort = resort
	return b
}

func (b *TripBuilder) WithPerPerson(price float64) *TripBuilder {
	b.trip.PerPerson = price
	return b
}

func (b *TripBuilder) WithStart(start time.Time) *TripBuilder {
	b.trip.Start = start
	return b
}

func (b *TripBuilder) WithLength(nights int) *TripBuilder {
	b.trip.Length = nights
	return b
}

func (b *TripBuilder) WithImage(key string) *TripBuilder {
	b.trip.Image = key
	return b
}

func (b *TripBuilder) Build() models.Trip {
	return b.trip
}

func (b *TripBuilder) BuildPtr() *models.Trip {
	return &b.trip
}

// ===== Traveller Fixtures =====

// TravellerBuilder provides a fluent API for building test travellers.
type TravellerBuilder struct {
	traveller models.Traveller
}

// NewTraveller creates a new TravellerBuilder with sensible defaults.
func NewTraveller() *TravellerBuilder {
	return &TravellerBuilder{
		traveller: models.Traveller{
			ID:          primitive.NewObjectID(),
			Name:        "Ada Wong",
			Destination: "Gale Reef",
			TourDate:    time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
			CreatedAt:   time.Now(),
		},
	}
}

func (b *TravellerBuilder) WithName(name string) *TravellerBuilder {
	b.traveller.Name = name
	return b
}

func (b *TravellerBuilder) WithDestination(destination string) *TravellerBuilder {
	b.traveller.Destination = destination
	return b
}

func (b *TravellerBuilder) WithTourDate(date time.Time) *TravellerBuilder {
	b.traveller.TourDate = date
	return b
}

func (b *TravellerBuilder) Build() models.Traveller {
	return b.traveller
}

func (b *TravellerBuilder) BuildPtr() *models.Traveller {
	return &b.traveller
}
