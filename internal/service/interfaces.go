package service

import (
	"context"

	"travlr/internal/models"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.TokenResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// TripServicer defines the interface for trip operations.
type TripServicer interface {
	ListTrips(ctx context.Context, req *models.ListTripsRequest) (*models.TripListResponse, error)
	GetTrip(ctx context.Context, code string) (*models.TripDetailResponse, error)
	CreateTrip(ctx context.Context, req *models.CreateTripRequest) (*models.Trip, error)
	UpdateTrip(ctx context.Context, code string, req *models.UpdateTripRequest) (*models.Trip, error)
	DeleteTrip(ctx context.Context, code string) error
	ImageUploadURL(ctx context.Context, code string, req *models.TripImageUploadRequest) (*models.TripImageUploadResponse, error)
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	GetUser(ctx context.Context, id string) (*models.SafeUser, error)
	GetAllUsers(ctx context.Context) ([]models.SafeUser, error)
}

// TravellerServicer defines the interface for traveller operations.
type TravellerServicer interface {
	ListTravellers(ctx context.Context) ([]models.Traveller, error)
	AddTraveller(ctx context.Context, req *models.CreateTravellerRequest) (*models.Traveller, error)
}

// SystemServicer defines the interface for health reporting.
type SystemServicer interface {
	Health(ctx context.Context) *models.HealthResponse
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer      = (*AuthService)(nil)
	_ TripServicer      = (*TripService)(nil)
	_ UserServicer      = (*UserService)(nil)
	_ TravellerServicer = (*TravellerService)(nil)
	_ SystemServicer    = (*SystemService)(nil)
)
