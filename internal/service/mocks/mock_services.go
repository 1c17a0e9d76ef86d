// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"travlr/internal/models"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc     func(ctx context.Context, req *models.RegisterRequest) (*models.TokenResponse, error)
	LoginFunc        func(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error)
	AuthenticateFunc func(ctx context.Context, email, password string) (*models.User, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.TokenResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, email, password)
	}
	return nil, nil
}

// MockTripService is a mock implementation of TripServicer.
type MockTripService struct {
	ListTripsFunc      func(ctx context.Context, req *models.ListTripsRequest) (*models.TripListResponse, error)
	GetTripFunc        func(ctx context.Context, code string) (*models.TripDetailResponse, error)
	CreateTripFunc     func(ctx context.Context, req *models.CreateTripRequest) (*models.Trip, error)
	UpdateTripFunc     func(ctx context.Context, code string, req *models.UpdateTripRequest) (*models.Trip, error)
	DeleteTripFunc     func(ctx context.Context, code string) error
	ImageUploadURLFunc func(ctx context.Context, code string, req *models.TripImageUploadRequest) (*models.TripImageUploadResponse, error)
}

func (m *MockTripService) ListTrips(ctx context.Context, req *models.ListTripsRequest) (*models.TripListResponse, error) {
	if m.ListTripsFunc != nil {
		return m.ListTripsFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockTripService) GetTrip(ctx context.Context, code string) (*models.TripDetailResponse, error) {
	if m.GetTripFunc != nil {
		return m.GetTripFunc(ctx, code)
	}
	return nil, nil
}

func (m *MockTripService) CreateTrip(ctx context.Context, req *models.CreateTripRequest) (*models.Trip, error) {
	if m.CreateTripFunc != nil {
		return m.CreateTripFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockTripService) UpdateTrip(ctx context.Context, code string, req *models.UpdateTripRequest) (*models.Trip, error) {
	if m.UpdateTripFunc != nil {
		return m.UpdateTripFunc(ctx, code, req)
	}
	return nil, nil
}

func (m *MockTripService) DeleteTrip(ctx context.Context, code string) error {
	if m.DeleteTripFunc != nil {
		return m.DeleteTripFunc(ctx, code)
	}
	return nil
}

func (m *MockTripService) ImageUploadURL(ctx context.Context, code string, req *models.TripImageUploadRequest) (*models.TripImageUploadResponse, error) {
	if m.ImageUploadURLFunc != nil {
		return m.ImageUploadURLFunc(ctx, code, req)
	}
	return nil, nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetUserFunc     func(ctx context.Context, id string) (*models.SafeUser, error)
	GetAllUsersFunc func(ctx context.Context) ([]models.SafeUser, error)
}

func (m *MockUserService) GetUser(ctx context.Context, id string) (*models.SafeUser, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) GetAllUsers(ctx context.Context) ([]models.SafeUser, error) {
	if m.GetAllUsersFunc != nil {
		return m.GetAllUsersFunc(ctx)
	}
	return nil, nil
}

// MockTravellerService is a mock implementation of TravellerServicer.
type MockTravellerService struct {
	ListTravellersFunc func(ctx context.Context) ([]models.Traveller, error)
	AddTravellerFunc   func(ctx context.Context, req *models.CreateTravellerRequest) (*models.Traveller, error)
}

func (m *MockTravellerService) ListTravellers(ctx context.Context) ([]models.Traveller, error) {
	if m.ListTravellersFunc != nil {
		return m.ListTravellersFunc(ctx)
	}
	return nil, nil
}

func (m *MockTravellerService) AddTraveller(ctx context.Context, req *models.CreateTravellerRequest) (*models.Traveller, error) {
	if m.AddTravellerFunc != nil {
		return m.AddTravellerFunc(ctx, req)
	}
	return nil, nil
}

// MockSystemService is a mock implementation of SystemServicer.
type MockSystemService struct {
	HealthFunc func(ctx context.Context) *models.HealthResponse
}

func (m *MockSystemService) Health(ctx context.Context) *models.HealthResponse {
	if m.HealthFunc != nil {
		return m.HealthFunc(ctx)
	}
	return nil
}
