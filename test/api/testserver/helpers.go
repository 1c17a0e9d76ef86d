//go:build api

package testserver

import (
	"context"
	"net/http"
	"testing"

	"travlr/internal/models"
	"travlr/test/fixtures"
	"travlr/test/testutil"

	"github.com/stretchr/testify/require"
)

// AuthHelper provides authentication helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// RegisterUser registers a new user through the API and returns the token.
func (ah *AuthHelper) RegisterUser(t *testing.T, name, email, password string) string {
	t.Helper()

	req := models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/register", req)
	require.Equal(t, http.StatusCreated, w.Code, "register should return 201, got: %s", w.Body.String())

	var resp models.TokenResponse
	testutil.ParseResponse(t, w, &resp)
	require.NotEmpty(t, resp.Token, "register should return a token")
	return resp.Token
}

// Login logs in through the API and returns the token.
func (ah *AuthHelper) Login(t *testing.T, email, password string) string {
	t.Helper()

	req := models.LoginRequest{
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	var resp models.TokenResponse
	testutil.ParseResponse(t, w, &resp)
	require.NotEmpty(t, resp.Token, "login should return a token")
	return resp.Token
}

// SeedUser inserts a user directly into the database, bypassing the API.
// Used to create manager and admin accounts, which cannot be registered.
func (ah *AuthHelper) SeedUser(t *testing.T, user *models.User) *models.User {
	t.Helper()

	err := ah.server.UserRepo.Create(context.Background(), user)
	require.NoError(t, err, "failed to seed user")
	return user
}

// SeedUserWithRole seeds an account with the given role and returns a valid
// token for it. The account's password is the fixtures default.
func (ah *AuthHelper) SeedUserWithRole(t *testing.T, role string) (*models.User, string) {
	t.Helper()

	user := fixtures.NewUser().WithRole(role).BuildPtr()
	ah.SeedUser(t, user)
	token := ah.Login(t, user.Email, "password123")
	return user, token
}

// TripHelper provides trip helpers for API tests.
type TripHelper struct {
	server *TestServer
}

// NewTripHelper creates a new trip helper.
func NewTripHelper(server *TestServer) *TripHelper {
	return &TripHelper{server: server}
}

// SeedTrip inserts a trip directly into the database, bypassing the API.
func (th *TripHelper) SeedTrip(t *testing.T, trip *models.Trip) *models.Trip {
	t.Helper()

	err := th.server.TripRepo.Create(context.Background(), trip)
	require.NoError(t, err, "failed to seed trip")
	return trip
}

// CreateTrip creates a trip through the API with the given token.
func (th *TripHelper) CreateTrip(t *testing.T, token string, req models.CreateTripRequest) models.Trip {
	t.Helper()

	w := testutil.MakeAuthRequest(t, th.server.Router, http.MethodPost, "/api/trips", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create trip should return 201, got: %s", w.Body.String())

	var trip models.Trip
	testutil.ParseResponse(t, w, &trip)
	return trip
}
