//go:build api

package api

import (
	"net/http"
	"testing"

	"travlr/internal/models"
	"travlr/pkg/response"
	"travlr/test/api/testserver"
	"travlr/test/fixtures"
	"travlr/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	authHelper := testserver.NewAuthHelper(testServer)

	token := authHelper.RegisterUser(t, "New User", "new@example.com", "password123")
	assert.NotEmpty(t, token)

	// The token works against a protected route straight away
	w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var profile models.SafeUser
	testutil.ParseResponse(t, w, &profile)
	assert.Equal(t, "new@example.com", profile.Email)
	assert.Equal(t, models.RoleUser, profile.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	authHelper := testserver.NewAuthHelper(testServer)

	authHelper.RegisterUser(t, "First", "dup@example.com", "password123")

	req := models.RegisterRequest{
		Name:     "Second",
		Email:    "dup@example.com",
		Password: "password123",
	}
	w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/register", req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegister_ValidationErrors(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	tests := []struct {
		name      string
		req       models.RegisterRequest
		wantField string
	}{
		{
			name:      "short password",
			req:       models.RegisterRequest{Name: "User", Email: "a@example.com", Password: "short"},
			wantField: "password",
		},
		{
			name:      "invalid email",
			req:       models.RegisterRequest{Name: "User", Email: "not-an-email", Password: "password123"},
			wantField: "email",
		},
		{
			name:      "missing name",
			req:       models.RegisterRequest{Email: "a@example.com", Password: "password123"},
			wantField: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/register", tt.req)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp response.ValidationErrorResponse
			testutil.ParseResponse(t, w, &resp)
			assert.Equal(t, "Validation error", resp.Message)

			require.Len(t, resp.Errors, 1)
			assert.Equal(t, tt.wantField, resp.Errors[0].Field)
			assert.NotEmpty(t, resp.Errors[0].Message)
		})
	}
}

func TestLogin(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	authHelper := testserver.NewAuthHelper(testServer)

	authHelper.RegisterUser(t, "Login User", "login@example.com", "password123")

	token := authHelper.Login(t, "login@example.com", "password123")
	assert.NotEmpty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	authHelper := testserver.NewAuthHelper(testServer)

	authHelper.RegisterUser(t, "Login User", "login@example.com", "password123")

	req := models.LoginRequest{Email: "login@example.com", Password: "wrong-password"}
	w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/login", req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Unknown emails fail the same way
	req = models.LoginRequest{Email: "nobody@example.com", Password: "password123"}
	w = testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/login", req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_LockoutAfterRepeatedFailures(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	authHelper := testserver.NewAuthHelper(testServer)

	authHelper.RegisterUser(t, "Lock User", "lock@example.com", "password123")

	bad := models.LoginRequest{Email: "lock@example.com", Password: "wrong-password"}
	for i := 0; i < 5; i++ {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/login", bad)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	}

	// The correct password is refused while the account is locked
	good := models.LoginRequest{Email: "lock@example.com", Password: "password123"}
	w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/login", good)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_RateLimited(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	req := models.LoginRequest{Email: "nobody@example.com", Password: "wrong-password"}
	for i := 0; i < 10; i++ {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/login", req)
		require.Equal(t, http.StatusUnauthorized, w.Code, "attempt %d should reach the handler", i+1)
	}

	w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/login", req)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	var resp struct {
		Message    string `json:"message"`
		RetryAfter int    `json:"retryAfter"`
	}
	testutil.ParseResponse(t, w, &resp)
	assert.NotEmpty(t, resp.Message)
	assert.Greater(t, resp.RetryAfter, 0)
}

func TestProfile_RequiresToken(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/profile", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfile_OmitsPaymentInfo(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	authHelper := testserver.NewAuthHelper(testServer)

	user := fixtures.NewUser().
		WithEmail("pii@example.com").
		WithPhone("+15551234567").
		WithPaymentInfo("4111111111111111").
		BuildPtr()
	authHelper.SeedUser(t, user)
	token := authHelper.Login(t, "pii@example.com", "password123")

	w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.NotContains(t, w.Body.String(), "4111111111111111")
	assert.Contains(t, w.Body.String(), "+15551234567")
}
