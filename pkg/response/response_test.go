package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestOK(t *testing.T) {
	c, w := testContext()
	OK(c, gin.H{"name": "Gale Reef"})

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Gale Reef", body["name"])
}

func TestCreated(t *testing.T) {
	c, w := testContext()
	Created(c, gin.H{"token": "abc"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestNoContent(t *testing.T) {
	c, w := testContext()
	NoContent(c)
	// c.Status defers the header write; flush it as gin does at the end of a
	// real handler chain, since no chain runs under CreateTestContext.
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name   string
		send   func(*gin.Context)
		status int
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, "bad") }, http.StatusBadRequest},
		{"unauthorized", func(c *gin.Context) { Unauthorized(c, "no") }, http.StatusUnauthorized},
		{"forbidden", func(c *gin.Context) { Forbidden(c, "no") }, http.StatusForbidden},
		{"not found", func(c *gin.Context) { NotFound(c, "gone") }, http.StatusNotFound},
		{"conflict", func(c *gin.Context) { Conflict(c, "dup") }, http.StatusConflict},
		{"internal", InternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext()
			tt.send(c)

			assert.Equal(t, tt.status, w.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Message, "every error carries a message")
		})
	}
}

func TestTooManyRequests(t *testing.T) {
	c, w := testContext()
	TooManyRequests(c, "too many requests, please try again later", 42)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	var body RateLimitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 42, body.RetryAfter)
}

func TestValidationError(t *testing.T) {
	c, w := testContext()
	ValidationError(c, []FieldError{{Field: "price", Message: "required"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "price", body.Errors[0].Field)
}
