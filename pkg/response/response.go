// Package response provides standard API response helpers.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error body. Every API error carries a message.
type ErrorResponse struct {
	Message string `json:"message" example:"trip not found"`
}

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field" example:"price"`
	Message string `json:"message" example:"must be greater than or equal to 0"`
}

// ValidationErrorResponse carries field-level validation messages.
type ValidationErrorResponse struct {
	Message string       `json:"message" example:"Validation error"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// RateLimitResponse is returned when a rate limit is exceeded.
type RateLimitResponse struct {
	Message    string `json:"message" example:"too many requests, please try again later"`
	RetryAfter int    `json:"retryAfter" example:"42"`
}

// OK sends a 200 response with the given payload.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with the given payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 No Content response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the given status code.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Message: message})
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// ValidationError sends a 400 response with field-level messages.
func ValidationError(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Message: "Validation error",
		Errors:  errs,
	})
}

// Unauthorized sends a 401 error response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 error response.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict sends a 409 error response.
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// TooManyRequests sends a 429 response with a retry-after hint in seconds.
func TooManyRequests(c *gin.Context, message string, retryAfter int) {
	c.JSON(http.StatusTooManyRequests, RateLimitResponse{
		Message:    message,
		RetryAfter: retryAfter,
	})
}

// InternalError sends a 500 error response with detail suppressed.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "internal server error")
}
