package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "travlr/internal/errors"
	"travlr/internal/models"
	"travlr/internal/service/mocks"
	"travlr/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTripRouter(mockService *mocks.MockTripService) *gin.Engine {
	handler := NewTripHandler(mockService)

	router := gin.New()
	router.GET("/api/trips", handler.ListTrips)
	router.POST("/api/trips", handler.CreateTrip)
	router.GET("/api/trips/:tripId", handler.GetTrip)
	router.PUT("/api/trips/:tripId", handler.UpdateTrip)
	router.DELETE("/api/trips/:tripId", handler.DeleteTrip)
	router.POST("/api/trips/:tripId/image-upload", handler.ImageUpload)
	return router
}

func TestTripHandler_ListTrips(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mockSetup      func(*mocks.MockTripService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "returns trips with pagination",
			url:  "/api/trips",
			mockSetup: func(m *mocks.MockTripService) {
				m.ListTripsFunc = func(ctx context.Context, req *models.ListTripsRequest) (*models.TripListResponse, error) {
					return &models.TripListResponse{
						Data: []models.Trip{{Code: "GALR210214", Name: "Gale Reef"}},
						Pagination: models.Pagination{
							Page: 1, Limit: 10, TotalPages: 1, TotalResults: 1,
						},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp models.TripListResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Len(t, resp.Data, 1)
				assert.EqualValues(t, 1, resp.Pagination.TotalResults)
			},
		},
		{
			name: "forwards query parameters",
			url:  "/api/trips?search=reef&minPrice=500&sortBy=perPerson&sortDirection=asc&page=2&limit=5",
			mockSetup: func(m *mocks.MockTripService) {
				m.ListTripsFunc = func(ctx context.Context, req *models.ListTripsRequest) (*models.TripListResponse, error) {
					assert.Equal(t, "reef", req.Search)
					assert.Equal(t, "perPerson", req.SortBy)
					assert.Equal(t, "asc", req.SortDirection)
					assert.Equal(t, 2, req.Page)
					assert.Equal(t, 5, req.Limit)
					require.NotNil(t, req.MinPrice)
					assert.Equal(t, 500.0, *req.MinPrice)
					return &models.TripListResponse{Data: []models.Trip{}}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "rejects malformed numeric filter",
			url:            "/api/trips?minPrice=abc",
			mockSetup:      func(m *mocks.MockTripService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rejects malformed date filter",
			url:            "/api/trips?fromDate=junk",
			mockSetup:      func(m *mocks.MockTripService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rejects unknown sort field",
			url:            "/api/trips?sortBy=secret",
			mockSetup:      func(m *mocks.MockTripService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "ignores unknown parameters",
			url:  "/api/trips?utm_source=newsletter",
			mockSetup: func(m *mocks.MockTripService) {
				m.ListTripsFunc = func(ctx context.Context, req *models.ListTripsRequest) (*models.TripListResponse, error) {
					return &models.TripListResponse{Data: []models.Trip{}}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "internal server error",
			url:  "/api/trips",
			mockSetup: func(m *mocks.MockTripService) {
				m.ListTripsFunc = func(ctx context.Context, req *models.ListTripsRequest) (*models.TripListResponse, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockTripService{}
			tt.mockSetup(mockService)

			router := newTripRouter(mockService)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestTripHandler_GetTrip(t *testing.T) {
	t.Run("returns trip detail", func(t *testing.T) {
		mockService := &mocks.MockTripService{
			GetTripFunc: func(ctx context.Context, code string) (*models.TripDetailResponse, error) {
				assert.Equal(t, "GALR210214", code)
				return &models.TripDetailResponse{
					Trip:     models.Trip{Code: "GALR210214", Name: "Gale Reef"},
					ImageURL: "https://storage.example.com/get/trips/GALR210214/reef.jpg",
				}, nil
			},
		}

		router := newTripRouter(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/trips/GALR210214", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Gale Reef", resp["name"])
		assert.NotEmpty(t, resp["imageUrl"])
	})

	t.Run("returns 404 for unknown trip", func(t *testing.T) {
		mockService := &mocks.MockTripService{
			GetTripFunc: func(ctx context.Context, code string) (*models.TripDetailResponse, error) {
				return nil, apperrors.ErrTripNotFound
			},
		}

		router := newTripRouter(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/trips/NOPE000000", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTripHandler_CreateTrip(t *testing.T) {
	validBody := models.CreateTripRequest{
		Code:        "GALR210214",
		Name:        "Gale Reef",
		Length:      7,
		Date:        time.Date(2026, 2, 14, 8, 0, 0, 0, time.UTC),
		Location:    "Emerald Bay, 3 stars",
		Price:       799.99,
		Description: "A relaxing getaway with plenty of sun.",
	}

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockTripService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "creates trip",
			body: validBody,
			mockSetup: func(m *mocks.MockTripService) {
				m.CreateTripFunc = func(ctx context.Context, req *models.CreateTripRequest) (*models.Trip, error) {
					return &models.Trip{Code: req.Code, Name: req.Name}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "rejects invalid trip code",
			body: map[string]interface{}{
				"code": "bad code!", "name": "Gale Reef", "date": "2026-02-14T08:00:00Z",
				"location": "Emerald Bay", "price": 799.99,
				"description": "A relaxing getaway with plenty of sun.",
			},
			mockSetup:      func(m *mocks.MockTripService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp response.ValidationErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "Validation error", resp.Message)
				require.Len(t, resp.Errors, 1)
				assert.Equal(t, "code", resp.Errors[0].Field)
				assert.Equal(t, "must be a valid trip code", resp.Errors[0].Message)
			},
		},
		{
			name: "rejects negative price",
			body: map[string]interface{}{
				"code": "GALR210214", "name": "Gale Reef", "date": "2026-02-14T08:00:00Z",
				"location": "Emerald Bay", "price": -5,
				"description": "A relaxing getaway with plenty of sun.",
			},
			mockSetup:      func(m *mocks.MockTripService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp response.ValidationErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				require.Len(t, resp.Errors, 1)
				assert.Equal(t, "price", resp.Errors[0].Field)
			},
		},
		{
			name: "conflict on duplicate code",
			body: validBody,
			mockSetup: func(m *mocks.MockTripService) {
				m.CreateTripFunc = func(ctx context.Context, req *models.CreateTripRequest) (*models.Trip, error) {
					return nil, apperrors.ErrTripCodeTaken
				}
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockTripService{}
			tt.mockSetup(mockService)

			router := newTripRouter(mockService)
			req := httptest.NewRequest(http.MethodPost, "/api/trips", bytes.NewBuffer(marshalBody(tt.body)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestTripHandler_UpdateTrip(t *testing.T) {
	t.Run("updates trip", func(t *testing.T) {
		mockService := &mocks.MockTripService{
			UpdateTripFunc: func(ctx context.Context, code string, req *models.UpdateTripRequest) (*models.Trip, error) {
				assert.Equal(t, "GALR210214", code)
				return &models.Trip{Code: code, Name: *req.Name}, nil
			},
		}

		router := newTripRouter(mockService)
		body := []byte(`{"name":"Gale Reef Deluxe"}`)
		req := httptest.NewRequest(http.MethodPut, "/api/trips/GALR210214", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("returns 404 for unknown trip", func(t *testing.T) {
		mockService := &mocks.MockTripService{
			UpdateTripFunc: func(ctx context.Context, code string, req *models.UpdateTripRequest) (*models.Trip, error) {
				return nil, apperrors.ErrTripNotFound
			},
		}

		router := newTripRouter(mockService)
		body := []byte(`{"name":"Gale Reef Deluxe"}`)
		req := httptest.NewRequest(http.MethodPut, "/api/trips/NOPE000000", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTripHandler_DeleteTrip(t *testing.T) {
	t.Run("deletes trip", func(t *testing.T) {
		mockService := &mocks.MockTripService{
			DeleteTripFunc: func(ctx context.Context, code string) error {
				assert.Equal(t, "GALR210214", code)
				return nil
			},
		}

		router := newTripRouter(mockService)
		req := httptest.NewRequest(http.MethodDelete, "/api/trips/GALR210214", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("returns 404 for unknown trip", func(t *testing.T) {
		mockService := &mocks.MockTripService{
			DeleteTripFunc: func(ctx context.Context, code string) error {
				return apperrors.ErrTripNotFound
			},
		}

		router := newTripRouter(mockService)
		req := httptest.NewRequest(http.MethodDelete, "/api/trips/NOPE000000", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTripHandler_ImageUpload(t *testing.T) {
	t.Run("issues upload URL", func(t *testing.T) {
		mockService := &mocks.MockTripService{
			ImageUploadURLFunc: func(ctx context.Context, code string, req *models.TripImageUploadRequest) (*models.TripImageUploadResponse, error) {
				return &models.TripImageUploadResponse{
					UploadURL: "https://storage.example.com/put/trips/GALR210214/reef.jpg",
					Key:       "trips/GALR210214/reef.jpg",
				}, nil
			},
		}

		router := newTripRouter(mockService)
		body := []byte(`{"fileName":"reef.jpg","contentType":"image/jpeg"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/trips/GALR210214/image-upload", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp models.TripImageUploadResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "trips/GALR210214/reef.jpg", resp.Key)
	})

	t.Run("rejects unsupported content type", func(t *testing.T) {
		router := newTripRouter(&mocks.MockTripService{})
		body := []byte(`{"fileName":"reef.gif","contentType":"image/gif"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/trips/GALR210214/image-upload", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
