package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"path"
	"time"

	"travlr/internal/models"
	"travlr/internal/repository"
	"travlr/internal/storage"
)

// Trip listing defaults and bounds.
const (
	defaultTripLimit = 10
	maxTripLimit     = 100
	defaultTripSort  = "start"
)

// Presigned URL lifetimes for trip images.
const (
	imageURLTTL  = time.Hour
	uploadURLTTL = 15 * time.Minute
)

// TripService handles business logic for trip operations.
type TripService struct {
	repo    repository.TripRepository
	storage storage.Storage
}

// NewTripService creates a new TripService.
func NewTripService(repo repository.TripRepository, storage storage.Storage) *TripService {
	return &TripService{
		repo:    repo,
		storage: storage,
	}
}

// normalizeQuery turns a bound listing request into a TripQuery with defaults
// applied and the limit clamped. Binding has already rejected malformed values,
// so only well-formed out-of-range numbers reach the clamp.
func normalizeQuery(req *models.ListTripsRequest) *models.TripQuery {
	query := &models.TripQuery{
		Search: req.Search,
		Page:   req.Page,
		Limit:  req.Limit,
	}

	// destination and location are aliases for the resort filter
	query.Resort = req.Destination
	if query.Resort == "" {
		query.Resort = req.Location
	}

	// minPrice/maxPrice and priceMin/priceMax are aliases too
	query.PriceMin = req.MinPrice
	if query.PriceMin == nil {
		query.PriceMin = req.PriceMin
	}
	query.PriceMax = req.MaxPrice
	if query.PriceMax == nil {
		query.PriceMax = req.PriceMax
	}

	query.FromDate = req.FromDate
	query.ToDate = req.ToDate

	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = defaultTripLimit
	}
	if query.Limit > maxTripLimit {
		query.Limit = maxTripLimit
	}

	query.SortBy = req.SortBy
	if query.SortBy == "" {
		// Newest departures first when no sort is requested
		query.SortBy = defaultTripSort
		query.SortDesc = true
	} else {
		query.SortDesc = req.SortDirection == "desc"
	}

	return query
}

// ListTrips returns a filtered, sorted, paginated trip listing.
func (s *TripService) ListTrips(ctx context.Context, req *models.ListTripsRequest) (*models.TripListResponse, error) {
	query := normalizeQuery(req)

	trips, total, err := s.repo.Find(ctx, query)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(query.Limit)))

	return &models.TripListResponse{
		Data: trips,
		Pagination: models.Pagination{
			Page:         query.Page,
			Limit:        query.Limit,
			TotalPages:   totalPages,
			TotalResults: total,
		},
	}, nil
}

// GetTrip returns a single trip with a short-lived image URL when the trip has
// an image. A presigning failure degrades to a response without the URL.
func (s *TripService) GetTrip(ctx context.Context, code string) (*models.TripDetailResponse, error) {
	trip, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	detail := &models.TripDetailResponse{Trip: *trip}

	if trip.Image != "" {
		url, err := s.storage.GetPresignedURL(ctx, trip.Image, imageURLTTL)
		if err != nil {
			log.Printf("Failed to presign image for trip %s: %v", code, err)
		} else {
			detail.ImageURL = url
		}
	}

	return detail, nil
}

// CreateTrip creates a new trip from the request payload.
func (s *TripService) CreateTrip(ctx context.Context, req *models.CreateTripRequest) (*models.Trip, error) {
	trip := &models.Trip{
		Code:        req.Code,
		Name:        req.Name,
		Length:      req.Length,
		Start:       req.Date,
		Resort:      req.Location,
		PerPerson:   req.Price,
		Image:       req.Image,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, trip); err != nil {
		return nil, err
	}

	return trip, nil
}

// UpdateTrip applies a partial update to the trip with the given code.
func (s *TripService) UpdateTrip(ctx context.Context, code string, req *models.UpdateTripRequest) (*models.Trip, error) {
	return s.repo.Update(ctx, code, req)
}

// DeleteTrip removes the trip with the given code.
func (s *TripService) DeleteTrip(ctx context.Context, code string) error {
	return s.repo.Delete(ctx, code)
}

// ImageUploadURL issues a presigned PUT URL for a trip image and records the
// object key on the trip.
func (s *TripService) ImageUploadURL(ctx context.Context, code string, req *models.TripImageUploadRequest) (*models.TripImageUploadResponse, error) {
	trip, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("trips/%s/%s", trip.Code, path.Base(req.FileName))

	url, err := s.storage.GetPresignedPutURL(ctx, key, req.ContentType, uploadURLTTL)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetImage(ctx, trip.Code, key); err != nil {
		return nil, err
	}

	return &models.TripImageUploadResponse{
		UploadURL: url,
		Key:       key,
	}, nil
}
