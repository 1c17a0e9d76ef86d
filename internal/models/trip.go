// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trip represents a bookable travel package.
type Trip struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Code        string             `json:"code" bson:"code" example:"GALR210214"`
	Name        string             `json:"name" bson:"name" example:"Gale Reef"`
	Length      int                `json:"length" bson:"length" example:"7"`
	Start       time.Time          `json:"start" bson:"start" example:"2026-02-14T08:00:00Z"`
	Resort      string             `json:"resort" bson:"resort" example:"Emerald Bay, 3 stars"`
	PerPerson   float64            `json:"perPerson" bson:"perPerson" example:"799.99"`
	Image       string             `json:"image" bson:"image" example:"trips/GALR210214/reef.jpg"`
	Description string             `json:"description" bson:"description"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateTripRequest is the payload for creating a trip. The wire names follow
// the public API (location/date/price) rather than the stored document.
type CreateTripRequest struct {
	Code        string    `json:"code" binding:"required,tripcode" example:"GALR210214"`
	Name        string    `json:"name" binding:"required,min=3,max=100" example:"Gale Reef"`
	Length      int       `json:"length" binding:"omitempty,min=1" example:"7"`
	Date        time.Time `json:"date" binding:"required" example:"2026-02-14T08:00:00Z"`
	Location    string    `json:"location" binding:"required,min=3,max=100" example:"Emerald Bay, 3 stars"`
	Price       float64   `json:"price" binding:"required,gte=0" example:"799.99"`
	Image       string    `json:"image" binding:"omitempty,max=200" example:"reef.jpg"`
	Description string    `json:"description" binding:"required,min=10,max=1000"`
}

// UpdateTripRequest is the payload for partially updating a trip.
type UpdateTripRequest struct {
	Code        *string    `json:"code" binding:"omitempty,tripcode"`
	Name        *string    `json:"name" binding:"omitempty,min=3,max=100"`
	Length      *int       `json:"length" binding:"omitempty,min=1"`
	Date        *time.Time `json:"date" binding:"omitempty"`
	Location    *string    `json:"location" binding:"omitempty,min=3,max=100"`
	Price       *float64   `json:"price" binding:"omitempty,gte=0"`
	Image       *string    `json:"image" binding:"omitempty,max=200"`
	Description *string    `json:"description" binding:"omitempty,min=10,max=1000"`
}

// ListTripsRequest is the recognized query-parameter schema for GET /api/trips.
// Unknown parameters are ignored by binding; malformed numeric or date values
// fail binding and are rejected with 400.
type ListTripsRequest struct {
	Page          int        `form:"page"`
	Limit         int        `form:"limit"`
	SortBy        string     `form:"sortBy" binding:"omitempty,oneof=name code resort perPerson start length createdAt"`
	SortDirection string     `form:"sortDirection" binding:"omitempty,oneof=asc desc"`
	Location      string     `form:"location"`
	Destination   string     `form:"destination"`
	Search        string     `form:"search"`
	MinPrice      *float64   `form:"minPrice" binding:"omitempty,gte=0"`
	MaxPrice      *float64   `form:"maxPrice" binding:"omitempty,gte=0"`
	PriceMin      *float64   `form:"priceMin" binding:"omitempty,gte=0"`
	PriceMax      *float64   `form:"priceMax" binding:"omitempty,gte=0"`
	FromDate      *time.Time `form:"fromDate" time_format:"2006-01-02"`
	ToDate        *time.Time `form:"toDate" time_format:"2006-01-02"`
}

// TripQuery is the normalized filter/sort/page specification built from a
// ListTripsRequest after defaulting and clamping.
type TripQuery struct {
	Resort    string
	Search    string
	PriceMin  *float64
	PriceMax  *float64
	FromDate  *time.Time
	ToDate    *time.Time
	SortBy    string
	SortDesc  bool
	Page      int
	Limit     int
}

// Pagination holds page metadata returned with trip listings.
type Pagination struct {
	Page         int   `json:"page" example:"1"`
	Limit        int   `json:"limit" example:"10"`
	TotalPages   int   `json:"totalPages" example:"4"`
	TotalResults int64 `json:"totalResults" example:"37"`
}

// TripListResponse is the response for GET /api/trips.
type TripListResponse struct {
	Data       []Trip     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// TripImageUploadRequest asks for a presigned upload slot for a trip image.
type TripImageUploadRequest struct {
	FileName    string `json:"fileName" binding:"required,max=100" example:"reef.jpg"`
	ContentType string `json:"contentType" binding:"required,oneof=image/jpeg image/png image/webp"`
}

// TripImageUploadResponse carries the presigned PUT URL and the object key
// recorded on the trip.
type TripImageUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key"`
}

// TripDetailResponse is a trip plus a short-lived presigned image URL.
type TripDetailResponse struct {
	Trip
	ImageURL string `json:"imageUrl,omitempty"`
}
