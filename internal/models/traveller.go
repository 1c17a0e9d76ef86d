package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Traveller is the legacy entity behind the server-rendered travellers view.
// It is unrelated to the Trip/User model and kept only for that page.
type Traveller struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Destination string             `json:"destination" bson:"destination"`
	TourDate    time.Time          `json:"tourDate" bson:"tourDate"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// CreateTravellerRequest is the form payload for adding a traveller.
type CreateTravellerRequest struct {
	Name        string    `form:"name" json:"name" binding:"required,min=2,max=100"`
	Destination string    `form:"destination" json:"destination" binding:"required,min=2,max=100"`
	TourDate    time.Time `form:"tourDate" json:"tourDate" binding:"required" time_format:"2006-01-02"`
}
