package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RoleUser    = "user"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// User represents an account. Hash and Salt hold the PBKDF2 password material
// and are never serialized to JSON. Phone, Address and PaymentInfo are stored
// AES-encrypted at rest; PaymentInfo is additionally never returned to clients.
type User struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email" example:"user@example.com"`
	Name          string             `json:"name" bson:"name" example:"John Doe"`
	Hash          string             `json:"-" bson:"hash"`
	Salt          string             `json:"-" bson:"salt"`
	Role          string             `json:"role" bson:"role" example:"user"`
	Phone         string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Address       string             `json:"address,omitempty" bson:"address,omitempty"`
	PaymentInfo   string             `json:"-" bson:"paymentInfo,omitempty"`
	LoginAttempts int                `json:"-" bson:"loginAttempts"`
	LockUntil     time.Time          `json:"-" bson:"lockUntil,omitempty"`
	ResetToken    string             `json:"-" bson:"resetToken,omitempty"`
	ResetExpiry   time.Time          `json:"-" bson:"resetExpiry,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Locked reports whether the account is currently locked out.
func (u *User) Locked(now time.Time) bool {
	return now.Before(u.LockUntil)
}

// SafeUser is the externally visible user representation. Payment info and
// password material are excluded regardless of decryption capability.
type SafeUser struct {
	ID        primitive.ObjectID `json:"id"`
	Email     string             `json:"email"`
	Name      string             `json:"name"`
	Role      string             `json:"role"`
	Phone     string             `json:"phone,omitempty"`
	Address   string             `json:"address,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

// Safe returns the sanitized representation of the user.
func (u *User) Safe() *SafeUser {
	return &SafeUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
	}
}

// RegisterRequest is the payload for user registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100" example:"John Doe"`
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=8,max=100" example:"secret-pass1"`
	Phone    string `json:"phone" binding:"omitempty,e164"`
	Address  string `json:"address" binding:"omitempty,max=200"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"secret-pass1"`
}

// TokenResponse carries a signed JWT after register/login.
type TokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
}
