package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered user. ExplicitTags are the topic preferences
// the user declared during onboarding; the ranking core folds them into the
// interest vector with a fixed boost.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Username     string             `bson:"username" json:"username"`
	Password     string             `bson:"password" json:"-"`
	ExplicitTags []string           `bson:"explicitTags" json:"explicitTags"`
	Verified     bool               `bson:"verified" json:"verified"`
	XP           int                `bson:"xp" json:"xp"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Email    string   `json:"email" binding:"required"`
	Username string   `json:"username" binding:"required"`
	Password string   `json:"password" binding:"required"`
	Tags     []string `json:"tags"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned after successful registration or login.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
