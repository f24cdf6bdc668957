package controllers

import (
	"time"

	"github.com/fintrack-ph/backend/internal/models"
)

// User is the account of the authenticated user. The password hash is never returned.
type User struct {
	models.DefaultModel
	Name  string `json:"name" example:"Juan dela Cruz"`                // Display name
	Email string `json:"email" example:"juan@example.com"`             // Email address, used to sign in
	Image string `json:"image" example:"https://example.com/juan.png"` // URL of the avatar
}

func newUser(model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Email:        model.Email,
		Image:        model.Image,
	}
}

// UserEditable contains the profile fields a user can change
type UserEditable struct {
	Name  string `json:"name" example:"Juan dela Cruz"`                // Display name
	Image string `json:"image" example:"https://example.com/juan.png"` // URL of the avatar
}

type SignUpRequest struct {
	Name     string `json:"name" example:"Juan dela Cruz"`       // Display name
	Email    string `json:"email" example:"juan@example.com"`    // Email address
	Password string `json:"password" example:"correct horse 42"` // At least 8 characters
}

type SignInRequest struct {
	Email    string `json:"email" example:"juan@example.com"`    // Email address
	Password string `json:"password" example:"correct horse 42"` // Password
}

type SessionResponse struct {
	User      User      `json:"user"`                                                    // The signed in user
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // Session token, also set as cookie
	ExpiresAt time.Time `json:"expiresAt" example:"2024-01-12T10:00:00Z"`                // Time the session expires
}

type Session struct {
	models.DefaultModel
	ExpiresAt time.Time `json:"expiresAt" example:"2024-01-12T10:00:00Z"` // Time the session expires
	IPAddress string    `json:"ipAddress" example:"203.177.12.4"`         // Client address the session was started from
	UserAgent string    `json:"userAgent" example:"Mozilla/5.0"`          // Client the session was started with
	IsCurrent bool      `json:"isCurrent" example:"true"`                 // Whether the request was made with this session
}

func newSession(model models.Session, current models.Session) Session {
	return Session{
		DefaultModel: model.DefaultModel,
		ExpiresAt:    model.ExpiresAt,
		IPAddress:    model.IPAddress,
		UserAgent:    model.UserAgent,
		IsCurrent:    model.ID == current.ID,
	}
}

type ChangePasswordRequest struct {
	CurrentPassword     string `json:"currentPassword" example:"correct horse 42"` // The password in use
	NewPassword         string `json:"newPassword" example:"battery staple 43"`    // At least 8 characters
	RevokeOtherSessions bool   `json:"revokeOtherSessions" example:"true"`         // Sign out all other sessions
}
