package models

import "time"

// AuthRequest carries the shared password. An empty password is a valid
// (wrong) attempt, only a missing field is a binding error.
type AuthRequest struct {
	Password *string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Authenticated bool      `json:"authenticated"`
	Message       string    `json:"message,omitempty"`
	Token         string    `json:"token,omitempty"`
	ExpiresAt     time.Time `json:"expires_at"`
}
