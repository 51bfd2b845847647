package handler

import "github.com/proposaldesk/intake-api/internal/core/domain"

// --- Request types ---

// profileRequest carries the optional profile fields. Empty strings are
// treated as absent.
type profileRequest struct {
	DisplayName string `json:"displayName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Country     string `json:"country,omitempty"`
}

// moderationRequest identifies the testimonial to act on and the admin
// asserting the action.
type moderationRequest struct {
	ID        string `json:"id"`
	UserEmail string `json:"user_email"`
}

// --- Response types ---

type adminFlagResponse struct {
	Admin bool `json:"admin"`
}

type phoneResponse struct {
	PhoneNumber string `json:"phoneNumber"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type proposalCreatedResponse struct {
	Success bool             `json:"success"`
	Data    *domain.Proposal `json:"data"`
}

const (
	msgInvalidPayload  = "invalid payload"
	msgInvalidEmail    = "invalid email"
	msgProfileUpdated  = "Profile updated successfully"
	msgProfileNoChange = "No changes made"
)
