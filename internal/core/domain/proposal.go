package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Proposal is a business proposal submitted through the intake form. It is
// written once and never updated.
type Proposal struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email" bson:"email"`
	PhoneNumber string             `json:"phoneNumber" bson:"phoneNumber"`
	Category    string             `json:"category" bson:"category"`
	Details     string             `json:"details" bson:"details"`
	// FilePath is relative to the server root (e.g. "uploads/file-...pdf"),
	// or nil when no file was attached.
	FilePath  *string   `json:"filePath" bson:"filePath"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// ProposalSubmitted is published after a proposal has been stored.
type ProposalSubmitted struct {
	ProposalID  string    `json:"proposal_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Category    string    `json:"category"`
	HasFile     bool      `json:"has_file"`
	SubmittedAt time.Time `json:"submitted_at"`
}
