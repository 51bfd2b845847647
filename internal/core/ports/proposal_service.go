package ports

import (
	"context"

	"github.com/proposaldesk/intake-api/internal/core/domain"
)

// CreateProposalInput carries the submitted form fields. FilePath is the
// relative path of the file stored for this request, or empty.
type CreateProposalInput struct {
	Name        string
	Email       string
	PhoneNumber string
	Category    string
	Details     string
	FilePath    string
}

// ProposalService defines proposal intake and listing.
type ProposalService interface {
	Create(ctx context.Context, input CreateProposalInput) (*domain.Proposal, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.Proposal, error)
	ListAll(ctx context.Context, requesterEmail string) ([]*domain.Proposal, error)
}
