package ports

import (
	"context"

	"github.com/proposaldesk/intake-api/internal/core/domain"
)

// ProposalRepository defines persistence operations on the proposals collection.
type ProposalRepository interface {
	// Insert stores p and sets p.ID to the generated identifier.
	Insert(ctx context.Context, p *domain.Proposal) (*domain.InsertResult, error)
	FindByEmail(ctx context.Context, email string) ([]*domain.Proposal, error)
	FindAll(ctx context.Context) ([]*domain.Proposal, error)
}
