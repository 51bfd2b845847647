package ports

import (
	"context"

	"github.com/proposaldesk/intake-api/internal/core/domain"
)

// TestimonialService defines testimonial submission and moderation.
// Moderation operations take the requester's asserted email and require the
// admin role.
type TestimonialService interface {
	Create(ctx context.Context, fields map[string]any) (*domain.InsertResult, error)
	ListPending(ctx context.Context, requesterEmail string) ([]domain.Testimonial, error)
	Approve(ctx context.Context, id, requesterEmail string) ([]domain.Testimonial, error)
	Delete(ctx context.Context, id, requesterEmail string) ([]domain.Testimonial, error)
}
