package ports

import (
	"context"

	"github.com/proposaldesk/intake-api/internal/core/domain"
)

// TestimonialRepository defines persistence operations on the testimonials collection.
type TestimonialRepository interface {
	Insert(ctx context.Context, t domain.Testimonial) (*domain.InsertResult, error)
	FindAll(ctx context.Context) ([]domain.Testimonial, error)
	// FindPending returns every testimonial without an approved field.
	FindPending(ctx context.Context) ([]domain.Testimonial, error)
	// Approve sets approved=true on the testimonial with the given id. The
	// write is an upsert: an unknown id produces a new approved document.
	Approve(ctx context.Context, id string) (*domain.UpdateResult, error)
	// Delete removes the testimonial with the given id and returns the number
	// of documents deleted.
	Delete(ctx context.Context, id string) (int64, error)
}
