package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/proposaldesk/intake-api/internal/core/domain"
	"github.com/proposaldesk/intake-api/internal/core/ports"
)

type TestimonialService struct {
	repo   ports.TestimonialRepository
	auth   *Authorizer
	logger zerolog.Logger
}

func NewTestimonialService(repo ports.TestimonialRepository, auth *Authorizer, logger zerolog.Logger) *TestimonialService {
	return &TestimonialService{repo: repo, auth: auth, logger: logger}
}

// Create stores the submitted fields as a pending testimonial.
func (s *TestimonialService) Create(ctx context.Context, fields map[string]any) (*domain.InsertResult, error) {
	res, err := s.repo.Insert(ctx, domain.NewTestimonial(fields))
	if err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return res, nil
}

func (s *TestimonialService) ListPending(ctx context.Context, requesterEmail string) ([]domain.Testimonial, error) {
	if err := s.auth.Require(ctx, requesterEmail, domain.RoleAdmin); err != nil {
		return nil, err
	}
	items, err := s.repo.FindPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending testimonials: %w", err)
	}
	return items, nil
}

// Approve marks the testimonial approved and returns the full list.
//
// The underlying write is an upsert, so an unknown id creates a new approved
// testimonial rather than failing. Re-approving an approved testimonial
// modifies nothing and yields domain.ErrTestimonialNotFound.
func (s *TestimonialService) Approve(ctx context.Context, id, requesterEmail string) ([]domain.Testimonial, error) {
	if err := s.auth.Require(ctx, requesterEmail, domain.RoleAdmin); err != nil {
		return nil, err
	}

	res, err := s.repo.Approve(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("approve testimonial: %w", err)
	}
	if !res.Changed() {
		return nil, domain.ErrTestimonialNotFound
	}
	if res.UpsertedCount > 0 {
		s.logger.Warn().Str("id", id).Msg("approval created a new testimonial for an unknown id")
	}

	s.logger.Info().Str("id", id).Str("by", requesterEmail).Msg("testimonial approved")
	return s.listAll(ctx)
}

// Delete removes the testimonial and returns the remaining list.
func (s *TestimonialService) Delete(ctx context.Context, id, requesterEmail string) ([]domain.Testimonial, error) {
	if err := s.auth.Require(ctx, requesterEmail, domain.RoleAdmin); err != nil {
		return nil, err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete testimonial: %w", err)
	}
	if deleted == 0 {
		return nil, domain.ErrTestimonialNotFound
	}

	s.logger.Info().Str("id", id).Str("by", requesterEmail).Msg("testimonial deleted")
	return s.listAll(ctx)
}

func (s *TestimonialService) listAll(ctx context.Context) ([]domain.Testimonial, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return items, nil
}
