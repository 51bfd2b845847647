package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/proposaldesk/intake-api/internal/core/domain"
	"github.com/proposaldesk/intake-api/internal/core/ports"
)

type ProposalService struct {
	repo     ports.ProposalRepository
	auth     *Authorizer
	notifier ports.ProposalNotifier
	logger   zerolog.Logger
	now      func() time.Time
}

func NewProposalService(
	repo ports.ProposalRepository,
	auth *Authorizer,
	notifier ports.ProposalNotifier,
	logger zerolog.Logger,
) *ProposalService {
	return &ProposalService{
		repo:     repo,
		auth:     auth,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Create stamps and stores a proposal, then hands a notification to the
// notifier. Notification delivery never affects the result.
func (s *ProposalService) Create(ctx context.Context, in ports.CreateProposalInput) (*domain.Proposal, error) {
	p := &domain.Proposal{
		Name:        in.Name,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Category:    in.Category,
		Details:     in.Details,
		CreatedAt:   s.now(),
	}
	if in.FilePath != "" {
		path := in.FilePath
		p.FilePath = &path
	}

	if _, err := s.repo.Insert(ctx, p); err != nil {
		s.logger.Error().Err(err).Str("email", in.Email).Msg("failed to create proposal")
		return nil, fmt.Errorf("create proposal: %w", err)
	}

	s.logger.Info().
		Str("proposal_id", p.ID.Hex()).
		Str("email", p.Email).
		Bool("has_file", p.FilePath != nil).
		Msg("proposal created")

	if s.notifier != nil {
		s.notifier.Notify(domain.ProposalSubmitted{
			ProposalID:  p.ID.Hex(),
			Name:        p.Name,
			Email:       p.Email,
			Category:    p.Category,
			HasFile:     p.FilePath != nil,
			SubmittedAt: p.CreatedAt,
		})
	}
	return p, nil
}

func (s *ProposalService) ListByEmail(ctx context.Context, email string) ([]*domain.Proposal, error) {
	items, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list proposals by email: %w", err)
	}
	return items, nil
}

func (s *ProposalService) ListAll(ctx context.Context, requesterEmail string) ([]*domain.Proposal, error) {
	if err := s.auth.Require(ctx, requesterEmail, domain.RoleAdmin); err != nil {
		return nil, err
	}
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	return items, nil
}
