package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/proposaldesk/intake-api/internal/core/domain"
	"github.com/proposaldesk/intake-api/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Create inserts the user as submitted. Duplicate emails are not checked.
func (s *UserService) Create(ctx context.Context, user *domain.User) (*domain.InsertResult, error) {
	res, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.logger.Info().Str("email", user.Email).Msg("user created")
	return res, nil
}

// Upsert sets the submitted fields on the user matching user.Email, creating
// the user when none exists. A user without any field is acknowledged as
// unchanged without touching the store.
func (s *UserService) Upsert(ctx context.Context, user *domain.User) (*domain.UpdateResult, error) {
	if user.IsEmpty() {
		return &domain.UpdateResult{Acknowledged: true}, nil
	}
	res, err := s.repo.UpsertByEmail(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return res, nil
}

// IsAdmin reports whether the user stored under email holds the admin role.
// An unknown email is not an error.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("admin flag: %w", err)
	}
	return domain.Authorize(user, domain.RoleAdmin).Allowed, nil
}

// Phone returns the stored phone number. It distinguishes a missing user
// (domain.ErrUserNotFound) from a user without a phone (domain.ErrPhoneNotFound).
func (s *UserService) Phone(ctx context.Context, email string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", err
		}
		return "", fmt.Errorf("phone lookup: %w", err)
	}
	if user.PhoneNumber == "" {
		return "", domain.ErrPhoneNotFound
	}
	return user.PhoneNumber, nil
}

// UpdateProfile upserts the non-empty profile fields by email. An update with
// no fields is reported as unchanged without touching the store.
//
// Submitting values equal to the stored ones is also reported as unchanged,
// since the store reports no modification.
func (s *UserService) UpdateProfile(ctx context.Context, email string, update domain.ProfileUpdate) (*ports.ProfileOutcome, error) {
	changes := update.Changes()
	if len(changes) == 0 {
		return &ports.ProfileOutcome{}, nil
	}

	res, err := s.repo.SetFieldsByEmail(ctx, email, changes)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	outcome := &ports.ProfileOutcome{Changed: res.Changed(), Result: res}
	if outcome.Changed {
		s.logger.Info().Str("email", email).Int("fields", len(changes)).Msg("profile updated")
	}
	return outcome, nil
}
