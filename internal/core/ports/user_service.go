package ports

import (
	"context"

	"github.com/proposaldesk/intake-api/internal/core/domain"
)

// ProfileOutcome reports whether a profile update changed anything.
type ProfileOutcome struct {
	Changed bool
	Result  *domain.UpdateResult
}

// UserService defines use-case operations on user records.
type UserService interface {
	Create(ctx context.Context, user *domain.User) (*domain.InsertResult, error)
	Upsert(ctx context.Context, user *domain.User) (*domain.UpdateResult, error)
	// IsAdmin returns false for an unknown email instead of an error.
	IsAdmin(ctx context.Context, email string) (bool, error)
	Phone(ctx context.Context, email string) (string, error)
	UpdateProfile(ctx context.Context, email string, update domain.ProfileUpdate) (*ProfileOutcome, error)
}
