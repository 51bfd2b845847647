package ports

import (
	"context"

	"github.com/proposaldesk/intake-api/internal/core/domain"
)

// UserRepository defines persistence operations on the users collection.
// Every lookup and upsert is keyed by email.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (*domain.InsertResult, error)
	// UpsertByEmail sets the non-empty fields of user on the document matching
	// user.Email, creating it when none matches.
	UpsertByEmail(ctx context.Context, user *domain.User) (*domain.UpdateResult, error)
	// SetFieldsByEmail sets the given fields on the document matching email,
	// creating it when none matches.
	SetFieldsByEmail(ctx context.Context, email string, fields map[string]any) (*domain.UpdateResult, error)
	// FindByEmail returns domain.ErrUserNotFound when no document matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
