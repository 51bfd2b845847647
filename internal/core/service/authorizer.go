package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/proposaldesk/intake-api/internal/core/domain"
	"github.com/proposaldesk/intake-api/internal/core/ports"
)

// Authorizer resolves a requester by the email they assert and applies
// domain.Authorize to the stored record.
type Authorizer struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewAuthorizer(users ports.UserRepository, log zerolog.Logger) *Authorizer {
	return &Authorizer{users: users, log: log}
}

// Require returns domain.ErrForbidden unless the user stored under email holds
// the required role.
func (a *Authorizer) Require(ctx context.Context, email string, role domain.Role) error {
	var requester *domain.User
	if email != "" {
		u, err := a.users.FindByEmail(ctx, email)
		switch {
		case err == nil:
			requester = u
		case errors.Is(err, domain.ErrUserNotFound):
		default:
			return fmt.Errorf("authorize: %w", err)
		}
	}

	decision := domain.Authorize(requester, role)
	if !decision.Allowed {
		a.log.Info().Str("requester", email).Str("reason", decision.Reason).Msg("authorization denied")
		return domain.ErrForbidden
	}
	return nil
}
