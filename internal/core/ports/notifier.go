package ports

import (
	"context"

	"github.com/proposaldesk/intake-api/internal/core/domain"
)

// ProposalNotifier accepts submitted-proposal events for asynchronous
// delivery. Notify must not block the caller.
type ProposalNotifier interface {
	Notify(event domain.ProposalSubmitted)
}

// ProposalPublisher delivers one event to the outside world.
type ProposalPublisher interface {
	Publish(ctx context.Context, event domain.ProposalSubmitted) error
}
