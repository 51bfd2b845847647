package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/proposaldesk/intake-api/internal/core/domain"
)

// LogPublisher records notifications in the log. It is used when no message
// broker is configured.
type LogPublisher struct {
	log zerolog.Logger
}

func NewLogPublisher(log zerolog.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, event domain.ProposalSubmitted) error {
	p.log.Info().
		Str("proposal_id", event.ProposalID).
		Str("email", event.Email).
		Str("category", event.Category).
		Bool("has_file", event.HasFile).
		Time("submitted_at", event.SubmittedAt).
		Msg("proposal submitted")
	return nil
}
