package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proposaldesk/intake-api/internal/core/domain"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.ProposalSubmitted
	fail   bool
	block  chan struct{}
}

func (p *recordingPublisher) Publish(_ context.Context, e domain.ProposalSubmitted) error {
	if p.block != nil {
		<-p.block
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	if p.fail {
		return errors.New("broker down")
	}
	return nil
}

func (p *recordingPublisher) snapshot() []domain.ProposalSubmitted {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.ProposalSubmitted(nil), p.events...)
}

func event(id, email string) domain.ProposalSubmitted {
	return domain.ProposalSubmitted{ProposalID: id, Email: email, SubmittedAt: time.Now()}
}

func TestDispatcher_PublishesEverythingBeforeStop(t *testing.T) {
	pub := &recordingPublisher{}
	d := NewDispatcher(3, 16, pub, zerolog.Nop())
	d.Start(context.Background())

	for i := 0; i < 10; i++ {
		d.Notify(event(fmt.Sprint(i), fmt.Sprintf("user%d@example.com", i%4)))
	}
	d.Stop()

	assert.Len(t, pub.snapshot(), 10)
}

func TestDispatcher_PreservesOrderPerEmail(t *testing.T) {
	pub := &recordingPublisher{}
	d := NewDispatcher(4, 64, pub, zerolog.Nop())
	d.Start(context.Background())

	for i := 0; i < 20; i++ {
		d.Notify(event(fmt.Sprint(i), "ana@example.com"))
	}
	d.Stop()

	got := pub.snapshot()
	require.Len(t, got, 20)
	for i, e := range got {
		assert.Equal(t, fmt.Sprint(i), e.ProposalID)
	}
}

func TestDispatcher_NotifyDoesNotBlockWhenFull(t *testing.T) {
	pub := &recordingPublisher{block: make(chan struct{})}
	d := NewDispatcher(1, 1, pub, zerolog.Nop())
	d.Start(context.Background())

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			d.Notify(event(fmt.Sprint(i), "ana@example.com"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Notify blocked on a full queue")
	}

	close(pub.block)
	d.Stop()
	assert.Less(t, len(pub.snapshot()), 10, "overflowing events must be dropped")
}

func TestDispatcher_PublishFailureDoesNotStopWorker(t *testing.T) {
	pub := &recordingPublisher{fail: true}
	d := NewDispatcher(1, 8, pub, zerolog.Nop())
	d.Start(context.Background())

	d.Notify(event("1", "a@example.com"))
	d.Notify(event("2", "a@example.com"))
	d.Stop()

	assert.Len(t, pub.snapshot(), 2)
}

func TestDispatcher_NotifyAfterStopIsDropped(t *testing.T) {
	pub := &recordingPublisher{}
	d := NewDispatcher(2, 8, pub, zerolog.Nop())
	d.Start(context.Background())
	d.Stop()

	assert.NotPanics(t, func() { d.Notify(event("late", "a@example.com")) })
	assert.NotPanics(t, d.Stop)
	assert.Empty(t, pub.snapshot())
}

func TestShardIndex_Deterministic(t *testing.T) {
	d := NewDispatcher(8, 1, &recordingPublisher{}, zerolog.Nop())
	for _, email := range []string{"a@example.com", "b@example.com", ""} {
		first := d.shardIndex(email)
		assert.GreaterOrEqual(t, first, 0)
		assert.Less(t, first, 8)
		assert.Equal(t, first, d.shardIndex(email))
	}
}

func TestLogPublisher_NeverFails(t *testing.T) {
	p := NewLogPublisher(zerolog.Nop())
	assert.NoError(t, p.Publish(context.Background(), event("1", "a@example.com")))
}
