// Package queue delivers proposal notifications off the request path.
package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/proposaldesk/intake-api/internal/api/metrics"
	"github.com/proposaldesk/intake-api/internal/core/domain"
	"github.com/proposaldesk/intake-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	defaultBuffer  = 256
	publishTimeout = 5 * time.Second
)

// Dispatcher fans notifications out to a fixed set of workers, sharded by
// submitter email so one submitter's notifications are published in order.
// Notify never blocks: when a worker's buffer is full the event is dropped.
type Dispatcher struct {
	workers   []chan domain.ProposalSubmitted
	publisher ports.ProposalPublisher
	log       zerolog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers, each
// buffering up to buffer events. Non-positive values fall back to defaults.
func NewDispatcher(numWorkers, buffer int, publisher ports.ProposalPublisher, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	d := &Dispatcher{
		workers:   make([]chan domain.ProposalSubmitted, numWorkers),
		publisher: publisher,
		log:       log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ProposalSubmitted, buffer)
	}
	return d
}

// Start launches all worker goroutines. Workers publish with ctx and exit
// once Stop has closed their channel and the backlog is drained.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Notify hands the event to the worker responsible for its email.
func (d *Dispatcher) Notify(event domain.ProposalSubmitted) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		metrics.NotificationsTotal.WithLabelValues("dropped").Inc()
		return
	}

	idx := d.shardIndex(event.Email)
	select {
	case d.workers[idx] <- event:
		metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.NotificationsTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().
			Str("proposal_id", event.ProposalID).
			Int("worker_id", idx).
			Msg("notification queue full, dropping event")
	}
}

// Stop rejects further events and waits for queued ones to be published.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()
	d.wg.Wait()
}

// shardIndex maps an email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ProposalSubmitted) {
	defer d.wg.Done()
	depth := metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(id))

	for event := range ch {
		depth.Set(float64(len(ch)))

		pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
		err := d.publisher.Publish(pubCtx, event)
		cancel()

		if err != nil {
			metrics.NotificationsTotal.WithLabelValues("failed").Inc()
			d.log.Error().Err(err).
				Str("proposal_id", event.ProposalID).
				Int("worker_id", id).
				Msg("notification publish failed")
			continue
		}
		metrics.NotificationsTotal.WithLabelValues("published").Inc()
	}
}
