package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/timetrackly/notifier/internal/model"
)

const (
	DefaultBatchSize    = 10
	DefaultMaxPerRun    = 500
	DefaultTickInterval = time.Minute
)

//go:generate mockgen -source=worker.go -destination=../mocks/worker/mock.go -package=mocks
type notificationStore interface {
	ClaimDueBatch(ctx context.Context, now time.Time, limit int) ([]model.Notification, error)
	MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastErr string) error
}

type emailTransport interface {
	Send(to, subject, html, text string) error
}

// Config bounds a single worker run.
type Config struct {
	BatchSize    int
	MaxPerRun    int
	TickInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.MaxPerRun <= 0 {
		c.MaxPerRun = DefaultMaxPerRun
	}
	if c.TickInterval <= 0 {
		c.TickInterval = DefaultTickInterval
	}
	return c
}

// Worker periodically drains due notifications from the store and delivers
// them through the email transport. It claims work in batches of BatchSize,
// sends every claimed item concurrently, and never processes more than
// MaxPerRun records in one tick.
type Worker struct {
	store     notificationStore
	transport emailTransport
	cfg       Config
}

// NewWorker creates a delivery worker. Zero config values fall back to
// the package defaults.
func NewWorker(store notificationStore, transport emailTransport, cfg Config) *Worker {
	return &Worker{
		store:     store,
		transport: transport,
		cfg:       cfg.withDefaults(),
	}
}

// Run ticks the worker every TickInterval until ctx is cancelled. The
// in-flight tick finishes before Run returns.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.TickInterval)
	defer ticker.Stop()

	zlog.Logger.Info().
		Int("batch_size", w.cfg.BatchSize).
		Int("max_per_run", w.cfg.MaxPerRun).
		Dur("tick_interval", w.cfg.TickInterval).
		Msg("delivery worker started")

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("delivery worker stopped")
			return
		case <-ticker.C:
			w.Tick(ctx, time.Now().UTC())
		}
	}
}

// Tick performs one run: claim a batch of due notifications, deliver them
// concurrently, join, repeat. The loop stops when a claim comes back empty,
// when a batch comes back short (the queue is drained below a full batch),
// or when MaxPerRun is reached.
//
// Overlapping ticks are safe: the claim is an atomic compare-and-swap on
// status inside the store, so no record can be claimed twice.
func (w *Worker) Tick(ctx context.Context, now time.Time) {
	processed := 0

	for processed < w.cfg.MaxPerRun {
		if ctx.Err() != nil {
			return
		}

		// Never claim past the run limit, even mid-batch.
		limit := w.cfg.BatchSize
		if remaining := w.cfg.MaxPerRun - processed; remaining < limit {
			limit = remaining
		}

		batch, err := w.store.ClaimDueBatch(ctx, now, limit)
		if err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to claim due notifications")
			return
		}

		if len(batch) == 0 {
			break
		}

		var wg sync.WaitGroup
		wg.Add(len(batch))

		for _, n := range batch {
			go func(n model.Notification) {
				defer wg.Done()
				w.deliver(ctx, n)
			}(n)
		}

		wg.Wait()

		processed += len(batch)

		if len(batch) < limit {
			break
		}
	}

	if processed >= w.cfg.MaxPerRun {
		zlog.Logger.Warn().
			Int("processed", processed).
			Msg("run limit reached, remaining due notifications wait for the next tick")
	}
}

// deliver attempts one send and records the outcome. A transport failure
// only affects this record; sibling deliveries in the same batch are
// unaffected.
func (w *Worker) deliver(ctx context.Context, n model.Notification) {
	// Outcomes must land in the store even when shutdown cancels ctx while
	// the batch is in flight; a sent email with a pending row is worse than
	// a slightly delayed shutdown.
	persistCtx := context.WithoutCancel(ctx)

	err := w.transport.Send(n.RecipientEmail, n.Subject, n.MessageBody, "")
	if err != nil {
		zlog.Logger.Error().Err(err).
			Str("id", n.ID.String()).
			Str("recipient", n.RecipientEmail).
			Msg("notification delivery failed")

		if perr := w.store.MarkFailed(persistCtx, n.ID, err.Error()); perr != nil {
			zlog.Logger.Error().Err(perr).
				Str("id", n.ID.String()).
				Msg("failed to persist delivery failure, record may be stuck in processing")
		}
		return
	}

	zlog.Logger.Info().
		Str("id", n.ID.String()).
		Str("recipient", n.RecipientEmail).
		Msg("notification sent")

	if perr := w.store.MarkSent(persistCtx, n.ID, time.Now().UTC()); perr != nil {
		// The email is already on the wire and cannot be undone.
		zlog.Logger.Error().Err(perr).
			Str("id", n.ID.String()).
			Msg("failed to persist delivery outcome after the email was sent")
	}
}
