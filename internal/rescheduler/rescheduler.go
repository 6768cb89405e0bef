package rescheduler

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/timetrackly/notifier/internal/model"
	"github.com/timetrackly/notifier/internal/schedule"
)

//go:generate mockgen -source=rescheduler.go -destination=../mocks/rescheduler/mock.go -package=mocks
type notificationStore interface {
	ListPendingByEmployer(ctx context.Context, employerID uuid.UUID) ([]model.Notification, error)
	Reschedule(ctx context.Context, id uuid.UUID, newTime time.Time) error
	CancelPending(ctx context.Context, id uuid.UUID) error
}

// Rescheduler re-derives or cancels an employer's pending notifications
// after a schedule settings change.
type Rescheduler struct {
	store notificationStore
}

// New creates a new Rescheduler.
func New(store notificationStore) *Rescheduler {
	return &Rescheduler{store: store}
}

// Apply reacts to a settings update. changed holds exactly the weekday
// entries present in the update (value "" = day disabled). For every pending
// notification owned by the employer whose effective local weekday is among
// the changed entries, the delivery instant is recomputed with the new local
// time: a different instant reschedules the record and resets its attempts,
// a disabled day cancels it, an identical instant is left untouched.
//
// The settings write has already committed by the time Apply runs, so
// per-record failures are logged and skipped rather than propagated.
func (r *Rescheduler) Apply(ctx context.Context, settings model.ScheduleSettings, changed map[string]string, now time.Time) {
	if len(changed) == 0 {
		return
	}

	loc, err := time.LoadLocation(settings.Timezone)
	if err != nil {
		zlog.Logger.Error().Err(err).
			Str("employer_id", settings.EmployerID.String()).
			Str("timezone", settings.Timezone).
			Msg("invalid employer timezone, skipping rescheduling")
		return
	}

	pending, err := r.store.ListPendingByEmployer(ctx, settings.EmployerID)
	if err != nil {
		zlog.Logger.Error().Err(err).
			Str("employer_id", settings.EmployerID.String()).
			Msg("failed to list pending notifications for rescheduling")
		return
	}

	for _, n := range pending {
		// The stored instant is UTC; which weekday it belongs to is decided
		// in the employer's timezone.
		localDay := strings.ToLower(n.ScheduledAt.In(loc).Weekday().String())

		localTime, ok := changed[localDay]
		if !ok {
			continue
		}

		next, enabled := schedule.NextOccurrenceUTC(localDay, localTime, settings.Timezone, now)
		if !enabled {
			if err := r.store.CancelPending(ctx, n.ID); err != nil {
				zlog.Logger.Error().Err(err).
					Str("id", n.ID.String()).
					Msg("failed to cancel notification after setting change")
			}
			continue
		}

		if next.Equal(n.ScheduledAt) {
			continue
		}

		if err := r.store.Reschedule(ctx, n.ID, next); err != nil {
			zlog.Logger.Error().Err(err).
				Str("id", n.ID.String()).
				Msg("failed to reschedule notification")
		}
	}
}
