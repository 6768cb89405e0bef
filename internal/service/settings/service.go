package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/timetrackly/notifier/internal/model"
	settingsrepo "github.com/timetrackly/notifier/internal/repository/settings"
)

var ErrInvalidTimezone = errors.New("invalid timezone")

// DefaultTimezone is used for employers that have never saved settings.
const DefaultTimezone = "UTC"

//go:generate mockgen -source=service.go -destination=../../mocks/service/settings/mock.go -package=mocks

type settingsRepository interface {
	GetByEmployerID(ctx context.Context, employerID uuid.UUID) (model.ScheduleSettings, error)
	Upsert(ctx context.Context, s model.ScheduleSettings) error
}

type rescheduler interface {
	Apply(ctx context.Context, settings model.ScheduleSettings, changed map[string]string, now time.Time)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service owns employer schedule settings and reacts to their changes.
type Service struct {
	repo        settingsRepository
	rescheduler rescheduler
	cache       cache
}

// NewService creates a new settings service.
func NewService(repo settingsRepository, r rescheduler, cache cache) *Service {
	return &Service{repo: repo, rescheduler: r, cache: cache}
}

// GetSettings returns an employer's schedule settings, reading through the
// cache. Employers without saved settings get the default (UTC, all days
// disabled).
func (s *Service) GetSettings(ctx context.Context, strategy retry.Strategy, employerID uuid.UUID) (model.ScheduleSettings, error) {
	cached, err := s.cache.GetWithRetry(ctx, strategy, settingsKey(employerID))
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("employer_id", employerID.String()).Msg("failed to get settings from cache")
	}

	if err == nil && cached != "" {
		var cur model.ScheduleSettings
		if uerr := json.Unmarshal([]byte(cached), &cur); uerr == nil {
			return cur, nil
		}
		zlog.Logger.Warn().Str("employer_id", employerID.String()).Msg("unreadable cached settings, falling back to store")
	}

	cur, err := s.repo.GetByEmployerID(ctx, employerID)
	if errors.Is(err, settingsrepo.ErrSettingsNotFound) {
		return defaultSettings(employerID), nil
	}
	if err != nil {
		return model.ScheduleSettings{}, fmt.Errorf("get schedule settings: %w", err)
	}

	s.cacheSettings(ctx, strategy, cur)

	return cur, nil
}

// UpdateSettings applies a partial update to an employer's schedule,
// persists it, and synchronously reschedules the employer's pending
// notifications for exactly the weekdays present in the update. The
// returned error reflects only the settings write itself; rescheduling
// failures are logged, not surfaced.
func (s *Service) UpdateSettings(ctx context.Context, strategy retry.Strategy, employerID uuid.UUID, upd model.SettingsUpdate) (model.ScheduleSettings, error) {
	cur, err := s.repo.GetByEmployerID(ctx, employerID)
	if errors.Is(err, settingsrepo.ErrSettingsNotFound) {
		cur = defaultSettings(employerID)
	} else if err != nil {
		return model.ScheduleSettings{}, fmt.Errorf("get schedule settings: %w", err)
	}

	if upd.Timezone != nil {
		loc, lerr := time.LoadLocation(*upd.Timezone)
		if lerr != nil {
			return model.ScheduleSettings{}, fmt.Errorf("%w: %s", ErrInvalidTimezone, *upd.Timezone)
		}
		cur.Timezone = loc.String()
	}

	// A hand-edited row can hold a null weekly_times jsonb value.
	if cur.WeeklyTimes == nil {
		cur.WeeklyTimes = make(map[string]string, len(upd.WeeklyTimes))
	}

	for day, localTime := range upd.WeeklyTimes {
		cur.WeeklyTimes[day] = localTime
	}

	if err := s.repo.Upsert(ctx, cur); err != nil {
		return model.ScheduleSettings{}, fmt.Errorf("upsert schedule settings: %w", err)
	}

	s.cacheSettings(ctx, strategy, cur)

	s.rescheduler.Apply(ctx, cur, upd.WeeklyTimes, time.Now().UTC())

	return cur, nil
}

func (s *Service) cacheSettings(ctx context.Context, strategy retry.Strategy, cur model.ScheduleSettings) {
	raw, err := json.Marshal(cur)
	if err != nil {
		return
	}

	if err := s.cache.SetWithRetry(ctx, strategy, settingsKey(cur.EmployerID), string(raw)); err != nil {
		zlog.Logger.Error().Err(err).Str("employer_id", cur.EmployerID.String()).Msg("failed to cache settings")
	}
}

func settingsKey(employerID uuid.UUID) string {
	return "settings:" + employerID.String()
}

func defaultSettings(employerID uuid.UUID) model.ScheduleSettings {
	week := make(map[string]string, len(model.WeekdayNames))
	for _, day := range model.WeekdayNames {
		week[day] = ""
	}

	return model.ScheduleSettings{
		EmployerID:  employerID,
		Timezone:    DefaultTimezone,
		WeeklyTimes: week,
	}
}
