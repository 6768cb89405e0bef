package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/timetrackly/notifier/internal/api/dto"
	"github.com/timetrackly/notifier/internal/api/respond"
	"github.com/timetrackly/notifier/internal/config"
	"github.com/timetrackly/notifier/internal/model"
	settingssvc "github.com/timetrackly/notifier/internal/service/settings"
)

var localTimeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/settings/mock.go -package=mocks
type settingsService interface {
	GetSettings(ctx context.Context, strategy retry.Strategy, employerID uuid.UUID) (model.ScheduleSettings, error)
	UpdateSettings(ctx context.Context, strategy retry.Strategy, employerID uuid.UUID, upd model.SettingsUpdate) (model.ScheduleSettings, error)
}

// Handler serves the employer schedule settings endpoints.
type Handler struct {
	service settingsService
	cfg     *config.Config
}

// NewHandler creates a new settings handler.
func NewHandler(s settingsService, cfg *config.Config) *Handler {
	return &Handler{service: s, cfg: cfg}
}

// Get handles GET requests for an employer's schedule settings.
func (h *Handler) Get(c *ginext.Context) {
	employerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid employer id"))
		return
	}

	s, err := h.service.GetSettings(c.Request.Context(), h.cfg.Retry, employerID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("employer_id", employerID.String()).Msg("failed to get schedule settings")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, s)
}

// Update handles PUT requests carrying a partial schedule change. The
// response reflects only the settings write; rescheduling of pending
// notifications happens synchronously but its failures are logged, not
// surfaced.
func (h *Handler) Update(c *ginext.Context) {
	employerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid employer id"))
		return
	}

	var req dto.UpdateScheduleRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := validateUpdate(req); err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	upd := model.SettingsUpdate{
		Timezone:    req.Timezone,
		WeeklyTimes: normalizeWeek(req.WeeklyTimes),
	}

	s, err := h.service.UpdateSettings(c.Request.Context(), h.cfg.Retry, employerID, upd)
	if err != nil {
		if errors.Is(err, settingssvc.ErrInvalidTimezone) {
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Str("employer_id", employerID.String()).Msg("failed to update schedule settings")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, s)
}

func validateUpdate(req dto.UpdateScheduleRequest) error {
	if req.Timezone == nil && len(req.WeeklyTimes) == 0 {
		return fmt.Errorf("empty update")
	}

	for day, localTime := range req.WeeklyTimes {
		if !isWeekday(day) {
			return fmt.Errorf("unknown weekday %q", day)
		}

		if localTime != "" && !localTimeRe.MatchString(localTime) {
			return fmt.Errorf("invalid time %q for %s, expected HH:MM or empty", localTime, day)
		}
	}

	return nil
}

func isWeekday(day string) bool {
	day = strings.ToLower(day)
	for _, name := range model.WeekdayNames {
		if name == day {
			return true
		}
	}
	return false
}

func normalizeWeek(week map[string]string) map[string]string {
	if len(week) == 0 {
		return nil
	}

	out := make(map[string]string, len(week))
	for day, localTime := range week {
		out[strings.ToLower(day)] = strings.TrimSpace(localTime)
	}
	return out
}
