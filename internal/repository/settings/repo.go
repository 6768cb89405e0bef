package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/timetrackly/notifier/internal/model"
)

var ErrSettingsNotFound = errors.New("schedule settings not found")

// Repository provides methods to interact with the employer_schedule_settings table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new settings repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetByEmployerID retrieves an employer's schedule settings.
func (r *Repository) GetByEmployerID(ctx context.Context, employerID uuid.UUID) (model.ScheduleSettings, error) {
	query := `
		SELECT employer_id, timezone, weekly_times, created_at, updated_at
		FROM employer_schedule_settings
		WHERE employer_id = $1;
    `

	var (
		s       model.ScheduleSettings
		rawWeek []byte
	)

	err := r.db.QueryRowContext(ctx, query, employerID).Scan(
		&s.EmployerID, &s.Timezone, &rawWeek, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ScheduleSettings{}, ErrSettingsNotFound
		}

		return model.ScheduleSettings{}, fmt.Errorf("failed to get schedule settings: %w", err)
	}

	if err := json.Unmarshal(rawWeek, &s.WeeklyTimes); err != nil {
		return model.ScheduleSettings{}, fmt.Errorf("failed to decode weekly times: %w", err)
	}

	return s, nil
}

// Upsert inserts or replaces an employer's schedule settings.
func (r *Repository) Upsert(ctx context.Context, s model.ScheduleSettings) error {
	rawWeek, err := json.Marshal(s.WeeklyTimes)
	if err != nil {
		return fmt.Errorf("failed to encode weekly times: %w", err)
	}

	query := `
		INSERT INTO employer_schedule_settings (employer_id, timezone, weekly_times)
		VALUES ($1, $2, $3)
		ON CONFLICT (employer_id) DO UPDATE SET
		    timezone = excluded.timezone,
		    weekly_times = excluded.weekly_times,
		    updated_at = now();
    `

	if _, err := r.db.ExecContext(ctx, query, s.EmployerID, s.Timezone, rawWeek); err != nil {
		return fmt.Errorf("failed to upsert schedule settings: %w", err)
	}

	return nil
}
