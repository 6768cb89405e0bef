package settings

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/timetrackly/notifier/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestGetByEmployerID(t *testing.T) {
	repo, mock := setupMockDB(t)

	employerID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT employer_id, timezone, weekly_times, created_at, updated_at
		FROM employer_schedule_settings
		WHERE employer_id = $1;
    `)).
		WithArgs(employerID).
		WillReturnRows(sqlmock.NewRows([]string{"employer_id", "timezone", "weekly_times", "created_at", "updated_at"}).
			AddRow(employerID.String(), "Asia/Kolkata", []byte(`{"monday":"09:00","tuesday":""}`), now, now))

	s, err := repo.GetByEmployerID(context.Background(), employerID)
	require.NoError(t, err)
	assert.Equal(t, employerID, s.EmployerID)
	assert.Equal(t, "Asia/Kolkata", s.Timezone)
	assert.Equal(t, "09:00", s.WeeklyTimes["monday"])
	assert.Equal(t, "", s.WeeklyTimes["tuesday"])
}

func TestGetByEmployerID_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	employerID := uuid.New()

	mock.ExpectQuery("SELECT employer_id").
		WithArgs(employerID).
		WillReturnRows(sqlmock.NewRows([]string{"employer_id", "timezone", "weekly_times", "created_at", "updated_at"}))

	_, err := repo.GetByEmployerID(context.Background(), employerID)
	assert.ErrorIs(t, err, ErrSettingsNotFound)
}

func TestUpsert(t *testing.T) {
	repo, mock := setupMockDB(t)

	s := model.ScheduleSettings{
		EmployerID: uuid.New(),
		Timezone:   "Asia/Kolkata",
		WeeklyTimes: map[string]string{
			"monday": "09:00",
		},
	}

	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO employer_schedule_settings (employer_id, timezone, weekly_times)
		VALUES ($1, $2, $3)
		ON CONFLICT (employer_id) DO UPDATE SET
		    timezone = excluded.timezone,
		    weekly_times = excluded.weekly_times,
		    updated_at = now();
    `)).
		WithArgs(s.EmployerID, s.Timezone, []byte(`{"monday":"09:00"}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Upsert(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}
