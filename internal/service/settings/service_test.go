package settings

import (
	"context"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/timetrackly/notifier/internal/mocks/service/settings"
	"github.com/timetrackly/notifier/internal/model"
	settingsrepo "github.com/timetrackly/notifier/internal/repository/settings"
)

func setupService(t *testing.T) (*Service, *mocks.MocksettingsRepository, *mocks.Mockrescheduler, *mocks.Mockcache) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repoMock := mocks.NewMocksettingsRepository(ctrl)
	reschedMock := mocks.NewMockrescheduler(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)

	return NewService(repoMock, reschedMock, cacheMock), repoMock, reschedMock, cacheMock
}

func TestService_UpdateSettings_MergesAndReschedules(t *testing.T) {
	svc, repoMock, reschedMock, cacheMock := setupService(t)

	employerID := uuid.New()
	strategy := retry.Strategy{}

	existing := model.ScheduleSettings{
		EmployerID: employerID,
		Timezone:   "Asia/Kolkata",
		WeeklyTimes: map[string]string{
			"monday":  "09:00",
			"tuesday": "09:00",
		},
	}

	repoMock.EXPECT().GetByEmployerID(gomock.Any(), employerID).Return(existing, nil)

	changed := map[string]string{"monday": "10:00"}

	repoMock.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s model.ScheduleSettings) error {
			assert.Equal(t, "10:00", s.WeeklyTimes["monday"])
			assert.Equal(t, "09:00", s.WeeklyTimes["tuesday"], "untouched day keeps its time")
			assert.Equal(t, "Asia/Kolkata", s.Timezone)
			return nil
		},
	)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, "settings:"+employerID.String(), gomock.Any()).Return(nil)
	reschedMock.EXPECT().Apply(gomock.Any(), gomock.Any(), changed, gomock.Any())

	got, err := svc.UpdateSettings(context.Background(), strategy, employerID, model.SettingsUpdate{WeeklyTimes: changed})
	require.NoError(t, err)
	assert.Equal(t, "10:00", got.WeeklyTimes["monday"])
}

func TestService_UpdateSettings_FirstUpdateStartsFromDefaults(t *testing.T) {
	svc, repoMock, reschedMock, cacheMock := setupService(t)

	employerID := uuid.New()
	strategy := retry.Strategy{}
	tz := "Europe/Moscow"

	repoMock.EXPECT().GetByEmployerID(gomock.Any(), employerID).
		Return(model.ScheduleSettings{}, settingsrepo.ErrSettingsNotFound)

	repoMock.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s model.ScheduleSettings) error {
			assert.Equal(t, tz, s.Timezone)
			assert.Equal(t, "18:00", s.WeeklyTimes["friday"])
			assert.Equal(t, "", s.WeeklyTimes["monday"], "unmentioned days stay disabled")
			return nil
		},
	)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, gomock.Any(), gomock.Any()).Return(nil)
	reschedMock.EXPECT().Apply(gomock.Any(), gomock.Any(), map[string]string{"friday": "18:00"}, gomock.Any())

	_, err := svc.UpdateSettings(context.Background(), strategy, employerID, model.SettingsUpdate{
		Timezone:    &tz,
		WeeklyTimes: map[string]string{"friday": "18:00"},
	})
	require.NoError(t, err)
}

func TestService_UpdateSettings_NilWeeklyTimesRow(t *testing.T) {
	svc, repoMock, reschedMock, cacheMock := setupService(t)

	employerID := uuid.New()
	strategy := retry.Strategy{}

	// A row whose weekly_times jsonb is null comes back with a nil map.
	repoMock.EXPECT().GetByEmployerID(gomock.Any(), employerID).Return(model.ScheduleSettings{
		EmployerID: employerID,
		Timezone:   "UTC",
	}, nil)

	repoMock.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s model.ScheduleSettings) error {
			assert.Equal(t, "09:00", s.WeeklyTimes["monday"])
			return nil
		},
	)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, gomock.Any(), gomock.Any()).Return(nil)
	reschedMock.EXPECT().Apply(gomock.Any(), gomock.Any(), map[string]string{"monday": "09:00"}, gomock.Any())

	got, err := svc.UpdateSettings(context.Background(), strategy, employerID, model.SettingsUpdate{
		WeeklyTimes: map[string]string{"monday": "09:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, "09:00", got.WeeklyTimes["monday"])
}

func TestService_UpdateSettings_InvalidTimezone(t *testing.T) {
	svc, repoMock, _, _ := setupService(t)

	employerID := uuid.New()
	tz := "Nowhere/Nope"

	repoMock.EXPECT().GetByEmployerID(gomock.Any(), employerID).
		Return(model.ScheduleSettings{}, settingsrepo.ErrSettingsNotFound)

	_, err := svc.UpdateSettings(context.Background(), retry.Strategy{}, employerID, model.SettingsUpdate{Timezone: &tz})
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestService_GetSettings_DefaultsWhenMissing(t *testing.T) {
	svc, repoMock, _, cacheMock := setupService(t)

	employerID := uuid.New()
	strategy := retry.Strategy{}

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, gomock.Any()).Return("", redis.Nil)
	repoMock.EXPECT().GetByEmployerID(gomock.Any(), employerID).
		Return(model.ScheduleSettings{}, settingsrepo.ErrSettingsNotFound)

	got, err := svc.GetSettings(context.Background(), strategy, employerID)
	require.NoError(t, err)
	assert.Equal(t, DefaultTimezone, got.Timezone)
	assert.Len(t, got.WeeklyTimes, len(model.WeekdayNames))
}

func TestService_GetSettings_CacheHit(t *testing.T) {
	svc, _, _, cacheMock := setupService(t)

	employerID := uuid.New()
	strategy := retry.Strategy{}

	cached := `{"employer_id":"` + employerID.String() + `","timezone":"Asia/Kolkata","weekly_times":{"monday":"09:00"}}`
	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, "settings:"+employerID.String()).Return(cached, nil)

	got, err := svc.GetSettings(context.Background(), strategy, employerID)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", got.Timezone)
	assert.Equal(t, "09:00", got.WeeklyTimes["monday"])
}
