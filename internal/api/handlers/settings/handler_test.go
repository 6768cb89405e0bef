package settings

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	"github.com/timetrackly/notifier/internal/api/dto"
	"github.com/timetrackly/notifier/internal/config"
	mocks "github.com/timetrackly/notifier/internal/mocks/api/handlers/settings"
	"github.com/timetrackly/notifier/internal/model"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MocksettingsService, *config.Config) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := mocks.NewMocksettingsService(ctrl)
	cfg := &config.Config{Retry: retry.Strategy{}}
	handler := NewHandler(mockService, cfg)

	return handler, mockService, cfg
}

func putSchedule(t *testing.T, employerID string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	bodyBytes, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPut, "/api/employers/"+employerID+"/schedule", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: employerID}}

	return c, w
}

func TestHandler_Update_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	employerID := uuid.New()
	reqBody := dto.UpdateScheduleRequest{
		WeeklyTimes: map[string]string{"monday": "10:00", "tuesday": ""},
	}

	c, w := putSchedule(t, employerID.String(), reqBody)

	mockService.EXPECT().
		UpdateSettings(gomock.Any(), cfg.Retry, employerID, model.SettingsUpdate{
			WeeklyTimes: map[string]string{"monday": "10:00", "tuesday": ""},
		}).
		Return(model.ScheduleSettings{EmployerID: employerID}, nil)

	handler.Update(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Update_UnknownWeekday(t *testing.T) {
	handler, _, _ := setupHandler(t)

	reqBody := dto.UpdateScheduleRequest{
		WeeklyTimes: map[string]string{"someday": "10:00"},
	}

	c, w := putSchedule(t, uuid.New().String(), reqBody)

	handler.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Update_MalformedTime(t *testing.T) {
	handler, _, _ := setupHandler(t)

	reqBody := dto.UpdateScheduleRequest{
		WeeklyTimes: map[string]string{"monday": "25:99"},
	}

	c, w := putSchedule(t, uuid.New().String(), reqBody)

	handler.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Update_EmptyUpdate(t *testing.T) {
	handler, _, _ := setupHandler(t)

	c, w := putSchedule(t, uuid.New().String(), dto.UpdateScheduleRequest{})

	handler.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Update_InvalidEmployerID(t *testing.T) {
	handler, _, _ := setupHandler(t)

	c, w := putSchedule(t, "nope", dto.UpdateScheduleRequest{
		WeeklyTimes: map[string]string{"monday": "10:00"},
	})

	handler.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Get_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	employerID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/employers/"+employerID.String()+"/schedule", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: employerID.String()}}

	mockService.EXPECT().
		GetSettings(gomock.Any(), cfg.Retry, employerID).
		Return(model.ScheduleSettings{EmployerID: employerID, Timezone: "Asia/Kolkata"}, nil)

	handler.Get(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}
