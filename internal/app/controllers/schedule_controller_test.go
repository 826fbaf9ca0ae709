package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/senati/mobile-backend/internal/app/models/dto"
)

func newScheduleTestRouter(caller string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	controller := NewScheduleController(&fakeScheduleService{}, zerolog.Nop())
	router := gin.New()
	router.GET("/api/schedule/:studentId", asStudent(caller), controller.GetSchedule)
	return router
}

func TestGetScheduleEndpoint_Success(t *testing.T) {
	router := newScheduleTestRouter("001234567")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/schedule/001234567?schedule_date=2024-01-28", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "2024-01-28", response.Date)
	require.Len(t, response.Entries, 1)
	assert.Equal(t, "07:00", response.Entries[0].StartTime)
	assert.Equal(t, "SEMINARIO COMPLEMENT PRÁCT I", response.Entries[0].CourseName)
}

func TestGetScheduleEndpoint_EmptyDay(t *testing.T) {
	router := newScheduleTestRouter("001234567")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/schedule/001234567?schedule_date=2024-02-01", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "2024-02-01", response.Date)
	assert.NotNil(t, response.Entries)
	assert.Empty(t, response.Entries)
}

func TestGetScheduleEndpoint_MissingDate(t *testing.T) {
	router := newScheduleTestRouter("001234567")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/schedule/001234567", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var response dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, dto.ErrorCodeValidationFailed, response.Error.Code)
}

func TestGetScheduleEndpoint_MalformedDate(t *testing.T) {
	router := newScheduleTestRouter("001234567")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/schedule/001234567?schedule_date=28-01-2024", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetScheduleEndpoint_Forbidden(t *testing.T) {
	router := newScheduleTestRouter("007777777")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/schedule/001234567?schedule_date=2024-01-28", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
