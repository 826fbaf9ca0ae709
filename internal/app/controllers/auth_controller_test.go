package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/senati/mobile-backend/internal/app/models/dto"
)

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	controller := NewAuthController(&fakeAuthService{}, zerolog.Nop())
	router := gin.New()
	router.POST("/api/auth/login", controller.Login)
	return router
}

func TestLoginEndpoint_Success(t *testing.T) {
	router := newAuthTestRouter()

	body := `{"student_id": "001234567", "password": "password123"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "signed-token", response.AccessToken)
	assert.Equal(t, "bearer", response.TokenType)
	assert.Equal(t, "001234567", response.StudentID)
	assert.Equal(t, "Juan Carlos Flores García", response.StudentName)
}

func TestLoginEndpoint_InvalidCredentials(t *testing.T) {
	router := newAuthTestRouter()

	body := `{"student_id": "001234567", "password": "nope"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var response dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Equal(t, dto.ErrorCodeInvalidCredentials, response.Error.Code)
}

func TestLoginEndpoint_MissingFields(t *testing.T) {
	router := newAuthTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"student_id": "001234567"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpoint_MalformedJSON(t *testing.T) {
	router := newAuthTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
