package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/senati/mobile-backend/internal/app/models"
	"github.com/senati/mobile-backend/internal/pkg/apperrors"
	"github.com/senati/mobile-backend/internal/pkg/auth"
)

type stubStudentRepo struct {
	students map[string]*models.Student
}

func (r *stubStudentRepo) GetByID(_ context.Context, id string) (*models.Student, error) {
	student, ok := r.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (r *stubStudentRepo) HasAny(_ context.Context) (bool, error) {
	return len(r.students) > 0, nil
}

func newAuthTestRouter(signer *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := &stubStudentRepo{students: map[string]*models.Student{
		"001234567": {ID: "001234567", FirstName: "Juan Carlos", LastName: "Flores García"},
	}}

	router := gin.New()
	router.Use(NewAuthMiddleware(signer, repo).JWTAuth())
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"student_id": c.GetString(ContextStudentID)})
	})
	return router
}

func newSigner(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "senati.test",
	})
}

func TestJWTAuth_ValidToken(t *testing.T) {
	signer := newSigner(time.Hour)
	router := newAuthTestRouter(signer)

	token, _, err := signer.GenerateToken("001234567")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "001234567")
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router := newAuthTestRouter(newSigner(time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	router := newAuthTestRouter(newSigner(time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	signer := newSigner(-time.Minute)
	router := newAuthTestRouter(signer)

	token, _, err := signer.GenerateToken("001234567")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}

func TestJWTAuth_UnknownSubject(t *testing.T) {
	signer := newSigner(time.Hour)
	router := newAuthTestRouter(signer)

	// Token is valid but the student no longer exists.
	token, _, err := signer.GenerateToken("999999999")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_TamperedToken(t *testing.T) {
	signer := newSigner(time.Hour)
	router := newAuthTestRouter(signer)

	other := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "different-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "senati.test",
	})
	token, _, err := other.GenerateToken("001234567")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
