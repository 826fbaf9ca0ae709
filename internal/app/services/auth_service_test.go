package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/senati/mobile-backend/internal/app/models"
	"github.com/senati/mobile-backend/internal/app/models/dto"
	"github.com/senati/mobile-backend/internal/pkg/apperrors"
	"github.com/senati/mobile-backend/internal/pkg/auth"
)

func newAuthServiceUnderTest(t *testing.T) (AuthService, *auth.JWTService) {
	t.Helper()

	hasher := auth.NewBcryptHasher()
	hash, err := hasher.Hash("password123")
	require.NoError(t, err)

	studentRepo := &fakeStudentRepo{students: map[string]*models.Student{
		"001234567": {
			ID:           "001234567",
			PasswordHash: hash,
			FirstName:    "Juan Carlos",
			LastName:     "Flores García",
			DNI:          "12345678",
		},
	}}

	signer := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "senati.test",
	})

	return NewAuthService(studentRepo, hasher, signer, zerolog.Nop()), signer
}

func TestLogin_Success(t *testing.T) {
	service, signer := newAuthServiceUnderTest(t)

	response, err := service.Login(context.Background(), &dto.LoginRequest{
		StudentID: "001234567",
		Password:  "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, "bearer", response.TokenType)
	assert.Equal(t, "001234567", response.StudentID)
	assert.Equal(t, "Juan Carlos Flores García", response.StudentName)

	// The token subject must round-trip to the login identifier.
	claims, err := signer.ValidateToken(response.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "001234567", claims.StudentID())
}

func TestLogin_WrongPassword(t *testing.T) {
	service, _ := newAuthServiceUnderTest(t)

	response, err := service.Login(context.Background(), &dto.LoginRequest{
		StudentID: "001234567",
		Password:  "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Nil(t, response)
}

func TestLogin_UnknownStudent(t *testing.T) {
	service, _ := newAuthServiceUnderTest(t)

	response, err := service.Login(context.Background(), &dto.LoginRequest{
		StudentID: "999999999",
		Password:  "password123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Nil(t, response)
}
