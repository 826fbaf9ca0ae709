package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/senati/mobile-backend/internal/app/models/dto"
	"github.com/senati/mobile-backend/internal/app/repositories"
	"github.com/senati/mobile-backend/internal/pkg/apperrors"
	"github.com/senati/mobile-backend/internal/pkg/auth"
)

// AuthService handles authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	studentRepo repositories.IStudentRepository
	hasher      auth.PasswordHasher
	signer      auth.TokenSigner
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	studentRepo repositories.IStudentRepository,
	hasher auth.PasswordHasher,
	signer auth.TokenSigner,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		studentRepo: studentRepo,
		hasher:      hasher,
		signer:      signer,
		logger:      logger,
	}
}

// Login verifies a student's credentials and issues a signed access token.
// An unknown identifier and a wrong password both map to ErrInvalidCredentials
// so the response does not reveal which part failed.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			s.logger.Warn().Str("studentID", req.StudentID).Msg("Login attempt for unknown student")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up student: %w", err)
	}

	if !s.hasher.Verify(student.PasswordHash, req.Password) {
		s.logger.Warn().Str("studentID", req.StudentID).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.signer.GenerateToken(student.ID)
	if err != nil {
		return nil, fmt.Errorf("error generating access token: %w", err)
	}

	s.logger.Info().Str("studentID", student.ID).Time("expiresAt", expiresAt).Msg("Student logged in")

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		StudentID:   student.ID,
		StudentName: student.FullName(),
	}, nil
}
