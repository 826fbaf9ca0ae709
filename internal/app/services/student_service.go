package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/senati/mobile-backend/internal/app/models/dto"
	"github.com/senati/mobile-backend/internal/app/repositories"
	"github.com/senati/mobile-backend/internal/pkg/apperrors"
)

// StudentService handles student profile lookups
type StudentService interface {
	GetPersonalData(ctx context.Context, studentID, callerID string) (*dto.PersonalDataResponse, error)
	GetCareerData(ctx context.Context, studentID, callerID string) (*dto.CareerDataResponse, error)
}

type studentService struct {
	studentRepo      repositories.IStudentRepository
	personalDataRepo repositories.IPersonalDataRepository
	careerDataRepo   repositories.ICareerDataRepository
	logger           zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo repositories.IStudentRepository,
	personalDataRepo repositories.IPersonalDataRepository,
	careerDataRepo repositories.ICareerDataRepository,
	logger zerolog.Logger,
) StudentService {
	return &studentService{
		studentRepo:      studentRepo,
		personalDataRepo: personalDataRepo,
		careerDataRepo:   careerDataRepo,
		logger:           logger,
	}
}

// GetPersonalData returns the contact record joined with identity fields.
// Callers may only read their own record, regardless of whether the target
// exists.
func (s *studentService) GetPersonalData(ctx context.Context, studentID, callerID string) (*dto.PersonalDataResponse, error) {
	if callerID != studentID {
		s.logger.Warn().Str("callerID", callerID).Str("studentID", studentID).Msg("Cross-student personal data access denied")
		return nil, apperrors.NewForbiddenError("students may only read their own personal data")
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	personalData, err := s.personalDataRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return &dto.PersonalDataResponse{
		FirstName: student.FirstName,
		LastName:  student.LastName,
		DNI:       student.DNI,
		StudentID: student.ID,
		Email:     personalData.Email,
		Phone:     personalData.Phone,
		Address:   personalData.Address,
	}, nil
}

// GetCareerData returns the academic program record for a student.
func (s *studentService) GetCareerData(ctx context.Context, studentID, callerID string) (*dto.CareerDataResponse, error) {
	if callerID != studentID {
		s.logger.Warn().Str("callerID", callerID).Str("studentID", studentID).Msg("Cross-student career data access denied")
		return nil, apperrors.NewForbiddenError("students may only read their own career data")
	}

	careerData, err := s.careerDataRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return &dto.CareerDataResponse{
		Level:   careerData.Level,
		Program: careerData.Program,
		School:  careerData.School,
		Campus:  careerData.Campus,
	}, nil
}
