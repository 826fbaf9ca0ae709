package controllers

import (
	"context"
	"time"

	"github.com/senati/mobile-backend/internal/app/models/dto"
	"github.com/senati/mobile-backend/internal/pkg/apperrors"
	"github.com/senati/mobile-backend/internal/pkg/helpers"
)

type fakeAuthService struct{}

func (s *fakeAuthService) Login(_ context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.StudentID != "001234567" || req.Password != "password123" {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &dto.LoginResponse{
		AccessToken: "signed-token",
		TokenType:   "bearer",
		StudentID:   "001234567",
		StudentName: "Juan Carlos Flores García",
	}, nil
}

type fakeStudentService struct{}

func (s *fakeStudentService) GetPersonalData(_ context.Context, studentID, callerID string) (*dto.PersonalDataResponse, error) {
	if studentID != callerID {
		return nil, apperrors.ErrPermissionDenied
	}
	if studentID != "001234567" {
		return nil, apperrors.ErrStudentNotFound
	}
	return &dto.PersonalDataResponse{
		FirstName: "Juan Carlos",
		LastName:  "Flores García",
		DNI:       "12345678",
		StudentID: "001234567",
		Email:     "1234567@senati.pe",
		Phone:     helpers.StringPtr("987 654 321"),
		Address:   helpers.StringPtr("Avenida Horizonte Azul"),
	}, nil
}

func (s *fakeStudentService) GetCareerData(_ context.Context, studentID, callerID string) (*dto.CareerDataResponse, error) {
	if studentID != callerID {
		return nil, apperrors.ErrPermissionDenied
	}
	if studentID != "001234567" {
		return nil, apperrors.ErrCareerDataNotFound
	}
	return &dto.CareerDataResponse{
		Level:   "Profesional Técnico",
		Program: "Desarrollo de Software",
		School:  "Tecnologías de la información",
		Campus:  "IND-ETI",
	}, nil
}

type fakeScheduleService struct{}

func (s *fakeScheduleService) GetDailySchedule(_ context.Context, studentID, callerID string, date time.Time) (*dto.ScheduleResponse, error) {
	if studentID != callerID {
		return nil, apperrors.ErrPermissionDenied
	}

	response := &dto.ScheduleResponse{
		Date:    date.Format("2006-01-02"),
		Entries: make([]dto.ScheduleEntryResponse, 0),
	}
	if date.Equal(time.Date(2024, 1, 28, 0, 0, 0, 0, time.UTC)) {
		response.Entries = append(response.Entries, dto.ScheduleEntryResponse{
			ID:             1,
			Date:           "2024-01-28",
			StartTime:      "07:00",
			EndTime:        "10:00",
			CourseName:     "SEMINARIO COMPLEMENT PRÁCT I",
			InstructorName: "GARCIA FORTUNA, MOISES EDUARDO",
			Location:       "IND - TORRE B 60TB - 200",
		})
	}
	return response, nil
}
