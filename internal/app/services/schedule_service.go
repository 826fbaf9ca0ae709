package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/senati/mobile-backend/internal/app/models/dto"
	"github.com/senati/mobile-backend/internal/app/repositories"
	"github.com/senati/mobile-backend/internal/pkg/apperrors"
)

// DateLayout is the wire format for schedule dates.
const DateLayout = "2006-01-02"

// ScheduleService handles dated schedule lookups
type ScheduleService interface {
	GetDailySchedule(ctx context.Context, studentID, callerID string, date time.Time) (*dto.ScheduleResponse, error)
}

type scheduleService struct {
	scheduleRepo repositories.IScheduleRepository
	logger       zerolog.Logger
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(scheduleRepo repositories.IScheduleRepository, logger zerolog.Logger) ScheduleService {
	return &scheduleService{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// GetDailySchedule returns all entries for the student on the exact date,
// ordered by start time. A day with no classes yields an empty entries list.
func (s *scheduleService) GetDailySchedule(ctx context.Context, studentID, callerID string, date time.Time) (*dto.ScheduleResponse, error) {
	if callerID != studentID {
		s.logger.Warn().Str("callerID", callerID).Str("studentID", studentID).Msg("Cross-student schedule access denied")
		return nil, apperrors.NewForbiddenError("students may only read their own schedule")
	}

	entries, err := s.scheduleRepo.GetByStudentAndDate(ctx, studentID, date)
	if err != nil {
		return nil, err
	}

	response := &dto.ScheduleResponse{
		Date:    date.Format(DateLayout),
		Entries: make([]dto.ScheduleEntryResponse, 0, len(entries)),
	}

	for _, entry := range entries {
		response.Entries = append(response.Entries, dto.ScheduleEntryResponse{
			ID:             entry.ID,
			Date:           entry.Date.Format(DateLayout),
			StartTime:      entry.StartTime,
			EndTime:        entry.EndTime,
			CourseName:     entry.CourseName,
			InstructorName: entry.InstructorName,
			Location:       entry.Location,
		})
	}

	return response, nil
}
