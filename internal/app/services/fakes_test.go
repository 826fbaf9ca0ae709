package services

import (
	"context"
	"time"

	"github.com/senati/mobile-backend/internal/app/models"
	"github.com/senati/mobile-backend/internal/pkg/apperrors"
)

type fakeStudentRepo struct {
	students map[string]*models.Student
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id string) (*models.Student, error) {
	student, ok := r.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (r *fakeStudentRepo) HasAny(_ context.Context) (bool, error) {
	return len(r.students) > 0, nil
}

type fakePersonalDataRepo struct {
	data map[string]*models.PersonalData
}

func (r *fakePersonalDataRepo) GetByStudentID(_ context.Context, studentID string) (*models.PersonalData, error) {
	data, ok := r.data[studentID]
	if !ok {
		return nil, apperrors.ErrPersonalDataNotFound
	}
	return data, nil
}

type fakeCareerDataRepo struct {
	data map[string]*models.CareerData
}

func (r *fakeCareerDataRepo) GetByStudentID(_ context.Context, studentID string) (*models.CareerData, error) {
	data, ok := r.data[studentID]
	if !ok {
		return nil, apperrors.ErrCareerDataNotFound
	}
	return data, nil
}

type fakeScheduleRepo struct {
	entries map[string][]*models.ScheduleEntry
	calls   int
}

func (r *fakeScheduleRepo) GetByStudentAndDate(_ context.Context, studentID string, date time.Time) ([]*models.ScheduleEntry, error) {
	r.calls++
	result := make([]*models.ScheduleEntry, 0)
	for _, entry := range r.entries[studentID] {
		if entry.Date.Equal(date) {
			result = append(result, entry)
		}
	}
	return result, nil
}
