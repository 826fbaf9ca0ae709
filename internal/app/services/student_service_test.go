package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/senati/mobile-backend/internal/app/models"
	"github.com/senati/mobile-backend/internal/pkg/apperrors"
	"github.com/senati/mobile-backend/internal/pkg/helpers"
)

func newStudentServiceUnderTest() StudentService {
	studentRepo := &fakeStudentRepo{students: map[string]*models.Student{
		"001234567": {
			ID:        "001234567",
			FirstName: "Juan Carlos",
			LastName:  "Flores García",
			DNI:       "12345678",
		},
		"007777777": {
			ID:        "007777777",
			FirstName: "Rosa",
			LastName:  "Quispe",
			DNI:       "87654321",
		},
	}}

	personalDataRepo := &fakePersonalDataRepo{data: map[string]*models.PersonalData{
		"001234567": {
			ID:        1,
			StudentID: "001234567",
			Email:     "1234567@senati.pe",
			Phone:     helpers.StringPtr("987 654 321"),
			Address:   helpers.StringPtr("Avenida Horizonte Azul"),
		},
	}}

	careerDataRepo := &fakeCareerDataRepo{data: map[string]*models.CareerData{
		"001234567": {
			ID:        1,
			StudentID: "001234567",
			Level:     "Profesional Técnico",
			Program:   "Desarrollo de Software",
			School:    "Tecnologías de la información",
			Campus:    "IND-ETI",
		},
	}}

	return NewStudentService(studentRepo, personalDataRepo, careerDataRepo, zerolog.Nop())
}

func TestGetPersonalData_Success(t *testing.T) {
	service := newStudentServiceUnderTest()

	response, err := service.GetPersonalData(context.Background(), "001234567", "001234567")
	require.NoError(t, err)

	assert.Equal(t, "Juan Carlos", response.FirstName)
	assert.Equal(t, "Flores García", response.LastName)
	assert.Equal(t, "12345678", response.DNI)
	assert.Equal(t, "001234567", response.StudentID)
	assert.Equal(t, "1234567@senati.pe", response.Email)
	require.NotNil(t, response.Phone)
	assert.Equal(t, "987 654 321", *response.Phone)
	require.NotNil(t, response.Address)
	assert.Equal(t, "Avenida Horizonte Azul", *response.Address)
}

func TestGetPersonalData_Forbidden(t *testing.T) {
	service := newStudentServiceUnderTest()

	// A caller may never read another student's record, even an existing one.
	response, err := service.GetPersonalData(context.Background(), "007777777", "001234567")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Nil(t, response)
}

func TestGetPersonalData_StudentNotFound(t *testing.T) {
	service := newStudentServiceUnderTest()

	_, err := service.GetPersonalData(context.Background(), "999999999", "999999999")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestGetPersonalData_DataNotFound(t *testing.T) {
	service := newStudentServiceUnderTest()

	// Student 007777777 exists but has no personal data row.
	_, err := service.GetPersonalData(context.Background(), "007777777", "007777777")
	assert.ErrorIs(t, err, apperrors.ErrPersonalDataNotFound)
}

func TestGetCareerData_Success(t *testing.T) {
	service := newStudentServiceUnderTest()

	response, err := service.GetCareerData(context.Background(), "001234567", "001234567")
	require.NoError(t, err)

	assert.Equal(t, "Profesional Técnico", response.Level)
	assert.Equal(t, "Desarrollo de Software", response.Program)
	assert.Equal(t, "Tecnologías de la información", response.School)
	assert.Equal(t, "IND-ETI", response.Campus)
}

func TestGetCareerData_Forbidden(t *testing.T) {
	service := newStudentServiceUnderTest()

	response, err := service.GetCareerData(context.Background(), "007777777", "001234567")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Nil(t, response)
}

func TestGetCareerData_NotFound(t *testing.T) {
	service := newStudentServiceUnderTest()

	_, err := service.GetCareerData(context.Background(), "007777777", "007777777")
	assert.ErrorIs(t, err, apperrors.ErrCareerDataNotFound)
}
