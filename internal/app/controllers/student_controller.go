package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/senati/mobile-backend/internal/app/models/dto"
	"github.com/senati/mobile-backend/internal/app/services"
	"github.com/senati/mobile-backend/internal/middleware"
)

// StudentController handles student profile operations
type StudentController struct {
	studentService services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// callerID returns the authenticated student identifier from the context.
func callerID(ctx *gin.Context) (string, bool) {
	value, exists := ctx.Get(middleware.ContextStudentID)
	if !exists {
		return "", false
	}
	id, ok := value.(string)
	return id, ok
}

// abortUnauthenticated writes the 401 body used when the auth context is missing.
func abortUnauthenticated(ctx *gin.Context) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
	ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}

// GetPersonalData retrieves a student's personal data
// @Summary Get personal data
// @Description Retrieves the contact and identity data of the authenticated student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.PersonalDataResponse "Personal data retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not the caller's record"
// @Failure 404 {object} dto.ErrorResponse "Student or personal data not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/personal-data [get]
func (c *StudentController) GetPersonalData(ctx *gin.Context) {
	caller, ok := callerID(ctx)
	if !ok {
		abortUnauthenticated(ctx)
		return
	}

	studentID := ctx.Param("studentId")
	response, err := c.studentService.GetPersonalData(ctx.Request.Context(), studentID, caller)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetCareerData retrieves a student's career data
// @Summary Get career data
// @Description Retrieves the academic program data of the authenticated student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.CareerDataResponse "Career data retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not the caller's record"
// @Failure 404 {object} dto.ErrorResponse "Career data not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/career-data [get]
func (c *StudentController) GetCareerData(ctx *gin.Context) {
	caller, ok := callerID(ctx)
	if !ok {
		abortUnauthenticated(ctx)
		return
	}

	studentID := ctx.Param("studentId")
	response, err := c.studentService.GetCareerData(ctx.Request.Context(), studentID, caller)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
