package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/senati/mobile-backend/internal/app/models/dto"
	"github.com/senati/mobile-backend/internal/app/services"
	"github.com/senati/mobile-backend/internal/middleware"
)

// ScheduleController handles schedule operations
type ScheduleController struct {
	scheduleService services.ScheduleService
	logger          zerolog.Logger
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService services.ScheduleService, logger zerolog.Logger) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
		logger:          logger,
	}
}

// GetSchedule retrieves a student's schedule for a specific date
// @Summary Get daily schedule
// @Description Retrieves the authenticated student's class schedule for an exact date, ordered by start time
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param schedule_date query string true "Schedule date (YYYY-MM-DD)"
// @Success 200 {object} dto.ScheduleResponse "Schedule retrieved successfully (entries may be empty)"
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed schedule_date"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not the caller's schedule"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule/{id} [get]
func (c *ScheduleController) GetSchedule(ctx *gin.Context) {
	caller, ok := callerID(ctx)
	if !ok {
		abortUnauthenticated(ctx)
		return
	}

	dateParam := ctx.Query("schedule_date")
	if dateParam == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "schedule_date query parameter is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	date, err := time.Parse(services.DateLayout, dateParam)
	if err != nil {
		c.logger.Warn().Err(err).Str("scheduleDate", dateParam).Msg("Invalid schedule date")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "schedule_date must be in YYYY-MM-DD format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	studentID := ctx.Param("studentId")
	response, err := c.scheduleService.GetDailySchedule(ctx.Request.Context(), studentID, caller, date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
