package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/senati/mobile-backend/internal/app/controllers"
	"github.com/senati/mobile-backend/internal/app/models/dto"
	"github.com/senati/mobile-backend/internal/middleware"
)

// API metadata returned by the root endpoint.
const (
	APIName    = "SENATI Backend API"
	APIVersion = "1.0.0"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	scheduleController *controllers.ScheduleController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public service endpoints ---
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: APIName, Version: APIVersion})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy"})
	})

	api := router.Group("/api")

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	students := api.Group("/students")
	students.Use(authMiddleware.JWTAuth())
	{
		students.GET("/:studentId/personal-data", studentController.GetPersonalData)
		students.GET("/:studentId/career-data", studentController.GetCareerData)
	}

	schedule := api.Group("/schedule")
	schedule.Use(authMiddleware.JWTAuth())
	{
		schedule.GET("/:studentId", scheduleController.GetSchedule)
	}
}
