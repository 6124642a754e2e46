package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/okandemir/profwhere/internal/app/controllers"
	"github.com/okandemir/profwhere/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	professorController *controllers.ProfessorController,
	courseController *controllers.CourseController,
	systemController *controllers.SystemController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public professor routes ---
	professors := v1.Group("/professors")
	{
		professors.GET("/search", professorController.SearchProfessors)
		professors.GET("/:name", professorController.GetProfessorInfo)
	}

	// --- Public course routes ---
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:key", courseController.GetCourseByKey)
	}

	// --- Admin routes ---
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.JWTAuth())
	{
		admin.POST("/reload", systemController.ReloadTimetable)
	}

	// Health check endpoint (public)
	v1.GET("/health", systemController.HealthCheck)
}
