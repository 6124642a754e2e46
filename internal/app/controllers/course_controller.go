package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okandemir/profwhere/internal/app/models/dto"
	"github.com/okandemir/profwhere/internal/app/services"
)

// CourseController handles course section lookups
type CourseController struct {
	scheduleService services.ScheduleService
}

// NewCourseController creates a new course controller
func NewCourseController(scheduleService services.ScheduleService) *CourseController {
	return &CourseController{
		scheduleService: scheduleService,
	}
}

// GetAllCourses lists every merged course section
// @Summary List course sections
// @Description All merged course sections keyed by "CODE_SECTION"
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=map[string]models.Section} "Courses retrieved"
// @Failure 503 {object} dto.ErrorResponse "Schedule not loaded"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.scheduleService.Courses()
	if err != nil {
		handleScheduleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses, "Courses retrieved"))
}

// GetCourseByKey returns one merged course section
// @Summary Get course section
// @Description One merged course section by its "CODE_SECTION" key
// @Tags courses
// @Produce json
// @Param key path string true "Course section key, e.g. 1234_L1"
// @Success 200 {object} dto.APIResponse{data=models.Section} "Course retrieved"
// @Failure 404 {object} dto.ErrorResponse "Course section not found"
// @Router /courses/{key} [get]
func (c *CourseController) GetCourseByKey(ctx *gin.Context) {
	key := ctx.Param("key")

	course, err := c.scheduleService.CourseByKey(key)
	if err != nil {
		handleScheduleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course, "Course retrieved"))
}
