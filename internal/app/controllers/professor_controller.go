package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okandemir/profwhere/internal/app/models/dto"
	"github.com/okandemir/profwhere/internal/app/services"
	"github.com/okandemir/profwhere/internal/pkg/apperrors"
)

// ProfessorController handles professor lookup operations
type ProfessorController struct {
	scheduleService services.ScheduleService
}

// NewProfessorController creates a new professor controller
func NewProfessorController(scheduleService services.ScheduleService) *ProfessorController {
	return &ProfessorController{
		scheduleService: scheduleService,
	}
}

// handleScheduleError maps schedule lookup errors to HTTP responses
func handleScheduleError(ctx *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrProfessorNotFound) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Professor not found")
		errorDetail = errorDetail.WithDetails("The requested professor does not exist in the current timetable")
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return
	} else if errors.Is(err, apperrors.ErrCourseNotFound) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course section not found")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return
	} else if errors.Is(err, apperrors.ErrScheduleUnavailable) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeScheduleUnavailable, "Schedule not loaded yet")
		errorDetail = errorDetail.WithDetails("Run an ingest or wait for the snapshot to be restored")
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(errorDetail))
		return
	}

	errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An error occurred while processing your request")
	errorDetail = errorDetail.WithDetails(err.Error())
	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
}

// SearchProfessors ranks professor names against a query string
// @Summary Search professors
// @Description Fuzzy search over known professor names; empty query lists the first ten
// @Tags professors
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} dto.APIResponse{data=dto.SearchResponse} "Search completed"
// @Failure 503 {object} dto.ErrorResponse "Schedule not loaded"
// @Router /professors/search [get]
func (c *ProfessorController) SearchProfessors(ctx *gin.Context) {
	query := ctx.Query("q")

	results, err := c.scheduleService.Search(query)
	if err != nil {
		handleScheduleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SearchResponse{
		Query:   query,
		Results: results,
	}, "Search completed"))
}

// GetProfessorInfo reports where a professor is right now
// @Summary Get professor info
// @Description Current status, upcoming classes and today's schedule for one professor
// @Tags professors
// @Produce json
// @Param name path string true "Canonical professor name"
// @Param limit query int false "Maximum upcoming classes to return (default 3)"
// @Success 200 {object} dto.APIResponse{data=dto.ProfessorInfoResponse} "Professor info retrieved"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 503 {object} dto.ErrorResponse "Schedule not loaded"
// @Router /professors/{name} [get]
func (c *ProfessorController) GetProfessorInfo(ctx *gin.Context) {
	name := ctx.Param("name")

	limit := 0
	if limitParam := ctx.Query("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid limit")
			errorDetail = errorDetail.WithDetails("limit must be a non-negative number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		limit = parsed
	}

	info, err := c.scheduleService.ProfessorInfo(name, time.Now(), limit)
	if err != nil {
		handleScheduleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(info, "Professor info retrieved"))
}
