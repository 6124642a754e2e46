package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okandemir/profwhere/internal/app/models/dto"
	"github.com/okandemir/profwhere/internal/app/services"
)

// SystemController handles health and administrative operations
type SystemController struct {
	scheduleService services.ScheduleService
	ingestService   services.IngestService
}

// NewSystemController creates a new system controller
func NewSystemController(scheduleService services.ScheduleService, ingestService services.IngestService) *SystemController {
	return &SystemController{
		scheduleService: scheduleService,
		ingestService:   ingestService,
	}
}

// HealthCheck reports liveness and dataset freshness
// @Summary Health check
// @Description Service liveness plus counts from the published dataset, if any
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service healthy"
// @Router /health [get]
func (c *SystemController) HealthCheck(ctx *gin.Context) {
	health := dto.HealthResponse{Status: "ok"}

	if ds, err := c.scheduleService.Dataset(); err == nil {
		health.Professors = len(ds.Professors)
		health.Courses = len(ds.Courses)
		lastUpdated := ds.LastUpdated
		health.LastUpdated = &lastUpdated
	}

	ctx.JSON(http.StatusOK, health)
}

// ReloadTimetable re-ingests the source table and publishes the result
// @Summary Reload timetable
// @Description Re-run the full ingest pipeline; readers keep the old dataset until the new one is published
// @Tags system
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ReloadResponse} "Timetable reloaded"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid admin token"
// @Failure 500 {object} dto.ErrorResponse "Ingest failed"
// @Router /admin/reload [post]
func (c *SystemController) ReloadTimetable(ctx *gin.Context) {
	runID, diag, err := c.ingestService.Run(ctx.Request.Context())
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeIngestFailed, "Timetable ingest failed")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
		return
	}

	response := dto.ReloadResponse{
		RunID:       runID.String(),
		Diagnostics: *diag,
	}
	if ds, dsErr := c.scheduleService.Dataset(); dsErr == nil {
		response.LastUpdated = ds.LastUpdated
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(response, "Timetable reloaded"))
}
