package dto

import (
	"github.com/okandemir/profwhere/internal/app/models"
	"github.com/okandemir/profwhere/internal/app/timetable"
)

// ProfessorInfoResponse bundles everything the front end shows for one
// professor: where they are right now, what comes next, and the full list of
// today's classes.
type ProfessorInfoResponse struct {
	Name            string                  `json:"name" example:"Jane Doe"`
	CurrentStatus   timetable.CurrentStatus `json:"current_status"`
	UpcomingClasses []models.ScheduleEntry  `json:"upcoming_classes"`
	AllClassesToday []models.ScheduleEntry  `json:"all_classes_today"`
	CurrentDay      string                  `json:"current_day" example:"Monday"`
	CurrentTime     string                  `json:"current_time" example:"10:25"`
}

// SearchResponse carries ranked professor name matches.
type SearchResponse struct {
	Query   string   `json:"query" example:"jan"`
	Results []string `json:"results"`
}
