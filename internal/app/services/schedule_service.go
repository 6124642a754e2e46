package services

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/okandemir/profwhere/internal/app/models"
	"github.com/okandemir/profwhere/internal/app/models/dto"
	"github.com/okandemir/profwhere/internal/app/timetable"
	"github.com/okandemir/profwhere/internal/pkg/apperrors"
)

// defaultUpcomingLimit bounds the upcoming-classes list when the caller does
// not ask for a specific count.
const defaultUpcomingLimit = 3

// ScheduleService defines read access to the published timetable dataset.
type ScheduleService interface {
	Dataset() (*models.Dataset, error)
	Publish(ds *models.Dataset)
	ProfessorInfo(name string, now time.Time, upcomingLimit int) (*dto.ProfessorInfoResponse, error)
	Search(query string) ([]string, error)
	Courses() (map[string]*models.Section, error)
	CourseByKey(key string) (*models.Section, error)
}

// scheduleServiceImpl implements the ScheduleService interface. The current
// dataset is held behind an atomic pointer: a rebuild publishes a complete
// new structure in one swap, so concurrent readers never observe a
// partially-merged section.
type scheduleServiceImpl struct {
	current atomic.Pointer[models.Dataset]
}

// NewScheduleService creates a new schedule service instance with no dataset
// published yet.
func NewScheduleService() ScheduleService {
	return &scheduleServiceImpl{}
}

// Dataset returns the currently published dataset.
func (s *scheduleServiceImpl) Dataset() (*models.Dataset, error) {
	ds := s.current.Load()
	if ds == nil {
		return nil, apperrors.ErrScheduleUnavailable
	}
	return ds, nil
}

// Publish swaps in a fully built dataset.
func (s *scheduleServiceImpl) Publish(ds *models.Dataset) {
	s.current.Store(ds)
}

// ProfessorInfo reports a professor's current status, upcoming classes and
// full schedule for the day containing now.
func (s *scheduleServiceImpl) ProfessorInfo(name string, now time.Time, upcomingLimit int) (*dto.ProfessorInfoResponse, error) {
	ds, err := s.Dataset()
	if err != nil {
		return nil, err
	}

	prof, ok := ds.ProfessorByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrProfessorNotFound, name)
	}

	if upcomingLimit <= 0 {
		upcomingLimit = defaultUpcomingLimit
	}

	moment := timetable.MomentOf(now)
	return &dto.ProfessorInfoResponse{
		Name:            prof.Name,
		CurrentStatus:   timetable.StatusAt(prof, moment),
		UpcomingClasses: timetable.UpcomingAt(prof, moment, upcomingLimit),
		AllClassesToday: prof.Schedule[moment.Day],
		CurrentDay:      moment.Day,
		CurrentTime:     moment.Clock(),
	}, nil
}

// Search ranks known professor names against the query.
func (s *scheduleServiceImpl) Search(query string) ([]string, error) {
	ds, err := s.Dataset()
	if err != nil {
		return nil, err
	}
	return timetable.SearchProfessors(ds, query), nil
}

// Courses returns all merged course sections keyed by "CODE_SECTION".
func (s *scheduleServiceImpl) Courses() (map[string]*models.Section, error) {
	ds, err := s.Dataset()
	if err != nil {
		return nil, err
	}
	return ds.Courses, nil
}

// CourseByKey returns a single merged section.
func (s *scheduleServiceImpl) CourseByKey(key string) (*models.Section, error) {
	ds, err := s.Dataset()
	if err != nil {
		return nil, err
	}
	sec, ok := ds.Courses[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCourseNotFound, key)
	}
	return sec, nil
}
