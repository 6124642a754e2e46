package timetable

import (
	"sort"
	"strings"
	"time"

	"github.com/okandemir/profwhere/internal/app/models"
)

// BuildDataset fans merged sections out into per-professor weekly schedules.
// Every section is attributed to each of its instructors; each (day, slot)
// occurrence becomes one schedule entry. Per-day lists are sorted by slot
// start time, stable, so rows met earlier keep their relative position on
// equal starts.
func BuildDataset(sections []*models.Section, now time.Time) *models.Dataset {
	ds := &models.Dataset{
		Professors:  make(map[string]*models.Professor),
		Courses:     make(map[string]*models.Section),
		LastUpdated: now,
	}

	for _, sec := range sections {
		ds.Courses[sec.Key()] = sec

		for _, name := range sec.Instructors {
			prof, ok := ds.Professors[name]
			if !ok {
				prof = &models.Professor{
					Name:     name,
					Schedule: make(map[string][]models.ScheduleEntry),
				}
				ds.Professors[name] = prof
				ds.ProfessorOrder = append(ds.ProfessorOrder, name)
			}
			prof.Classes = append(prof.Classes, sec)

			for _, day := range sec.Days {
				for _, slot := range sec.TimeSlots {
					prof.Schedule[day] = append(prof.Schedule[day], models.ScheduleEntry{
						Time:        slot,
						CourseCode:  sec.CourseCode,
						CourseTitle: sec.CourseTitle,
						Section:     sec.Section,
						Room:        sec.Room,
					})
				}
			}
		}
	}

	for _, prof := range ds.Professors {
		for day := range prof.Schedule {
			entries := prof.Schedule[day]
			sort.SliceStable(entries, func(i, j int) bool {
				return slotStart(entries[i].Time) < slotStart(entries[j].Time)
			})
		}
	}

	return ds
}

// countSectionKinds fills the per-kind section counters from section label
// prefixes (L lecture, T tutorial, P practical).
func countSectionKinds(sections []*models.Section, diag *Diagnostics) {
	for _, sec := range sections {
		switch {
		case strings.HasPrefix(sec.Section, "L"):
			diag.Lectures++
		case strings.HasPrefix(sec.Section, "T"):
			diag.Tutorials++
		case strings.HasPrefix(sec.Section, "P"):
			diag.Practicals++
		}
	}
}
