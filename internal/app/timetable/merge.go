package timetable

import (
	"github.com/rs/zerolog/log"

	"github.com/okandemir/profwhere/internal/app/models"
)

// Merger consolidates section records sharing the same (course code, section
// label) key. Rows contributing to one section can be far apart in the source,
// so consolidation is key-based rather than adjacency-based.
type Merger struct {
	sections map[string]*models.Section
	order    []string
	diag     *Diagnostics
}

// NewMerger creates a merger reporting into diag.
func NewMerger(diag *Diagnostics) *Merger {
	return &Merger{
		sections: make(map[string]*models.Section),
		diag:     diag,
	}
}

// Add inserts a record or folds it into the section already held under its
// key. Day sets, time-slot lists and instructor lists are unioned preserving
// first-seen order; scalar fields keep the first non-empty value seen, and a
// later diverging value is counted as a conflict rather than applied.
func (m *Merger) Add(rec *models.Section) {
	key := rec.Key()
	existing, ok := m.sections[key]
	if !ok {
		m.sections[key] = rec
		m.order = append(m.order, key)
		return
	}

	m.diag.MergedRows++
	existing.Days = unionStrings(existing.Days, rec.Days)
	existing.TimeSlots = unionStrings(existing.TimeSlots, rec.TimeSlots)
	existing.Instructors = unionStrings(existing.Instructors, rec.Instructors)

	if existing.Room == "" {
		existing.Room = rec.Room
	} else if rec.Room != "" && rec.Room != existing.Room {
		m.diag.RoomConflicts++
		log.Warn().Str("section", key).Str("kept", existing.Room).Str("dropped", rec.Room).
			Msg("Diverging room across rows for one section")
	}
	if existing.CourseTitle == "" {
		existing.CourseTitle = rec.CourseTitle
	} else if rec.CourseTitle != "" && rec.CourseTitle != existing.CourseTitle {
		m.diag.TitleConflicts++
		log.Warn().Str("section", key).Str("kept", existing.CourseTitle).Str("dropped", rec.CourseTitle).
			Msg("Diverging course title across rows for one section")
	}
}

// Sections returns the merged sections in first-seen order.
func (m *Merger) Sections() []*models.Section {
	out := make([]*models.Section, 0, len(m.order))
	for _, key := range m.order {
		out = append(out, m.sections[key])
	}
	return out
}

// unionStrings appends the elements of extra that dst does not already
// contain, keeping dst's order intact.
func unionStrings(dst, extra []string) []string {
	for _, v := range extra {
		seen := false
		for _, d := range dst {
			if d == v {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, v)
		}
	}
	return dst
}
