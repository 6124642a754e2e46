package timetable

import (
	"fmt"
	"strings"
	"time"

	"github.com/okandemir/profwhere/internal/app/models"
)

// Status values reported for a professor at a given moment.
const (
	StatusInClass   = "In class"
	StatusFree      = "Free/Between classes"
	StatusNoClasses = "No classes today"
)

// maxSearchResults caps fuzzy search output.
const maxSearchResults = 10

// Moment is a wall-clock point in the week: a weekday name plus minutes since
// midnight. Queries take a Moment instead of reading the clock themselves so
// they stay testable.
type Moment struct {
	Day     string
	Minutes int
}

// MomentOf converts a time.Time to a Moment in local wall-clock terms.
func MomentOf(t time.Time) Moment {
	return Moment{
		Day:     t.Weekday().String(),
		Minutes: t.Hour()*60 + t.Minute(),
	}
}

// Clock renders the moment's time-of-day as "H:MM".
func (m Moment) Clock() string {
	return fmt.Sprintf("%d:%02d", m.Minutes/60, m.Minutes%60)
}

// CurrentStatus describes where a professor is at one moment.
type CurrentStatus struct {
	Status       string                `json:"status"`
	CurrentClass *models.ScheduleEntry `json:"current_class"`
	Location     string                `json:"location"`
}

// StatusAt reports a professor's status at the given moment. Slot containment
// is inclusive on both ends; with overlapping (malformed) entries the first
// one in sorted order wins.
func StatusAt(prof *models.Professor, now Moment) CurrentStatus {
	entries, ok := prof.Schedule[now.Day]
	if !ok {
		return CurrentStatus{Status: StatusNoClasses}
	}

	for i := range entries {
		start, end, ok := slotBounds(entries[i].Time)
		if !ok {
			continue
		}
		if start <= now.Minutes && now.Minutes <= end {
			entry := entries[i]
			return CurrentStatus{
				Status:       StatusInClass,
				CurrentClass: &entry,
				Location:     entry.Room,
			}
		}
	}

	return CurrentStatus{
		Status:   StatusFree,
		Location: "Not in scheduled class",
	}
}

// UpcomingAt returns up to limit entries for the moment's day whose slot
// starts strictly after the moment, in sorted order. Entries with unparseable
// slots are skipped, never matched.
func UpcomingAt(prof *models.Professor, now Moment, limit int) []models.ScheduleEntry {
	if limit <= 0 {
		return nil
	}

	var upcoming []models.ScheduleEntry
	for _, entry := range prof.Schedule[now.Day] {
		start, _, ok := slotBounds(entry.Time)
		if !ok {
			continue
		}
		if start > now.Minutes {
			upcoming = append(upcoming, entry)
			if len(upcoming) == limit {
				break
			}
		}
	}
	return upcoming
}

// SearchProfessors ranks known professor names against a query: exact
// case-insensitive match first, then prefix matches, then substring matches,
// then names with any word starting with the query. Within a tier the
// dataset's stored order is kept. At most ten names are returned; an empty
// query returns the first ten names in stored order.
func SearchProfessors(ds *models.Dataset, query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		if len(ds.ProfessorOrder) <= maxSearchResults {
			return append([]string(nil), ds.ProfessorOrder...)
		}
		return append([]string(nil), ds.ProfessorOrder[:maxSearchResults]...)
	}

	var exact, prefix, substring, wordPrefix []string
	for _, name := range ds.ProfessorOrder {
		lower := strings.ToLower(name)
		switch {
		case lower == query:
			exact = append(exact, name)
		case strings.HasPrefix(lower, query):
			prefix = append(prefix, name)
		case strings.Contains(lower, query):
			substring = append(substring, name)
		default:
			for _, word := range strings.Fields(lower) {
				if strings.HasPrefix(word, query) {
					wordPrefix = append(wordPrefix, name)
					break
				}
			}
		}
	}

	matches := make([]string, 0, len(exact)+len(prefix)+len(substring)+len(wordPrefix))
	matches = append(matches, exact...)
	matches = append(matches, prefix...)
	matches = append(matches, substring...)
	matches = append(matches, wordPrefix...)
	if len(matches) > maxSearchResults {
		matches = matches[:maxSearchResults]
	}
	return matches
}
