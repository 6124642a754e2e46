package models

import "time"

// Section represents one scheduled offering of a course (a lecture, tutorial
// or practical group), identified by course code plus section label. Sections
// are assembled from one or more timetable rows; rows sharing the same key are
// merged into a single record.
type Section struct {
	CourseCode   string   `json:"course_code" db:"course_code"`
	CourseNumber string   `json:"course_number" db:"course_number"`
	CourseTitle  string   `json:"course_title" db:"course_title"`
	Section      string   `json:"section" db:"section"`
	Room         string   `json:"room" db:"room"`
	Days         []string `json:"days"`       // Full weekday names, no duplicates
	TimeSlots    []string `json:"time_slots"` // "HH:MM-HH:MM" strings, first-seen order
	Instructors  []string `json:"instructors"`
}

// Key returns the identity key used to deduplicate sections across rows.
func (s *Section) Key() string {
	return s.CourseCode + "_" + s.Section
}

// ScheduleEntry is a day-scoped occurrence of a section: what a professor is
// doing in one time slot on one weekday.
type ScheduleEntry struct {
	Time        string `json:"time"`
	CourseCode  string `json:"course_code"`
	CourseTitle string `json:"course_title"`
	Section     string `json:"section"`
	Room        string `json:"room"`
}

// Professor holds everything taught by a single instructor, keyed by
// canonical display name.
type Professor struct {
	Name    string     `json:"name"`
	Classes []*Section `json:"current_classes"`
	// Schedule maps full weekday names to entries sorted by slot start time.
	Schedule map[string][]ScheduleEntry `json:"schedule"`
}

// Dataset is the normalized output of one pipeline run. It is built once,
// persisted, and treated as read-only afterwards; a re-ingest produces a new
// Dataset that replaces the old one wholesale.
type Dataset struct {
	Professors map[string]*Professor `json:"professors"`
	Courses    map[string]*Section   `json:"courses"`
	// ProfessorOrder preserves first-encounter order so listings without a
	// search query stay stable across map iterations and reloads.
	ProfessorOrder []string  `json:"professor_order"`
	LastUpdated    time.Time `json:"last_updated"`
}

// ProfessorByName looks up a professor by canonical name.
func (d *Dataset) ProfessorByName(name string) (*Professor, bool) {
	p, ok := d.Professors[name]
	return p, ok
}
