package timetable

import (
	"github.com/okandemir/profwhere/internal/app/models"
)

// RawRow is one line of the source export after cell cleanup, before any
// decoding. Course identity fields are only present on the first row of a
// course block; continuation rows leave them blank.
type RawRow struct {
	CompCode    string
	CourseNo    string
	CourseTitle string
	Section     string
	Instructor  string
	Room        string
	Days        string
	Hours       string
}

// courseContext is the course identity carried forward across continuation
// rows. Exactly one context is active at a time and it only changes when a
// row supplies all three identity fields.
type courseContext struct {
	code   string
	number string
	title  string
}

// Accumulator classifies rows in source order and emits one section record
// per qualifying data row, inheriting course identity from the block's
// opening row. It is an explicit fold over the row stream: each call takes
// the prior context and one row, and returns the emitted record, if any.
type Accumulator struct {
	ctx  *courseContext
	diag *Diagnostics
}

// NewAccumulator creates an accumulator reporting into diag.
func NewAccumulator(diag *Diagnostics) *Accumulator {
	return &Accumulator{diag: diag}
}

// Next processes one row. The returned bool reports whether a section record
// was emitted. Rows are handled in three ways:
//
//   - a row carrying course code, number and title replaces the active
//     context (and may itself also be a data row);
//   - a row with a section label and a decodable instructor, while a context
//     is active, emits a section record unless both its day and hour fields
//     decode to nothing;
//   - anything else (header noise, blank separators) is skipped.
func (a *Accumulator) Next(row RawRow) (*models.Section, bool) {
	a.diag.RowsTotal++

	if row.CompCode != "" && row.CourseNo != "" && row.CourseTitle != "" {
		a.ctx = &courseContext{
			code:   row.CompCode,
			number: row.CourseNo,
			title:  row.CourseTitle,
		}
		a.diag.Blocks++
	}

	instructor := CanonicalName(row.Instructor)
	if row.Section == "" || instructor == "" || a.ctx == nil {
		a.diag.RowsSkipped++
		return nil, false
	}

	days := DecodeDays(row.Days)
	slots := DecodeHours(row.Hours)
	if len(days) == 0 && len(slots) == 0 {
		// No usable schedule information on this row.
		a.diag.RowsDiscarded++
		return nil, false
	}

	a.diag.RowsEmitted++
	return &models.Section{
		CourseCode:   a.ctx.code,
		CourseNumber: a.ctx.number,
		CourseTitle:  a.ctx.title,
		Section:      row.Section,
		Room:         row.Room,
		Days:         days,
		TimeSlots:    slots,
		Instructors:  []string{instructor},
	}, true
}
