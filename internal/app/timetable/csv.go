package timetable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/okandemir/profwhere/internal/pkg/apperrors"
)

// column identifies a field of the source table.
type column int

const (
	colCompCode column = iota
	colCourseNo
	colCourseTitle
	colSection
	colInstructor
	colRoom
	colDays
	colHours
	columnCount
)

// columnAliases maps each field to the header spellings it may appear under,
// after normalization (uppercased, all whitespace removed). The export is
// known to break header cells mid-word ("HOUR S", "INSTRUCTOR_IN_CHARGE/INSTR
// UCTOR"), which the normalization absorbs.
var columnAliases = map[column][]string{
	colCompCode:    {"COMPCODE"},
	colCourseNo:    {"COURSENO.", "COURSENO"},
	colCourseTitle: {"COURSETITLE"},
	colSection:     {"SEC", "SECTION"},
	colInstructor:  {"INSTRUCTOR_IN_CHARGE/INSTRUCTOR", "INSTRUCTOR"},
	colRoom:        {"ROOM"},
	colDays:        {"DAYS"},
	colHours:       {"HOURS", "HOUR"},
}

// columnNames are the display names used in schema error messages.
var columnNames = map[column]string{
	colCompCode:    "COMP CODE",
	colCourseNo:    "COURSE NO.",
	colCourseTitle: "COURSE TITLE",
	colSection:     "SEC",
	colInstructor:  "INSTRUCTOR",
	colRoom:        "ROOM",
	colDays:        "DAYS",
	colHours:       "HOURS",
}

// normalizeHeader uppercases a header cell and strips every whitespace run,
// including embedded newlines.
func normalizeHeader(cell string) string {
	return strings.ToUpper(strings.Join(strings.Fields(cell), ""))
}

// matchHeader tries to resolve a record as the header row, returning the
// index of every required column. A record qualifies only if all required
// columns are present.
func matchHeader(record []string) (map[column]int, bool) {
	byName := make(map[string]int, len(record))
	for i, cell := range record {
		byName[normalizeHeader(cell)] = i
	}

	indexes := make(map[column]int, columnCount)
	for col := column(0); col < columnCount; col++ {
		found := false
		for _, alias := range columnAliases[col] {
			if idx, ok := byName[alias]; ok {
				indexes[col] = idx
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return indexes, true
}

// headerScanLimit is how many leading records may precede the header row
// (the export starts with a free-text title line).
const headerScanLimit = 5

// ReadRows parses the source table into raw rows. The header row is located
// within the first few records by matching normalized column names; rows
// before it are ignored. A missing header or missing required columns is a
// schema failure and aborts the whole run.
func ReadRows(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var indexes map[column]int
	for scanned := 0; scanned < headerScanLimit; scanned++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: no header row found", apperrors.ErrSchemaInvalid)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read source table: %w", err)
		}
		if idx, ok := matchHeader(record); ok {
			indexes = idx
			break
		}
	}
	if indexes == nil {
		return nil, fmt.Errorf("%w: required columns not found within the first %d rows (need %s)",
			apperrors.ErrSchemaInvalid, headerScanLimit, requiredColumnList())
	}

	cell := func(record []string, col column) string {
		idx := indexes[col]
		if idx >= len(record) {
			return ""
		}
		return collapseSpace(record[idx])
	}

	var rows []RawRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read source table: %w", err)
		}
		rows = append(rows, RawRow{
			CompCode:    cell(record, colCompCode),
			CourseNo:    cell(record, colCourseNo),
			CourseTitle: cell(record, colCourseTitle),
			Section:     cell(record, colSection),
			Instructor:  cell(record, colInstructor),
			Room:        cell(record, colRoom),
			Days:        cell(record, colDays),
			Hours:       cell(record, colHours),
		})
	}
	return rows, nil
}

func requiredColumnList() string {
	names := make([]string, 0, columnCount)
	for col := column(0); col < columnCount; col++ {
		names = append(names, columnNames[col])
	}
	return strings.Join(names, ", ")
}
