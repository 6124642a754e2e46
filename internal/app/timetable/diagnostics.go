package timetable

import "github.com/rs/zerolog"

// Diagnostics counts what happened during one pipeline run. Parsing problems
// are never fatal; they end up here so an operator can judge the quality of a
// run instead of the run aborting halfway through.
type Diagnostics struct {
	RowsTotal     int `json:"rows_total"`
	RowsSkipped   int `json:"rows_skipped"`   // headers, separators, rows without section or instructor
	RowsDiscarded int `json:"rows_discarded"` // data rows whose days and hours both decoded empty
	Blocks        int `json:"blocks"`         // rows that opened a new course block
	RowsEmitted   int `json:"rows_emitted"`   // section records handed to the merger
	MergedRows    int `json:"merged_rows"`    // records folded into an existing section key

	// Scalar divergence between rows sharing a section key. First value wins;
	// the conflict is only counted, never resolved silently in favor of the
	// newcomer.
	RoomConflicts  int `json:"room_conflicts"`
	TitleConflicts int `json:"title_conflicts"`

	Sections   int `json:"sections"`
	Professors int `json:"professors"`
	Lectures   int `json:"lectures"`
	Tutorials  int `json:"tutorials"`
	Practicals int `json:"practicals"`
}

// LogSummary writes the run counters as one structured log line.
func (d *Diagnostics) LogSummary(lgr zerolog.Logger) {
	lgr.Info().
		Int("rowsTotal", d.RowsTotal).
		Int("rowsSkipped", d.RowsSkipped).
		Int("rowsDiscarded", d.RowsDiscarded).
		Int("blocks", d.Blocks).
		Int("sections", d.Sections).
		Int("professors", d.Professors).
		Int("lectures", d.Lectures).
		Int("tutorials", d.Tutorials).
		Int("practicals", d.Practicals).
		Int("roomConflicts", d.RoomConflicts).
		Int("titleConflicts", d.TitleConflicts).
		Msg("Timetable ingest completed")
}
