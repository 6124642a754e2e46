package timetable

import (
	"io"
	"time"

	"github.com/okandemir/profwhere/internal/app/models"
)

// Run executes the full normalization pipeline over one source table: read
// raw rows, accumulate them in order into section records, merge records
// sharing a section key, and fan the result out into per-professor schedules.
//
// Only source or schema failures return an error. Everything else is partial
// success: rows that cannot be classified are counted in Diagnostics and the
// best dataset obtainable from the remaining rows is returned.
func Run(r io.Reader) (*models.Dataset, *Diagnostics, error) {
	rows, err := ReadRows(r)
	if err != nil {
		return nil, nil, err
	}

	diag := &Diagnostics{}
	acc := NewAccumulator(diag)
	merger := NewMerger(diag)
	for _, row := range rows {
		if rec, ok := acc.Next(row); ok {
			merger.Add(rec)
		}
	}

	sections := merger.Sections()
	ds := BuildDataset(sections, time.Now())

	diag.Sections = len(sections)
	diag.Professors = len(ds.Professors)
	countSectionKinds(sections, diag)

	return ds, diag, nil
}
