package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okandemir/profwhere/internal/pkg/apperrors"
	"github.com/okandemir/profwhere/internal/pkg/snapshot"
)

const testTable = `COMP CODE,COURSE NO.,COURSE TITLE,SEC,INSTRUCTOR,ROOM,DAYS,HOURS
1234,CS F101,INTRO TO CS,L1,JANE DOE,A-101,MWF,3
,,,T1,JOHN ROE,A-102,T,4
`

func writeTestTable(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "timetable.csv")
	require.NoError(t, os.WriteFile(path, []byte(testTable), 0o644))
	return path
}

func TestIngestServiceRunPublishesAndPersists(t *testing.T) {
	dir := t.TempDir()
	source := writeTestTable(t, dir)

	store, err := snapshot.NewStore(filepath.Join(dir, "snap.json"))
	require.NoError(t, err)

	schedule := NewScheduleService()
	ingest := NewIngestService(source, store, nil, schedule, zerolog.Nop())

	runID, diag, err := ingest.Run(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, runID.String())
	assert.Equal(t, 2, diag.Professors)
	assert.Equal(t, 2, diag.Sections)

	// The dataset is live.
	ds, err := schedule.Dataset()
	require.NoError(t, err)
	assert.Len(t, ds.Professors, 2)

	// And the snapshot is on disk.
	payload, err := store.Read()
	require.NoError(t, err)
	assert.Contains(t, string(payload), "Jane Doe")
}

func TestIngestServiceRunMissingSource(t *testing.T) {
	dir := t.TempDir()
	store, err := snapshot.NewStore(filepath.Join(dir, "snap.json"))
	require.NoError(t, err)

	schedule := NewScheduleService()
	ingest := NewIngestService(filepath.Join(dir, "nope.csv"), store, nil, schedule, zerolog.Nop())

	_, _, err = ingest.Run(context.Background())
	require.Error(t, err)

	// A failed ingest publishes nothing.
	_, err = schedule.Dataset()
	assert.ErrorIs(t, err, apperrors.ErrScheduleUnavailable)
}

func TestIngestServiceRunBadSchemaKeepsOldDataset(t *testing.T) {
	dir := t.TempDir()
	source := writeTestTable(t, dir)

	store, err := snapshot.NewStore(filepath.Join(dir, "snap.json"))
	require.NoError(t, err)

	schedule := NewScheduleService()
	ingest := NewIngestService(source, store, nil, schedule, zerolog.Nop())

	_, _, err = ingest.Run(context.Background())
	require.NoError(t, err)
	before, err := schedule.Dataset()
	require.NoError(t, err)

	// Corrupt the source and re-run: readers keep the previous dataset.
	require.NoError(t, os.WriteFile(source, []byte("garbage,everywhere\n"), 0o644))
	_, _, err = ingest.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSchemaInvalid)

	after, err := schedule.Dataset()
	require.NoError(t, err)
	assert.Same(t, before, after)
}

func TestIngestServiceRestore(t *testing.T) {
	dir := t.TempDir()
	source := writeTestTable(t, dir)

	store, err := snapshot.NewStore(filepath.Join(dir, "snap.json"))
	require.NoError(t, err)

	// First process ingests and exits.
	first := NewScheduleService()
	_, _, err = NewIngestService(source, store, nil, first, zerolog.Nop()).Run(context.Background())
	require.NoError(t, err)

	// Second process restores from the snapshot without touching the source.
	second := NewScheduleService()
	restorer := NewIngestService(strings.Replace(source, "timetable", "gone", 1), store, nil, second, zerolog.Nop())
	require.NoError(t, restorer.Restore(context.Background()))

	ds, err := second.Dataset()
	require.NoError(t, err)
	assert.Len(t, ds.Professors, 2)
	assert.Equal(t, []string{"Jane Doe", "John Roe"}, ds.ProfessorOrder)
}

func TestIngestServiceRestoreNothingToRestore(t *testing.T) {
	dir := t.TempDir()
	store, err := snapshot.NewStore(filepath.Join(dir, "snap.json"))
	require.NoError(t, err)

	schedule := NewScheduleService()
	ingest := NewIngestService(filepath.Join(dir, "src.csv"), store, nil, schedule, zerolog.Nop())

	err = ingest.Restore(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSnapshotNotFound)
}
