package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/okandemir/profwhere/internal/app/models"
	"github.com/okandemir/profwhere/internal/app/repositories"
	"github.com/okandemir/profwhere/internal/app/timetable"
	"github.com/okandemir/profwhere/internal/pkg/apperrors"
	"github.com/okandemir/profwhere/internal/pkg/snapshot"
)

// IngestService runs the timetable normalization pipeline and publishes the
// result.
type IngestService interface {
	// Run ingests the configured source table, persists the snapshot and
	// publishes the new dataset. Returns the run ID and its diagnostics.
	Run(ctx context.Context) (uuid.UUID, *timetable.Diagnostics, error)
	// Restore publishes the most recent persisted snapshot without
	// re-ingesting. Tried at startup; ErrSnapshotNotFound means no run has
	// happened yet.
	Restore(ctx context.Context) error
}

// ingestServiceImpl implements the IngestService interface
type ingestServiceImpl struct {
	sourcePath string
	store      *snapshot.Store
	repo       *repositories.SnapshotRepository // nil when the database is disabled
	schedule   ScheduleService
	logger     zerolog.Logger
}

// NewIngestService creates a new ingest service instance. repo may be nil;
// the database is an optional ledger, the snapshot file is the primary store.
func NewIngestService(sourcePath string, store *snapshot.Store, repo *repositories.SnapshotRepository, schedule ScheduleService, logger zerolog.Logger) IngestService {
	return &ingestServiceImpl{
		sourcePath: sourcePath,
		store:      store,
		repo:       repo,
		schedule:   schedule,
		logger:     logger,
	}
}

// Run executes one full ingest: source table in, published dataset out.
func (s *ingestServiceImpl) Run(ctx context.Context) (uuid.UUID, *timetable.Diagnostics, error) {
	runID := uuid.New()
	lgr := s.logger.With().Str("runId", runID.String()).Logger()
	lgr.Info().Str("source", s.sourcePath).Msg("Starting timetable ingest")

	file, err := os.Open(s.sourcePath)
	if err != nil {
		return runID, nil, fmt.Errorf("failed to open source table %s: %w", s.sourcePath, err)
	}
	defer file.Close()

	ds, diag, err := timetable.Run(file)
	if err != nil {
		return runID, nil, fmt.Errorf("ingest failed: %w", err)
	}
	diag.LogSummary(lgr)

	payload, err := json.Marshal(ds)
	if err != nil {
		return runID, diag, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := s.store.Write(payload); err != nil {
		return runID, diag, err
	}

	if s.repo != nil {
		if err := s.repo.SaveRun(ctx, runID, payload, diag); err != nil {
			// The snapshot file is already on disk; a ledger failure should
			// not take the fresh dataset away from readers.
			lgr.Error().Err(err).Msg("Failed to record ingest run in database")
		}
	}

	s.schedule.Publish(ds)
	lgr.Info().Int("professors", diag.Professors).Int("sections", diag.Sections).Msg("New timetable dataset published")
	return runID, diag, nil
}

// Restore loads the latest snapshot, preferring the local file and falling
// back to the database ledger.
func (s *ingestServiceImpl) Restore(ctx context.Context) error {
	payload, err := s.store.Read()
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrSnapshotNotFound) {
			return err
		}
		if s.repo == nil {
			return err
		}
		var dbErr error
		payload, _, dbErr = s.repo.Latest(ctx)
		if dbErr != nil {
			return dbErr
		}
		s.logger.Info().Msg("Snapshot file missing, restored from database")
	}

	var ds models.Dataset
	if err := json.Unmarshal(payload, &ds); err != nil {
		return fmt.Errorf("failed to decode snapshot: %w", err)
	}

	s.schedule.Publish(&ds)
	s.logger.Info().Int("professors", len(ds.Professors)).Int("courses", len(ds.Courses)).
		Time("lastUpdated", ds.LastUpdated).Msg("Timetable dataset restored from snapshot")
	return nil
}
