package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okandemir/profwhere/internal/app/timetable"
	"github.com/okandemir/profwhere/internal/db"
	"github.com/okandemir/profwhere/internal/pkg/apperrors"
)

// SnapshotRepository persists ingest runs and their normalized snapshots.
// Each run writes one ledger row with its diagnostics and one snapshot row
// with the full JSON payload; the newest snapshot is what the service loads
// at startup when no local snapshot file exists.
type SnapshotRepository struct {
	db *pgxpool.Pool
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{
		db: db,
	}
}

// SaveRun records one completed ingest run and its snapshot atomically.
func (r *SnapshotRepository) SaveRun(ctx context.Context, runID uuid.UUID, payload []byte, diag *timetable.Diagnostics) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO ingest_runs (run_id, rows_total, rows_skipped, rows_discarded, blocks, sections, professors, room_conflicts, title_conflicts)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, runID, diag.RowsTotal, diag.RowsSkipped, diag.RowsDiscarded, diag.Blocks,
			diag.Sections, diag.Professors, diag.RoomConflicts, diag.TitleConflicts)
		if err != nil {
			return fmt.Errorf("error recording ingest run: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO snapshots (run_id, payload)
			VALUES ($1, $2)
		`, runID, payload)
		if err != nil {
			return fmt.Errorf("error storing snapshot: %w", err)
		}

		return nil
	})
}

// Latest returns the newest stored snapshot payload and its creation time.
func (r *SnapshotRepository) Latest(ctx context.Context) ([]byte, time.Time, error) {
	query := `
		SELECT payload, created_at
		FROM snapshots
		ORDER BY created_at DESC
		LIMIT 1
	`

	var payload []byte
	var createdAt time.Time
	err := r.db.QueryRow(ctx, query).Scan(&payload, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, time.Time{}, apperrors.ErrSnapshotNotFound
		}
		return nil, time.Time{}, fmt.Errorf("error retrieving latest snapshot: %w", err)
	}

	return payload, createdAt, nil
}

// RunCount returns how many ingest runs have been recorded.
func (r *SnapshotRepository) RunCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM ingest_runs`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting ingest runs: %w", err)
	}
	return count, nil
}

// Repositories holds all the repository instances
type Repositories struct {
	SnapshotRepository *SnapshotRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		SnapshotRepository: NewSnapshotRepository(db),
	}
}
