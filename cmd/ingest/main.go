package main

import (
	"context"
	"os"

	"github.com/okandemir/profwhere/internal/bootstrap"
	"github.com/okandemir/profwhere/internal/pkg/logger"
)

// One-shot ingest: reads the configured source table, writes the snapshot
// file (and the database ledger when enabled), then exits. Meant for cron and
// CI; the API server picks the snapshot up on its next restart or reload.
func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to setup database")
		os.Exit(1)
	}
	if dbPool != nil {
		defer dbPool.Close()
	}

	deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to setup dependencies")
		os.Exit(1)
	}

	runID, diag, err := deps.IngestService.Run(context.Background())
	if err != nil {
		lgr.Error().Err(err).Str("runId", runID.String()).Msg("Ingest failed")
		os.Exit(1)
	}

	lgr.Info().Str("runId", runID.String()).
		Int("professors", diag.Professors).
		Int("sections", diag.Sections).
		Str("snapshot", deps.SnapshotStore.Path()).
		Msg("Ingest complete")
}
