package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/okandemir/profwhere/internal/app/controllers"
	appMigrations "github.com/okandemir/profwhere/internal/app/migrations"
	appRepos "github.com/okandemir/profwhere/internal/app/repositories"
	appRoutes "github.com/okandemir/profwhere/internal/app/routes"
	appServices "github.com/okandemir/profwhere/internal/app/services"
	"github.com/okandemir/profwhere/internal/config"
	"github.com/okandemir/profwhere/internal/db"
	appMiddleware "github.com/okandemir/profwhere/internal/middleware"
	"github.com/okandemir/profwhere/internal/pkg/apperrors"
	pkgAuth "github.com/okandemir/profwhere/internal/pkg/auth"
	"github.com/okandemir/profwhere/internal/pkg/helpers"
	"github.com/okandemir/profwhere/internal/pkg/logger"
	"github.com/okandemir/profwhere/internal/pkg/snapshot"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ScheduleService     appServices.ScheduleService
	IngestService       appServices.IngestService
	ProfessorController *appControllers.ProfessorController
	CourseController    *appControllers.CourseController
	SystemController    *appControllers.SystemController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories // nil when the database is disabled
	JWTService          *pkgAuth.JWTService
	SnapshotStore       *snapshot.Store
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(config.ConfigPath())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the optional database connection and runs
// migrations. Returns a nil pool when the database is disabled; the service
// then runs entirely off the local snapshot file.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	if !cfg.Database.Enabled {
		lgr.Info().Msg("Database disabled, running without the snapshot ledger")
		return nil, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	if dbPool != nil {
		deps.Repos = appRepos.NewRepositories(dbPool)
	}

	store, err := snapshot.NewStore(cfg.Ingest.SnapshotPath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize snapshot store")
		return nil, fmt.Errorf("failed to initialize snapshot store: %w", err)
	}
	deps.SnapshotStore = store

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Auth.Secret,
		TokenExp:    helpers.ParseDuration(cfg.Auth.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.Auth.Issuer,
	})

	deps.ScheduleService = appServices.NewScheduleService()

	var snapshotRepo *appRepos.SnapshotRepository
	if deps.Repos != nil {
		snapshotRepo = deps.Repos.SnapshotRepository
	}
	deps.IngestService = appServices.NewIngestService(
		cfg.Ingest.SourcePath,
		deps.SnapshotStore,
		snapshotRepo,
		deps.ScheduleService,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.ProfessorController = appControllers.NewProfessorController(deps.ScheduleService)
	deps.CourseController = appControllers.NewCourseController(deps.ScheduleService)
	deps.SystemController = appControllers.NewSystemController(deps.ScheduleService, deps.IngestService)

	return deps, nil
}

// RestoreSnapshot publishes the most recent persisted snapshot so the server
// starts serving without a fresh ingest. A missing snapshot is not fatal; the
// server answers 503 until an ingest runs.
func RestoreSnapshot(ctx context.Context, deps *Dependencies, lgr zerolog.Logger) {
	if err := deps.IngestService.Restore(ctx); err != nil {
		if apperrors.Is(err, apperrors.ErrSnapshotNotFound) {
			lgr.Warn().Msg("No snapshot found, schedule unavailable until the first ingest")
			return
		}
		lgr.Error().Err(err).Msg("Failed to restore snapshot")
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.ProfessorController,
		deps.CourseController,
		deps.SystemController,
		deps.AuthMiddleware,
	)

	return router
}
