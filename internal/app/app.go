package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-team-search/internal/config"
	"github.com/riskibarqy/football-team-search/internal/domain/team"
	"github.com/riskibarqy/football-team-search/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-team-search/internal/infrastructure/repository/sqlite"
	"github.com/riskibarqy/football-team-search/internal/infrastructure/teamcsv"
	"github.com/riskibarqy/football-team-search/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/football-team-search/internal/platform/cache"
	"github.com/riskibarqy/football-team-search/internal/platform/logging"
	"github.com/riskibarqy/football-team-search/internal/usecase"
)

// App owns the HTTP server and the catalog database behind it.
type App struct {
	Server *http.Server
	db     *sqlx.DB
	logger *logging.Logger
}

// New opens and migrates the catalog, seeds it when configured and builds the
// HTTP server. Seeding failures are logged and do not abort startup.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	db, err := sqlite.Open(ctx, sqlite.Options{
		Path:           cfg.DBPath,
		BusyTimeout:    cfg.DBBusyTimeout,
		MaxOpenConns:   cfg.DBMaxOpenConns,
		QueryFormatter: formatDBQueryForTrace,
	})
	if err != nil {
		return nil, fmt.Errorf("open catalog store: %w", err)
	}
	if err := sqlite.Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate catalog store: %w", err)
	}
	logger.Info("catalog store ready", "path", cfg.DBPath)

	var teamRepo team.Repository = sqlite.NewTeamRepository(db)

	if cfg.SeedEnabled {
		importer := usecase.NewCatalogImportService(teamRepo, teamcsv.NewReader(cfg.SeedCSVPath), logger)
		if _, err := importer.ImportIfEmpty(ctx); err != nil {
			logFields := []any{"error", err, "source", cfg.SeedCSVPath}
			if errors.Is(err, usecase.ErrSeedSourceMissing) {
				logger.Error("catalog seed source missing", logFields...)
			} else {
				logger.Error("catalog seed failed", logFields...)
			}
		}
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore[[]team.Team](cfg.CacheTTL).WithMaxEntries(cfg.CacheMaxEntries)
		teamRepo = cache.NewTeamRepository(teamRepo, store)
		logger.Info("catalog cache enabled", "ttl", cfg.CacheTTL.String(), "max_entries", cfg.CacheMaxEntries)
	}

	teamSearchSvc := usecase.NewTeamSearchService(teamRepo)
	handler := httpapi.NewHandler(teamSearchSvc, db, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	return &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		db:     db,
		logger: logger,
	}, nil
}

// Shutdown stops accepting requests, drains in-flight ones and closes the
// catalog database.
func (a *App) Shutdown(ctx context.Context) error {
	serverErr := a.Server.Shutdown(ctx)
	dbErr := a.db.Close()
	if dbErr != nil {
		a.logger.Error("close catalog store", "error", dbErr)
	}
	return errors.Join(serverErr, dbErr)
}
