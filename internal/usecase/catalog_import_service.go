package usecase

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/football-team-search/internal/domain/team"
	"github.com/riskibarqy/football-team-search/internal/platform/logging"
)

type ImportResult struct {
	AlreadySeeded bool
	Imported      int
	Skipped       int
}

type CatalogImportService struct {
	teamRepo team.Repository
	source   team.Source
	logger   *logging.Logger
}

func NewCatalogImportService(teamRepo team.Repository, source team.Source, logger *logging.Logger) *CatalogImportService {
	if logger == nil {
		logger = logging.Default()
	}

	return &CatalogImportService{
		teamRepo: teamRepo,
		source:   source,
		logger:   logger,
	}
}

// ImportIfEmpty seeds the catalog from the source unless it already holds rows.
// Either every parsed row is stored or none is.
func (s *CatalogImportService) ImportIfEmpty(ctx context.Context) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogImportService.ImportIfEmpty")
	defer span.End()

	count, err := s.teamRepo.Count(ctx)
	if err != nil {
		return ImportResult{}, fmt.Errorf("count teams: %w", err)
	}
	if count > 0 {
		s.logger.InfoContext(ctx, "catalog already seeded", "count", count)
		return ImportResult{AlreadySeeded: true}, nil
	}

	batch, err := s.source.Read(ctx)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ImportResult{}, errors.Wrap(fmt.Errorf("%w: %w", ErrSeedSourceMissing, err), "read seed source")
		}
		return ImportResult{}, errors.Wrap(err, "read seed source")
	}

	for i := range batch.Teams {
		if err := batch.Teams[i].Validate(); err != nil {
			return ImportResult{}, errors.Wrapf(err, "validate seed row %d", i+1)
		}
	}

	if len(batch.Teams) > 0 {
		if err := s.teamRepo.InsertBatch(ctx, batch.Teams); err != nil {
			return ImportResult{}, errors.Wrap(err, "insert seed rows")
		}
	}

	s.logger.InfoContext(ctx, "catalog seeded", "count", len(batch.Teams), "skipped", batch.Skipped)
	return ImportResult{Imported: len(batch.Teams), Skipped: batch.Skipped}, nil
}
