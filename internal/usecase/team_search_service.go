package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/football-team-search/internal/domain/team"
)

// BrowseLimit caps the unfiltered listing returned for a blank search term.
const BrowseLimit = 20

type TeamSearchService struct {
	teamRepo team.Repository
}

func NewTeamSearchService(teamRepo team.Repository) *TeamSearchService {
	return &TeamSearchService{teamRepo: teamRepo}
}

// ListTeams returns up to BrowseLimit teams with no filter. Order is whatever
// the store yields.
func (s *TeamSearchService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamSearchService.ListTeams")
	defer span.End()

	items, err := s.teamRepo.List(ctx, BrowseLimit)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	if len(items) > BrowseLimit {
		items = items[:BrowseLimit]
	}

	return items, nil
}

// Search returns teams where column contains term, ignoring case. An empty or
// unknown column searches every column. A blank term falls back to ListTeams.
func (s *TeamSearchService) Search(ctx context.Context, term, column string) ([]team.Team, error) {
	if strings.TrimSpace(term) == "" {
		return s.ListTeams(ctx)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.TeamSearchService.Search")
	defer span.End()

	items, err := s.teamRepo.Search(ctx, team.SearchQuery{
		Term:    strings.ToLower(term),
		Columns: team.ResolveColumns(column),
	})
	if err != nil {
		return nil, fmt.Errorf("search teams: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Rank < items[j].Rank
	})

	return items, nil
}

func (s *TeamSearchService) ListColumns(context.Context) []string {
	return team.ColumnLabels()
}
