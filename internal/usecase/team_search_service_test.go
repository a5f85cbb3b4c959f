package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/sourcegraph/conc/pool"
	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/football-team-search/internal/domain/team"
	"github.com/riskibarqy/football-team-search/internal/infrastructure/repository/memory"
	teammock "github.com/riskibarqy/football-team-search/internal/mocks/domain/team"
)

func newSeededSearchService() *TeamSearchService {
	return NewTeamSearchService(memory.NewTeamRepository(memory.SeedTeams()))
}

func teamNames(items []team.Team) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out
}

func TestTeamSearchService_Search_TigerMatchesMascotAcrossColumns(t *testing.T) {
	t.Parallel()

	got, err := newSeededSearchService().Search(context.Background(), "TIGER", "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	want := []string{"Auburn", "Clemson", "LSU"}
	if strings.Join(teamNames(got), ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected teams: got=%v want=%v", teamNames(got), want)
	}
}

func TestTeamSearchService_Search_WinsColumnMatchesDecimalSubstring(t *testing.T) {
	t.Parallel()

	got, err := newSeededSearchService().Search(context.Background(), "1", "Wins")
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	want := []string{"Michigan", "Ohio State", "Ohio"}
	if strings.Join(teamNames(got), ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected teams: got=%v want=%v", teamNames(got), want)
	}
	for _, item := range got {
		if item.Wins == nil || !strings.Contains(fmt.Sprint(*item.Wins), "1") {
			t.Fatalf("team %s does not match wins filter", item.Name)
		}
	}
}

func TestTeamSearchService_Search_UnknownColumnFallsBackToAll(t *testing.T) {
	t.Parallel()

	svc := newSeededSearchService()
	ctx := context.Background()

	bogus, err := svc.Search(ctx, "ohio", "bogus")
	if err != nil {
		t.Fatalf("search bogus column: %v", err)
	}
	all, err := svc.Search(ctx, "ohio", "")
	if err != nil {
		t.Fatalf("search all columns: %v", err)
	}
	allLabel, err := svc.Search(ctx, "ohio", team.AllColumnsLabel)
	if err != nil {
		t.Fatalf("search all columns label: %v", err)
	}

	if len(bogus) != 2 || strings.Join(teamNames(bogus), ",") != strings.Join(teamNames(all), ",") {
		t.Fatalf("unexpected fallback result: bogus=%v all=%v", teamNames(bogus), teamNames(all))
	}
	if strings.Join(teamNames(allLabel), ",") != strings.Join(teamNames(all), ",") {
		t.Fatalf("All Columns selector differs from empty selector: %v", teamNames(allLabel))
	}
}

func TestTeamSearchService_Search_AbsentValuesNeverMatch(t *testing.T) {
	t.Parallel()

	got, err := newSeededSearchService().Search(context.Background(), ".", "winning percentage")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	for _, item := range got {
		if item.WinningPercentage == nil {
			t.Fatalf("team %s without winning percentage matched", item.Name)
		}
	}
	if len(got) != 6 {
		t.Fatalf("expected 6 teams with a winning percentage, got %d", len(got))
	}
}

func TestTeamSearchService_Search_SortedByRankWithStableTies(t *testing.T) {
	t.Parallel()

	got, err := newSeededSearchService().Search(context.Background(), "o", "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Rank > got[i].Rank {
			t.Fatalf("results not ordered by rank at %d: %d > %d", i, got[i-1].Rank, got[i].Rank)
		}
		if got[i-1].Rank == got[i].Rank && got[i-1].ID > got[i].ID {
			t.Fatalf("rank tie not kept in insertion order at %d", i)
		}
	}
}

func TestTeamSearchService_Search_MatchesBruteForce(t *testing.T) {
	t.Parallel()

	seed := memory.SeedTeams()
	svc := NewTeamSearchService(memory.NewTeamRepository(seed))
	terms := []string{"a", "Ti", "0.7", "1/1", "13", "state", "zzz", " "}

	for _, term := range terms {
		if strings.TrimSpace(term) == "" {
			continue
		}
		got, err := svc.Search(context.Background(), term, "")
		if err != nil {
			t.Fatalf("search %q: %v", term, err)
		}

		want := map[string]bool{}
		for _, item := range seed {
			for _, column := range team.SearchableColumns() {
				if column.Matches(item, strings.ToLower(term)) {
					want[item.Name] = true
					break
				}
			}
		}
		if len(got) != len(want) {
			t.Fatalf("term %q: got %d teams want %d", term, len(got), len(want))
		}
		for _, item := range got {
			if !want[item.Name] {
				t.Fatalf("term %q: unexpected team %s", term, item.Name)
			}
		}
	}
}

func TestTeamSearchService_Search_BlankTermBrowsesCatalog(t *testing.T) {
	t.Parallel()

	items := make([]team.Team, 0, 25)
	for i := 0; i < 25; i++ {
		items = append(items, team.Team{Rank: 25 - i, Name: fmt.Sprintf("Team %02d", i)})
	}
	svc := NewTeamSearchService(memory.NewTeamRepository(items))

	for _, term := range []string{"", "   ", "\t"} {
		got, err := svc.Search(context.Background(), term, "team")
		if err != nil {
			t.Fatalf("search blank %q: %v", term, err)
		}
		if len(got) != BrowseLimit {
			t.Fatalf("expected %d teams for blank term, got %d", BrowseLimit, len(got))
		}
	}

	// Order on the browse path is not guaranteed; only membership is checked.
	got, err := svc.ListTeams(context.Background())
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	seen := map[int64]bool{}
	for _, item := range got {
		if item.ID < 1 || item.ID > 25 || seen[item.ID] {
			t.Fatalf("unexpected team id %d", item.ID)
		}
		seen[item.ID] = true
	}
}

func TestTeamSearchService_Search_PassesLoweredTermAndResolvedColumns(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := teammock.NewRepository(t)
	repo.
		On("Search", ctx, mock.MatchedBy(func(q team.SearchQuery) bool {
			return q.Term == "tiger " && len(q.Columns) == 1 && q.Columns[0].Key == "mascot"
		})).
		Return([]team.Team{{Rank: 9, Name: "B"}, {Rank: 2, Name: "A"}}, nil).
		Once()

	got, err := NewTeamSearchService(repo).Search(ctx, "Tiger ", " Mas cot")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 2 || got[0].Name != "A" {
		t.Fatalf("expected rank-sorted result, got %v", teamNames(got))
	}
}

func TestTeamSearchService_Search_WrapsRepositoryError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repoErr := errors.New("disk I/O error")
	repo := teammock.NewRepository(t)
	repo.On("Search", ctx, mock.Anything).Return(nil, repoErr).Once()

	_, err := NewTeamSearchService(repo).Search(ctx, "ohio", "")
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}

func TestTeamSearchService_ListTeams_UsesBrowseLimit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := teammock.NewRepository(t)
	repo.On("List", ctx, BrowseLimit).Return([]team.Team{{ID: 1, Name: "Ohio"}}, nil).Once()

	got, err := NewTeamSearchService(repo).ListTeams(ctx)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("unexpected teams: %v", teamNames(got))
	}
}

func TestTeamSearchService_ListColumns(t *testing.T) {
	t.Parallel()

	got := newSeededSearchService().ListColumns(context.Background())
	if len(got) != 10 || got[0] != team.AllColumnsLabel || got[9] != "Games" {
		t.Fatalf("unexpected columns: %v", got)
	}
}

func TestTeamSearchService_Search_ConcurrentCallsAgree(t *testing.T) {
	t.Parallel()

	svc := newSeededSearchService()
	want, err := svc.Search(context.Background(), "tiger", "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	p := pool.New().WithErrors().WithMaxGoroutines(8)
	for i := 0; i < 64; i++ {
		p.Go(func() error {
			got, err := svc.Search(context.Background(), "tiger", "")
			if err != nil {
				return err
			}
			if strings.Join(teamNames(got), ",") != strings.Join(teamNames(want), ",") {
				return fmt.Errorf("unexpected concurrent result %v", teamNames(got))
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		t.Fatalf("concurrent search: %v", err)
	}
}
