package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-team-search/internal/domain/team"
	"github.com/riskibarqy/football-team-search/internal/infrastructure/repository/memory"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := Open(context.Background(), Options{
		Path:         filepath.Join(t.TempDir(), "football.db"),
		BusyTimeout:  5 * time.Second,
		MaxOpenConns: 4,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seededRepository(t *testing.T) *TeamRepository {
	t.Helper()

	repo := NewTeamRepository(openTestDB(t))
	if err := repo.InsertBatch(context.Background(), memory.SeedTeams()); err != nil {
		t.Fatalf("insert seed teams: %v", err)
	}
	return repo
}

func names(items []team.Team) string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return strings.Join(out, ",")
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	if err := Migrate(db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	var indexes []string
	if err := db.Select(&indexes, "SELECT name FROM sqlite_master WHERE type = 'index' AND tbl_name = 'teams' AND name LIKE 'idx_%' ORDER BY name"); err != nil {
		t.Fatalf("list indexes: %v", err)
	}
	if strings.Join(indexes, ",") != "idx_teams_mascot,idx_teams_team" {
		t.Fatalf("unexpected indexes: %v", indexes)
	}
}

func TestTeamRepository_InsertBatchAssignsIDsAndKeepsAbsentValues(t *testing.T) {
	repo := seededRepository(t)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != len(memory.SeedTeams()) {
		t.Fatalf("expected %d rows, got %d", len(memory.SeedTeams()), count)
	}

	got, err := repo.Search(ctx, team.SearchQuery{Term: "kent", Columns: []team.Column{team.ColumnTeam}})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected Kent State, got %s", names(got))
	}
	kent := got[0]
	if kent.ID != 8 {
		t.Fatalf("expected store-assigned id 8, got %d", kent.ID)
	}
	if kent.DateOfLastWin != nil || kent.WinningPercentage != nil || kent.Wins != nil || kent.Games != nil {
		t.Fatalf("expected absent values to round-trip as nil: %+v", kent)
	}
}

func TestTeamRepository_SearchMatchesColumnAccessors(t *testing.T) {
	repo := seededRepository(t)
	ctx := context.Background()
	seed := memory.NewTeamRepository(memory.SeedTeams())

	terms := []string{"tiger", "1", "0.7", "0.5", ".0", "1/1/2024", "ohio", "o", "zzz", "12"}
	selectors := []string{"", "rank", "team", "mascot", "dateoflastwin", "winningpercentage", "wins", "losses", "ties", "games"}

	for _, term := range terms {
		for _, selector := range selectors {
			q := team.SearchQuery{Term: term, Columns: team.ResolveColumns(selector)}

			got, err := repo.Search(ctx, q)
			if err != nil {
				t.Fatalf("search %q/%q: %v", term, selector, err)
			}
			want, err := seed.Search(ctx, q)
			if err != nil {
				t.Fatalf("oracle search %q/%q: %v", term, selector, err)
			}
			if names(got) != names(want) {
				t.Fatalf("term=%q column=%q\nsqlite: %s\nmemory: %s", term, selector, names(got), names(want))
			}
		}
	}
}

func TestTeamRepository_SearchOrdersByRankThenID(t *testing.T) {
	repo := seededRepository(t)

	got, err := repo.Search(context.Background(), team.SearchQuery{Term: "tigers", Columns: team.SearchableColumns()})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if names(got) != "Auburn,Clemson,LSU" {
		t.Fatalf("unexpected order: %s", names(got))
	}
}

func TestTeamRepository_SearchWithNoColumnsMatchesNothing(t *testing.T) {
	repo := seededRepository(t)

	got, err := repo.Search(context.Background(), team.SearchQuery{Term: "ohio"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no rows, got %s", names(got))
	}
}

func TestTeamRepository_ListAndChunkedInsert(t *testing.T) {
	repo := NewTeamRepository(openTestDB(t))
	ctx := context.Background()

	items := make([]team.Team, 0, 250)
	for i := 0; i < 250; i++ {
		items = append(items, team.Team{Rank: i + 1, Name: fmt.Sprintf("Team %03d", i)})
	}
	if err := repo.InsertBatch(ctx, items); err != nil {
		t.Fatalf("insert batch: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 250 {
		t.Fatalf("expected 250 rows, got %d", count)
	}

	// No order is promised for List; only size and membership are checked.
	got, err := repo.List(ctx, 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 20 {
		t.Fatalf("expected 20 rows, got %d", len(got))
	}
	for _, item := range got {
		if item.ID < 1 || item.ID > 250 {
			t.Fatalf("unexpected id %d", item.ID)
		}
	}
}

func TestTeamRepository_InsertBatchCanceledContextStoresNothing(t *testing.T) {
	repo := NewTeamRepository(openTestDB(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := repo.InsertBatch(ctx, memory.SeedTeams()); err == nil {
		t.Fatalf("expected error for canceled context")
	}

	count, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty table, got %d rows", count)
	}
}

func TestDSNAndDBName(t *testing.T) {
	dsn := DSN("data/football.db", 5*time.Second)
	if !strings.HasPrefix(dsn, "file:data/football.db?") {
		t.Fatalf("unexpected dsn prefix: %s", dsn)
	}
	if !strings.Contains(dsn, "_pragma=busy_timeout(5000)") || !strings.Contains(dsn, "_pragma=journal_mode(WAL)") {
		t.Fatalf("missing pragmas: %s", dsn)
	}
	if got := DBName("/var/lib/app/football.db"); got != "football" {
		t.Fatalf("unexpected db name: %q", got)
	}
}
