package cache

import (
	"context"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-team-search/internal/domain/team"
	basecache "github.com/riskibarqy/football-team-search/internal/platform/cache"
)

const teamKeyPrefix = "team:"

// TeamRepository is a read-through cache over a team.Repository. Writes go
// to the wrapped repository and drop every cached team entry.
type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store[[]team.Team]
}

func NewTeamRepository(next team.Repository, cache *basecache.Store[[]team.Team]) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context, limit int) ([]team.Team, error) {
	key := teamKeyPrefix + "list:" + strconv.Itoa(limit)
	items, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) ([]team.Team, error) {
		return r.next.List(ctx, limit)
	})
	if err != nil {
		return nil, err
	}

	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) Search(ctx context.Context, query team.SearchQuery) ([]team.Team, error) {
	items, err := r.cache.GetOrLoad(ctx, searchKey(query), func(ctx context.Context) ([]team.Team, error) {
		return r.next.Search(ctx, query)
	})
	if err != nil {
		return nil, err
	}

	return append([]team.Team(nil), items...), nil
}

// Count is not cached so the seed guard always sees the store.
func (r *TeamRepository) Count(ctx context.Context) (int, error) {
	return r.next.Count(ctx)
}

func (r *TeamRepository) InsertBatch(ctx context.Context, items []team.Team) error {
	if err := r.next.InsertBatch(ctx, items); err != nil {
		return err
	}

	r.cache.DeletePrefix(ctx, teamKeyPrefix)
	return nil
}

func searchKey(query team.SearchQuery) string {
	keys := make([]string, 0, len(query.Columns))
	for _, column := range query.Columns {
		keys = append(keys, column.Key)
	}
	return teamKeyPrefix + "search:" + strings.Join(keys, ",") + ":" + query.Term
}
