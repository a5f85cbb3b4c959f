package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/football-team-search/internal/domain/team"
)

// TeamRepository keeps the catalog in insertion order.
type TeamRepository struct {
	mu     sync.RWMutex
	teams  []team.Team
	nextID int64
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	r := &TeamRepository{nextID: 1}
	for _, item := range teams {
		r.appendLocked(item)
	}
	return r
}

func (r *TeamRepository) List(_ context.Context, limit int) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.teams)
	if limit > 0 && limit < n {
		n = limit
	}
	return append([]team.Team(nil), r.teams[:n]...), nil
}

func (r *TeamRepository) Search(_ context.Context, query team.SearchQuery) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, item := range r.teams {
		for _, column := range query.Columns {
			if column.Matches(item, query.Term) {
				out = append(out, item)
				break
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rank < out[j].Rank
	})

	return out, nil
}

func (r *TeamRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.teams), nil
}

func (r *TeamRepository) InsertBatch(_ context.Context, items []team.Team) error {
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("insert team %d: %w", i, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		r.appendLocked(item)
	}
	return nil
}

func (r *TeamRepository) appendLocked(item team.Team) {
	item.ID = r.nextID
	r.nextID++
	r.teams = append(r.teams, item)
}
