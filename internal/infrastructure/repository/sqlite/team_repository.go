package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-team-search/internal/domain/team"
	qb "github.com/riskibarqy/football-team-search/internal/platform/querybuilder"
)

// insertChunkSize bounds rows per INSERT statement.
const insertChunkSize = 100

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// List returns up to limit rows in whatever order SQLite scans them.
func (r *TeamRepository) List(ctx context.Context, limit int) ([]team.Team, error) {
	query, args, err := qb.Select(teamColumns...).From(teamsTable).Limit(limit).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	return r.selectTeams(ctx, query, args)
}

func (r *TeamRepository) Search(ctx context.Context, q team.SearchQuery) ([]team.Team, error) {
	conditions := make([]qb.Condition, 0, len(q.Columns))
	for _, column := range q.Columns {
		conditions = append(conditions, containsCondition(column.Field, q.Term))
	}

	query, args, err := qb.Select(teamColumns...).
		From(teamsTable).
		Where(qb.Or(conditions...)).
		OrderBy("rank", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build search teams query: %w", err)
	}

	return r.selectTeams(ctx, query, args)
}

func (r *TeamRepository) Count(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From(teamsTable).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count teams query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count teams: %w", err)
	}
	return count, nil
}

func (r *TeamRepository) InsertBatch(ctx context.Context, items []team.Team) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx insert teams: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for start := 0; start < len(items); start += insertChunkSize {
		end := min(start+insertChunkSize, len(items))

		models := make([]teamInsertModel, 0, end-start)
		for _, item := range items[start:end] {
			models = append(models, newTeamInsertModel(item))
		}

		query, args, err := qb.InsertModels(teamsTable, models)
		if err != nil {
			return fmt.Errorf("build insert teams query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert teams rows %d-%d: %w", start+1, end, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert teams tx: %w", err)
	}
	return nil
}

func (r *TeamRepository) selectTeams(ctx context.Context, query string, args []any) ([]team.Team, error) {
	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// containsCondition matches rows whose column, rendered as text and
// lower-cased, contains term. NULL never matches.
func containsCondition(field, term string) qb.Condition {
	return qb.Expr("instr(lower(CAST("+field+" AS TEXT)), ?) > 0", term)
}
