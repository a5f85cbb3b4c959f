package team

import "context"

// Repository describes catalog persistence needs from use cases.
type Repository interface {
	// List returns up to limit rows with no filter and no ordering guarantee.
	List(ctx context.Context, limit int) ([]Team, error)
	// Search returns rows where any of query.Columns contains query.Term,
	// ordered by rank then by insertion order.
	Search(ctx context.Context, query SearchQuery) ([]Team, error)
	Count(ctx context.Context) (int, error)
	// InsertBatch stores all items or none of them. IDs are assigned by the store.
	InsertBatch(ctx context.Context, items []Team) error
}

// SearchQuery is a lower-cased substring matched against one or more columns.
type SearchQuery struct {
	Term    string
	Columns []Column
}
