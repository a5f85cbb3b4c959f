package team

import "context"

// ImportBatch is the parsed content of a seed source.
type ImportBatch struct {
	Teams []Team
	// Skipped counts rows dropped for having no team name.
	Skipped int
}

// Source reads the full seed catalog.
type Source interface {
	Read(ctx context.Context) (ImportBatch, error)
}
