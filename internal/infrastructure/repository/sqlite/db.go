package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

type Options struct {
	Path         string
	BusyTimeout  time.Duration
	MaxOpenConns int
	// QueryFormatter rewrites statements before they are attached to spans.
	QueryFormatter func(query string) string
}

// DSN builds a modernc.org/sqlite data source name for a database file in
// WAL mode.
func DSN(path string, busyTimeout time.Duration) string {
	pragmas := []string{
		"_pragma=busy_timeout(" + strconv.FormatInt(busyTimeout.Milliseconds(), 10) + ")",
		"_pragma=journal_mode(WAL)",
		"_pragma=synchronous(NORMAL)",
	}
	return "file:" + path + "?" + strings.Join(pragmas, "&")
}

// DBName is the name reported on database spans: the file name without extension.
func DBName(path string) string {
	base := filepath.Base(strings.TrimSpace(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Open opens the database file, creating it if needed, and checks it is reachable.
func Open(ctx context.Context, opts Options) (*sqlx.DB, error) {
	if strings.TrimSpace(opts.Path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	traceOpts := []otelsql.Option{
		otelsql.WithDBSystem("sqlite"),
		otelsql.WithDBName(DBName(opts.Path)),
	}
	if opts.QueryFormatter != nil {
		traceOpts = append(traceOpts, otelsql.WithQueryFormatter(opts.QueryFormatter))
	}

	db, err := otelsqlx.Open(driverName, DSN(opts.Path, opts.BusyTimeout), traceOpts...)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", opts.Path, err)
	}
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
		db.SetMaxIdleConns(opts.MaxOpenConns)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", opts.Path, err)
	}

	return db, nil
}
