package iosource

import (
	"context"
	"database/sql"
	"os"

	"github.com/gnames/gnmesh/pkg/config"
	"github.com/gnames/gnmesh/pkg/source"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

// sqliteSource reads PubMed IDs from a ChEMBL SQLite
// release.
type sqliteSource struct {
	db    *sql.DB
	table string
	q     queries
}

// NewSQLite opens the SQLite file from cfg.SQLitePath. Schema
// prefix of cfg.Table is ignored, SQLite releases keep all
// tables in the main schema.
func NewSQLite(cfg config.SourceConfig) (source.IDSource, error) {
	path := cfg.SQLitePath
	if _, err := os.Stat(path); err != nil {
		return nil, OpenError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, OpenError(path, err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, OpenError(path, err)
	}

	parts := tableParts(cfg.Table)
	table := parts[len(parts)-1]
	res := sqliteSource{
		db:    db,
		table: table,
		q:     newQueries([]string{table}, cfg, "?"),
	}
	return &res, nil
}

func (s *sqliteSource) PMIDs(ctx context.Context, year int) ([]int, error) {
	return s.ints(ctx, s.q.pmids, year)
}

func (s *sqliteSource) Years(ctx context.Context) ([]int, error) {
	return s.ints(ctx, s.q.years)
}

func (s *sqliteSource) Close() error {
	return s.db.Close()
}

func (s *sqliteSource) ints(
	ctx context.Context,
	q string,
	args ...any,
) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, QueryError(s.table, err)
	}
	defer rows.Close()

	var res []int
	for rows.Next() {
		var i int64
		if err = rows.Scan(&i); err != nil {
			return nil, ScanError(s.table, err)
		}
		res = append(res, int(i))
	}
	if err = rows.Err(); err != nil {
		return nil, ScanError(s.table, err)
	}
	return res, nil
}
