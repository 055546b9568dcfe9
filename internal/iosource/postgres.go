package iosource

import (
	"context"

	"github.com/gnames/gnmesh/pkg/config"
	"github.com/gnames/gnmesh/pkg/db"
	"github.com/gnames/gnmesh/pkg/source"
	"github.com/jackc/pgx/v5"
)

// pgSource reads PubMed IDs from the connected PostgreSQL
// database.
type pgSource struct {
	operator db.Operator
	table    string
	q        queries
}

// NewPostgres creates a source that uses the pool of the
// operator. The operator has to be connected before queries.
func NewPostgres(
	op db.Operator,
	cfg config.SourceConfig,
) (source.IDSource, error) {
	res := pgSource{
		operator: op,
		table:    cfg.Table,
		q:        newQueries(tableParts(cfg.Table), cfg, "$1"),
	}
	return &res, nil
}

func (s *pgSource) PMIDs(ctx context.Context, year int) ([]int, error) {
	pool := s.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	rows, err := pool.Query(ctx, s.q.pmids, year)
	if err != nil {
		return nil, QueryError(s.table, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, ScanError(s.table, err)
	}
	return toInts(ids), nil
}

func (s *pgSource) Years(ctx context.Context) ([]int, error) {
	pool := s.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	rows, err := pool.Query(ctx, s.q.years)
	if err != nil {
		return nil, QueryError(s.table, err)
	}
	years, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, ScanError(s.table, err)
	}
	return toInts(years), nil
}

// Close does nothing, the pool belongs to the operator.
func (s *pgSource) Close() error {
	return nil
}

func toInts(ii []int64) []int {
	res := make([]int, len(ii))
	for i, v := range ii {
		res[i] = int(v)
	}
	return res
}
