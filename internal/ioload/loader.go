// Package ioload implements lifecycle.Loader that upserts MeSH
// records into PostgreSQL.
package ioload

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gnames/gnmesh/pkg/config"
	"github.com/gnames/gnmesh/pkg/db"
	"github.com/gnames/gnmesh/pkg/lifecycle"
	"github.com/gnames/gnmesh/pkg/mesh"
	"github.com/gnames/gnmesh/pkg/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type loader struct {
	operator  db.Operator
	batchSize int

	// progress receives the progress bar, nil hides it.
	progress io.Writer
}

// Option configures the loader.
type Option func(*loader)

// OptProgress sets where the progress bar is drawn. Nil hides
// it. By default the bar goes to STDERR.
func OptProgress(w io.Writer) Option {
	return func(l *loader) {
		l.progress = w
	}
}

// NewLoader creates a Loader that writes database.batch_size
// articles per transaction.
func NewLoader(
	op db.Operator,
	cfg *config.Config,
	opts ...Option,
) lifecycle.Loader {
	res := &loader{
		operator:  op,
		batchSize: cfg.Database.BatchSize,
		progress:  os.Stderr,
	}
	for _, opt := range opts {
		opt(res)
	}
	if res.batchSize <= 0 {
		res.batchSize = config.New().Database.BatchSize
	}
	return res
}

// Load upserts records in chunks. Every chunk is one
// transaction, a failed chunk is rolled back and stops
// loading, earlier chunks stay committed.
func (l *loader) Load(
	ctx context.Context,
	tables schema.Tables,
	year int,
	recs []mesh.Record,
) (lifecycle.LoadStats, error) {
	var res lifecycle.LoadStats

	pool := l.operator.Pool()
	if pool == nil {
		return res, NotConnectedError()
	}
	if len(recs) == 0 {
		return res, nil
	}

	st := newStatements(tables)
	prefix := fmt.Sprintf("Year %d: ", year)
	bar := newProgressBar(len(recs), prefix, l.progress)
	defer bar.Finish()

	for i := 0; i < len(recs); i += l.batchSize {
		end := min(i+l.batchSize, len(recs))
		stats, err := l.loadChunk(ctx, pool, st, year, recs[i:end])
		if err != nil {
			return res, err
		}
		res = res.Add(stats)
		bar.Add(end - i)
	}

	slog.Info("Loaded MeSH annotations",
		"year", year,
		"articles", res.Articles,
		"skipped", res.Skipped,
		"descriptors", res.Descriptors,
		"qualifiers", res.Qualifiers,
		"annotations", res.Annotations,
	)
	return res, nil
}

func (l *loader) loadChunk(
	ctx context.Context,
	pool *pgxpool.Pool,
	st statements,
	year int,
	recs []mesh.Record,
) (lifecycle.LoadStats, error) {
	res := lifecycle.LoadStats{Articles: len(recs)}

	batch := &pgx.Batch{}
	for _, rec := range recs {
		if !rec.HasMesh {
			res.Skipped++
			slog.Info("Article has no MeSH headings", "pmid", rec.PMID)
			continue
		}
		for _, h := range rec.Headings {
			queueHeading(batch, st, year, rec.PMID, h, &res)
		}
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return res, BeginError(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if batch.Len() > 0 {
		err = tx.SendBatch(ctx, batch).Close()
		if err != nil {
			pmid := recs[0].PMID
			return res, BatchError(year, pmid, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return res, CommitError(year, err)
	}
	return res, nil
}

// queueHeading adds inserts for one heading. Counters are updated
// when the batch is executed, with the number of rows actually
// inserted.
func queueHeading(
	batch *pgx.Batch,
	st statements,
	year, pmid int,
	h mesh.Heading,
	stats *lifecycle.LoadStats,
) {
	batch.Queue(st.descriptor, h.Descriptor.UI, h.Descriptor.Text).
		Exec(func(ct pgconn.CommandTag) error {
			stats.Descriptors += int(ct.RowsAffected())
			return nil
		})

	var qual pgtype.Text
	if h.HasQualifier() {
		qual = pgtype.Text{String: h.Qualifier.UI, Valid: true}
		batch.Queue(st.qualifier, h.Qualifier.UI, h.Qualifier.Text).
			Exec(func(ct pgconn.CommandTag) error {
				stats.Qualifiers += int(ct.RowsAffected())
				return nil
			})
	}

	batch.Queue(st.annotation, year, pmid, h.Descriptor.UI, qual).
		Exec(func(ct pgconn.CommandTag) error {
			stats.Annotations += int(ct.RowsAffected())
			return nil
		})
}
