// Package ioharvest implements Harvester that runs the whole
// pipeline: PubMed IDs by year, E-utilities records, MeSH
// tables in PostgreSQL.
package ioharvest

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnmesh/pkg/config"
	"github.com/gnames/gnmesh/pkg/entrez"
	"github.com/gnames/gnmesh/pkg/lifecycle"
	"github.com/gnames/gnmesh/pkg/mesh"
	"github.com/gnames/gnmesh/pkg/schema"
	"github.com/gnames/gnmesh/pkg/source"
	"github.com/google/uuid"
)

// harvester implements lifecycle.Harvester.
type harvester struct {
	cfg     *config.Config
	schema  lifecycle.SchemaManager
	source  source.IDSource
	fetcher entrez.Fetcher
	loader  lifecycle.Loader
	log     *slog.Logger
}

// New creates a Harvester out of its parts. Database
// connection of the parts must be established by the caller.
func New(
	cfg *config.Config,
	sm lifecycle.SchemaManager,
	src source.IDSource,
	f entrez.Fetcher,
	l lifecycle.Loader,
) lifecycle.Harvester {
	res := harvester{
		cfg:     cfg,
		schema:  sm,
		source:  src,
		fetcher: f,
		loader:  l,
		log:     slog.With("run", uuid.NewString()),
	}
	return &res
}

// Harvest creates tables of the run (unless told to reuse them)
// and processes years one by one. The first failure stops the
// run, years finished before it stay in the database.
func (h *harvester) Harvest(ctx context.Context) error {
	startTime := time.Now()

	tables := schema.NewTables(h.cfg.Tables, h.cfg.RunDate)
	if err := tables.Validate(); err != nil {
		return err
	}
	h.log.Info("Starting harvest",
		"annotations", tables.Annotations,
		"descriptors", tables.Descriptors,
		"qualifiers", tables.Qualifiers,
	)

	if h.cfg.Harvest.SkipCreate {
		gn.Info("Using existing tables <em>%s</em>", tables.Annotations)
	} else {
		err := h.schema.Create(ctx, tables, h.cfg.Harvest.Force)
		if err != nil {
			return err
		}
		gn.Info("Created tables for <em>%s</em>",
			h.cfg.RunDate.Format(time.DateOnly))
	}

	years, err := h.years(ctx)
	if err != nil {
		return err
	}

	var total lifecycle.LoadStats
	for _, year := range years {
		select {
		case <-ctx.Done():
			return CancelledError(year, ctx.Err())
		default:
		}

		stats, err := h.harvestYear(ctx, tables, year)
		if err != nil {
			h.log.Error("Harvest failed", "year", year, "error", err)
			return err
		}
		total = total.Add(stats)
	}

	dur := gnfmt.TimeString(time.Since(startTime).Seconds())
	h.log.Info("Harvest complete",
		"years", len(years),
		"articles", total.Articles,
		"annotations", total.Annotations,
		"duration", dur,
	)
	gn.Info(`Harvest complete
Years: %d, articles: %s, annotations: %s.
Elapsed time: <em>%s</em>`,
		len(years),
		humanize.Comma(int64(total.Articles)),
		humanize.Comma(int64(total.Annotations)),
		dur,
	)
	return nil
}

func (h *harvester) years(ctx context.Context) ([]int, error) {
	if !h.cfg.Harvest.AllYears {
		return h.cfg.Harvest.Years, nil
	}
	res, err := h.source.Years(ctx)
	if err != nil {
		return nil, err
	}
	h.log.Info("Found years in source", "count", len(res))
	return res, nil
}

func (h *harvester) harvestYear(
	ctx context.Context,
	tables schema.Tables,
	year int,
) (lifecycle.LoadStats, error) {
	var res lifecycle.LoadStats
	yearStart := time.Now()
	h.log.Info("Now starting year", "year", year)

	ids, err := h.source.PMIDs(ctx, year)
	if err != nil {
		return res, err
	}
	gn.Info("Year <em>%d</em>: %s PubMed IDs",
		year, humanize.Comma(int64(len(ids))))

	set, err := h.fetcher.Records(ctx, ids)
	if err != nil {
		return res, err
	}

	recs, err := mesh.Extract(set)
	if err != nil {
		return res, err
	}

	res, err = h.loader.Load(ctx, tables, year, recs)
	if err != nil {
		return res, err
	}

	dur := gnfmt.TimeString(time.Since(yearStart).Seconds())
	h.log.Info("Now finished year",
		"year", year,
		"ids", len(ids),
		"articles", res.Articles,
		"skipped", res.Skipped,
		"annotations", res.Annotations,
		"duration", dur,
	)
	gn.Info("Year <em>%d</em>: %s annotations in %s",
		year, humanize.Comma(int64(res.Annotations)), dur)
	return res, nil
}
