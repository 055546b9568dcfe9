package lifecycle

import (
	"context"

	"github.com/gnames/gnmesh/pkg/mesh"
	"github.com/gnames/gnmesh/pkg/schema"
)

// Loader writes MeSH records into the tables of a run.
type Loader interface {
	// Load upserts records of one publication year. Rows that already
	// exist are left intact.
	Load(
		ctx context.Context,
		tables schema.Tables,
		year int,
		recs []mesh.Record,
	) (LoadStats, error)
}

// LoadStats counts what happened during loading. Row counts include only
// rows that were actually inserted.
type LoadStats struct {
	// Articles is the number of records received.
	Articles int

	// Skipped is the number of articles without MeSH headings.
	Skipped int

	Descriptors int
	Qualifiers  int
	Annotations int
}

// Add sums up two stats.
func (s LoadStats) Add(other LoadStats) LoadStats {
	return LoadStats{
		Articles:    s.Articles + other.Articles,
		Skipped:     s.Skipped + other.Skipped,
		Descriptors: s.Descriptors + other.Descriptors,
		Qualifiers:  s.Qualifiers + other.Qualifiers,
		Annotations: s.Annotations + other.Annotations,
	}
}
