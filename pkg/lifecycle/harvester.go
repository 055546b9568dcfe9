package lifecycle

import (
	"context"
)

// Harvester runs the whole pipeline: tables are created, then for every
// requested year PubMed IDs are read, their records fetched and loaded.
// Years are processed one after another.
type Harvester interface {
	Harvest(ctx context.Context) error
}
