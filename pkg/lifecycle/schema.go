package lifecycle

import (
	"context"

	"github.com/gnames/gnmesh/pkg/schema"
)

// SchemaManager defines the interface for management of MeSH tables.
// Tables are created with GORM migrator under run-specific names.
type SchemaManager interface {
	// Create creates the three tables. It fails if any of them exists,
	// unless force is true, in which case existing tables are dropped
	// first.
	Create(ctx context.Context, tables schema.Tables, force bool) error

	// Clear deletes all rows from the three tables, keeping the tables.
	Clear(ctx context.Context, tables schema.Tables) error
}
