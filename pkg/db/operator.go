package db

import (
	"context"

	"github.com/gnames/gnmesh/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator defines the interface for basic database management operations.
// It provides connection lifecycle management and exposes the pgxpool.Pool
// for lifecycle components (SchemaManager, Loader, IDSource) to execute
// their specialized SQL operations internally.
type Operator interface {
	// Connect establishes a connection pool to the database. If
	// DatabaseConfig.CredentialsFile is set, the connection string is read
	// from that file, otherwise it is built from the other fields.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool. Components use it for
	// transactions, batches and custom queries.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the current schema search
	// path of the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// DropTables drops the given tables if they exist.
	DropTables(ctx context.Context, tableNames ...string) error
}
