// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/gnames/gnmesh/pkg/config"
	"github.com/gnames/gnmesh/pkg/schema"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// This ensures tests never accidentally run against production databases.
	TestDatabaseName = "gnmesh_test"
)

// GetTestConfig returns a configuration suitable for integration tests.
// It starts from defaults, applies GNMESH_DATABASE_* environment variables
// and overrides the database name to TestDatabaseName for safety.
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig()
//	    // ... use cfg for database operations
//	}
func GetTestConfig() *config.Config {
	cfg := config.New()

	var opts []config.Option
	if s := os.Getenv("GNMESH_DATABASE_HOST"); s != "" {
		opts = append(opts, config.OptDatabaseHost(s))
	}
	if s := os.Getenv("GNMESH_DATABASE_PORT"); s != "" {
		if port, err := strconv.Atoi(s); err == nil {
			opts = append(opts, config.OptDatabasePort(port))
		}
	}
	if s := os.Getenv("GNMESH_DATABASE_USER"); s != "" {
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if s := os.Getenv("GNMESH_DATABASE_PASSWORD"); s != "" {
		opts = append(opts, config.OptDatabasePassword(s))
	}
	cfg.Update(opts)

	// Always use test database for safety
	cfg.Database.Database = TestDatabaseName

	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for tests.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}

// TestTables returns table names unique for a test, so tests do not
// interfere with each other or with real harvest tables.
func TestTables(t *testing.T) schema.Tables {
	t.Helper()
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return schema.Tables{
		Annotations: "test_annotations_" + suffix,
		Descriptors: "test_descriptors_" + suffix,
		Qualifiers:  "test_qualifiers_" + suffix,
	}
}

// DropTablesOnCleanup registers removal of test tables.
func DropTablesOnCleanup(
	t *testing.T,
	pool *pgxpool.Pool,
	tables schema.Tables,
) {
	t.Helper()
	t.Cleanup(func() {
		for _, v := range tables.All() {
			q := "DROP TABLE IF EXISTS " + pgx.Identifier{v}.Sanitize()
			_, _ = pool.Exec(context.Background(), q)
		}
	})
}
