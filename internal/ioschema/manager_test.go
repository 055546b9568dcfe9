package ioschema_test

import (
	"context"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnmesh/internal/iodb"
	"github.com/gnames/gnmesh/internal/ioschema"
	"github.com/gnames/gnmesh/internal/iotesting"
	"github.com/gnames/gnmesh/pkg/db"
	"github.com/gnames/gnmesh/pkg/errcode"
	"github.com/gnames/gnmesh/pkg/lifecycle"
	"github.com/gnames/gnmesh/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestManager_ImplementsInterface verifies manager
// implements lifecycle.SchemaManager interface.
func TestManager_ImplementsInterface(t *testing.T) {
	op := iodb.NewPgxOperator()
	var _ lifecycle.SchemaManager = ioschema.NewManager(op)
}

func TestManager_NotConnected(t *testing.T) {
	op := iodb.NewPgxOperator()
	mgr := ioschema.NewManager(op)
	ctx := context.Background()
	tables := iotesting.TestTables(t)

	err := mgr.Create(ctx, tables, false)
	require.Error(t, err)
	assert.Equal(t, errcode.DBNotConnectedError, err.(*gn.Error).Code)

	err = mgr.Clear(ctx, tables)
	require.Error(t, err)
	assert.Equal(t, errcode.DBNotConnectedError, err.(*gn.Error).Code)
}

func connect(t *testing.T) db.Operator {
	t.Helper()
	op := iodb.NewPgxOperator()
	err := op.Connect(context.Background(), iotesting.GetTestDatabaseConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = op.Close() })
	return op
}

func TestManager_Create(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	op := connect(t)
	mgr := ioschema.NewManager(op)
	tables := iotesting.TestTables(t)
	iotesting.DropTablesOnCleanup(t, op.Pool(), tables)

	err := mgr.Create(ctx, tables, false)
	require.NoError(t, err)

	for _, v := range tables.All() {
		exists, err := op.TableExists(ctx, v)
		require.NoError(t, err)
		assert.True(t, exists, v)
	}

	t.Run("primary keys", func(t *testing.T) {
		q := `
SELECT a.attname
FROM pg_index i
JOIN pg_attribute a ON a.attrelid = i.indrelid AND a.attnum = ANY(i.indkey)
WHERE i.indrelid = $1::regclass AND i.indisprimary
ORDER BY array_position(i.indkey, a.attnum)`
		expected := map[string][]string{
			tables.Annotations: {"pmid", "descriptor_ui"},
			tables.Descriptors: {"descriptor_ui", "descriptor_text"},
			tables.Qualifiers:  {"qualifier_ui", "qualifier_text"},
		}
		for table, cols := range expected {
			rows, err := op.Pool().Query(ctx, q, table)
			require.NoError(t, err)
			var res []string
			for rows.Next() {
				var col string
				require.NoError(t, rows.Scan(&col))
				res = append(res, col)
			}
			rows.Close()
			assert.Equal(t, cols, res, table)
		}
	})

	t.Run("existing tables are an error", func(t *testing.T) {
		err := mgr.Create(ctx, tables, false)
		require.Error(t, err)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.Equal(t, errcode.SchemaTableExistsError, gnErr.Code)
	})

	t.Run("force recreates tables", func(t *testing.T) {
		q := "INSERT INTO " + tables.Descriptors + " VALUES ('D1', 'One')"
		_, err := op.Pool().Exec(ctx, q)
		require.NoError(t, err)

		err = mgr.Create(ctx, tables, true)
		require.NoError(t, err)

		var count int
		q = "SELECT count(*) FROM " + tables.Descriptors
		require.NoError(t, op.Pool().QueryRow(ctx, q).Scan(&count))
		assert.Equal(t, 0, count)
	})
}

// TestManager_CreateReleasesConnections verifies that repeated
// schema creation gives all connections back to the pool.
func TestManager_CreateReleasesConnections(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	op := connect(t)
	mgr := ioschema.NewManager(op)
	tables := iotesting.TestTables(t)
	iotesting.DropTablesOnCleanup(t, op.Pool(), tables)

	for range 3 {
		err := mgr.Create(ctx, tables, true)
		require.NoError(t, err)
		assert.Equal(t, int32(0), op.Pool().Stat().AcquiredConns())
	}

	exists, err := op.TableExists(ctx, tables.Annotations)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestManager_CreateBadNames(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := connect(t)
	mgr := ioschema.NewManager(op)
	tables := schema.Tables{
		Annotations: "same", Descriptors: "same", Qualifiers: "q",
	}
	err := mgr.Create(context.Background(), tables, false)
	require.Error(t, err)
	assert.Equal(t, errcode.ConfigTableNamesError, err.(*gn.Error).Code)
}

func TestManager_Clear(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	op := connect(t)
	mgr := ioschema.NewManager(op)
	tables := iotesting.TestTables(t)
	iotesting.DropTablesOnCleanup(t, op.Pool(), tables)

	require.NoError(t, mgr.Create(ctx, tables, false))

	stmts := []string{
		"INSERT INTO " + tables.Descriptors + " VALUES ('D1', 'One')",
		"INSERT INTO " + tables.Qualifiers + " VALUES ('Q1', 'therapy')",
		"INSERT INTO " + tables.Annotations +
			" (year, pmid, descriptor_ui, qualifier_ui) VALUES (2005, 1, 'D1', 'Q1')",
	}
	for _, v := range stmts {
		_, err := op.Pool().Exec(ctx, v)
		require.NoError(t, err)
	}

	require.NoError(t, mgr.Clear(ctx, tables))

	for _, v := range tables.All() {
		var count int
		err := op.Pool().QueryRow(ctx, "SELECT count(*) FROM "+v).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 0, count, v)

		exists, err := op.TableExists(ctx, v)
		require.NoError(t, err)
		assert.True(t, exists, v)
	}

	t.Run("missing tables", func(t *testing.T) {
		missing := iotesting.TestTables(t)
		err := mgr.Clear(ctx, missing)
		require.Error(t, err)
		assert.Equal(t, errcode.SchemaClearError, err.(*gn.Error).Code)
	})
}
