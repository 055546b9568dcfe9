// Package ioschema implements SchemaManager interface for
// MeSH tables. This is an impure I/O package that wraps GORM
// migrator functionality.
package ioschema

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/gnames/gnmesh/pkg/db"
	"github.com/gnames/gnmesh/pkg/lifecycle"
	"github.com/gnames/gnmesh/pkg/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM migrator.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates tables of a harvest run. Creation is not
// idempotent: existing tables are an error unless force is
// set.
func (m *manager) Create(
	ctx context.Context,
	tables schema.Tables,
	force bool,
) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	if err := tables.Validate(); err != nil {
		return err
	}

	existing, err := m.existingTables(ctx, tables)
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		if !force {
			return TableExistsError(existing)
		}
		slog.Warn("Dropping existing tables", "tables", existing)
		if err = m.operator.DropTables(ctx, existing...); err != nil {
			return err
		}
	}

	// sql.DB holds pool connections while idle, they are returned
	// to the pool on close, the pool itself stays open
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	gormDB, err := openGORM(sqlDB)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err = schema.Create(gormDB.WithContext(ctx), tables); err != nil {
		return CreateSchemaError(err)
	}

	slog.Info("Created tables", "tables", tables.All())
	return nil
}

// Clear removes all rows from the tables of a run in one
// transaction.
func (m *manager) Clear(
	ctx context.Context,
	tables schema.Tables,
) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	if err := tables.Validate(); err != nil {
		return err
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return ClearError("", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	names := []string{
		tables.Annotations, tables.Descriptors, tables.Qualifiers,
	}
	for _, v := range names {
		q := "DELETE FROM " + pgx.Identifier{v}.Sanitize()
		if _, err = tx.Exec(ctx, q); err != nil {
			return ClearError(v, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return ClearError("", err)
	}

	slog.Info("Cleared tables", "tables", names)
	return nil
}

func (m *manager) existingTables(
	ctx context.Context,
	tables schema.Tables,
) ([]string, error) {
	var res []string
	for _, v := range tables.All() {
		exists, err := m.operator.TableExists(ctx, v)
		if err != nil {
			return nil, err
		}
		if exists {
			res = append(res, v)
		}
	}
	return res, nil
}

// openGORM wraps a pool-backed sql.DB into a GORM connection.
func openGORM(sqlDB *sql.DB) (*gorm.DB, error) {
	return gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Discard},
	)
}
