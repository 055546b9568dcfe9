package ioschema

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnmesh/pkg/errcode"
)

// NotConnectedError creates an error for when schema
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for GORM
// connection failures.
func GORMConnectionError(err error) error {
	msg := `Cannot connect to database with GORM

<em>Possible causes:</em>
  - Connection pool not initialized
  - GORM driver problem`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to connect with GORM: %w", err),
	}
}

// TableExistsError is returned when tables of a run are
// already in the database.
func TableExistsError(tables []string) error {
	msg := `Tables already exist: <em>%s</em>

<em>How to fix:</em>
  1. Use <em>--force</em> to drop and recreate them
  2. Use <em>--skip-create</em> to add data to them
  3. Use <em>--date</em> to create tables for another date`

	list := strings.Join(tables, ", ")
	return &gn.Error{
		Code: errcode.SchemaTableExistsError,
		Msg:  msg,
		Vars: []any{list},
		Err:  fmt.Errorf("tables exist: %s", list),
	}
}

// CreateSchemaError creates an error for table
// creation failures.
func CreateSchemaError(err error) error {
	msg := `Cannot create MeSH tables

<em>Possible causes:</em>
  - Insufficient database permissions
  - Table names clash with other relations

<em>How to fix:</em>
  1. Check database user has CREATE permissions
  2. Check database logs for details`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to create tables: %w", err),
	}
}

// ClearError is returned when rows cannot be deleted. An
// empty table means the transaction itself failed.
func ClearError(table string, err error) error {
	msg := "Cannot clear table <em>%s</em>"
	vars := []any{table}
	if table == "" {
		msg = "Cannot clear tables"
		vars = nil
	}

	return &gn.Error{
		Code: errcode.SchemaClearError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to clear %q: %w", table, err),
	}
}
