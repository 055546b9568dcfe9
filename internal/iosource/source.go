// Package iosource implements source.IDSource for ChEMBL
// documents stored in PostgreSQL or in a ChEMBL SQLite
// release.
package iosource

import (
	"strings"

	"github.com/gnames/gnmesh/pkg/config"
	"github.com/gnames/gnmesh/pkg/db"
	"github.com/gnames/gnmesh/pkg/source"
	"github.com/jackc/pgx/v5"
)

// New returns SQLite source if cfg.SQLitePath is set and
// PostgreSQL source otherwise.
func New(op db.Operator, cfg config.SourceConfig) (source.IDSource, error) {
	if cfg.SQLitePath != "" {
		return NewSQLite(cfg)
	}
	return NewPostgres(op, cfg)
}

// queries keeps SQL for a source table. Identifiers are
// quoted, the year is always a bound parameter.
type queries struct {
	pmids string
	years string
}

func newQueries(table []string, cfg config.SourceConfig, ph string) queries {
	tbl := pgx.Identifier(table).Sanitize()
	id := pgx.Identifier{cfg.IDColumn}.Sanitize()
	year := pgx.Identifier{cfg.YearColumn}.Sanitize()

	return queries{
		pmids: "SELECT " + id + " FROM " + tbl +
			" WHERE " + year + " = " + ph +
			" AND " + id + " IS NOT NULL",
		years: "SELECT DISTINCT " + year + " FROM " + tbl +
			" WHERE " + id + " IS NOT NULL" +
			" AND " + year + " IS NOT NULL" +
			" ORDER BY " + year,
	}
}

// tableParts splits optional schema prefix from a table name.
func tableParts(s string) []string {
	return strings.Split(s, ".")
}
