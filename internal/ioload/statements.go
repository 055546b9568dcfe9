package ioload

import (
	"github.com/gnames/gnmesh/pkg/schema"
	"github.com/jackc/pgx/v5"
)

// statements are parameterized inserts into tables of one run.
// Conflicting rows are silently kept as they are.
type statements struct {
	descriptor string
	qualifier  string
	annotation string
}

func newStatements(tables schema.Tables) statements {
	desc := pgx.Identifier{tables.Descriptors}.Sanitize()
	qual := pgx.Identifier{tables.Qualifiers}.Sanitize()
	ann := pgx.Identifier{tables.Annotations}.Sanitize()

	return statements{
		descriptor: "INSERT INTO " + desc +
			" (descriptor_ui, descriptor_text) VALUES ($1, $2)" +
			" ON CONFLICT DO NOTHING",
		qualifier: "INSERT INTO " + qual +
			" (qualifier_ui, qualifier_text) VALUES ($1, $2)" +
			" ON CONFLICT DO NOTHING",
		annotation: "INSERT INTO " + ann +
			" (year, pmid, descriptor_ui, qualifier_ui)" +
			" VALUES ($1, $2, $3, $4)" +
			" ON CONFLICT (pmid, descriptor_ui) DO NOTHING",
	}
}
