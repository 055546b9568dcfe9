// Package gnmesh harvests MeSH annotations of PubMed articles into
// PostgreSQL tables.
package gnmesh

var (
	// Version of gnmesh, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
