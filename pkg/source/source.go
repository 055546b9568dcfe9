// Package source describes datasets that provide PubMed IDs grouped by
// publication year.
package source

import "context"

// IDSource lists PubMed IDs of publications.
type IDSource interface {
	// PMIDs returns all non-null PubMed IDs of publications from the given
	// year, in the order returned by the store.
	PMIDs(ctx context.Context, year int) ([]int, error)

	// Years returns distinct publication years that have PubMed IDs, in
	// ascending order.
	Years(ctx context.Context) ([]int, error)

	// Close releases resources held by the source.
	Close() error
}
