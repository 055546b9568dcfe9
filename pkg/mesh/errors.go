package mesh

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnmesh/pkg/errcode"
)

// ParseError is returned when EFetch response is not a valid
// PubmedArticleSet document.
func ParseError(err error) error {
	msg := "Cannot parse PubMed XML"
	return &gn.Error{
		Code: errcode.MeshParseError,
		Msg:  msg,
		Err:  fmt.Errorf("cannot decode PubmedArticleSet: %w", err),
	}
}

// PMIDError is returned when PMID element does not contain a number.
func PMIDError(pmid string, err error) error {
	msg := "PubMed record has invalid PMID <em>'%s'</em>"
	return &gn.Error{
		Code: errcode.MeshPMIDError,
		Msg:  msg,
		Vars: []any{pmid},
		Err:  fmt.Errorf("cannot convert PMID %q: %w", pmid, err),
	}
}
