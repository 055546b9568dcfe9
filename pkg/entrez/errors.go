package entrez

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnmesh/pkg/errcode"
)

// ParseError is returned when E-utilities response cannot be decoded.
func ParseError(endpoint string, err error) error {
	msg := "Cannot parse response of <em>%s</em>"
	return &gn.Error{
		Code: errcode.EntrezParseError,
		Msg:  msg,
		Vars: []any{endpoint},
		Err:  fmt.Errorf("cannot decode %s response: %w", endpoint, err),
	}
}

// ServiceError is returned when E-utilities report an error in the
// response body.
func ServiceError(endpoint, reason string) error {
	msg := `NCBI <em>%s</em> reported an error:
  %s`
	return &gn.Error{
		Code: errcode.EntrezServiceError,
		Msg:  msg,
		Vars: []any{endpoint, reason},
		Err:  fmt.Errorf("%s error: %s", endpoint, reason),
	}
}

// MissingHistoryError is returned when EPost acknowledgment does not
// contain QueryKey or WebEnv.
func MissingHistoryError(noKey, noEnv bool) error {
	var missing []string
	if noKey {
		missing = append(missing, "QueryKey")
	}
	if noEnv {
		missing = append(missing, "WebEnv")
	}
	err := errors.New("epost response has no history reference")
	msg := `EPost response does not contain <em>%v</em>

<em>Possible causes:</em>
  - PubMed IDs were not accepted
  - NCBI service is temporarily unavailable`

	return &gn.Error{
		Code: errcode.EntrezMissingHistoryError,
		Msg:  msg,
		Vars: []any{missing},
		Err:  fmt.Errorf("missing %v: %w", missing, err),
	}
}
