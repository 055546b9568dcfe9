package ioentrez

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gnames/gn"
	"github.com/gnames/gnmesh/pkg/errcode"
)

// MissingEmailError is returned when Entrez email is not
// configured.
func MissingEmailError() error {
	msg := `NCBI requires a contact email for E-utilities requests

<em>How to fix:</em>
  1. Set 'entrez.email' in the config file
  2. Or export <em>GNMESH_ENTREZ_EMAIL=you@example.org</em>`

	return &gn.Error{
		Code: errcode.ConfigMissingEmailError,
		Msg:  msg,
		Err:  errors.New("entrez email is empty"),
	}
}

// RequestError is returned when a request cannot be sent or
// its response cannot be read.
func RequestError(endpoint string, err error) error {
	msg := "Request to <em>%s</em> failed"

	return &gn.Error{
		Code: errcode.EntrezRequestError,
		Msg:  msg,
		Vars: []any{endpoint},
		Err:  fmt.Errorf("%s request failed: %w", endpoint, err),
	}
}

// HTTPStatusError is returned when E-utilities respond with
// a status other than 200.
func HTTPStatusError(endpoint string, status int) error {
	msg := "<em>%s</em> responded with status %d %s"
	text := http.StatusText(status)

	return &gn.Error{
		Code: errcode.EntrezHTTPStatusError,
		Msg:  msg,
		Vars: []any{endpoint, status, text},
		Err:  fmt.Errorf("%s: unexpected status %d", endpoint, status),
	}
}
