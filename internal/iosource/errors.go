package iosource

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnmesh/pkg/errcode"
)

// NotConnectedError is returned when PostgreSQL source is
// used before the database connection is established.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Source query attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// OpenError is returned when a SQLite file cannot be opened.
func OpenError(path string, err error) error {
	msg := `Cannot open ChEMBL SQLite file <em>%s</em>

<em>How to fix:</em>
  1. Check 'source.sqlite_path' in the config file
  2. Remove 'source.sqlite_path' to read IDs from PostgreSQL`

	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SourceOpenError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: cannot open %s: %w", fn.Name(), path, err),
	}
}

// QueryError is returned when the source table cannot be
// queried.
func QueryError(table string, err error) error {
	msg := `Cannot query PubMed IDs from <em>%s</em>

<em>Possible causes:</em>
  - Table or columns do not exist
  - Wrong 'source' settings in the config file`

	return &gn.Error{
		Code: errcode.SourceQueryError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("cannot query %s: %w", table, err),
	}
}

// ScanError is returned when query results cannot be read.
func ScanError(table string, err error) error {
	msg := "Cannot read PubMed IDs from <em>%s</em>"

	return &gn.Error{
		Code: errcode.SourceScanError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("cannot scan %s rows: %w", table, err),
	}
}
