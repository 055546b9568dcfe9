package ioload

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnmesh/pkg/errcode"
)

// NotConnectedError is returned when loading starts without
// database connection.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Loading attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// BeginError is returned when a transaction cannot start.
func BeginError(err error) error {
	return &gn.Error{
		Code: errcode.LoadBeginError,
		Msg:  "Cannot start database transaction",
		Err:  fmt.Errorf("cannot begin transaction: %w", err),
	}
}

// BatchError is returned when inserts of a chunk fail. The
// chunk is rolled back.
func BatchError(year, firstPMID int, err error) error {
	msg := `Cannot save MeSH annotations for year %d

The chunk of articles starting from PMID %d was rolled back.
Annotations saved before that chunk stay in the database.
Run harvest again with <em>--skip-create --date</em> to resume.`

	return &gn.Error{
		Code: errcode.LoadBatchError,
		Msg:  msg,
		Vars: []any{year, firstPMID},
		Err: fmt.Errorf(
			"batch for year %d from pmid %d failed: %w",
			year, firstPMID, err),
	}
}

// CommitError is returned when a transaction cannot be
// committed.
func CommitError(year int, err error) error {
	msg := "Cannot commit MeSH annotations for year %d"

	return &gn.Error{
		Code: errcode.LoadCommitError,
		Msg:  msg,
		Vars: []any{year},
		Err:  fmt.Errorf("commit for year %d failed: %w", year, err),
	}
}
