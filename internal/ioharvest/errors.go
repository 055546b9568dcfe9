package ioharvest

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnmesh/pkg/errcode"
)

// CancelledError creates an error for when harvest is
// cancelled.
func CancelledError(year int, err error) error {
	msg := "Harvest was cancelled before year %d"

	return &gn.Error{
		Code: errcode.HarvestCancelledError,
		Msg:  msg,
		Vars: []any{year},
		Err:  fmt.Errorf("harvest cancelled: %w", err),
	}
}
