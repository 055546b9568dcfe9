package iologger

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnmesh/pkg/errcode"
)

// CreateLogFileError is returned when the harvest log cannot be
// opened.
func CreateLogFileError(path string, err error) error {
	msg := `Cannot open log file <em>%s</em>

Set <em>log.destination</em> to 'stderr' or 'stdout' in config.yaml
or with GNMESH_LOG_DESTINATION to log without a file.`
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot open log file %s: %w", path, err),
	}
}
