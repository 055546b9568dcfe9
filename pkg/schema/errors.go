package schema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnmesh/pkg/errcode"
)

// TableNameError is returned when generated table names cannot be used.
func TableNameError(name, reason string) error {
	msg := `Table name <em>%s</em> cannot be used: %s

<em>How to fix:</em>
  Check 'tables' section of the config file`

	return &gn.Error{
		Code: errcode.ConfigTableNamesError,
		Msg:  msg,
		Vars: []any{name, reason},
		Err:  fmt.Errorf("bad table name %q: %s", name, reason),
	}
}
