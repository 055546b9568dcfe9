package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnmesh/pkg/config"
	"github.com/gnames/gnmesh/pkg/errcode"
)

// CreateDirError is returned when config or log directory of
// gnmesh cannot be created.
func CreateDirError(dir string, err error) error {
	msg := `Cannot create directory <em>%s</em>

gnmesh keeps config.yaml in <em>%s</em>
and the harvest log in <em>%s</em>.
Check that your home directory is writable.`
	vars := []any{dir, config.ConfigDir("~"), config.LogDir("~")}
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create directory %s: %w",
			caller(), dir, err),
	}
}

// CopyFileError is returned when default config.yaml cannot be
// written.
func CopyFileError(file string, err error) error {
	msg := `Cannot write default configuration to <em>%s</em>

Settings can also be given with <em>GNMESH_*</em> environment
variables, for example GNMESH_ENTREZ_EMAIL.`
	vars := []any{file}
	return &gn.Error{
		Code: errcode.CopyFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot copy config file to %s: %w",
			caller(), file, err),
	}
}

// ReadFileError is returned when config.yaml cannot be read or
// does not match configuration fields.
func ReadFileError(path string, err error) error {
	msg := `Cannot read configuration from <em>%s</em>

Fix the YAML syntax or delete the file,
gnmesh writes a new default one on the next run.`
	vars := []any{path}
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read %s: %w",
			caller(), path, err),
	}
}

// caller returns the name of the function that asked for an
// error constructor.
func caller() string {
	pc, _, _, _ := runtime.Caller(2)
	if fn := runtime.FuncForPC(pc); fn != nil {
		return fn.Name()
	}
	return "unknown"
}
