package schema

import (
	"fmt"
	"regexp"
	"time"

	"github.com/gnames/gnmesh/pkg/config"
)

// maxIdentLen is the PostgreSQL limit for identifier length.
const maxIdentLen = 63

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Tables keeps actual names of the three tables of one harvest run.
type Tables struct {
	Annotations string
	Descriptors string
	Qualifiers  string
}

// TableModel binds a table name to the model that defines its columns.
type TableModel struct {
	Name  string
	Model any
}

// NewTables substitutes the run date, formatted with cfg.DateFormat, into
// table name templates.
func NewTables(cfg config.TablesConfig, date time.Time) Tables {
	suffix := date.Format(cfg.DateFormat)
	return Tables{
		Annotations: fmt.Sprintf(cfg.Annotations, suffix),
		Descriptors: fmt.Sprintf(cfg.Descriptors, suffix),
		Qualifiers:  fmt.Sprintf(cfg.Qualifiers, suffix),
	}
}

// All returns names in the order of creation: vocabularies first.
func (t Tables) All() []string {
	return []string{t.Descriptors, t.Qualifiers, t.Annotations}
}

// Models returns names together with their models, in the order of All.
func (t Tables) Models() []TableModel {
	return []TableModel{
		{Name: t.Descriptors, Model: &Descriptor{}},
		{Name: t.Qualifiers, Model: &Qualifier{}},
		{Name: t.Annotations, Model: &Annotation{}},
	}
}

// Validate checks that the names are distinct plain identifiers that
// PostgreSQL would not truncate.
func (t Tables) Validate() error {
	seen := make(map[string]struct{})
	for _, v := range t.All() {
		if !identRe.MatchString(v) || len(v) > maxIdentLen {
			return TableNameError(v, "not a valid table name")
		}
		if _, ok := seen[v]; ok {
			return TableNameError(v, "name is used for more than one table")
		}
		seen[v] = struct{}{}
	}
	return nil
}
