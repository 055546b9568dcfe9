package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnmesh/pkg/config"
	"github.com/gnames/gnmesh/pkg/errcode"
	"github.com/spf13/cobra"
)

// addDateFlag adds --date flag that selects tables of a run.
func addDateFlag(cmd *cobra.Command, date *string) {
	cmd.Flags().StringVarP(
		date, "date", "d", "",
		"run date YYYY-MM-DD used in table names (default today)",
	)
}

// dateOption converts --date value to an option. Empty value
// keeps the current date.
func dateOption(s string) (config.Option, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return config.OptRunDate(time.Now()), nil
	}

	t, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return nil, runDateError(s, err)
	}
	return config.OptRunDate(t), nil
}

func runDateError(s string, err error) error {
	return &gn.Error{
		Code: errcode.ConfigRunDateError,
		Msg:  "Cannot parse date <em>%s</em>, use YYYY-MM-DD format",
		Vars: []any{s},
		Err:  fmt.Errorf("cannot parse run date %s: %w", s, err),
	}
}
