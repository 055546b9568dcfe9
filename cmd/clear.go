/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/gnmesh/internal/ioschema"
	"github.com/gnames/gnmesh/pkg/config"
	"github.com/gnames/gnmesh/pkg/schema"
	"github.com/spf13/cobra"
)

// getClearCmd returns the clear command.
func getClearCmd() *cobra.Command {
	var date string

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all rows from MeSH tables of a run date",
		Long: `Delete all rows from annotations, descriptors and qualifiers
tables of a run date. Tables stay in the database and can be filled
again with 'gnmesh harvest --skip-create'.

Rows of all three tables are deleted in one transaction.

Examples:
  gnmesh clear
  gnmesh clear --date 2013-11-25`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runClear(cmd, date)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	addDateFlag(clearCmd, &date)

	return clearCmd
}

func runClear(cmd *cobra.Command, date string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	opt, err := dateOption(date)
	if err != nil {
		return err
	}
	cfg.Update([]config.Option{opt})

	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	tables := schema.NewTables(cfg.Tables, cfg.RunDate)
	if err = tables.Validate(); err != nil {
		return err
	}

	sm := ioschema.NewManager(op)
	if err = sm.Clear(ctx, tables); err != nil {
		return err
	}

	gn.Info("Deleted all rows from <em>%s</em>, <em>%s</em>, <em>%s</em>",
		tables.Annotations, tables.Descriptors, tables.Qualifiers)
	return nil
}
