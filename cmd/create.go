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
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnmesh/internal/ioschema"
	"github.com/gnames/gnmesh/pkg/config"
	"github.com/gnames/gnmesh/pkg/schema"
	"github.com/spf13/cobra"
)

// getCreateCmd returns the create command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getCreateCmd() *cobra.Command {
	var (
		force bool
		date  string
	)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create MeSH tables for a run date",
		Long: `Create empty MeSH tables in PostgreSQL.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Generates table names from templates and the run date
  3. Stops if any of the tables already exists
  4. Creates annotations, descriptors and qualifiers tables
     with GORM migrator

'gnmesh harvest' creates tables itself, this command is useful
for preparing tables before running harvest with --skip-create.

Use --force to drop existing tables with the same names.

Examples:
  gnmesh create
  gnmesh create --date 2013-11-25
  gnmesh create --force
  gnmesh create -f`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCreate(cmd, date, force)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	createCmd.Flags().BoolVarP(&force, "force", "f",
		false, "drop existing tables with the same names")
	addDateFlag(createCmd, &date)

	return createCmd
}

func runCreate(cmd *cobra.Command, date string, force bool) error {
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
	if force {
		gn.Warn("Existing tables with the same names will be dropped")
	}

	sm := ioschema.NewManager(op)
	if err = sm.Create(ctx, tables, force); err != nil {
		return err
	}

	gn.Info(`Created tables:
  <em>%s</em>
  <em>%s</em>
  <em>%s</em>

Next step: run '<em>gnmesh harvest --skip-create --date %s</em>'`,
		tables.Annotations, tables.Descriptors, tables.Qualifiers,
		cfg.RunDate.Format(time.DateOnly),
	)
	return nil
}
