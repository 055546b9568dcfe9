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
	"fmt"
	"io"

	"github.com/gnames/gn"
	"github.com/gnames/gnmesh/internal/iosource"
	"github.com/gnames/gnmesh/pkg/db"
	"github.com/spf13/cobra"
)

// getYearsCmd returns the years command.
func getYearsCmd() *cobra.Command {
	yearsCmd := &cobra.Command{
		Use:   "years",
		Short: "List publication years found in the source",
		Long: `List distinct publication years of documents that have
PubMed IDs. The source is the PostgreSQL table from config.yaml
or a ChEMBL SQLite file if source.sqlite_path is set.

Any of these years can be given to 'gnmesh harvest --years'.

Examples:
  gnmesh years`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runYears(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return yearsCmd
}

func runYears(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var op db.Operator
	if cfg.Source.SQLitePath == "" {
		var err error
		if op, err = connect(ctx); err != nil {
			return err
		}
		defer op.Close()
	}

	src, err := iosource.New(op, cfg.Source)
	if err != nil {
		return err
	}
	defer src.Close()

	years, err := src.Years(ctx)
	if err != nil {
		return err
	}

	printYears(cmd.OutOrStdout(), years)
	return nil
}

// printYears writes years ten per line.
func printYears(w io.Writer, years []int) {
	for i, v := range years {
		sep := " "
		if (i+1)%10 == 0 || i == len(years)-1 {
			sep = "\n"
		}
		fmt.Fprintf(w, "%d%s", v, sep)
	}
	gn.Info("Found <em>%d</em> years", len(years))
}
