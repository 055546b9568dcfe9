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
	"os"
	"os/signal"

	"github.com/gnames/gn"
	"github.com/gnames/gnmesh/internal/ioentrez"
	"github.com/gnames/gnmesh/internal/ioharvest"
	"github.com/gnames/gnmesh/internal/ioload"
	"github.com/gnames/gnmesh/internal/ioschema"
	"github.com/gnames/gnmesh/internal/iosource"
	"github.com/gnames/gnmesh/pkg/config"
	"github.com/spf13/cobra"
)

// getHarvestCmd returns the harvest command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getHarvestCmd() *cobra.Command {
	var (
		years      []int
		allYears   bool
		skipCreate bool
		force      bool
		email      string
		date       string
	)

	harvestCmd := &cobra.Command{
		Use:   "harvest",
		Short: "Harvest MeSH annotations for PubMed IDs by year",
		Long: `Harvest MeSH annotations of PubMed articles.

This command:
  1. Creates MeSH tables for the run date (unless --skip-create)
  2. For every year reads PubMed IDs of ChEMBL documents
  3. Posts the IDs to NCBI EPost and downloads MEDLINE records
     with EFetch
  4. Extracts MeSH descriptors and qualifiers
  5. Saves them, existing rows are kept unchanged

Years are processed one by one. If a year fails, harvest stops,
years that finished before stay in the database.

NCBI requires a contact email. Set it in config.yaml, with
GNMESH_ENTREZ_EMAIL, or with --email.

Examples:
  # Harvest years from config.yaml
  gnmesh harvest -e me@example.org

  # Harvest specific years
  gnmesh harvest --years 2005,2011,2013
  gnmesh harvest -y 2013

  # Harvest every year found in the source
  gnmesh harvest --all-years

  # Add more years to tables created earlier
  gnmesh harvest -y 2014 --skip-create --date 2013-11-25`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runHarvest(cmd, harvestFlags{
				years:      years,
				allYears:   allYears,
				skipCreate: skipCreate,
				force:      force,
				email:      email,
				date:       date,
			})
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	harvestCmd.Flags().IntSliceVarP(
		&years, "years", "y", []int{},
		"publication years to harvest (default from config)",
	)
	harvestCmd.Flags().BoolVarP(
		&allYears, "all-years", "a", false,
		"harvest every year found in the source",
	)
	harvestCmd.Flags().BoolVarP(
		&skipCreate, "skip-create", "s", false,
		"reuse existing tables of the run date",
	)
	harvestCmd.Flags().BoolVarP(
		&force, "force", "f", false,
		"drop existing tables with the same names",
	)
	harvestCmd.Flags().StringVarP(
		&email, "email", "e", "",
		"contact email sent to NCBI",
	)
	addDateFlag(harvestCmd, &date)

	return harvestCmd
}

type harvestFlags struct {
	years      []int
	allYears   bool
	skipCreate bool
	force      bool
	email      string
	date       string
}

// options converts explicitly set flags to config options.
func (f harvestFlags) options(cmd *cobra.Command) ([]config.Option, error) {
	opt, err := dateOption(f.date)
	if err != nil {
		return nil, err
	}
	res := []config.Option{opt}

	flags := cmd.Flags()
	if flags.Changed("years") {
		res = append(res, config.OptHarvestYears(f.years))
	}
	if flags.Changed("email") {
		res = append(res, config.OptEntrezEmail(f.email))
	}
	res = append(res,
		config.OptHarvestAllYears(f.allYears),
		config.OptHarvestSkipCreate(f.skipCreate),
		config.OptHarvestForce(f.force),
	)
	return res, nil
}

func runHarvest(cmd *cobra.Command, f harvestFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	opts, err := f.options(cmd)
	if err != nil {
		return err
	}
	cfg.Update(opts)

	if cfg.Harvest.SkipCreate && cfg.Harvest.Force {
		gn.Warn("<em>--force</em> is ignored with <em>--skip-create</em>")
	}

	// fails without email before anything touches the database
	fetcher, err := ioentrez.New(cfg.Entrez)
	if err != nil {
		return err
	}

	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	src, err := iosource.New(op, cfg.Source)
	if err != nil {
		return err
	}
	defer src.Close()

	h := ioharvest.New(
		cfg,
		ioschema.NewManager(op),
		src,
		fetcher,
		ioload.NewLoader(op, cfg),
	)
	return h.Harvest(ctx)
}
