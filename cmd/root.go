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
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gnmesh/internal/iodb"
	"github.com/gnames/gnmesh/internal/iofs"
	"github.com/gnames/gnmesh/internal/iologger"
	app "github.com/gnames/gnmesh/pkg"
	"github.com/gnames/gnmesh/pkg/config"
	"github.com/gnames/gnmesh/pkg/db"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var (
	homeDir string
	cfg     *config.Config
	logFile io.Closer
)

// getRootCmd returns the root command with all subcommands
// attached. Every call creates a new instance.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gnmesh",
		Short:   "GNmesh harvests MeSH annotations of PubMed articles",
		Long: `GNmesh takes PubMed IDs of ChEMBL documents published in given years,
downloads their MEDLINE records from NCBI E-utilities and saves MeSH
annotations into three PostgreSQL tables:

  - mesh_annotations_<date>: pmid, year, descriptor and qualifier
  - mesh_descriptors_<date>: MeSH descriptor vocabulary
  - mesh_qualifiers_<date>:  MeSH qualifier vocabulary

Commands:
  - create:  create tables for a run date
  - harvest: fetch and save annotations for years
  - clear:   delete all rows from tables of a run date
  - years:   list publication years found in the source

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNMESH_*)
  3. Config file (~/.config/gnmesh/config.yaml)
  4. Built-in defaults

Run 'gnmesh' without commands to see the effective configuration.`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gnmesh version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnmesh")

	rootCmd.AddCommand(
		getCreateCmd(),
		getHarvestCmd(),
		getClearCmd(),
		getYearsCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// logging starts after user's settings are known, so the log
	// file is opened once per run
	if err = initLogging(cfg.HomeDir, cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)

	return nil
}

// runRoot shows the effective configuration.
func runRoot(cmd *cobra.Command, args []string) error {
	out, err := yaml.Marshal(maskedConfig(cfg))
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info(
		"Configuration file is <em>%s</em>",
		config.ConfigFilePath(homeDir),
	)
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}

// maskedConfig returns a copy of the config without secrets.
func maskedConfig(c *config.Config) config.Config {
	res := *c
	if res.Database.Password != "" {
		res.Database.Password = "*****"
	}
	if res.Entrez.APIKey != "" {
		res.Entrez.APIKey = "*****"
	}
	return res
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	closeLogging()
	if err != nil {
		os.Exit(1)
	}
}

// initLogging sets the global logger, log file of a previous
// setup is closed first. Logs of all runs are appended to the
// same file.
func initLogging(home string, c config.LogConfig) error {
	closeLogging()
	res, err := iologger.Init(home, c, true)
	if err != nil {
		return err
	}
	logFile = res
	return nil
}

func closeLogging() {
	if logFile == nil {
		return
	}
	if err := logFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "cannot close log file: %s\n", err)
	}
	logFile = nil
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Environment variables are bound manually so it is clear which of
	// them are allowed. They match the fields of config.ToOptions().
	// Explicit names given to BindEnv are not prefixed by viper.
	envs := []struct{ key, env string }{
		{"database.host", "GNMESH_DATABASE_HOST"},
		{"database.port", "GNMESH_DATABASE_PORT"},
		{"database.user", "GNMESH_DATABASE_USER"},
		{"database.password", "GNMESH_DATABASE_PASSWORD"},
		{"database.database", "GNMESH_DATABASE_DATABASE"},
		{"database.ssl_mode", "GNMESH_DATABASE_SSL_MODE"},
		{"database.credentials_file", "GNMESH_DATABASE_CREDENTIALS_FILE"},
		{"database.batch_size", "GNMESH_DATABASE_BATCH_SIZE"},

		{"source.table", "GNMESH_SOURCE_TABLE"},
		{"source.id_column", "GNMESH_SOURCE_ID_COLUMN"},
		{"source.year_column", "GNMESH_SOURCE_YEAR_COLUMN"},
		{"source.sqlite_path", "GNMESH_SOURCE_SQLITE_PATH"},

		{"entrez.base_url", "GNMESH_ENTREZ_BASE_URL"},
		{"entrez.database", "GNMESH_ENTREZ_DATABASE"},
		{"entrez.email", "GNMESH_ENTREZ_EMAIL"},
		{"entrez.tool", "GNMESH_ENTREZ_TOOL"},
		{"entrez.api_key", "GNMESH_ENTREZ_API_KEY"},
		{"entrez.timeout", "GNMESH_ENTREZ_TIMEOUT"},
		{"entrez.fetch_size", "GNMESH_ENTREZ_FETCH_SIZE"},

		{"tables.annotations", "GNMESH_TABLES_ANNOTATIONS"},
		{"tables.descriptors", "GNMESH_TABLES_DESCRIPTORS"},
		{"tables.qualifiers", "GNMESH_TABLES_QUALIFIERS"},
		{"tables.date_format", "GNMESH_TABLES_DATE_FORMAT"},

		// comma separated list, for example "2005,2011"
		{"harvest.years", "GNMESH_HARVEST_YEARS"},

		{"log.level", "GNMESH_LOG_LEVEL"},
		{"log.format", "GNMESH_LOG_FORMAT"},
		{"log.destination", "GNMESH_LOG_DESTINATION"},
	}
	for _, e := range envs {
		_ = v.BindEnv(e.key, e.env)
	}
}

// connect opens the PostgreSQL pool described by the config.
func connect(ctx context.Context) (db.Operator, error) {
	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return nil, err
	}

	if cfg.Database.CredentialsFile != "" {
		gn.Info("Connected to database using <em>%s</em>",
			cfg.Database.CredentialsFile)
	} else {
		gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
			cfg.Database.User, cfg.Database.Host,
			cfg.Database.Port, cfg.Database.Database)
	}
	return op, nil
}
