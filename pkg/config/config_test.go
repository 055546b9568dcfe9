package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/gnames/gnmesh/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gnmesh"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gnmesh", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "gnmesh", "config.yaml"),
		},
		{
			msg: "log file",
			fn:  config.LogFilePath,
			res: filepath.Join(tempHome, ".local", "share", "gnmesh", "logs",
				"gnmesh.log"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	before := time.Now()
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Database defaults
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "postgres", cfg.Database.Password)
		assert.Equal(t, "chembl", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, "", cfg.Database.CredentialsFile)
		assert.Equal(t, 1_000, cfg.Database.BatchSize)

		// Source defaults
		assert.Equal(t, "chembl_21.docs", cfg.Source.Table)
		assert.Equal(t, "pubmed_id", cfg.Source.IDColumn)
		assert.Equal(t, "year", cfg.Source.YearColumn)
		assert.Equal(t, "", cfg.Source.SQLitePath)

		// Entrez defaults
		assert.Equal(t, "https://eutils.ncbi.nlm.nih.gov/entrez/eutils",
			cfg.Entrez.BaseURL)
		assert.Equal(t, "pubmed", cfg.Entrez.Database)
		assert.Equal(t, "", cfg.Entrez.Email)
		assert.Equal(t, "gnmesh", cfg.Entrez.Tool)
		assert.Equal(t, 10_000, cfg.Entrez.FetchSize)

		// Tables defaults
		assert.Equal(t, "mesh_annotations_%s", cfg.Tables.Annotations)
		assert.Equal(t, "mesh_descriptors_%s", cfg.Tables.Descriptors)
		assert.Equal(t, "mesh_qualifiers_%s", cfg.Tables.Qualifiers)
		assert.Equal(t, "01022006", cfg.Tables.DateFormat)

		// Harvest defaults
		assert.Equal(t, []int{2005, 2011, 2013}, cfg.Harvest.Years)
		assert.False(t, cfg.Harvest.AllYears)
		assert.False(t, cfg.Harvest.SkipCreate)

		// Log defaults
		assert.Equal(t, "text", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		assert.False(t, cfg.RunDate.Before(before))
	})
}

func TestOptionDatabaseHost(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid host",
			input:    "db.example.com",
			expected: "db.example.com",
		},
		{
			name:     "trims whitespace",
			input:    "  db.example.com  ",
			expected: "db.example.com",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "localhost", // Should keep default
		},
		{
			name:     "ignores whitespace-only",
			input:    "   ",
			expected: "localhost", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabaseHost(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.Host)
		})
	}
}

func TestOptionDatabasePort(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid port",
			input:    5433,
			expected: 5433,
		},
		{
			name:     "ignores zero",
			input:    0,
			expected: 5432, // Should keep default
		},
		{
			name:     "ignores negative",
			input:    -100,
			expected: 5432, // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabasePort(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.Port)
		})
	}
}

func TestOptionDatabaseSSLMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid ssl mode - require",
			input:    "require",
			expected: "require",
		},
		{
			name:     "sets valid ssl mode - verify-full",
			input:    "verify-full",
			expected: "verify-full",
		},
		{
			name:     "normalizes to lowercase",
			input:    "REQUIRE",
			expected: "require",
		},
		{
			name:     "ignores invalid value",
			input:    "invalid",
			expected: "disable", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabaseSSLMode(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.SSLMode)
		})
	}
}

func TestOptionDatabaseCredentialsFile(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseCredentialsFile("  /home/user/login.txt "),
	})
	assert.Equal(t, "/home/user/login.txt", cfg.Database.CredentialsFile)

	cfg.Update([]config.Option{config.OptDatabaseCredentialsFile("")})
	assert.Equal(t, "/home/user/login.txt", cfg.Database.CredentialsFile)
}

func TestOptionBatchSize(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid batch size",
			input:    500,
			expected: 500,
		},
		{
			name:     "ignores zero",
			input:    0,
			expected: 1_000, // Should keep default
		},
		{
			name:     "ignores negative",
			input:    -1000,
			expected: 1_000, // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabaseBatchSize(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.BatchSize)
		})
	}
}

func TestOptionEntrezEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid email",
			input:    "curator@example.org",
			expected: "curator@example.org",
		},
		{
			name:     "trims whitespace",
			input:    " curator@example.org ",
			expected: "curator@example.org",
		},
		{
			name:     "ignores string without @",
			input:    "curator",
			expected: "",
		},
		{
			name:     "ignores missing host",
			input:    "curator@",
			expected: "",
		},
		{
			name:     "ignores several addresses",
			input:    "a@example.org, b@example.org",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptEntrezEmail(tt.input)})
			assert.Equal(t, tt.expected, cfg.Entrez.Email)
		})
	}
}

func TestOptionEntrezBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid url",
			input:    "http://localhost:8080/eutils",
			expected: "http://localhost:8080/eutils",
		},
		{
			name:     "removes trailing slash",
			input:    "http://localhost:8080/eutils/",
			expected: "http://localhost:8080/eutils",
		},
		{
			name:     "ignores url without scheme",
			input:    "localhost/eutils",
			expected: "https://eutils.ncbi.nlm.nih.gov/entrez/eutils",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptEntrezBaseURL(tt.input)})
			assert.Equal(t, tt.expected, cfg.Entrez.BaseURL)
		})
	}
}

func TestOptionEntrezFetchSize(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"sets valid size", 500, 500},
		{"accepts maximum", 10_000, 10_000},
		{"ignores above maximum", 10_001, 10_000},
		{"ignores zero", 0, 10_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptEntrezFetchSize(tt.input)})
			assert.Equal(t, tt.expected, cfg.Entrez.FetchSize)
		})
	}
}

func TestOptionTablesTemplates(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid template",
			input:    "ann_%s",
			expected: "ann_%s",
		},
		{
			name:     "placeholder in the middle",
			input:    "mesh_%s_ann",
			expected: "mesh_%s_ann",
		},
		{
			name:     "ignores template without placeholder",
			input:    "annotations",
			expected: "mesh_annotations_%s",
		},
		{
			name:     "ignores two placeholders",
			input:    "ann_%s_%s",
			expected: "mesh_annotations_%s",
		},
		{
			name:     "ignores other verbs",
			input:    "ann_%d",
			expected: "mesh_annotations_%s",
		},
		{
			name:     "ignores non-identifier characters",
			input:    "ann-%s; drop table x",
			expected: "mesh_annotations_%s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptTablesAnnotations(tt.input)})
			assert.Equal(t, tt.expected, cfg.Tables.Annotations)
		})
	}
}

func TestOptionTablesDateFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets ISO-like layout", "20060102", "20060102"},
		{"ignores layout with dashes", "2006-01-02", "01022006"},
		{"ignores literal text", "today", "01022006"},
		{"ignores empty", "", "01022006"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptTablesDateFormat(tt.input)})
			assert.Equal(t, tt.expected, cfg.Tables.DateFormat)
		})
	}
}

func TestOptionHarvestYears(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
	}{
		{
			name:     "sets years",
			input:    []int{2013, 2005},
			expected: []int{2013, 2005},
		},
		{
			name:     "removes duplicates keeping order",
			input:    []int{2011, 2005, 2011},
			expected: []int{2011, 2005},
		},
		{
			name:     "ignores empty slice",
			input:    []int{},
			expected: []int{2005, 2011, 2013},
		},
		{
			name:     "ignores slice with invalid year",
			input:    []int{2011, -1},
			expected: []int{2005, 2011, 2013},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptHarvestYears(tt.input)})
			assert.Equal(t, tt.expected, cfg.Harvest.Years)
		})
	}
}

func TestOptionRunDate(t *testing.T) {
	cfg := config.New()
	date := time.Date(2016, time.March, 7, 0, 0, 0, 0, time.UTC)
	cfg.Update([]config.Option{config.OptRunDate(date)})
	assert.Equal(t, date, cfg.RunDate)

	cfg.Update([]config.Option{config.OptRunDate(time.Time{})})
	assert.Equal(t, date, cfg.RunDate, "zero time is ignored")
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid log level - debug",
			input:    "debug",
			expected: "debug",
		},
		{
			name:     "sets valid log level - error",
			input:    "error",
			expected: "error",
		},
		{
			name:     "normalizes to lowercase",
			input:    "DEBUG",
			expected: "debug",
		},
		{
			name:     "ignores invalid value",
			input:    "trace",
			expected: "info", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptLogLevel(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionLogDestination(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets stdout", "stdout", "stdout"},
		{"sets stderr", "STDERR", "stderr"},
		{"ignores unknown", "syslog", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogDestination(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Destination)
		})
	}
}

func TestMultipleOptions(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptDatabaseHost("custom.host.com"),
			config.OptDatabasePort(5433),
			config.OptDatabaseUser("myuser"),
			config.OptLogLevel("debug"),
			config.OptEntrezEmail("me@example.org"),
		}

		cfg.Update(opts)

		assert.Equal(t, "custom.host.com", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "myuser", cfg.Database.User)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "me@example.org", cfg.Entrez.Email)

		// Unchanged fields keep defaults
		assert.Equal(t, "postgres", cfg.Database.Password)
		assert.Equal(t, "text", cfg.Log.Format)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptDatabaseHost("first.host.com"),
			config.OptDatabaseHost("second.host.com"),
		}

		cfg.Update(opts)

		assert.Equal(t, "second.host.com", cfg.Database.Host)
	})
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		// Create config with custom values
		original := config.New()
		opts := []config.Option{
			config.OptDatabaseHost("test.host.com"),
			config.OptDatabasePort(5433),
			config.OptDatabaseUser("testuser"),
			config.OptDatabasePassword("testpass"),
			config.OptDatabaseDatabase("testdb"),
			config.OptDatabaseSSLMode("require"),
			config.OptDatabaseCredentialsFile("/tmp/login.txt"),
			config.OptDatabaseBatchSize(200),
			config.OptSourceTable("docs"),
			config.OptSourceIDColumn("pmid"),
			config.OptSourceYearColumn("pub_year"),
			config.OptSourceSQLitePath("/data/chembl_21.db"),
			config.OptEntrezBaseURL("http://localhost:9000"),
			config.OptEntrezDatabase("pmc"),
			config.OptEntrezEmail("me@example.org"),
			config.OptEntrezTool("mytool"),
			config.OptEntrezAPIKey("secret"),
			config.OptEntrezTimeout(30),
			config.OptEntrezFetchSize(100),
			config.OptTablesAnnotations("a_%s"),
			config.OptTablesDescriptors("d_%s"),
			config.OptTablesQualifiers("q_%s"),
			config.OptTablesDateFormat("20060102"),
			config.OptHarvestYears([]int{1999}),
			config.OptLogLevel("debug"),
			config.OptLogFormat("json"),
			config.OptLogDestination("stdout"),
		}
		original.Update(opts)

		// Convert to options and apply to new config
		convertedOpts := original.ToOptions()
		newCfg := config.New()
		newCfg.RunDate = original.RunDate
		newCfg.Update(convertedOpts)

		assert.Equal(t, original, newCfg)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/custom/home"),
			config.OptHarvestAllYears(true),
			config.OptHarvestSkipCreate(true),
			config.OptHarvestForce(true),
			config.OptRunDate(time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)),
		})

		// These fields should not be in ToOptions() output
		opts := cfg.ToOptions()
		newCfg := config.New()
		newCfg.Update(opts)

		// Runtime fields should remain at defaults in newCfg
		assert.Equal(t, "", newCfg.HomeDir)
		assert.False(t, newCfg.Harvest.AllYears)
		assert.False(t, newCfg.Harvest.SkipCreate)
		assert.False(t, newCfg.Harvest.Force)
		assert.NotEqual(t, 2001, newCfg.RunDate.Year())
	})
}
