package config

import (
	"slices"
	"strings"
	"time"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseCredentialsFile sets the path to a file with a connection
// string. The file is read during connection, not here.
func OptDatabaseCredentialsFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Credentials File", s) {
			c.Database.CredentialsFile = s
		}
	}
}

// OptDatabaseBatchSize sets the number of articles written in one
// transaction.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptSourceTable sets the table that contains PubMed IDs and years.
func OptSourceTable(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Source Table", s) {
			c.Source.Table = s
		}
	}
}

// OptSourceIDColumn sets the column with PubMed IDs.
func OptSourceIDColumn(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Source ID Column", s) {
			c.Source.IDColumn = s
		}
	}
}

// OptSourceYearColumn sets the column with publication years.
func OptSourceYearColumn(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Source Year Column", s) {
			c.Source.YearColumn = s
		}
	}
}

// OptSourceSQLitePath sets the path to a ChEMBL SQLite file.
func OptSourceSQLitePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Source SQLite Path", s) {
			c.Source.SQLitePath = s
		}
	}
}

// OptEntrezBaseURL sets the base URL of E-utilities.
func OptEntrezBaseURL(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "/")
	return func(c *Config) {
		if isValidURL("Entrez Base URL", s) {
			c.Entrez.BaseURL = s
		}
	}
}

// OptEntrezDatabase sets the Entrez database name.
func OptEntrezDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Entrez Database", s) {
			c.Entrez.Database = s
		}
	}
}

// OptEntrezEmail sets the contact email sent with every E-utilities
// request.
func OptEntrezEmail(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidEmail("Entrez Email", s) {
			c.Entrez.Email = s
		}
	}
}

// OptEntrezTool sets the tool name sent with every E-utilities request.
func OptEntrezTool(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Entrez Tool", s) {
			c.Entrez.Tool = s
		}
	}
}

// OptEntrezAPIKey sets the NCBI API key.
func OptEntrezAPIKey(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Entrez API Key", s) {
			c.Entrez.APIKey = s
		}
	}
}

// OptEntrezTimeout sets HTTP request timeout in seconds.
func OptEntrezTimeout(i int) Option {
	return func(c *Config) {
		if isValidInt("Entrez Timeout", i) {
			c.Entrez.Timeout = i
		}
	}
}

// OptEntrezFetchSize sets the number of records per EFetch request.
// Values above 10000 are rejected, NCBI does not serve more.
func OptEntrezFetchSize(i int) Option {
	return func(c *Config) {
		if isValidRange("Entrez Fetch Size", i, 1, 10_000) {
			c.Entrez.FetchSize = i
		}
	}
}

// OptTablesAnnotations sets the name template of the annotations table.
func OptTablesAnnotations(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidTemplate("Tables Annotations", s) {
			c.Tables.Annotations = s
		}
	}
}

// OptTablesDescriptors sets the name template of the descriptors table.
func OptTablesDescriptors(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidTemplate("Tables Descriptors", s) {
			c.Tables.Descriptors = s
		}
	}
}

// OptTablesQualifiers sets the name template of the qualifiers table.
func OptTablesQualifiers(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidTemplate("Tables Qualifiers", s) {
			c.Tables.Qualifiers = s
		}
	}
}

// OptTablesDateFormat sets the Go time layout used for the run date in
// table names.
func OptTablesDateFormat(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidDateFormat("Tables Date Format", s) {
			c.Tables.DateFormat = s
		}
	}
}

// OptHarvestYears sets years to harvest. Duplicates are removed, the
// order of the first occurrence is kept.
func OptHarvestYears(ii []int) Option {
	return func(c *Config) {
		if len(ii) == 0 {
			return
		}
		var res []int
		for _, v := range ii {
			if !isValidInt("Harvest Year", v) {
				return
			}
			if !slices.Contains(res, v) {
				res = append(res, v)
			}
		}
		c.Harvest.Years = res
	}
}

// OptHarvestAllYears requests all years available in the source.
// Runtime-only field - not in ToOptions().
func OptHarvestAllYears(b bool) Option {
	return func(c *Config) {
		c.Harvest.AllYears = b
	}
}

// OptHarvestSkipCreate reuses existing tables.
// Runtime-only field - not in ToOptions().
func OptHarvestSkipCreate(b bool) Option {
	return func(c *Config) {
		c.Harvest.SkipCreate = b
	}
}

// OptHarvestForce drops tables with the same names before creating them.
// Runtime-only field - not in ToOptions().
func OptHarvestForce(b bool) Option {
	return func(c *Config) {
		c.Harvest.Force = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptRunDate sets the date used in names of generated tables.
// Runtime-only field - not in ToOptions().
func OptRunDate(t time.Time) Option {
	return func(c *Config) {
		if !t.IsZero() {
			c.RunDate = t
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
