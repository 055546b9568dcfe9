package config

import (
	"fmt"
	"maps"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/gnames/gn"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, RunDate, AllYears, SkipCreate,
// Force).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int
	s = c.Database.Host
	if s != "" {
		res = append(res, OptDatabaseHost(s))
	}
	i = c.Database.Port
	if i > 0 {
		res = append(res, OptDatabasePort(i))
	}
	s = c.Database.User
	if s != "" {
		res = append(res, OptDatabaseUser(s))
	}
	s = c.Database.Password
	if s != "" {
		res = append(res, OptDatabasePassword(s))
	}
	s = c.Database.Database
	if s != "" {
		res = append(res, OptDatabaseDatabase(s))
	}
	s = c.Database.SSLMode
	if s != "" {
		res = append(res, OptDatabaseSSLMode(s))
	}
	s = c.Database.CredentialsFile
	if s != "" {
		res = append(res, OptDatabaseCredentialsFile(s))
	}
	i = c.Database.BatchSize
	if i > 0 {
		res = append(res, OptDatabaseBatchSize(i))
	}

	s = c.Source.Table
	if s != "" {
		res = append(res, OptSourceTable(s))
	}
	s = c.Source.IDColumn
	if s != "" {
		res = append(res, OptSourceIDColumn(s))
	}
	s = c.Source.YearColumn
	if s != "" {
		res = append(res, OptSourceYearColumn(s))
	}
	s = c.Source.SQLitePath
	if s != "" {
		res = append(res, OptSourceSQLitePath(s))
	}

	s = c.Entrez.BaseURL
	if s != "" {
		res = append(res, OptEntrezBaseURL(s))
	}
	s = c.Entrez.Database
	if s != "" {
		res = append(res, OptEntrezDatabase(s))
	}
	s = c.Entrez.Email
	if s != "" {
		res = append(res, OptEntrezEmail(s))
	}
	s = c.Entrez.Tool
	if s != "" {
		res = append(res, OptEntrezTool(s))
	}
	s = c.Entrez.APIKey
	if s != "" {
		res = append(res, OptEntrezAPIKey(s))
	}
	i = c.Entrez.Timeout
	if i > 0 {
		res = append(res, OptEntrezTimeout(i))
	}
	i = c.Entrez.FetchSize
	if i > 0 {
		res = append(res, OptEntrezFetchSize(i))
	}

	s = c.Tables.Annotations
	if s != "" {
		res = append(res, OptTablesAnnotations(s))
	}
	s = c.Tables.Descriptors
	if s != "" {
		res = append(res, OptTablesDescriptors(s))
	}
	s = c.Tables.Qualifiers
	if s != "" {
		res = append(res, OptTablesQualifiers(s))
	}
	s = c.Tables.DateFormat
	if s != "" {
		res = append(res, OptTablesDateFormat(s))
	}

	if len(c.Harvest.Years) > 0 {
		res = append(res, OptHarvestYears(c.Harvest.Years))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidRange(name string, i, min, max int) bool {
	res := i >= min && i <= max
	if !res {
		gn.Warn(
			"<em>%s</em> has to be between %d and %d, ignoring %d",
			name, min, max, i,
		)
	}
	return res
}

func isValidURL(name, s string) bool {
	u, err := url.Parse(s)
	res := err == nil && (u.Scheme == "http" || u.Scheme == "https") &&
		u.Host != ""
	if !res {
		gn.Warn("<em>%s</em> is not a valid URL, ignoring '%s'", name, s)
	}
	return res
}

func isValidEmail(name, s string) bool {
	user, host, ok := strings.Cut(s, "@")
	res := ok && user != "" && host != "" && !strings.ContainsAny(s, " ,")
	if !res {
		gn.Warn("<em>%s</em> is not a valid email, ignoring '%s'", name, s)
	}
	return res
}

// isValidTemplate checks that a table name template has exactly one '%s'
// and produces a plain SQL identifier.
func isValidTemplate(name, s string) bool {
	res := strings.Count(s, "%s") == 1 && strings.Count(s, "%") == 1
	if res {
		res = identRe.MatchString(strings.Replace(s, "%s", "x", 1))
	}
	if !res {
		gn.Warn(
			"<em>%s</em> must be a table name with one '%%s' "+
				"placeholder, ignoring '%s'",
			name, s,
		)
	}
	return res
}

// isValidDateFormat checks that a time layout contains date elements and
// produces characters allowed in table names.
func isValidDateFormat(name, s string) bool {
	sample := time.Date(2013, time.November, 25, 0, 0, 0, 0, time.UTC)
	formatted := sample.Format(s)
	res := s != "" && formatted != s && identRe.MatchString("x"+formatted)
	if !res {
		gn.Warn(
			"<em>%s</em> is not a usable date layout, ignoring '%s'",
			name, s,
		)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Database.SSLMode": {"disable": s, "require": s,
			"verify-ca": s, "verify-full": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	} else {
		gn.Warn(
			"<em>%s</em> does not support '%s' as a value. "+
				"Valid values are: \n%s\nIgnoring...",
			name, val, strings.Join(lines, "\n"),
		)
		return false
	}
}
