package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClearCmd(t *testing.T) {
	cmd := getClearCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "clear", cmd.Use)
	assert.Contains(t, cmd.Long, "one transaction")

	dateFlag := cmd.Flags().Lookup("date")
	require.NotNil(t, dateFlag, "--date flag should exist")
	assert.Equal(t, "d", dateFlag.Shorthand)
}

func TestGetClearCmd_BadDate(t *testing.T) {
	cmd := getClearCmd()
	cmd.SetArgs([]string{"-d", "yesterday"})
	cmd.SetOut(new(bytes.Buffer))

	err := cmd.Execute()
	assertRunDateError(t, err)
}

func TestGetYearsCmd(t *testing.T) {
	cmd := getYearsCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "years", cmd.Use)
	assert.Contains(t, cmd.Long, "SQLite")
	assert.NotNil(t, cmd.RunE)
}
