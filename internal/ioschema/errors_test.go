package ioschema

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnmesh/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNotConnectedError_Structure verifies error structure.
func TestNotConnectedError_Structure(t *testing.T) {
	err := NotConnectedError()

	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
}

// TestGORMConnectionError_Structure verifies
// error structure.
func TestGORMConnectionError_Structure(t *testing.T) {
	originalErr := errors.New("connection failed")

	err := GORMConnectionError(originalErr)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.SchemaGORMConnectionError,
		gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}

func TestTableExistsError_Structure(t *testing.T) {
	err := TableExistsError([]string{"a_1", "b_1"})

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.SchemaTableExistsError, gnErr.Code)
	assert.Equal(t, []any{"a_1, b_1"}, gnErr.Vars)
}

func TestCreateSchemaError_Structure(t *testing.T) {
	originalErr := errors.New("permission denied")

	err := CreateSchemaError(originalErr)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.SchemaCreateError, gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}

func TestClearError_Structure(t *testing.T) {
	originalErr := errors.New("relation does not exist")

	tests := []struct {
		msg   string
		table string
		vars  []any
	}{
		{"one table", "mesh_qualifiers_x", []any{"mesh_qualifiers_x"}},
		{"transaction", "", nil},
	}

	for _, v := range tests {
		err := ClearError(v.table, originalErr)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, errcode.SchemaClearError, gnErr.Code, v.msg)
		assert.Equal(t, v.vars, gnErr.Vars, v.msg)
		assert.ErrorIs(t, gnErr.Err, originalErr, v.msg)
	}
}
