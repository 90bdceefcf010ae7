package fileops

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertOpError checks that err is an OpError of the given kind with the
// exact message.
func assertOpError(t *testing.T, err error, kind ErrorKind, message string) {
	t.Helper()
	var opErr *OpError
	require.Error(t, err)
	require.True(t, errors.As(err, &opErr), "expected OpError, got %T: %v", err, err)
	assert.Equal(t, kind, opErr.Kind)
	assert.Equal(t, message, opErr.Message)
}

func TestOpErrorMessageIsVerbatim(t *testing.T) {
	err := notFoundf("Path does not exist: %s", "/tmp/x")
	assert.Equal(t, "Path does not exist: /tmp/x", err.Error())
}

func TestOpErrorSurvivesWrapping(t *testing.T) {
	inner := wrongKindf("Path is not a file: %s", "/tmp/d")
	wrapped := fmt.Errorf("walking tree: %w", inner)

	var opErr *OpError
	require.True(t, errors.As(wrapped, &opErr))
	assert.Equal(t, ErrWrongKind, opErr.Kind)
}
