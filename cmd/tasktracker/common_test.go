package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/metalagman/tasktracker/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	id, err := parseID(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	for _, raw := range []string{"", "x", "-1", "0", "1.5"} {
		_, err := parseID(raw)
		var usage usageError
		assert.True(t, errors.As(err, &usage), "parseID(%q) should be a usage error", raw)
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{err: nil, want: 0},
		{err: errors.New("boom"), want: exitFailure},
		{err: usageError{err: errors.New("bad")}, want: exitUsage},
		{err: fmt.Errorf("wrap: %w", task.ErrInvalidStatus), want: exitUsage},
		{err: fmt.Errorf("%w: 3", task.ErrNotFound), want: exitNotFound},
		{err: fmt.Errorf("Error adding task: %w", task.ErrReadWrite), want: exitStorage},
		{err: task.ErrUnreadable, want: exitStorage},
		{err: task.ErrLocked, want: exitStorage},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, exitCode(tt.err), "exitCode(%v)", tt.err)
	}
}

func TestJoinArgs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "clean the house", joinArgs([]string{"clean", "the", "house"}))
	assert.Equal(t, "", joinArgs([]string{" "}))
}
