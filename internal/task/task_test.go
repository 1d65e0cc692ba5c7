package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Parallel()

	for _, st := range Statuses {
		got, err := ParseStatus(string(st))
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}

	_, err := ParseStatus("in_progress")
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	valid := Task{ID: 1, Name: "x", Status: StatusTodo, CreatedAt: created, UpdatedAt: created}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Task)
	}{
		{name: "zero id", mutate: func(t *Task) { t.ID = 0 }},
		{name: "blank name", mutate: func(t *Task) { t.Name = " \t" }},
		{name: "unknown status", mutate: func(t *Task) { t.Status = "blocked" }},
		{name: "updated before created", mutate: func(t *Task) { t.UpdatedAt = created.Add(-time.Second) }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			invalid := valid
			tt.mutate(&invalid)
			require.ErrorIs(t, invalid.Validate(), ErrInvalidTask)
		})
	}
}

func TestIDStrategyUnmarshalText(t *testing.T) {
	t.Parallel()

	var s IDStrategy
	require.NoError(t, s.UnmarshalText([]byte("length")))
	assert.Equal(t, IDStrategyLength, s)
	require.NoError(t, s.UnmarshalText(nil))
	assert.Equal(t, IDStrategyMax, s)
	require.Error(t, s.UnmarshalText([]byte("uuid")))
}
