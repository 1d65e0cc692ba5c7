package render

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/metalagman/tasktracker/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleTasks() []task.Task {
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return []task.Task{
		{ID: 1, Name: "buy milk", Status: task.StatusDone, CreatedAt: at, UpdatedAt: at.Add(time.Minute)},
		{ID: 2, Name: "clean house", Status: task.StatusTodo, CreatedAt: at, UpdatedAt: at},
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseFormat("csv")
	require.Error(t, err)
}

func TestTasks_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Tasks(&buf, sampleTasks(), FormatJSON))

	var decoded []task.Task
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleTasks(), decoded)
	assert.Contains(t, buf.String(), `"createdAt": "2026-03-01T09:00:00Z"`)
}

func TestTasks_EmptyJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Tasks(&buf, nil, FormatJSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestTasks_YAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Tasks(&buf, sampleTasks(), FormatYAML))

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "buy milk", decoded[0]["name"])
	assert.Equal(t, "done", decoded[0]["status"])
	assert.Equal(t, 2, decoded[1]["id"])
}

func TestTasks_Table(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Tasks(&buf, sampleTasks(), FormatTable))

	out := buf.String()
	for _, want := range []string{"ID", "STATUS", "NAME", "buy milk", "clean house", "done", "todo"} {
		assert.Contains(t, out, want)
	}
}

func TestTask_Single(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Task(&buf, sampleTasks()[0], FormatJSON))

	var decoded task.Task
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleTasks()[0], decoded)
}
