package main

import (
	"os"
	"testing"

	"github.com/metalagman/tasktracker/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_CreatesFiles(t *testing.T) {
	c := newCLI(t)

	assert.Equal(t, "tasktracker initialized successfully\n", c.mustRun("init"))

	data, err := os.ReadFile(c.file)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	cfgData, err := os.ReadFile(c.cfgFile)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultYAML, string(cfgData))

	assert.Empty(t, c.list())
}

func TestInit_KeepsExistingFiles(t *testing.T) {
	c := newCLI(t)
	c.mustRun("add", "existing")
	require.NoError(t, os.WriteFile(c.cfgFile, []byte("id_strategy: length\n"), 0o644))

	c.mustRun("init")

	items := c.list()
	require.Len(t, items, 1)
	assert.Equal(t, "existing", items[0].Name)

	cfgData, err := os.ReadFile(c.cfgFile)
	require.NoError(t, err)
	assert.Equal(t, "id_strategy: length\n", string(cfgData))
}
