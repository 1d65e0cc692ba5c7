package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInitWriter_Levels(t *testing.T) {
	var buf bytes.Buffer

	InitWriter(&buf, false)
	log.Debug().Msg("hidden debug line")
	log.Info().Str("task_id", "7").Msg("visible info line")
	assert.NotContains(t, buf.String(), "hidden debug line")
	assert.Contains(t, buf.String(), "visible info line")
	assert.Contains(t, buf.String(), "task_id=")

	buf.Reset()
	InitWriter(&buf, true)
	t.Cleanup(func() { Init(false) })
	log.Debug().Msg("shown debug line")
	assert.Contains(t, buf.String(), "shown debug line")
}
