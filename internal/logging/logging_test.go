package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/prepquest/internal/config"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(config.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Str("set", "interview-sheet").Msg("synced")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "synced", entry["message"])
	assert.Equal(t, "interview-sheet", entry["set"])
	assert.Contains(t, entry, "time")
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(config.LogConfig{Level: "warn", Format: "console"}, &buf)
	require.NoError(t, err)

	log.Info().Msg("quiet")
	log.Warn().Msg("sync failed")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "sync failed")
}

func TestNewBadLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "chatty", Format: "json"}, &bytes.Buffer{})
	assert.Error(t, err)
}
