package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "casefile.log")

	logger, closer, err := New(Options{File: path, Level: "warn"})
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	logger.Warn().Str("op", "save").Msg("visible")
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "visible", entry["message"])
	assert.Equal(t, "save", entry["op"])
	assert.Equal(t, "warn", entry["level"])
}

func TestNew_Stderr(t *testing.T) {
	_, closer, err := New(Options{File: Stderr})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New(Options{File: Stderr, Level: "loud"})
	assert.Error(t, err)
}
