package logrus

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidOptions(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)

	_, err = New(Options{Format: "xml"})
	assert.Error(t, err)
}

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Output: &buf})
	require.NoError(t, err)

	logger.Info("Fetch issued", map[string]interface{}{
		"session_id": "abc",
		"source":     "parse",
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Fetch issued", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "abc", entry["session_id"])
	assert.Equal(t, "parse", entry["source"])
}

func TestLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Output: &buf})
	require.NoError(t, err)

	logger.Debug("hidden debug", nil)
	logger.Info("hidden info", nil)
	logger.Warn("shown warn", nil)
	logger.Error("shown error", map[string]interface{}{"error": "boom"})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown warn")
	assert.Contains(t, out, "shown error")
	assert.Contains(t, out, "error=boom")
}

func TestLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.log")
	var buf bytes.Buffer

	logger, err := New(Options{File: path, Output: &buf})
	require.NoError(t, err)
	logger.Info("to both", nil)
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "to both"))
	assert.Contains(t, buf.String(), "to both")
}
