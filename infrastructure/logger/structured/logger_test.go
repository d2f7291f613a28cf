package structured

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger(Options{})

	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}
	if logger.entry == nil {
		t.Error("Logger entry not initialized")
	}
}

func TestLogger_LogMethods(t *testing.T) {
	logger := NewLogger(Options{Level: "debug", Output: &bytes.Buffer{}})

	// Test that methods don't panic
	t.Run("Debug", func(t *testing.T) {
		logger.Debug("test debug", nil)
		logger.Debug("test debug with fields", map[string]interface{}{
			"key": "value",
			"num": 42,
		})
	})

	t.Run("Info", func(t *testing.T) {
		logger.Info("test info", nil)
		logger.Info("test info with fields", map[string]interface{}{
			"session_id": "abc",
		})
	})

	t.Run("Warn", func(t *testing.T) {
		logger.Warn("test warn", nil)
		logger.Warn("test warn with fields", map[string]interface{}{
			"error": "something wrong",
		})
	})

	t.Run("Error", func(t *testing.T) {
		logger.Error("test error", nil)
		logger.Error("test error with fields", map[string]interface{}{
			"code": 500,
		})
	})
}

func TestLogger_JSONOutputCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Output: &buf})

	logger.Info("Analysis completed", map[string]interface{}{
		"keywords": 7,
		"label":    "positive",
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Analysis completed", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, float64(7), entry["keywords"])
	assert.Equal(t, "positive", entry["label"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Level: "warn", Output: &buf})

	logger.Debug("hidden debug", nil)
	logger.Info("hidden info", nil)
	logger.Warn("visible warn", nil)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible warn")
}

func TestLogger_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Level: "chatty", Output: &buf})

	logger.Debug("hidden", nil)
	logger.Info("shown", nil)

	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Output: &buf, Format: "text"}).With(map[string]interface{}{
		"component": "fetcher",
	})

	logger.Info("fetched", nil)

	assert.Contains(t, buf.String(), "component=fetcher")
}
