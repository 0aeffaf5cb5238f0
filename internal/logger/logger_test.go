package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/pathscan/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultLogger(t *testing.T) {
	_, err := New(config.NewDefaultLogConfig())
	require.NoError(t, err)
}

func TestLoggerBuilder_JSONConsole(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewDefaultLogConfig()
	cfg.LogFormat = "json"
	cfg.LogLevel = "warn"

	log, err := NewLoggerBuilder().WithConfig(cfg).WithConsoleOutput(&buf).Build()
	require.NoError(t, err)

	log.Info().Msg("dropped")
	log.Warn().Str("component", "Scanner").Msg("kept")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "kept", line["message"])
	assert.Equal(t, "Scanner", line["component"])
	assert.Equal(t, "warn", line["level"])
}

func TestLoggerBuilder_FileWithScanID(t *testing.T) {
	dir := t.TempDir()
	cfg := config.NewDefaultLogConfig()
	cfg.LogFile = filepath.Join(dir, "pathscan.log")
	cfg.LogFormat = "json"
	cfg.UseSubdirs = true

	log, err := NewLoggerBuilder().WithConfig(cfg).WithScanID("20260101-000000").WithConsole(false).Build()
	require.NoError(t, err)
	log.Info().Msg("hello file")

	data, err := os.ReadFile(filepath.Join(dir, "scans", "20260101-000000", "pathscan.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}

func TestLoggerBuilder_NoWritersIsNop(t *testing.T) {
	log, err := NewLoggerBuilder().WithConsole(false).Build()
	require.NoError(t, err)
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestParseLevelAndFormat(t *testing.T) {
	level, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, level)

	level, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)

	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatText, ParseFormat("TEXT"))
	assert.Equal(t, FormatConsole, ParseFormat("other"))
}

func TestBuildLogPath(t *testing.T) {
	lc := LoggerConfig{FilePath: "logs/app.log", UseSubdirs: true, ScanID: "abc"}
	assert.Equal(t, filepath.Join("logs", "scans", "abc", "app.log"), BuildLogPath(lc))

	lc.UseSubdirs = false
	assert.Equal(t, "logs/app.log", BuildLogPath(lc))
}
