package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dustin/magento-config/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LogLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := &Logger{logger: zerolog.New(&buf).Level(zerolog.WarnLevel)}

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestLogger_AllLogLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := &Logger{logger: zerolog.New(&buf).Level(zerolog.DebugLevel)}

	testCases := []struct {
		level   string
		message string
		logFunc func(string)
	}{
		{"debug", "debug test message", logger.Debug},
		{"info", "info test message", logger.Info},
		{"warn", "warn test message", logger.Warn},
		{"error", "error test message", logger.Error},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			buf.Reset()
			tc.logFunc(tc.message)

			output := buf.String()
			assert.Contains(t, output, tc.message)
			assert.Contains(t, output, `"level":"`+tc.level+`"`)
		})
	}
}

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		name        string
		cfg         *config.LoggingConfig
		expectError string
	}{
		{
			name: "empty config uses defaults",
			cfg:  &config.LoggingConfig{},
		},
		{
			name: "console format",
			cfg:  &config.LoggingConfig{Level: "debug", Format: "console", ServiceName: "test-service"},
		},
		{
			name:        "invalid level",
			cfg:         &config.LoggingConfig{Level: "invalid-level"},
			expectError: "invalid log level",
		},
		{
			name:        "invalid format",
			cfg:         &config.LoggingConfig{Format: "xml"},
			expectError: "invalid log format",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := NewLogger(tc.cfg)
			if tc.expectError != "" {
				assert.Error(t, err)
				assert.Nil(t, logger)
				assert.Contains(t, err.Error(), tc.expectError)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestNewLogger_FileLogging(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, err := NewLogger(&config.LoggingConfig{
		Level:       "debug",
		Format:      "json",
		ServiceName: "test-service",
		Dir:         dir,
	})
	require.NoError(t, err)

	logger.Info("test log message")

	files, err := filepath.Glob(filepath.Join(dir, "test-service-*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	content, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "test log message")
	assert.Contains(t, string(content), `"service":"test-service"`)
	assert.Contains(t, string(content), `"level":"info"`)
}

func TestLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := &Logger{logger: zerolog.New(&buf).Level(zerolog.InfoLevel)}

	logger.WithComponent("transport").Info("component message")

	output := buf.String()
	assert.Contains(t, output, "component message")
	assert.Contains(t, output, `"component":"transport"`)
}

func TestLogger_WithObjectKeepsTokenOut(t *testing.T) {
	var buf bytes.Buffer
	logger := &Logger{logger: zerolog.New(&buf).Level(zerolog.InfoLevel)}

	magento := config.MagentoConfig{
		BaseURL:        "https://magento.test",
		BasePath:       "rest",
		StoreCode:      "all",
		Version:        "V1",
		AccessToken:    config.Secret("tok123"),
		Timeout:        30,
		ConnectTimeout: 10,
	}
	logger.WithObject("magento", magento).Info("configuration loaded")

	output := buf.String()
	assert.Contains(t, output, "configuration loaded")
	assert.Contains(t, output, `"magento":{"base_url":"https://magento.test"`)
	assert.NotContains(t, output, "tok123")
}
