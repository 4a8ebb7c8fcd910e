package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/magento-config/config"
	"github.com/rs/zerolog"
)

const defaultServiceName = "magento-config"

type Logger struct {
	logger zerolog.Logger
}

// NewLogger creates a structured logger with validation and defaults.
// Output goes to stderr so stdout stays free for command output.
func NewLogger(cfg *config.LoggingConfig) (*Logger, error) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}

	format := cfg.Format
	if format == "" {
		format = "json"
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	// Validate log level early to fail fast
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level '%s': %v", level, err)
	}

	var output io.Writer
	switch format {
	case "console":
		output = zerolog.ConsoleWriter{
			Out:     os.Stderr,
			NoColor: false,
		}
	case "json":
		output = os.Stderr
		if cfg.Dir != "" {
			file, err := openLogFile(cfg.Dir, serviceName)
			if err != nil {
				return nil, err
			}
			output = io.MultiWriter(os.Stderr, file)
		}
	default:
		return nil, fmt.Errorf("invalid log format '%s': expected json or console", format)
	}

	logger := zerolog.New(output).
		Level(logLevel).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()

	return &Logger{logger: logger}, nil
}

func openLogFile(dir, serviceName string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	logFile := filepath.Join(dir, fmt.Sprintf("%s-%s.log", serviceName, time.Now().Format("2006-01-02")))
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}
	return file, nil
}

func (l *Logger) Debug(msg string) {
	l.logger.Debug().Msg(msg)
}

func (l *Logger) Info(msg string) {
	l.logger.Info().Msg(msg)
}

func (l *Logger) Warn(msg string) {
	l.logger.Warn().Msg(msg)
}

func (l *Logger) Error(msg string) {
	l.logger.Error().Msg(msg)
}

func (l *Logger) Fatal(msg string) {
	l.logger.Fatal().Msg(msg)
}

// WithComponent returns a logger instance with component context
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		logger: l.logger.With().Str("component", component).Logger(),
	}
}

// WithObject attaches a value that knows how to log itself, such as a
// MagentoConfig, which keeps secrets out of the output
func (l *Logger) WithObject(key string, obj zerolog.LogObjectMarshaler) *Logger {
	return &Logger{
		logger: l.logger.With().Object(key, obj).Logger(),
	}
}
