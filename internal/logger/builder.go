package logger

import (
	"io"
	stdlog "log"

	"github.com/aleister1102/pathscan/internal/common"
	"github.com/aleister1102/pathscan/internal/config"
	"github.com/rs/zerolog"
)

// LoggerBuilder provides fluent interface for building loggers
type LoggerBuilder struct {
	config        LoggerConfig
	factory       *WriterFactory
	consoleOutput io.Writer
}

// NewLoggerBuilder creates a new logger builder
func NewLoggerBuilder() *LoggerBuilder {
	return &LoggerBuilder{
		config:  DefaultLoggerConfig(),
		factory: NewWriterFactory(),
	}
}

// WithConfig sets the logger configuration
func (lb *LoggerBuilder) WithConfig(cfg config.LogConfig) *LoggerBuilder {
	lb.config = FromLogConfig(cfg)
	return lb
}

// WithScanID sets the scan ID for organizing logs by scan session
func (lb *LoggerBuilder) WithScanID(scanID string) *LoggerBuilder {
	lb.config.ScanID = scanID
	return lb
}

// WithConsoleOutput redirects console logging, stderr by default.
func (lb *LoggerBuilder) WithConsoleOutput(w io.Writer) *LoggerBuilder {
	lb.consoleOutput = w
	return lb
}

// WithConsole enables or disables console logging.
func (lb *LoggerBuilder) WithConsole(enabled bool) *LoggerBuilder {
	lb.config.EnableConsole = enabled
	return lb
}

// WithLevel overrides the parsed level.
func (lb *LoggerBuilder) WithLevel(level zerolog.Level) *LoggerBuilder {
	lb.config.Level = level
	return lb
}

// Build creates the logger instance
func (lb *LoggerBuilder) Build() (zerolog.Logger, error) {
	if err := lb.validateConfig(); err != nil {
		return zerolog.Nop(), err
	}

	var writers []io.Writer
	if lb.config.EnableConsole {
		writers = append(writers, lb.factory.CreateConsoleWriter(lb.config.Format, lb.consoleOutput))
	}
	if lb.config.EnableFile {
		fw, err := lb.factory.CreateFileWriter(lb.config)
		if err != nil {
			return zerolog.Nop(), common.WrapError(err, "failed to create log file writer")
		}
		writers = append(writers, fw)
	}
	if len(writers) == 0 {
		// Quiet runs with no file still need a valid logger.
		return zerolog.Nop(), nil
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lb.config.Level).
		With().
		Timestamp().
		Logger()

	stdlog.SetOutput(logger)
	stdlog.SetFlags(0)

	return logger, nil
}

func (lb *LoggerBuilder) validateConfig() error {
	if lb.config.EnableFile && lb.config.FilePath == "" {
		return common.NewValidationError("file_path", lb.config.FilePath, "file path required when file logging enabled")
	}
	if lb.config.MaxSizeMB <= 0 {
		return common.NewValidationError("max_size_mb", lb.config.MaxSizeMB, "max size must be positive")
	}
	return nil
}

// New creates a logger from application config.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	return NewLoggerBuilder().WithConfig(cfg).Build()
}

// NewWithScanID creates a logger whose file output is grouped under the scan id.
func NewWithScanID(cfg config.LogConfig, scanID string) (zerolog.Logger, error) {
	return NewLoggerBuilder().WithConfig(cfg).WithScanID(scanID).Build()
}
