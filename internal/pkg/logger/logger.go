package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is the application logger. It writes structured JSON to stdout
// and optionally to a log file.
type ZapLogger struct {
	*zap.Logger
	sugar *zap.SugaredLogger
	file  *os.File
}

// Config holds logger configuration
type Config struct {
	Level    string `json:"level"`
	FilePath string `json:"file_path"` // empty disables file output
	Service  string `json:"service"`
}

// NewZapLogger creates a new application logger
func NewZapLogger(config Config) (*ZapLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	}

	var file *os.File
	if config.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(config.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		file = f
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(f), level))
	}

	zl := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	if config.Service != "" {
		zl = zl.With(zap.String("service", config.Service))
	}

	return &ZapLogger{
		Logger: zl,
		sugar:  zl.Sugar(),
		file:   file,
	}, nil
}

// WithFields returns a logger with additional fields
func (l *ZapLogger) WithFields(fields map[string]interface{}) *zap.Logger {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return l.Logger.With(zapFields...)
}

// WithError returns a logger with an error field
func (l *ZapLogger) WithError(err error) *zap.Logger {
	return l.Logger.With(zap.Error(err))
}

// Sugar returns the sugared logger
func (l *ZapLogger) Sugar() *zap.SugaredLogger {
	return l.sugar
}

// Close flushes buffered entries and releases the log file, if any
func (l *ZapLogger) Close() error {
	_ = l.Logger.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
