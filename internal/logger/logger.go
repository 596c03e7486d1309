package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps the zap logger with additional functionality
type Logger struct {
	*zap.Logger
}

// NewLogger creates a new logger instance with production configuration
// writing to stdout at info level.
func NewLogger() (*Logger, error) {
	return NewLoggerWithConfig("info", []string{"stdout"})
}

// NewLoggerWithConfig creates a logger at the given level writing to the given paths.
// The terminal UI passes a file path here so log lines never land on the screen.
func NewLoggerWithConfig(level string, outputPaths []string) (*Logger, error) {
	config := zap.NewProductionConfig()

	config.OutputPaths = outputPaths
	config.ErrorOutputPaths = []string{"stderr"}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	config.Level = zap.NewAtomicLevelAt(lvl)

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{
		Logger: zapLogger,
	}, nil
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	if l.Logger != nil {
		return l.Logger.Sync()
	}

	return nil
}
