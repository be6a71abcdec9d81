package app

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a file logger when TWIG_LOG names a path. The terminal
// belongs to the UI, so without the variable logging is disabled entirely.
func newLogger() *zap.Logger {
	logPath := os.Getenv("TWIG_LOG")
	if logPath == "" {
		return zap.NewNop()
	}

	config := zap.NewProductionConfig()
	config.OutputPaths = []string{logPath}
	config.ErrorOutputPaths = []string{logPath}

	if level := os.Getenv("TWIG_LOG_LEVEL"); level != "" {
		var l zapcore.Level
		if err := l.UnmarshalText([]byte(level)); err == nil {
			config.Level = zap.NewAtomicLevelAt(l)
		}
	}

	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
