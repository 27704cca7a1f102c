package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the debug logger. Without a path it returns a no-op
// logger so nothing is written over the terminal UI.
func (l LogConfig) NewLogger() (*zap.Logger, error) {
	if l.Path == "" {
		return zap.NewNop(), nil
	}

	level := zapcore.InfoLevel
	if l.Level != "" {
		if err := level.UnmarshalText([]byte(l.Level)); err != nil {
			return nil, &InvalidConfig{fmt.Sprintf("unknown log level %q", l.Level)}
		}
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{l.Path}
	cfg.ErrorOutputPaths = []string{l.Path}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to open log %s: %w", l.Path, err)
	}
	return logger, nil
}
