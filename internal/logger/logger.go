// Package logger builds the zap logger shared by the server, its middleware
// and the gorm bridge.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger at level ("debug", "info", "warn", "error").
// format "console" gives colored development output, anything else JSON.
func New(level, format string) (*zap.Logger, zap.AtomicLevel, error) {
	atomicLevel := zap.NewAtomicLevel()
	if err := atomicLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, atomicLevel, fmt.Errorf("parse log level %q: %w", level, err)
	}

	var cfg zap.Config
	switch format {
	case "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = atomicLevel

	l, err := cfg.Build()
	if err != nil {
		return nil, atomicLevel, fmt.Errorf("build logger: %w", err)
	}
	return l, atomicLevel, nil
}
