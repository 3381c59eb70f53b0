// Package logger builds the zap logger shared by the server, the CLI and
// the booking consumer.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production JSON logger when production is true and a
// colored development logger otherwise.
func New(production bool) (*zap.Logger, error) {
	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg.Build()
}

// Must is like New but falls back to a no-op logger when the configured
// sinks cannot be opened.
func Must(production bool) *zap.Logger {
	l, err := New(production)
	if err != nil {
		return zap.NewNop()
	}
	return l
}
