// Package logger builds the shared zap logger. Every line carries the
// service name and hostname so multi-component logs stay attributable.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production JSON logger for the named service. Unknown
// level strings fall back to info.
func New(service, level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.With(
		zap.String("service", service),
		zap.String("hostname", hostname()),
	), nil
}

// NewNop returns a logger that discards everything, for tests.
func NewNop() *zap.Logger { return zap.NewNop() }

func hostname() string { h, _ := os.Hostname(); return h }
