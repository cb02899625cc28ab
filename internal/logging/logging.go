// Package logging builds the zap loggers used by the studio front ends.
package logging

import (
	"strings"

	"github.com/wesen/studio/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger from cfg. When cfg.File is empty, fallback decides
// where output goes ("stderr", or "" to discard everything).
func New(cfg config.LogConfig, fallback string) (*zap.Logger, error) {
	output := cfg.File
	if output == "" {
		output = fallback
	}
	if output == "" {
		return zap.NewNop(), nil
	}

	var zapConfig zap.Config
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	zapConfig.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))
	zapConfig.OutputPaths = []string{output}
	zapConfig.ErrorOutputPaths = []string{output}

	return zapConfig.Build()
}

// ParseLevel maps a config level name to a zap level. Unknown names are info.
func ParseLevel(name string) zapcore.Level {
	switch strings.ToLower(name) {
	case "debug":
		return zap.DebugLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
