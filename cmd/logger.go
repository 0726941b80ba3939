package cmd

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/papapumpkin/skillarc/internal/config"
	"github.com/papapumpkin/skillarc/internal/telemetry"
)

// newLogger builds the diagnostic logger. With log_file set, JSON lines go
// to that file. Otherwise CLI commands log to stderr in console format and
// the TUI discards logs so they cannot corrupt the alternate screen.
func newLogger(cfg config.Config, interactive bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Verbose {
		level = zapcore.DebugLevel
	}

	var zc zap.Config
	switch {
	case cfg.LogFile != "":
		zc = zap.NewProductionConfig()
		zc.OutputPaths = []string{cfg.LogFile}
		zc.ErrorOutputPaths = []string{cfg.LogFile}
	case interactive:
		return zap.NewNop(), nil
	default:
		zc = zap.NewDevelopmentConfig()
		zc.DisableStacktrace = true
		if !cfg.Verbose {
			level = zapcore.WarnLevel
		}
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// newEmitter opens the telemetry file when one is configured and records
// the session start. A nil emitter is returned when telemetry is off.
func newEmitter(cfg config.Config, command string) (*telemetry.Emitter, error) {
	if cfg.TelemetryPath == "" {
		return nil, nil
	}
	em, err := telemetry.NewEmitter(cfg.TelemetryPath)
	if err != nil {
		return nil, err
	}
	if err := em.Emit(telemetry.Event{
		Kind: telemetry.KindSessionStart,
		Data: map[string]string{"command": command, "catalog": cfg.CatalogPath},
	}); err != nil {
		em.Close()
		return nil, err
	}
	return em, nil
}
