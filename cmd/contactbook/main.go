// Package main is the entry point for the console contact book.
package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vyrodovalexey/contactbook/internal/config"
	"github.com/vyrodovalexey/contactbook/internal/console"
	"github.com/vyrodovalexey/contactbook/internal/metrics"
	"github.com/vyrodovalexey/contactbook/internal/model"
	"github.com/vyrodovalexey/contactbook/internal/store"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout))
}

func run(in io.Reader, out io.Writer) int {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Use a basic logger for startup errors
		basicLogger, _ := zap.NewProduction()
		basicLogger.Error("failed to load configuration", zap.Error(err))
		return 1
	}

	// Initialize logger
	logger, err := initLogger(cfg.LogLevel, cfg.LogOutputPaths())
	if err != nil {
		basicLogger, _ := zap.NewProduction()
		basicLogger.Error("failed to initialize logger", zap.Error(err))
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger = logger.With(zap.String("session_id", uuid.New().String()))

	logger.Info("configuration loaded",
		zap.String("log_level", cfg.LogLevel),
		zap.String("log_output", cfg.LogOutput),
		zap.Bool("seed_enabled", cfg.SeedEnabled),
		zap.Bool("metrics_enabled", cfg.MetricsEnabled),
	)

	var recorder *metrics.Recorder
	if cfg.MetricsEnabled {
		recorder = metrics.NewRecorder()
	}

	contactStore := store.NewMemoryStore(seedContacts(cfg)...)

	err = console.New(in, out, contactStore, logger, recorder).Run(context.Background())

	logSummary(logger, recorder)

	if err != nil {
		if errors.Is(err, console.ErrInputClosed) {
			logger.Warn("input closed before quit")
		} else {
			logger.Error("console stopped", zap.Error(err))
		}
		return 1
	}

	logger.Info("console stopped")
	return 0
}

// seedContacts returns the startup contacts for cfg.
func seedContacts(cfg *config.Config) []model.Contact {
	if !cfg.SeedEnabled {
		return nil
	}
	return store.DefaultContacts()
}

// logSummary writes the session metrics, if any were recorded.
func logSummary(logger *zap.Logger, recorder *metrics.Recorder) {
	if recorder == nil {
		return
	}

	summary, err := recorder.Summary()
	if err != nil {
		logger.Warn("failed to gather metrics", zap.Error(err))
		return
	}

	logger.Info("session summary", zap.Any("metrics", summary))
}

// initLogger initializes a zap logger with the specified log level writing
// to outputs. No outputs yields a no-op logger.
func initLogger(level string, outputs []string) (*zap.Logger, error) {
	if len(outputs) == 0 {
		return zap.NewNop(), nil
	}

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	zapConfig := zap.Config{
		Level:       zap.NewAtomicLevelAt(zapLevel),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "timestamp",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
	}

	return zapConfig.Build()
}
