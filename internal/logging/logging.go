// Package logging builds the exporter's zap logger with an optional rotating file sink.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configure the logger.
type Options struct {
	Level string
	// Filename enables the rotating file sink when set.
	Filename string
	// MaxSize is the file size in megabytes that triggers rotation.
	MaxSize int
	// MaxBackups is the number of rotated files kept.
	MaxBackups int
	Compress   bool
	// Console receives human-readable output; defaults to stderr.
	Console zapcore.WriteSyncer
}

// New builds a logger writing to the console and, if configured, to a rotating file.
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	console := opts.Console
	if console == nil {
		console = zapcore.Lock(os.Stderr)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), console, level),
	}
	if opts.Filename != "" {
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), RotatingSyncer(opts), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// RotatingSyncer returns a write syncer backed by lumberjack.
func RotatingSyncer(opts Options) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   opts.Filename,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		Compress:   opts.Compress,
	})
}
