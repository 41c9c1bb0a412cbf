// SPDX-License-Identifier: MIT

// Package logutil builds the zap logger used by the command line tool.
//
// Output goes to stderr unless Config.Filename is set, in which case a
// lumberjack rotating file is used. Format is "console" or "json".
package logutil

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Default logging settings.
const (
	DefaultLevel   = "info"
	DefaultFormat  = "console"
	DefaultMaxSize = 64 // megabytes
)

var (
	// ErrUnknownFormat is returned for a format other than console or json.
	ErrUnknownFormat = errors.New("logutil: unsupported log format")

	// ErrUnknownLevel is returned for an unparsable level name.
	ErrUnknownLevel = errors.New("logutil: unsupported log level")
)

// Config describes the logger.
type Config struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max-size"`
	MaxDays    int    `toml:"max-days"`
	MaxBackups int    `toml:"max-backups"`
}

// DefaultConfig logs info and above to stderr in console format.
func DefaultConfig() Config {
	return Config{Level: DefaultLevel, Format: DefaultFormat, MaxSize: DefaultMaxSize}
}

func (cfg Config) level() (zap.AtomicLevel, error) {
	if cfg.Level == "" {
		return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
	}
	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("%w: %q", ErrUnknownLevel, cfg.Level)
	}

	return zap.NewAtomicLevelAt(lvl), nil
}

func (cfg Config) encoder() (zapcore.Encoder, error) {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	switch cfg.Format {
	case "", "console":
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(ec), nil
	case "json":
		return zapcore.NewJSONEncoder(ec), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}
}

// syncer returns the sink and, for file output, its closer.
func (cfg Config) syncer() (zapcore.WriteSyncer, func() error) {
	if cfg.Filename == "" {
		return zapcore.Lock(os.Stderr), func() error { return nil }
	}
	lj := &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
	}

	return zapcore.AddSync(lj), lj.Close
}

// New builds a logger from cfg. The returned close function flushes and
// releases the log file; call it once the logger is no longer used.
func New(cfg Config) (*zap.Logger, func() error, error) {
	lvl, err := cfg.level()
	if err != nil {
		return nil, nil, err
	}
	enc, err := cfg.encoder()
	if err != nil {
		return nil, nil, err
	}
	ws, closeFn := cfg.syncer()

	logger := zap.New(zapcore.NewCore(enc, ws, lvl),
		zap.AddCaller(), zap.AddStacktrace(zapcore.FatalLevel))

	return logger, func() error {
		_ = logger.Sync()
		return closeFn()
	}, nil
}
