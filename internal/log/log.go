package log

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where and how much the logger writes
type Config struct {
	Level      string
	Filename   string // Optional: JSON log file, rotated by lumberjack
	MaxBackups int
	NoCaller   bool
}

// ParseLevel parses a zap level name, defaulting to info when empty
func ParseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return l, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

// New builds a sugared logger writing console output to stderr and, when a
// filename is set, JSON lines to a rotated file
func New(cfg Config) (*zap.SugaredLogger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(encoder(false), zapcore.Lock(os.Stderr), level)
	if cfg.Filename != "" {
		fileCore := zapcore.NewCore(encoder(true), zapcore.AddSync(rotatingFile(cfg)), level)
		core = zapcore.NewTee(core, fileCore)
	}

	var opts []zap.Option
	opts = append(opts, zap.AddStacktrace(zap.DPanicLevel))
	if !cfg.NoCaller {
		opts = append(opts, zap.AddCaller())
	}

	return zap.New(core, opts...).Sugar(), nil
}

// Nop returns a logger that discards everything
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func encoder(jsonFormat bool) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	if jsonFormat {
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func rotatingFile(cfg Config) *lumberjack.Logger {
	maxBackups := cfg.MaxBackups
	if maxBackups == 0 {
		maxBackups = 5
	}
	return &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxBackups: maxBackups,
	}
}
