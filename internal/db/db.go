package db

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the database named by url. Supported schemes are
// postgres://, postgresql:// and sqlite://<path>.
func Open(url string, log *zap.SugaredLogger) (*gorm.DB, error) {
	dialector, err := dialectorFor(url)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewLogger(log, GormLevel(log.Level())),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func dialectorFor(url string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return postgres.Open(url), nil
	case strings.HasPrefix(url, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(url, "sqlite://")), nil
	}
	return nil, fmt.Errorf("unsupported database URL: %s", url)
}

// GormLevel maps a zap level onto GORM's coarser levels. SQL statements are
// only traced when debug logging is on.
func GormLevel(level zapcore.Level) logger.LogLevel {
	switch {
	case level <= zapcore.DebugLevel:
		return logger.Info
	case level <= zapcore.WarnLevel:
		return logger.Warn
	default:
		return logger.Error
	}
}
