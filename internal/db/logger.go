package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowThreshold = 200 * time.Millisecond

type zapLogger struct {
	log   *zap.SugaredLogger
	level logger.LogLevel
}

// NewLogger adapts a zap logger to GORM's logger interface
func NewLogger(log *zap.SugaredLogger, level logger.LogLevel) logger.Interface {
	return &zapLogger{log: log.Named("gorm"), level: level}
}

func (l *zapLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &zapLogger{log: l.log, level: level}
}

func (l *zapLogger) Info(_ context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Info {
		l.log.Infof(msg, data...)
	}
}

func (l *zapLogger) Warn(_ context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Warn {
		l.log.Warnf(msg, data...)
	}
}

func (l *zapLogger) Error(_ context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Error {
		l.log.Errorf(msg, data...)
	}
}

func (l *zapLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		l.log.Errorw("query failed", "sql", sql, "rows", rows, "elapsed", elapsed, "error", err)
	case elapsed > slowThreshold && l.level >= logger.Warn:
		sql, rows := fc()
		l.log.Warnw(fmt.Sprintf("slow query >= %v", slowThreshold), "sql", sql, "rows", rows, "elapsed", elapsed)
	case l.level >= logger.Info:
		sql, rows := fc()
		l.log.Debugw("query", "sql", sql, "rows", rows, "elapsed", elapsed)
	}
}
