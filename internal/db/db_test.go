package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestOpenSQLite(t *testing.T) {
	db, err := Open("sqlite://:memory:", zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	var one int
	if err := db.Raw("SELECT 1").Scan(&one).Error; err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if one != 1 {
		t.Errorf("Expected 1, got %d", one)
	}
}

func TestOpenUnsupportedURL(t *testing.T) {
	if _, err := Open("mysql://localhost/shop", zap.NewNop().Sugar()); err == nil {
		t.Error("Open should reject unsupported schemes")
	}
}

func TestDialectorFor(t *testing.T) {
	for _, url := range []string{"postgres://localhost/shop", "postgresql://localhost/shop", "sqlite://shop.db"} {
		if _, err := dialectorFor(url); err != nil {
			t.Errorf("dialectorFor(%q) failed: %v", url, err)
		}
	}
}

func TestGormLevel(t *testing.T) {
	if GormLevel(zapcore.DebugLevel) != logger.Info {
		t.Error("debug should trace SQL")
	}
	if GormLevel(zapcore.InfoLevel) != logger.Warn {
		t.Error("info should only report slow queries")
	}
	if GormLevel(zapcore.ErrorLevel) != logger.Error {
		t.Error("error should only report failures")
	}
}

func TestLoggerTrace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewLogger(zap.New(core).Sugar(), logger.Info)
	ctx := context.Background()
	query := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(ctx, time.Now(), query, nil)
	l.Trace(ctx, time.Now(), query, errors.New("boom"))
	l.Trace(ctx, time.Now(), query, gorm.ErrRecordNotFound)
	l.Trace(ctx, time.Now().Add(-time.Second), query, nil)

	entries := logs.All()
	if len(entries) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(entries))
	}
	if entries[0].Level != zapcore.DebugLevel {
		t.Errorf("Expected debug entry for plain query, got %v", entries[0].Level)
	}
	if entries[1].Level != zapcore.ErrorLevel {
		t.Errorf("Expected error entry for failed query, got %v", entries[1].Level)
	}
	if entries[2].Level != zapcore.DebugLevel {
		t.Errorf("Record not found should not be logged as an error, got %v", entries[2].Level)
	}
	if entries[3].Level != zapcore.WarnLevel {
		t.Errorf("Expected warn entry for slow query, got %v", entries[3].Level)
	}
}

func TestLoggerSilent(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewLogger(zap.New(core).Sugar(), logger.Info).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("boom"))
	l.Error(context.Background(), "boom %d", 1)

	if logs.Len() != 0 {
		t.Errorf("Silent logger should not write, got %d entries", logs.Len())
	}
}
