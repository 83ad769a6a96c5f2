// Package testutil opens migrated in-memory databases for tests.
package testutil

import (
	"context"
	"testing"

	"github.com/pankajredekar/commerce"
	"github.com/pankajredekar/commerce/internal/db"
	"github.com/pankajredekar/commerce/internal/log"
	"github.com/pankajredekar/commerce/internal/runner"
	"github.com/pankajredekar/commerce/internal/versioner"
	_ "github.com/pankajredekar/commerce/migrations"
	"gorm.io/gorm"
)

const MigrationTable = "_test_commerce_migrations"

// OpenDB returns an empty in-memory SQLite database. The pool is held to one
// connection so every query sees the same database.
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()

	gdb, err := db.Open("sqlite://:memory:", log.Nop())
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb
}

// NewRunner returns a runner over the registered commerce migrations
func NewRunner(t testing.TB, gdb *gorm.DB) *runner.Runner {
	t.Helper()

	ver := versioner.NewVersioner(gdb, MigrationTable)
	if err := ver.Initialize(context.Background()); err != nil {
		t.Fatalf("Failed to initialize version table: %v", err)
	}
	return runner.NewRunner(gdb, commerce.GetGlobalRegistry(), ver, log.Nop())
}

// MigratedDB returns an in-memory database with every migration applied
func MigratedDB(t testing.TB) *gorm.DB {
	t.Helper()

	gdb := OpenDB(t)
	if _, err := NewRunner(t, gdb).Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return gdb
}
