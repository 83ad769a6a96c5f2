// Package commerce holds the migration registry for the commerce tables.
// Migrations in the migrations package register themselves here from init.
package commerce

import (
	"github.com/pankajredekar/commerce/internal/runner"
	"github.com/pankajredekar/commerce/internal/schema"
)

// Migration interface that all migrations must implement
type Migration = runner.Migration

// SchemaBuilder is exported for use in migrations
type SchemaBuilder = schema.SchemaBuilder

var globalRegistry = runner.NewRegistry()

// RegisterMigration registers a migration in the global registry
func RegisterMigration(m Migration) {
	globalRegistry.RegisterMigration(m)
}

// GetGlobalRegistry returns the global registry
func GetGlobalRegistry() *runner.Registry {
	return globalRegistry
}
