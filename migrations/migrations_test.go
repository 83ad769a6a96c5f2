package migrations_test

import (
	"context"
	"testing"

	"github.com/pankajredekar/commerce"
	"github.com/pankajredekar/commerce/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tables = []string{
	"commerce_stores",
	"commerce_product_option_templates",
	"commerce_product_options",
}

func TestRegistered(t *testing.T) {
	all := commerce.GetGlobalRegistry().GetAllMigrations()
	require.Len(t, all, 3)
	assert.Equal(t, "create_commerce_stores", all[0].Name())
	assert.Equal(t, "create_commerce_product_option_templates", all[1].Name())
	assert.Equal(t, "create_commerce_product_options", all[2].Name())
}

func TestMigrateCreatesTables(t *testing.T) {
	db := testutil.MigratedDB(t)

	for _, table := range tables {
		assert.True(t, db.Migrator().HasTable(table), "table %s", table)
	}
	assert.True(t, db.Migrator().HasColumn("commerce_product_option_templates", "options"))
	assert.True(t, db.Migrator().HasColumn("commerce_product_options", "template_id"))
}

func TestSimulationMatchesDatabase(t *testing.T) {
	ctx := context.Background()
	db := testutil.OpenDB(t)
	run := testutil.NewRunner(t, db)

	sim := run.SimulateSchema()
	for _, table := range tables {
		assert.True(t, sim.TableExists(table), "simulated table %s", table)
	}

	_, err := run.Migrate(ctx)
	require.NoError(t, err)

	drifts, err := run.Verify(ctx)
	require.NoError(t, err)
	assert.Empty(t, drifts)
}

func TestRollbackDropsTables(t *testing.T) {
	ctx := context.Background()
	db := testutil.OpenDB(t)
	run := testutil.NewRunner(t, db)

	_, err := run.Migrate(ctx)
	require.NoError(t, err)

	rolledBack, err := run.Rollback(ctx, len(tables))
	require.NoError(t, err)
	assert.Len(t, rolledBack, len(tables))

	for _, table := range tables {
		assert.False(t, db.Migrator().HasTable(table), "table %s", table)
	}

	pending, err := run.GetPendingMigrations(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, len(tables))
}

func TestNoForeignKeyOnTemplateID(t *testing.T) {
	db := testutil.MigratedDB(t)

	var count int64
	require.NoError(t, db.Raw("SELECT count(*) FROM pragma_foreign_key_list('commerce_product_options')").Scan(&count).Error)
	assert.Zero(t, count)
}
