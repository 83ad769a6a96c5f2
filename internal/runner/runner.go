package runner

import (
	"context"
	"fmt"
	"sort"

	"github.com/pankajredekar/commerce/internal/schema"
	"github.com/pankajredekar/commerce/internal/versioner"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migration interface that all migrations must implement
type Migration interface {
	Version() string
	Name() string
	Up(tx *gorm.DB) error
	Down(tx *gorm.DB) error
}

// Simulator is implemented by migrations that can describe their effect on
// the schema without a database
type Simulator interface {
	Simulate(b *schema.SchemaBuilder)
}

// Registry holds all registered migrations
type Registry struct {
	migrations map[string]Migration
}

// NewRegistry creates a new migration registry
func NewRegistry() *Registry {
	return &Registry{
		migrations: make(map[string]Migration),
	}
}

// RegisterMigration registers a migration. A second migration with the same
// version replaces the first.
func (r *Registry) RegisterMigration(m Migration) {
	r.migrations[m.Version()] = m
}

// GetMigration returns a migration by version
func (r *Registry) GetMigration(version string) (Migration, bool) {
	m, ok := r.migrations[version]
	return m, ok
}

// GetAllMigrations returns all migrations sorted by version
func (r *Registry) GetAllMigrations() []Migration {
	migrations := make([]Migration, 0, len(r.migrations))
	for _, m := range r.migrations {
		migrations = append(migrations, m)
	}
	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version() < migrations[j].Version()
	})
	return migrations
}

// Runner executes migrations
type Runner struct {
	db        *gorm.DB
	registry  *Registry
	versioner *versioner.Versioner
	log       *zap.SugaredLogger
}

// NewRunner creates a new migration runner
func NewRunner(db *gorm.DB, registry *Registry, versioner *versioner.Versioner, log *zap.SugaredLogger) *Runner {
	return &Runner{
		db:        db,
		registry:  registry,
		versioner: versioner,
		log:       log.Named("runner"),
	}
}

// Migrate applies all pending migrations. Each migration and its tracking
// row are committed together.
func (r *Runner) Migrate(ctx context.Context) ([]Migration, error) {
	pending, err := r.GetPendingMigrations(ctx)
	if err != nil {
		return nil, err
	}

	applied := make([]Migration, 0, len(pending))
	for _, m := range pending {
		r.log.Infow("applying migration", "version", m.Version(), "name", m.Name())
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := m.Up(tx); err != nil {
				return err
			}
			return r.versioner.WithDB(tx).RecordApplied(ctx, m.Version(), m.Name())
		})
		if err != nil {
			return applied, fmt.Errorf("failed to apply migration %s: %w", m.Version(), err)
		}
		applied = append(applied, m)
	}

	return applied, nil
}

// Rollback rolls back the last n applied migrations, newest first
func (r *Runner) Rollback(ctx context.Context, n int) ([]Migration, error) {
	if n <= 0 {
		return nil, fmt.Errorf("rollback count must be positive, got %d", n)
	}

	applied, err := r.versioner.GetAppliedVersions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get applied migrations: %w", err)
	}

	if len(applied) == 0 {
		return nil, fmt.Errorf("no migrations to rollback")
	}

	if n > len(applied) {
		n = len(applied)
	}

	var rolledBack []Migration
	for i := len(applied) - 1; i >= len(applied)-n; i-- {
		version := applied[i]
		m, ok := r.registry.GetMigration(version)
		if !ok {
			return rolledBack, fmt.Errorf("migration %s not found in registry", version)
		}

		r.log.Infow("rolling back migration", "version", m.Version(), "name", m.Name())
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := m.Down(tx); err != nil {
				return err
			}
			return r.versioner.WithDB(tx).RemoveApplied(ctx, version)
		})
		if err != nil {
			return rolledBack, fmt.Errorf("failed to rollback migration %s: %w", version, err)
		}
		rolledBack = append(rolledBack, m)
	}

	return rolledBack, nil
}

// GetPendingMigrations returns migrations that haven't been applied
func (r *Runner) GetPendingMigrations(ctx context.Context) ([]Migration, error) {
	applied, err := r.versioner.GetAppliedVersions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get applied migrations: %w", err)
	}

	appliedMap := make(map[string]bool)
	for _, v := range applied {
		appliedMap[v] = true
	}

	var pending []Migration
	for _, m := range r.registry.GetAllMigrations() {
		if !appliedMap[m.Version()] {
			pending = append(pending, m)
		}
	}

	return pending, nil
}

// GetAppliedMigrations returns registered migrations that have been applied
func (r *Runner) GetAppliedMigrations(ctx context.Context) ([]Migration, error) {
	applied, err := r.versioner.GetAppliedVersions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get applied migrations: %w", err)
	}

	var migrations []Migration
	for _, v := range applied {
		if m, ok := r.registry.GetMigration(v); ok {
			migrations = append(migrations, m)
		} else {
			r.log.Warnw("applied migration is not registered", "version", v)
		}
	}

	return migrations, nil
}

// SimulateSchema folds every registered migration into an in-memory schema
func (r *Runner) SimulateSchema() *schema.SchemaBuilder {
	builder := schema.NewSchemaBuilder()
	for _, m := range r.registry.GetAllMigrations() {
		sim, ok := m.(Simulator)
		if !ok {
			r.log.Debugw("migration has no simulation", "version", m.Version())
			continue
		}
		sim.Simulate(builder)
	}
	return builder
}
