package cli

import (
	"os"

	"github.com/pankajredekar/commerce"
	"github.com/pankajredekar/commerce/internal/config"
	"github.com/pankajredekar/commerce/internal/db"
	"github.com/pankajredekar/commerce/internal/log"
	"github.com/pankajredekar/commerce/internal/runner"
	"github.com/pankajredekar/commerce/internal/scope"
	"github.com/pankajredekar/commerce/internal/utils"
	"github.com/pankajredekar/commerce/internal/versioner"
	_ "github.com/pankajredekar/commerce/migrations"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// env is what every database command needs
type env struct {
	cfg *config.Config
	db  *gorm.DB
	log *zap.SugaredLogger
	ver *versioner.Versioner
	run *runner.Runner
}

// mustSetup loads the config, connects and prepares the version table.
// Failures are printed and end the process.
func mustSetup(cmd *cobra.Command) *env {
	if !utils.FileExists(configPath) {
		utils.PrintError("%s not found. Run 'commerce init' first", configPath)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		utils.PrintError("Failed to load config: %v", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		utils.PrintError("Invalid config: %v", err)
		os.Exit(1)
	}

	logger, err := log.New(log.Config{Level: cfg.LogLevel, Filename: cfg.LogFile})
	if err != nil {
		utils.PrintError("Failed to create logger: %v", err)
		os.Exit(1)
	}

	gdb, err := db.Open(cfg.DatabaseURL, logger)
	if err != nil {
		utils.PrintError("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	ver := versioner.NewVersioner(gdb, cfg.MigrationTable)
	if err := ver.Initialize(cmd.Context()); err != nil {
		utils.PrintError("Failed to initialize version table: %v", err)
		os.Exit(1)
	}

	return &env{
		cfg: cfg,
		db:  gdb,
		log: logger,
		ver: ver,
		run: runner.NewRunner(gdb, commerce.GetGlobalRegistry(), ver, logger),
	}
}

// storeScope resolves --store, falling back to default_store_id
func (e *env) storeScope() scope.StoreScope {
	if storeID != 0 {
		return scope.ForStore(storeID)
	}
	if e.cfg.DefaultStoreID != 0 {
		return scope.ForStore(e.cfg.DefaultStoreID)
	}
	return scope.Unscoped()
}

func (e *env) close() {
	_ = e.log.Sync()
	if sqlDB, err := e.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
