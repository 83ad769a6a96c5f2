package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pankajredekar/commerce/internal/log"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFile           = "commerce.yml"
	DefaultMigrationTable = "_commerce_migrations"
	DatabaseURLEnv        = "COMMERCE_DATABASE_URL"
)

type Config struct {
	DatabaseURL    string `yaml:"database_url"`
	MigrationTable string `yaml:"migration_table"`
	LogLevel       string `yaml:"log_level"`
	LogFile        string `yaml:"log_file"`         // Optional: JSON log file next to console output
	DefaultStoreID uint   `yaml:"default_store_id"` // Optional: store scope used when --store is not given
}

// Default returns the configuration written by `commerce init`
func Default() *Config {
	return &Config{
		DatabaseURL:    "sqlite://commerce.db",
		MigrationTable: DefaultMigrationTable,
		LogLevel:       "info",
	}
}

func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if url := os.Getenv(DatabaseURLEnv); url != "" {
		cfg.DatabaseURL = url
	}

	// Set defaults
	if cfg.MigrationTable == "" {
		cfg.MigrationTable = DefaultMigrationTable
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	// Resolve relative paths
	if cfg.LogFile != "" && !filepath.IsAbs(cfg.LogFile) {
		cfg.LogFile = filepath.Join(filepath.Dir(configPath), cfg.LogFile)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("database_url is required")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Write stores the configuration as YAML at path
func (c *Config) Write(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
