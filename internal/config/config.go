package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	DataDir  string   `json:"data_dir" mapstructure:"data_dir"`
	Seed     int64    `json:"seed" mapstructure:"seed"`
	Counts   Counts   `json:"counts" mapstructure:"counts"`
	Database Database `json:"database" mapstructure:"database"`
}

type Counts struct {
	Customers int `json:"customers" mapstructure:"customers"`
	Products  int `json:"products" mapstructure:"products"`
	Orders    int `json:"orders" mapstructure:"orders"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

// DefaultDatabaseURL is used for the sqlite provider when the URL
// environment variable is not set.
const DefaultDatabaseURL = "sqlite://ecom.db"

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if !viper.IsSet("seed") && cfg.Seed == 0 {
		cfg.Seed = 42
	}
	if cfg.Counts.Customers == 0 {
		cfg.Counts.Customers = 250
	}
	if cfg.Counts.Products == 0 {
		cfg.Counts.Products = 300
	}
	if cfg.Counts.Orders == 0 {
		cfg.Counts.Orders = 500
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "sqlite"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL != "" {
		return dbURL, nil
	}

	switch c.Database.Provider {
	case "sqlite", "sqlite3":
		return DefaultDatabaseURL, nil
	default:
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir cannot be empty")
	}

	if c.Counts.Customers < 0 || c.Counts.Products < 0 || c.Counts.Orders < 0 {
		return fmt.Errorf("entity counts cannot be negative")
	}

	return nil
}
