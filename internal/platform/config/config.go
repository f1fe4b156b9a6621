// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A local '.env' file is
loaded first through 'joho/godotenv' when present; real environment variables
always win.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (store, server) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/taibuivan/animelar/internal/platform/constants"
)

// # Storage Drivers

const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMongo    = "mongo"
)

// # Configuration Schema

// Config holds all runtime configuration for the Animelar API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"PORT"         envDefault:"3000"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Document storage
	StoreDriver string `env:"STORE_DRIVER" envDefault:"file"`
	DataFile    string `env:"DATA_FILE"    envDefault:"./data/db.json"`
	DocumentKey string `env:"DOCUMENT_KEY" envDefault:"animelar"`

	// Relational Database (PostgreSQL)
	DatabaseURL      string `env:"DATABASE_URL"`
	DatabaseMaxConns int32  `env:"DATABASE_MAX_CONNS" envDefault:"4"`
	MigrationPath    string `env:"MIGRATION_PATH"     envDefault:"./data/migrations"`

	// Key-Value Store (Redis)
	RedisURL      string `env:"REDIS_URL"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"4"`

	// Document Database (MongoDB)
	MongoURL      string `env:"MONGO_URL"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"animelar"`

	// Identity
	SuperAdminID string `env:"SUPER_ADMIN_ID" envDefault:"6526385624"`
	BcryptCost   int    `env:"BCRYPT_COST"    envDefault:"10"`

	// Cross-Origin Resource Sharing
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`

	// Background jobs (cron specs, empty disables the job)
	AuditSchedule    string `env:"AUDIT_SCHEDULE"    envDefault:"@every 10m"`
	SnapshotSchedule string `env:"SNAPSHOT_SCHEDULE"`
	SnapshotDir      string `env:"SNAPSHOT_DIR"      envDefault:"./data/snapshots"`
}

// # Configuration Loading

// Load reads an optional .env file, then parses environment variables into a [Config].
func Load() (*Config, error) {

	// A missing .env file is the normal production case
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read .env file: %w", err)
	}

	return Parse()
}

// Parse maps the current process environment onto a [Config].
func Parse() (*Config, error) {
	return ParseFrom(env.ToMap(os.Environ()))
}

// ParseFrom maps the given environment onto a [Config] and validates it.
func ParseFrom(environment map[string]string) (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environment}); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the driver-specific settings that env tags cannot express.
func (c *Config) Validate() error {
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))

	switch c.StoreDriver {
	case DriverFile:
		if c.DataFile == "" {
			return errors.New("config: DATA_FILE is required for the file driver")
		}
	case DriverMemory:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("config: DATABASE_URL is required for the postgres driver")
		}
		if c.DatabaseMaxConns < 1 {
			return errors.New("config: DATABASE_MAX_CONNS must be at least 1")
		}
	case DriverRedis:
		if c.RedisURL == "" {
			return errors.New("config: REDIS_URL is required for the redis driver")
		}
		if c.RedisPoolSize < 1 {
			return errors.New("config: REDIS_POOL_SIZE must be at least 1")
		}
	case DriverMongo:
		if c.MongoURL == "" {
			return errors.New("config: MONGO_URL is required for the mongo driver")
		}
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if c.SuperAdminID == "" {
		c.SuperAdminID = constants.DefaultSuperAdminID
	}

	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
