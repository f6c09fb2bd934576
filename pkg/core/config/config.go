// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the watsonctl configuration
type Config struct {
	Logging      LoggingConfig      `yaml:"logging"`
	FixtureStore FixtureStoreConfig `yaml:"fixture_store"`
	Check        CheckConfig        `yaml:"check"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// FixtureStoreConfig selects and configures the fixture backend
type FixtureStoreConfig struct {
	Type string `yaml:"type"` // memory, filesystem (default), s3, sqlite, postgres

	BaseDir string `yaml:"base_dir"` // filesystem

	S3Bucket   string `yaml:"s3_bucket"`
	S3Region   string `yaml:"s3_region"`
	S3Prefix   string `yaml:"s3_prefix"`
	S3Endpoint string `yaml:"s3_endpoint"` // MinIO and other S3-compatible services

	SQLitePath  string `yaml:"sqlite_path"`
	PostgresDSN string `yaml:"postgres_dsn"`
}

// CheckConfig contains round-trip checker settings
type CheckConfig struct {
	Concurrency int  `yaml:"concurrency"`
	StrictNulls bool `yaml:"strict_nulls"` // treat explicit null and absent as different
}

// Load loads configuration from a YAML file, then applies environment
// overrides and defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the default configuration with environment overrides.
func Default() (*Config, error) {
	var cfg Config
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	set(&cfg.Logging.Level, "WATSON_LOG_LEVEL")
	set(&cfg.Logging.Format, "WATSON_LOG_FORMAT")

	set(&cfg.FixtureStore.Type, "WATSON_FIXTURE_STORE")
	set(&cfg.FixtureStore.BaseDir, "WATSON_FIXTURE_DIR")
	set(&cfg.FixtureStore.S3Bucket, "WATSON_S3_BUCKET")
	set(&cfg.FixtureStore.S3Region, "WATSON_S3_REGION")
	set(&cfg.FixtureStore.S3Prefix, "WATSON_S3_PREFIX")
	set(&cfg.FixtureStore.S3Endpoint, "WATSON_S3_ENDPOINT")
	set(&cfg.FixtureStore.SQLitePath, "WATSON_SQLITE_PATH")
	set(&cfg.FixtureStore.PostgresDSN, "WATSON_POSTGRES_DSN")

	if v := os.Getenv("WATSON_CHECK_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid WATSON_CHECK_CONCURRENCY %q: want a positive integer", v)
		}
		cfg.Check.Concurrency = n
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.FixtureStore.Type == "" {
		cfg.FixtureStore.Type = "filesystem"
	}
	if cfg.FixtureStore.BaseDir == "" {
		cfg.FixtureStore.BaseDir = ".watson/fixtures"
	}
	if cfg.FixtureStore.SQLitePath == "" {
		cfg.FixtureStore.SQLitePath = ".watson/fixtures.db"
	}
	if cfg.FixtureStore.S3Region == "" {
		cfg.FixtureStore.S3Region = "us-east-1"
	}
	if cfg.Check.Concurrency <= 0 {
		cfg.Check.Concurrency = 4
	}
}

// StoreParams returns the provider parameters for the configured backend.
func (c FixtureStoreConfig) StoreParams() map[string]string {
	switch c.Type {
	case "filesystem":
		return map[string]string{"base_dir": c.BaseDir}
	case "s3":
		return map[string]string{
			"bucket":   c.S3Bucket,
			"region":   c.S3Region,
			"prefix":   c.S3Prefix,
			"endpoint": c.S3Endpoint,
		}
	case "sqlite":
		return map[string]string{"path": c.SQLitePath}
	case "postgres":
		return map[string]string{"dsn": c.PostgresDSN}
	default:
		return map[string]string{}
	}
}
