package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application parameters.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
	Insight InsightConfig `yaml:"insight"`
}

// StorageConfig selects and parameterizes the durable store backend.
type StorageConfig struct {
	// Driver is one of "sqlite", "postgres", "memory".
	Driver   string         `yaml:"driver"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Postgres PostgresConfig `yaml:"postgres"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type InsightConfig struct {
	// DelayMS is the wait before the templated analysis reports,
	// mimicking "thinking".
	DelayMS int `yaml:"delay_ms"`
}

// Delay returns the analysis delay as a duration.
func (c InsightConfig) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// Default returns the configuration used when no file is present: a local
// sqlite file next to the binary.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Driver: "sqlite",
			SQLite: SQLiteConfig{Path: "canteen.db"},
			Postgres: PostgresConfig{
				Host: "localhost",
				Port: 5432,
			},
		},
		Logging: LoggingConfig{Level: "info"},
		Insight: InsightConfig{DelayMS: 1500},
	}
}

// LoadConfig reads the YAML file at path over the defaults. A missing file
// is not an error; the defaults are returned as-is.
func LoadConfig(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Storage.Driver {
	case "sqlite", "postgres", "memory":
	default:
		return fmt.Errorf("invalid storage driver %q", c.Storage.Driver)
	}
	if c.Storage.Driver == "sqlite" && c.Storage.SQLite.Path == "" {
		return fmt.Errorf("storage.sqlite.path is required for the sqlite driver")
	}
	if c.Storage.Driver == "postgres" && c.Storage.Postgres.Host == "" {
		return fmt.Errorf("storage.postgres.host is required for the postgres driver")
	}
	if c.Insight.DelayMS < 0 {
		return fmt.Errorf("insight.delay_ms must not be negative")
	}
	return nil
}
