// Package config loads casetrack settings from a YAML file with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the complete casetrack configuration.
type Config struct {
	Storage        StorageConfig `yaml:"storage"`
	Backup         BackupConfig  `yaml:"backup"`
	Log            LogConfig     `yaml:"log"`
	Metrics        MetricsConfig `yaml:"metrics"`
	SeedSampleData bool          `yaml:"seed_sample_data"`
}

// StorageConfig selects and configures the persistent store.
type StorageConfig struct {
	// Driver is one of json, sqlite or memory.
	Driver     string `yaml:"driver"`
	JSONPath   string `yaml:"json_path"`
	SQLitePath string `yaml:"sqlite_path"`
}

// BackupConfig selects the blob driver that holds archived address books.
type BackupConfig struct {
	// Driver is one of fs or memory.
	Driver string `yaml:"driver"`
	Root   string `yaml:"root"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// MetricsConfig configures the optional Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Environment variables consulted by Load after the file.
const (
	EnvStorageDriver   = "CASETRACK_STORAGE_DRIVER"
	EnvJSONPath        = "CASETRACK_JSON_PATH"
	EnvSQLitePath      = "CASETRACK_SQLITE_PATH"
	EnvBackupDriver    = "CASETRACK_BACKUP_DRIVER"
	EnvBackupRoot      = "CASETRACK_BACKUP_ROOT"
	EnvLogLevel        = "CASETRACK_LOG_LEVEL"
	EnvLogEncoding     = "CASETRACK_LOG_ENCODING"
	EnvMetricsTextfile = "CASETRACK_METRICS_TEXTFILE"
	EnvSeedSampleData  = "CASETRACK_SEED_SAMPLE_DATA"
)

// Default returns the configuration used when nothing else is supplied.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver:     "json",
			JSONPath:   "data/addressbook.json",
			SQLitePath: "data/casetrack.db",
		},
		Backup: BackupConfig{
			Driver: "fs",
			Root:   "data/backups",
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
		SeedSampleData: true,
	}
}

// Load builds the configuration from defaults, then the YAML file at path (a
// missing file or empty path is tolerated), then the environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- operator supplied config path
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	set(EnvStorageDriver, &c.Storage.Driver)
	set(EnvJSONPath, &c.Storage.JSONPath)
	set(EnvSQLitePath, &c.Storage.SQLitePath)
	set(EnvBackupDriver, &c.Backup.Driver)
	set(EnvBackupRoot, &c.Backup.Root)
	set(EnvLogLevel, &c.Log.Level)
	set(EnvLogEncoding, &c.Log.Encoding)
	set(EnvMetricsTextfile, &c.Metrics.Textfile)
	if v, ok := lookup(EnvSeedSampleData); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeedSampleData, err)
		}
		c.SeedSampleData = b
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "json":
		if c.Storage.JSONPath == "" {
			return errors.New("storage.json_path is required for the json driver")
		}
	case "sqlite":
		if c.Storage.SQLitePath == "" {
			return errors.New("storage.sqlite_path is required for the sqlite driver")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	switch c.Backup.Driver {
	case "fs":
		if c.Backup.Root == "" {
			return errors.New("backup.root is required for the fs driver")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown backup driver %q", c.Backup.Driver)
	}
	switch c.Log.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log encoding %q", c.Log.Encoding)
	}
	return nil
}
