// Package config handles loading application settings from the
// environment (populated from .env by main.go).
package config

import (
	"errors"
	"os"
	"path/filepath"
)

// Default paths used when nothing is configured.
const (
	DefaultDBPath        = "test_work_db.sqlite"
	DefaultSourcePath    = "data.xlsx"
	DefaultReportPath    = "data.tsv"
	DefaultMongoDatabase = "goods"
)

// Config holds all configuration for the application.
type Config struct {
	DBPath     string
	SourcePath string
	ReportPath string
	LogFile    string

	// MongoConnString enables mirroring the report to MongoDB when set.
	MongoConnString string
	MongoDatabase   string
}

// LoadConfig loads application settings from environment variables,
// falling back to the fixed defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		DBPath:          getEnv("GOODS_DB_PATH", DefaultDBPath),
		SourcePath:      getEnv("GOODS_SOURCE_PATH", DefaultSourcePath),
		ReportPath:      getEnv("GOODS_REPORT_PATH", DefaultReportPath),
		LogFile:         os.Getenv("GOODS_LOG_FILE"),
		MongoConnString: os.Getenv("MONGO_CONNECTION_STRING"),
		MongoDatabase:   getEnv("MONGO_DATABASE", DefaultMongoDatabase),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations that would overwrite the store with the report.
func (c *Config) Validate() error {
	if c.DBPath == "" || c.SourcePath == "" || c.ReportPath == "" {
		return errors.New("store, source and report paths must not be empty")
	}
	if filepath.Clean(c.DBPath) == filepath.Clean(c.ReportPath) {
		return errors.New("report path must differ from the store path")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
