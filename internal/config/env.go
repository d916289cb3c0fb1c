package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvConfig holds the process configuration read from the environment.
type EnvConfig struct {
	APP_PORT        string
	LOG_FILE_PATH   string
	LOG_LEVEL       string
	LOG_FORMAT      string
	UPLOAD_DIR      string
	OUTPUT_DIR      string
	STATIC_DIR      string
	PDF_LAYOUT_FILE string
	MAX_UPLOAD_SIZE string
	KEEP_UPLOADS    bool
}

var DefaultEnvConfig = EnvConfig{
	APP_PORT:        "5000",
	LOG_LEVEL:       "info",
	LOG_FORMAT:      "json",
	UPLOAD_DIR:      "uploads",
	OUTPUT_DIR:      "output",
	STATIC_DIR:      "static",
	MAX_UPLOAD_SIZE: "20M",
	KEEP_UPLOADS:    true,
}

// LoadEnvConfig reads an optional .env file and then the environment into
// DefaultEnvConfig. Unset variables keep their defaults.
func LoadEnvConfig() error {
	return LoadEnvConfigFrom(".env")
}

// LoadEnvConfigFrom is LoadEnvConfig with an explicit .env path. A missing
// file is not an error.
func LoadEnvConfigFrom(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	cfg := DefaultEnvConfig
	setString(&cfg.APP_PORT, "APP_PORT")
	setString(&cfg.LOG_FILE_PATH, "LOG_FILE_PATH")
	setString(&cfg.LOG_LEVEL, "LOG_LEVEL")
	setString(&cfg.LOG_FORMAT, "LOG_FORMAT")
	setString(&cfg.UPLOAD_DIR, "UPLOAD_DIR")
	setString(&cfg.OUTPUT_DIR, "OUTPUT_DIR")
	setString(&cfg.STATIC_DIR, "STATIC_DIR")
	setString(&cfg.PDF_LAYOUT_FILE, "PDF_LAYOUT_FILE")
	setString(&cfg.MAX_UPLOAD_SIZE, "MAX_UPLOAD_SIZE")
	if v, ok := os.LookupEnv("KEEP_UPLOADS"); ok && v != "" {
		keep, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid KEEP_UPLOADS %q: %w", v, err)
		}
		cfg.KEEP_UPLOADS = keep
	}

	if cfg.LOG_FORMAT != "json" && cfg.LOG_FORMAT != "console" {
		return fmt.Errorf("invalid LOG_FORMAT %q: want json or console", cfg.LOG_FORMAT)
	}
	if cfg.UPLOAD_DIR == "" || cfg.OUTPUT_DIR == "" {
		return fmt.Errorf("UPLOAD_DIR and OUTPUT_DIR must not be empty")
	}
	DefaultEnvConfig = cfg
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
