package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables carrying the store credentials. The names match the
// env.local file shared with the rest of the UnyFilm deployment.
const (
	EnvCloudName = "VITE_CLOUDINARY_CLOUD_NAME"
	EnvAPIKey    = "VITE_CLOUDINARY_API_KEY"
	EnvAPISecret = "VITE_CLOUDINARY_API_SECRET"
)

// envFile is loaded before the environment is consulted, if present.
const envFile = "env.local"

// Load reads the YAML config file, overlays store credentials from
// env.local / the environment, and validates the result.
func Load(path string) (*Config, error) {
	// Missing env.local is fine; credentials may already be exported.
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if v := os.Getenv(EnvCloudName); v != "" {
		cfg.Store.CloudName = v
	}
	cfg.Store.APIKey = os.Getenv(EnvAPIKey)
	cfg.Store.APISecret = os.Getenv(EnvAPISecret)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
