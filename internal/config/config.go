package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the integration report generators.
// Every value has a default so the generator binaries run with no setup:
// they write their artifacts into the current working directory.
type Config struct {
	// Output configuration
	OutputDir string `env:"OUTPUT_DIR,default=."`

	// GCP configuration (optional; artifacts are published to GCS when set)
	GCPProjectID string `env:"GCP_PROJECT_ID"`
	GCSBucket    string `env:"GCS_BUCKET"`

	// Preview server configuration
	Port string `env:"PORT,default=8981"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=local"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
