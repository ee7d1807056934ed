package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iamNilotpal/koopman/pkg/errors"
)

type Config struct {
	Checksum  ChecksumConfig `yaml:"checksum"`
	ChunkSize uint32         `yaml:"chunk_size"` // Read size for streaming computations
}

// Holds checksum-specific configuration.
type ChecksumConfig struct {
	Algorithm    string `yaml:"algorithm"`      // Variant name, e.g. "koopman32"
	Seed         int    `yaml:"seed"`           // Initial seed, must be in [0, 255]
	VerifyOnRead bool   `yaml:"verify_on_read"` // Verify check values when streaming back
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		ChunkSize: 64 * 1024, // 64KB
		Checksum: ChecksumConfig{
			Seed:         0,
			Algorithm:    "koopman32",
			VerifyOnRead: true,
		},
	}
}

// Loads configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Checksum.Algorithm == "" {
		return errors.NewValidationError(
			"checksum.algorithm", config.Checksum.Algorithm,
			fmt.Errorf("algorithm is required"),
		)
	}

	// The seed primes a single byte of checksum state; values outside the
	// byte range are rejected outright, never truncated.
	if config.Checksum.Seed < 0 || config.Checksum.Seed > 255 {
		return errors.NewValidationError(
			"checksum.seed", config.Checksum.Seed,
			fmt.Errorf("seed must be between 0 and 255, got %d", config.Checksum.Seed),
		)
	}

	if config.ChunkSize == 0 {
		return errors.NewValidationError(
			"chunk_size", config.ChunkSize,
			fmt.Errorf("chunk_size must be greater than 0"),
		)
	}

	return nil
}
