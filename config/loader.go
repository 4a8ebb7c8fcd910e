package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DefaultBasePath       = "rest"
	DefaultStoreCode      = "all"
	DefaultVersion        = "V1"
	DefaultTimeout        = 30
	DefaultConnectTimeout = 10
)

// DefaultEnvFile is read by LoadEnvFile when no path is given
const DefaultEnvFile = ".env"

// Load reads the whole application configuration from environment variables
func Load() (*Config, error) {
	magento, err := LoadMagento()
	if err != nil {
		return nil, err
	}

	var logging LoggingConfig
	if err := envconfig.Process("", &logging); err != nil {
		return nil, fmt.Errorf("failed to read logging config: %w", err)
	}

	return &Config{
		Magento: magento,
		Logging: logging,
	}, nil
}

// LoadMagento resolves the Magento client settings from the environment.
// Missing base URL or access token are left empty; use Validate to reject them.
func LoadMagento() (MagentoConfig, error) {
	var cfg MagentoConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return MagentoConfig{}, fmt.Errorf("failed to read magento config: %w", err)
	}

	// set-but-empty variables fall back to the default as well
	cfg.BasePath = orDefault(cfg.BasePath, DefaultBasePath)
	cfg.StoreCode = orDefault(cfg.StoreCode, DefaultStoreCode)
	cfg.Version = orDefault(cfg.Version, DefaultVersion)

	cfg.Timeout = DefaultTimeout
	cfg.ConnectTimeout = DefaultConnectTimeout

	return cfg, nil
}

// LoadEnvFile loads dotenv files into the process environment.
// Variables that are already set win over the file, and missing files are skipped.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{DefaultEnvFile}
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	}
	return nil
}

func orDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
