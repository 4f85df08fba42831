package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

// FileName is the default configuration file name.
const FileName = "coinfolio.yaml"

// Config is the top-level coinfolio.yaml configuration. Environment
// variables override file values after loading.
type Config struct {
	Import    ImportConfig    `yaml:"import"`
	Portfolio PortfolioConfig `yaml:"portfolio"`
	Server    ServerConfig    `yaml:"server"`
}

// ImportConfig controls the CSV import pipeline.
type ImportConfig struct {
	Dir           string `yaml:"dir" env:"COINFOLIO_IMPORT_DIR"`
	MaxFileSizeMB int64  `yaml:"max_file_size_mb" env:"COINFOLIO_MAX_FILE_SIZE_MB"`
	DefaultMode   string `yaml:"default_mode" env:"COINFOLIO_DEFAULT_MODE"` // replace or accumulate
}

// PortfolioConfig points at local datasets.
type PortfolioConfig struct {
	DefaultHoldings string `yaml:"default_holdings" env:"COINFOLIO_DEFAULT_HOLDINGS"`
	AssetCatalog    string `yaml:"asset_catalog" env:"COINFOLIO_ASSET_CATALOG"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Port       string `yaml:"port" env:"COINFOLIO_PORT"`
	CORSOrigin string `yaml:"cors_origin" env:"COINFOLIO_CORS_ORIGIN"`
}

// MaxFileSizeBytes returns the import size cap in bytes, 0 for no cap.
func (c ImportConfig) MaxFileSizeBytes() int64 {
	return c.MaxFileSizeMB * 1024 * 1024
}

// Load reads a coinfolio.yaml file, fills defaults for missing fields, and
// applies environment overrides. A missing file yields the default config.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("applying env overrides: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Import: ImportConfig{
			Dir:           "import",
			MaxFileSizeMB: 5,
			DefaultMode:   "replace",
		},
		Portfolio: PortfolioConfig{
			DefaultHoldings: "default-holdings.json",
			AssetCatalog:    "assets.csv",
		},
		Server: ServerConfig{
			Port:       "8080",
			CORSOrigin: "*",
		},
	}
}
