package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Version    bool   `yaml:"-"`
	ConfigFile string `yaml:"-"`

	Verbose     bool   `yaml:"verbose"`
	Environment string `yaml:"environment"`
	Extended    bool   `yaml:"extended"`
	Summary     bool   `yaml:"summary"`
}

func NewWithDefaults() Config {
	return Config{}
}

// LoadFile decodes YAML file at path on top of base.
func LoadFile(path string, base Config) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read config file %v: %w", path, err)
	}

	return Parse(raw, base)
}

func Parse(raw []byte, base Config) (Config, error) {
	cfg := base

	if err := yaml.UnmarshalStrict(raw, &cfg); err != nil {
		return base, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

func (c Config) LogLevel() string {
	if c.Verbose {
		return "debug"
	}

	return "warn"
}
