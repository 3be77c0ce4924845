package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultConfigFile is picked up from the working directory when no explicit
// path is given.
const defaultConfigFile = "orb.yaml"

// Load loads configuration with priority: defaults < file. An empty path
// means "use orb.yaml if present"; a missing explicit path is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing yaml: %w", err)
	}
	return nil
}

func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.Distance <= 0 {
		return fmt.Errorf("projection distance must be positive, got %v", c.Screen.Distance)
	}
	if c.Sphere.Radius <= 0 {
		return fmt.Errorf("sphere radius must be positive, got %v", c.Sphere.Radius)
	}
	if c.Sphere.Step <= 0 {
		return fmt.Errorf("sample step must be positive, got %v", c.Sphere.Step)
	}
	if c.Screen.ZOffset <= c.Sphere.Radius {
		// Keeps z' = z + offset strictly positive for every surface point,
		// so the perspective divide can never hit zero.
		return fmt.Errorf("z offset %v must exceed sphere radius %v", c.Screen.ZOffset, c.Sphere.Radius)
	}
	return nil
}
