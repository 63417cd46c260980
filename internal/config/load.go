package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load builds Options from defaults merged with an optional YAML file.
// An explicit path must exist; with no path the working directory is
// searched and silence is fine.
func Load(path string) (*Options, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = findConfigFile()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// findConfigFile looks for a config in the standard location.
func findConfigFile() string {
	const candidate = "stl2scad.yaml"
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}
