package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the user and local config directories.
const configFile = "fifteen.yaml"

// LoadFifteen loads the puzzle configuration.
// Search order: customPath -> ~/.fifteen/configs/fifteen.yaml -> ./configs/fifteen.yaml -> embedded default
func LoadFifteen(customPath string) (FifteenConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultFifteenConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultFifteenYAML)
	if err != nil {
		return DefaultFifteenConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document and fills unset fields with defaults.
func Parse(data []byte) (FifteenConfig, error) {
	cfg, err := decode(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// decode unmarshals onto the defaults, so keys missing from a partial file
// keep their default values, booleans included.
func decode(data []byte) (FifteenConfig, error) {
	cfg := DefaultFifteenConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultFifteenConfig(), err
	}
	cfg.fillDefaults()
	return cfg, nil
}

// Marshal encodes cfg as YAML, e.g. for writing a starter config file.
func Marshal(cfg FifteenConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fifteen", "configs", filename)
}
