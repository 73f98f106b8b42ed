package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is what the CLI looks for when no base URL is given.
const ConfigFileName = "notekeeper.yaml"

// FileConfig mirrors the on-disk configuration file.
// Durations are strings ("10s", "1m") parsed by the consumer.
type FileConfig struct {
	API struct {
		BaseURL string `yaml:"base_url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"api"`
	Editor string `yaml:"editor"`
	Poll   string `yaml:"poll"`
}

// FindConfig recursively looks upwards from startDir for a config file,
// then falls back to the user config directory (e.g. ~/.config/notekeeper).
// If nothing is found, an error is returned.
func FindConfig(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		path := filepath.Join(dir, ConfigFileName)
		if hasFile(dir, ConfigFileName) {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	if base, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(base, "notekeeper", ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("config not found")
}

// LoadConfig reads and parses a config file.
func LoadConfig(path string) (FileConfig, error) {
	var cfg FileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func hasFile(dir, name string) bool {
	path := filepath.Join(dir, name)
	_, err := os.Stat(path)
	return err == nil
}
