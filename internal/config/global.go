// Where: internal/config/global.go
// What: Global config load/save helpers.
// Why: Manage ~/.vcdbrand/config.yaml consistently.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/vcdtools/vcdbrand/internal/meta"
	"gopkg.in/yaml.v3"
)

// GlobalConfig represents the ~/.vcdbrand/config.yaml global configuration.
// It stores defaults that flags and environment variables can override.
type GlobalConfig struct {
	Version  int    `yaml:"version"`
	URL      string `yaml:"url,omitempty"`
	Insecure bool   `yaml:"insecure,omitempty"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{Version: 1}
}

// GlobalConfigPath returns the path to the global config file.
// Respects VCDBRAND_CONFIG_PATH and VCDBRAND_CONFIG_HOME overrides.
func GlobalConfigPath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(meta.EnvConfigPath)); override != "" {
		path := override
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		return path, nil
	}
	if override := strings.TrimSpace(os.Getenv(meta.EnvConfigHome)); override != "" {
		return filepath.Join(override, "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir, "config.yaml"), nil
}

// LoadGlobalConfig reads and parses the global configuration file.
// A missing file yields the default config, not an error.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultGlobalConfig(), nil
		}
		return GlobalConfig{}, err
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, err
	}
	return cfg, nil
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o600)
}
