package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	DataFile string // default path of the storage file
}

type tomlConfig struct {
	DataFile string `toml:"data_file"`
}

// Load reads config from ~/.config/trackwork/. A missing config file or an
// unresolvable home directory is not an error; defaults are returned.
func Load() (*Config, error) {
	cfg := &Config{}

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil // Use defaults
	}

	configDir := filepath.Join(home, ".config", "trackwork")
	cfg.DataFile = filepath.Join(configDir, "track.csv")

	tomlPath := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(tomlPath); err == nil {
		var tc tomlConfig
		if _, err := toml.DecodeFile(tomlPath, &tc); err == nil && tc.DataFile != "" {
			cfg.DataFile = tc.DataFile
		}
	}

	return cfg, nil
}
