package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ClientFile is the client's TOML configuration.
type ClientFile struct {
	Server  *string `toml:"server"`
	Timeout *string `toml:"timeout"`
	Color   *bool   `toml:"color"`
}

// LoadClient reads a TOML config from path. A missing file is not an error.
func LoadClient(path string) (ClientFile, error) {
	if path == "" {
		return ClientFile{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return ClientFile{}, nil
		}
		return ClientFile{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg ClientFile
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return ClientFile{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultSessionPath returns where the client keeps its last session token.
func DefaultSessionPath() string {
	return filepath.Join(XDGDataHome(), "dailywordle", "session")
}

// DefaultClientPath returns the default client config path.
func DefaultClientPath() string {
	return filepath.Join(XDGConfigHome(), "dailywordle", "config.toml")
}
