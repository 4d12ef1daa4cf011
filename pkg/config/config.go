package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	DataFile    string `json:"data_file,omitempty"`
	AccentColor string `json:"accent_color,omitempty"`
	LogFile     string `json:"log_file,omitempty"`
}

// getConfigPath returns the absolute path to ~/.gradebook.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".gradebook.json"), nil
}

// Path exposes the config location for display purposes.
func Path() (string, error) {
	return getConfigPath()
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ResolveDataFile picks the gradebook path: an explicit flag value wins,
// then the configured file, then fallback.
func (c *AppConfig) ResolveDataFile(flagValue, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if c != nil && c.DataFile != "" {
		return c.DataFile
	}
	return fallback
}

// ValidateAccent accepts an ANSI color number (0-255) or a #RRGGBB hex code.
func ValidateAccent(color string) error {
	if strings.HasPrefix(color, "#") {
		if len(color) != 7 {
			return fmt.Errorf("must be a valid 6-character hex code starting with #")
		}
		if _, err := strconv.ParseUint(color[1:], 16, 32); err != nil {
			return fmt.Errorf("must be a valid 6-character hex code starting with #")
		}
		return nil
	}
	n, err := strconv.Atoi(color)
	if err != nil || n < 0 || n > 255 {
		return fmt.Errorf("must be an ANSI color number (0-255) or a hex code like #FF00FF")
	}
	return nil
}
