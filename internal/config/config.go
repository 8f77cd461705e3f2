// Package config persists the application settings as a JSON file
// under the user's XDG config directory.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Config is the persistent application configuration.
type Config struct {
	// Server settings
	BaseURL    string `json:"base_url"`
	APIVersion string `json:"api_version"`

	// Authentication (optional; public endpoints need none)
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`

	// Display settings
	Theme        string `json:"theme"`
	LibraryName  string `json:"library_name"`
	ItemsPerPage int    `json:"items_per_page"`

	// CallNumberDisplay selects which classification scheme the detail
	// screens show: "lcc", "dewey" or "both".
	CallNumberDisplay string `json:"call_number_display"`

	// RequestTimeout is the per-request timeout in seconds.
	RequestTimeout int `json:"request_timeout"`
}

// Default returns the out-of-the-box configuration, pointed at the
// Koha community demo server.
func Default() *Config {
	return &Config{
		BaseURL:           "https://demo.koha-community.org",
		APIVersion:        "v1",
		Theme:             "amber",
		LibraryName:       "PUBLIC LIBRARY",
		ItemsPerPage:      10,
		CallNumberDisplay: "both",
		RequestTimeout:    30,
	}
}

// PublicAPIURL is the base for unauthenticated REST endpoints.
func (c *Config) PublicAPIURL() string {
	return strings.TrimRight(c.BaseURL, "/") + "/api/" + c.APIVersion + "/public"
}

// StaffAPIURL is the base for authenticated staff REST endpoints.
func (c *Config) StaffAPIURL() string {
	return strings.TrimRight(c.BaseURL, "/") + "/api/" + c.APIVersion
}

// Path returns the location of the config file.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "opacterm", "config.json")
}

// Load reads the config from disk. A missing or unreadable file yields
// defaults so a fresh install starts without ceremony.
func Load() (*Config, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// Save writes the config to disk, creating the directory as needed.
func (c *Config) Save() error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	// Restrictive permissions: the file may hold credentials.
	return os.WriteFile(path, data, 0600)
}
