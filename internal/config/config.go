package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Backend name constants
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config selects the active storage backend and carries per-backend
// construction parameters. It is resolved once at startup and passed by
// value into the wiring; nothing reads it through a global.
type Config struct {
	Use      string                       `json:"use"`
	Backends map[string]map[string]string `json:"backends"`
}

// Default returns the configuration used when no config file exists:
// the JSON file backend storing tasks under the todo directory.
func Default() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return &Config{
		Use: BackendJSON,
		Backends: map[string]map[string]string{
			BackendJSON: {
				"path": filepath.Join(dir, "tasks.json"),
			},
			BackendSQLite: {
				"path": filepath.Join(dir, "tasks.db"),
			},
		},
	}, nil
}

// Dir returns the todo dot-directory under the user's home.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".todo"), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file at path. A missing file is created with
// defaults first, so a fresh install works without a config step.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg, derr := Default()
		if derr != nil {
			return nil, derr
		}
		if serr := Save(path, cfg); serr != nil {
			return nil, serr
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Backends == nil {
		cfg.Backends = make(map[string]map[string]string)
	}

	return &cfg, nil
}

// Save writes the config file at path, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Params returns the parameter map for the named backend, never nil.
func (c *Config) Params(name string) map[string]string {
	if params, ok := c.Backends[name]; ok {
		return params
	}
	return map[string]string{}
}

// SetBackend selects name as the active backend and merges params into
// its parameter map.
func (c *Config) SetBackend(name string, params map[string]string) {
	c.Use = name
	if c.Backends == nil {
		c.Backends = make(map[string]map[string]string)
	}
	if c.Backends[name] == nil {
		c.Backends[name] = make(map[string]string)
	}
	for k, v := range params {
		c.Backends[name][k] = v
	}
}
