package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Use != BackendJSON {
		t.Errorf("Use = %q, want %q", cfg.Use, BackendJSON)
	}
	if cfg.Params(BackendJSON)["path"] == "" {
		t.Error("expected a default path for the json backend")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected config file to be written: %v", err)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := &Config{
		Use: BackendSQLite,
		Backends: map[string]map[string]string{
			BackendSQLite: {"path": "/data/tasks.db"},
		},
	}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Use != BackendSQLite {
		t.Errorf("Use = %q, want %q", got.Use, BackendSQLite)
	}
	if got.Params(BackendSQLite)["path"] != "/data/tasks.db" {
		t.Errorf("params = %v", got.Params(BackendSQLite))
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{oops"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestSetBackend(t *testing.T) {
	cfg := &Config{}

	cfg.SetBackend(BackendSQLite, map[string]string{"path": "/data/tasks.db"})
	if cfg.Use != BackendSQLite {
		t.Errorf("Use = %q, want %q", cfg.Use, BackendSQLite)
	}
	if cfg.Params(BackendSQLite)["path"] != "/data/tasks.db" {
		t.Errorf("params = %v", cfg.Params(BackendSQLite))
	}

	// Merging keeps existing keys that the update does not name.
	cfg.SetBackend(BackendSQLite, map[string]string{"busy_timeout": "5000"})
	params := cfg.Params(BackendSQLite)
	if params["path"] != "/data/tasks.db" || params["busy_timeout"] != "5000" {
		t.Errorf("params = %v, want merge", params)
	}
}

func TestParamsUnknownBackend(t *testing.T) {
	cfg := &Config{}
	if params := cfg.Params("bogus"); params == nil {
		t.Error("Params must never return nil")
	}
}
