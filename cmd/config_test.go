package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
snapshot_file = "/data/pocket.json"
rate_url = "http://localhost:8080/latest/AUD"
refresh_minutes = 5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := readConfig(path)
	if cfg.SnapshotFile != "/data/pocket.json" {
		t.Errorf("SnapshotFile = %q", cfg.SnapshotFile)
	}
	if cfg.RateURL != "http://localhost:8080/latest/AUD" {
		t.Errorf("RateURL = %q", cfg.RateURL)
	}
	if cfg.RefreshMinutes != 5 {
		t.Errorf("RefreshMinutes = %d", cfg.RefreshMinutes)
	}
}

func TestReadConfig_Missing(t *testing.T) {
	cfg := readConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if cfg != (Config{}) {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestReadConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("snapshot_file = [broken"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := readConfig(path)
	if cfg != (Config{}) {
		t.Errorf("expected zero config for malformed file, got %+v", cfg)
	}
}
