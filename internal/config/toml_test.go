package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Practice.Questions != nil {
		t.Errorf("missing file produced values: %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[practice]
questions = 15
voice = "yunxi"
focus-weak = true
weak-factor = 3.5

[speech]
region = "westeurope"
rate = 0.9

[proxy]
addr = ":9000"
model = "gpt-4o"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Practice.Questions == nil || *cfg.Practice.Questions != 15 {
		t.Errorf("questions = %v", cfg.Practice.Questions)
	}
	if cfg.Practice.Voice == nil || *cfg.Practice.Voice != "yunxi" {
		t.Errorf("voice = %v", cfg.Practice.Voice)
	}
	if cfg.Practice.FocusWeak == nil || !*cfg.Practice.FocusWeak {
		t.Errorf("focus-weak = %v", cfg.Practice.FocusWeak)
	}
	if cfg.Practice.WeakFactor == nil || *cfg.Practice.WeakFactor != 3.5 {
		t.Errorf("weak-factor = %v", cfg.Practice.WeakFactor)
	}
	if cfg.Speech.Region == nil || *cfg.Speech.Region != "westeurope" {
		t.Errorf("region = %v", cfg.Speech.Region)
	}
	if cfg.Proxy.Addr == nil || *cfg.Proxy.Addr != ":9000" {
		t.Errorf("addr = %v", cfg.Proxy.Addr)
	}
	// Unset values stay nil so CLI defaults apply.
	if cfg.Practice.WeakTop != nil {
		t.Errorf("weak-top = %v, want nil", cfg.Practice.WeakTop)
	}
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	if got := DefaultConfigPath(); got != "/tmp/xdg-config/cypher/config.toml" {
		t.Errorf("DefaultConfigPath = %q", got)
	}
	if got := DefaultBankPath(); got != "/tmp/xdg-config/cypher/tonebank.tsv" {
		t.Errorf("DefaultBankPath = %q", got)
	}
	if got := DefaultDBPath(); got != "/tmp/xdg-data/cypher/cypher.db" {
		t.Errorf("DefaultDBPath = %q", got)
	}
}
