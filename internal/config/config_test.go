package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("Addr = %q, want %q", cfg.Server.Addr, DefaultAddr)
	}
	if cfg.Server.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q, want %q", cfg.Server.OutputDir, DefaultOutputDir)
	}
	if cfg.Server.RetentionDuration() != DefaultRetention {
		t.Errorf("Retention = %v, want %v", cfg.Server.RetentionDuration(), DefaultRetention)
	}
	if cfg.Store.Backend != "memory" {
		t.Errorf("Backend = %q, want memory", cfg.Store.Backend)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
addr = ":9090"
output_dir = "/tmp/plans"
retention = "48h"

[render]
base_px_per_meter = 40

[cache]
dir = "/tmp/cache"

[store]
backend = "file"
dir = "/tmp/records"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Server.RetentionDuration() != 48*time.Hour {
		t.Errorf("Retention = %v, want 48h", cfg.Server.RetentionDuration())
	}
	if cfg.Render.BasePxPerMeter != 40 {
		t.Errorf("BasePxPerMeter = %d, want 40", cfg.Render.BasePxPerMeter)
	}
	if cfg.Cache.Dir != "/tmp/cache" {
		t.Errorf("Cache.Dir = %q", cfg.Cache.Dir)
	}
	if cfg.Store.Backend != "file" || cfg.Store.Dir != "/tmp/records" {
		t.Errorf("Store = %+v", cfg.Store)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("Addr = %q, want default", cfg.Server.Addr)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[server]\naddr = \":9090\"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VASTUPLAN_ADDR", ":7777")
	t.Setenv("VASTUPLAN_STORE_BACKEND", "file")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":7777" {
		t.Errorf("Addr = %q, want :7777", cfg.Server.Addr)
	}
	if cfg.Store.Backend != "file" {
		t.Errorf("Backend = %q, want file", cfg.Store.Backend)
	}
}

func TestValidateRejectsBadBackend(t *testing.T) {
	t.Setenv("VASTUPLAN_STORE_BACKEND", "postgres")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestValidateRedisNeedsAddr(t *testing.T) {
	t.Setenv("VASTUPLAN_STORE_BACKEND", "redis")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for redis without address")
	}
}

func TestBadTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[server\naddr=1"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
