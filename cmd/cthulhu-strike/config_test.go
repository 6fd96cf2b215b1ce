package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/cthulhu-strike/config"
)

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Spawn.MaxCount != config.Default().Spawn.MaxCount {
		t.Errorf("spawn.max_count = %d, want default", cfg.Spawn.MaxCount)
	}
}

func TestDumpConfig_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	if err := os.WriteFile(path, []byte("enemy:\n  speed: 45\nspawn:\n  max_count: 4\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	var out bytes.Buffer
	if err := dumpConfig(&out, cfg); err != nil {
		t.Fatalf("dumpConfig: %v", err)
	}
	if !strings.Contains(out.String(), "RocketLauncher") {
		t.Errorf("dump missing weapon catalog:\n%s", out.String())
	}

	// The dump is itself a valid config file
	back, err := config.Parse(out.Bytes())
	if err != nil {
		t.Fatalf("parse dump: %v", err)
	}
	if back.Enemy.Speed != 45 || back.Spawn.MaxCount != 4 {
		t.Errorf("dump lost overrides: enemy.speed=%v spawn.max_count=%d", back.Enemy.Speed, back.Spawn.MaxCount)
	}
	if back.Weapons[3].Reload != cfg.Weapons[3].Reload {
		t.Errorf("reload changed: %v vs %v", back.Weapons[3].Reload, cfg.Weapons[3].Reload)
	}
}

func TestLoadConfig_RejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	if err := os.WriteFile(path, []byte("player:\n  invincibility_window: 0s\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("expected error for a zero invincibility window")
	}
}
