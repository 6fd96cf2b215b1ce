package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	wantNames := []string{"Pistols", "Shotgun", "AssaultRifle", "RocketLauncher", "Laser"}
	if len(cfg.Weapons) != len(wantNames) {
		t.Fatalf("got %d weapons, want %d", len(cfg.Weapons), len(wantNames))
	}
	for i, name := range wantNames {
		if cfg.Weapons[i].Name != name {
			t.Errorf("slot %d: got %q, want %q", i+1, cfg.Weapons[i].Name, name)
		}
	}

	pistols := cfg.Weapons[0]
	if pistols.Damage != 10 || pistols.Ammo != 30 ||
		pistols.FireDelay.Std() != 300*time.Millisecond || pistols.Reload.Std() != 2*time.Second {
		t.Errorf("unexpected Pistols preset: %+v", pistols)
	}
}

func TestParse_OverlaysDefaults(t *testing.T) {
	data := []byte(`
player:
  speed: 200
  invincibility_window: 1.5s
spawn:
  interval: 2
  max_count: 3
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Player.Speed != 200 {
		t.Errorf("player.speed = %v, want 200", cfg.Player.Speed)
	}
	if cfg.Player.Health != 5 {
		t.Errorf("player.health = %d, default 5 should survive overlay", cfg.Player.Health)
	}
	if cfg.Player.InvincibilityWindow.Std() != 1500*time.Millisecond {
		t.Errorf("invincibility_window = %v", cfg.Player.InvincibilityWindow)
	}
	if cfg.Spawn.Interval.Std() != 2*time.Second {
		t.Errorf("numeric interval should read as seconds, got %v", cfg.Spawn.Interval)
	}
	if cfg.Spawn.MaxCount != 3 {
		t.Errorf("spawn.max_count = %d, want 3", cfg.Spawn.MaxCount)
	}
	if cfg.Spawn.Distance != 750 {
		t.Errorf("spawn.distance = %v, default 750 should survive overlay", cfg.Spawn.Distance)
	}
}

func TestParse_EmptyDocumentYieldsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if cfg.Enemy.Health != Default().Enemy.Health {
		t.Errorf("empty document changed defaults: %+v", cfg.Enemy)
	}
}

func TestParse_RejectsUnknownField(t *testing.T) {
	_, err := Parse([]byte("player:\n  sped: 10\n"))
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestParse_WeaponListReplacesCatalog(t *testing.T) {
	data := []byte(`
weapons:
  - {name: A, damage: 1, ammo: 1, fire_delay: 0s, reload: 1s}
  - {name: B, damage: 1, ammo: 1, fire_delay: 0s, reload: 1s}
`)
	_, err := Parse(data)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for a two-weapon catalog, got %v", err)
	}
	if !strings.Contains(err.Error(), "exactly 5") {
		t.Errorf("error should name the slot count: %v", err)
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Player.Speed = 0
	cfg.Enemy.Health = -1
	cfg.Targeting.HalfAngleDegrees = 90
	cfg.Weapons[1].Name = cfg.Weapons[0].Name
	cfg.Keys = map[string][]string{"jump": {"j"}}

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}

	msg := err.Error()
	for _, want := range []string{"player.speed", "enemy.health", "half_angle_degrees", "duplicated", "jump"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error missing %q: %v", want, msg)
		}
	}
}

func TestLoad_FileRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Enemy.Speed = 45
	cfg.Weapons[2].Automatic = false

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	path := filepath.Join(t.TempDir(), "arena.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Enemy.Speed != 45 {
		t.Errorf("enemy.speed = %v, want 45", loaded.Enemy.Speed)
	}
	if loaded.Weapons[2].Automatic {
		t.Error("weapons[2].automatic should be false after reload")
	}
	if loaded.Weapons[3].Reload != cfg.Weapons[3].Reload {
		t.Errorf("reload duration changed: %v vs %v", loaded.Weapons[3].Reload, cfg.Weapons[3].Reload)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestValidate_Timers(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero invincibility window", func(c *Config) { c.Player.InvincibilityWindow = 0 }, "player.invincibility_window"},
		{"negative invincibility window", func(c *Config) { c.Player.InvincibilityWindow = Duration(-time.Second) }, "player.invincibility_window"},
		{"zero reload", func(c *Config) { c.Weapons[3].Reload = 0 }, "weapons[3].reload"},
		{"negative fire delay", func(c *Config) { c.Weapons[0].FireDelay = Duration(-time.Millisecond) }, "weapons[0].fire_delay"},
		{"zero fire delay", func(c *Config) { c.Weapons[2].FireDelay = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not name %q", err, tt.wantErr)
			}
		})
	}
}
