package config

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/cthulhu-strike/input"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// WeaponSlots is the number of hotkey slots the arsenal must fill
const WeaponSlots = 5

// Validate checks every precondition the simulation relies on before its first tick
// All problems are reported together
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Player.Speed <= 0 {
		fail("player.speed must be positive, got %v", c.Player.Speed)
	}
	if c.Player.Health <= 0 {
		fail("player.health must be positive, got %d", c.Player.Health)
	}
	if c.Player.InvincibilityWindow <= 0 {
		fail("player.invincibility_window must be positive, got %v", c.Player.InvincibilityWindow.Std())
	}
	if c.Player.HalfExtent <= 0 {
		fail("player.half_extent must be positive, got %v", c.Player.HalfExtent)
	}

	if c.Enemy.Speed < 0 {
		fail("enemy.speed must not be negative, got %v", c.Enemy.Speed)
	}
	if c.Enemy.Health <= 0 {
		fail("enemy.health must be positive, got %d", c.Enemy.Health)
	}
	if c.Enemy.HalfExtent <= 0 {
		fail("enemy.half_extent must be positive, got %v", c.Enemy.HalfExtent)
	}

	if c.Spawn.Interval <= 0 {
		fail("spawn.interval must be positive")
	}
	if c.Spawn.Distance < 0 {
		fail("spawn.distance must not be negative, got %v", c.Spawn.Distance)
	}
	if c.Spawn.MaxCount < 0 {
		fail("spawn.max_count must not be negative, got %d", c.Spawn.MaxCount)
	}

	if c.Targeting.Range <= 0 {
		fail("targeting.range must be positive, got %v", c.Targeting.Range)
	}
	if c.Targeting.HalfAngleDegrees <= 0 || c.Targeting.HalfAngleDegrees >= 90 {
		fail("targeting.half_angle_degrees must be in (0, 90), got %v", c.Targeting.HalfAngleDegrees)
	}

	if len(c.Weapons) != WeaponSlots {
		fail("weapons must list exactly %d entries, got %d", WeaponSlots, len(c.Weapons))
	}
	names := make(map[string]bool, len(c.Weapons))
	for i, w := range c.Weapons {
		if w.Name == "" {
			fail("weapons[%d].name is empty", i)
		} else if names[w.Name] {
			fail("weapons[%d].name %q is duplicated", i, w.Name)
		}
		names[w.Name] = true

		if w.Damage < 0 {
			fail("weapons[%d].damage must not be negative", i)
		}
		if w.Ammo <= 0 {
			fail("weapons[%d].ammo must be positive", i)
		}
		if w.FireDelay < 0 {
			fail("weapons[%d].fire_delay must not be negative", i)
		}
		// A zero reload would leave the weapon Reloading with nothing left to count
		if w.Reload <= 0 {
			fail("weapons[%d].reload must be positive, got %v", i, w.Reload.Std())
		}
	}

	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		fail("audio.master_volume must be in [0, 1], got %v", c.Audio.MasterVolume)
	}

	for name := range c.Keys {
		if _, err := input.ActionByName(name); err != nil {
			fail("keys: %v", err)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
