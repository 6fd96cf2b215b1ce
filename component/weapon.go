package component

import (
	"time"
)

// WeaponState is the fire-control state derived from timers and ammo
type WeaponState int

const (
	// WeaponIdle can fire: fire delay elapsed, not reloading
	WeaponIdle WeaponState = iota
	// WeaponCooldown waits for the fire delay to elapse
	WeaponCooldown
	// WeaponReloading waits for the reload countdown, then refills the magazine
	WeaponReloading
)

func (s WeaponState) String() string {
	switch s {
	case WeaponIdle:
		return "idle"
	case WeaponCooldown:
		return "cooldown"
	case WeaponReloading:
		return "reloading"
	default:
		return "unknown"
	}
}

// WeaponComponent is one arsenal entry, created at start and never destroyed
// Both countdowns tick every frame regardless of selection
type WeaponComponent struct {
	Name string
	Slot int // 1-based hotkey slot

	Damage      int
	MaxAmmo     int
	CurrentAmmo int // 0..MaxAmmo

	FireDelay          time.Duration
	FireDelayRemaining time.Duration

	ReloadTime      time.Duration
	ReloadRemaining time.Duration
	Reloading       bool

	// Automatic weapons fire while the trigger is held, others once per press
	Automatic bool
}

// State resolves the current fire-control state, reload takes precedence
func (w WeaponComponent) State() WeaponState {
	if w.Reloading {
		return WeaponReloading
	}
	if w.FireDelayRemaining > 0 {
		return WeaponCooldown
	}
	return WeaponIdle
}

// CanFire reports whether a trigger pull would produce a shot
func (w WeaponComponent) CanFire() bool {
	return w.State() == WeaponIdle && w.CurrentAmmo > 0
}
