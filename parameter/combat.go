package parameter

import (
	"time"
)

// Targeting Cone
const (
	// EngagementRange is the aim vector length in world units (cone side length)
	EngagementRange = 500.0

	// ConeHalfAngleDegrees rotates the aim vector both ways, 30° each side gives a 60° cone
	ConeHalfAngleDegrees = 30.0
)

// WeaponPreset is one catalog entry, ammo is per magazine
type WeaponPreset struct {
	Name      string
	Damage    int
	Ammo      int
	FireDelay time.Duration
	Reload    time.Duration
	Automatic bool
}

// WeaponCatalog is the arsenal in hotkey order (slot 1..5)
var WeaponCatalog = [5]WeaponPreset{
	{Name: "Pistols", Damage: 10, Ammo: 30, FireDelay: 300 * time.Millisecond, Reload: 2000 * time.Millisecond},
	// Reload time is meant per pellet
	{Name: "Shotgun", Damage: 30, Ammo: 7, FireDelay: 1000 * time.Millisecond, Reload: 750 * time.Millisecond},
	{Name: "AssaultRifle", Damage: 15, Ammo: 30, FireDelay: 100 * time.Millisecond, Reload: 1500 * time.Millisecond, Automatic: true},
	{Name: "RocketLauncher", Damage: 50, Ammo: 1, FireDelay: 1500 * time.Millisecond, Reload: 2500 * time.Millisecond},
	{Name: "Laser", Damage: 10, Ammo: 30, FireDelay: 100 * time.Millisecond, Reload: 1500 * time.Millisecond, Automatic: true},
}
