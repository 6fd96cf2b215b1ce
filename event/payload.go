package event

import (
	"github.com/lixenwraith/cthulhu-strike/core"
	"github.com/lixenwraith/cthulhu-strike/vmath"
)

// WeaponSelectedPayload names the newly selected weapon
type WeaponSelectedPayload struct {
	Weapon core.Entity
	Name   string
	Slot   int
}

// WeaponFiredPayload summarizes one shot and its cone result
type WeaponFiredPayload struct {
	Weapon    core.Entity
	Name      string
	AmmoLeft  int
	Hits      int
	Kills     int
	Origin    vmath.Vec2F
	AimTarget vmath.Vec2F
}

// ReloadPayload identifies the weapon entering or leaving reload
type ReloadPayload struct {
	Weapon core.Entity
	Name   string
	Manual bool
}

// EnemyHitPayload reports non-lethal damage
type EnemyHitPayload struct {
	Enemy     core.Entity
	Damage    int
	Remaining int
}

// EnemyKilledPayload reports an enemy removed by damage
type EnemyKilledPayload struct {
	Enemy core.Entity
	Pos   vmath.Vec2F
}

// PlayerHitPayload reports contact damage and the health left
type PlayerHitPayload struct {
	Attacker core.Entity
	Health   int
}

// EnemySpawnedPayload reports a scheduled spawn
type EnemySpawnedPayload struct {
	Enemy core.Entity
	Pos   vmath.Vec2F
}
