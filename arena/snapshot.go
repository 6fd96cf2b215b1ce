package arena

import (
	"time"

	"github.com/lixenwraith/cthulhu-strike/component"
	"github.com/lixenwraith/cthulhu-strike/core"
	"github.com/lixenwraith/cthulhu-strike/event"
	"github.com/lixenwraith/cthulhu-strike/vmath"
)

// Snapshot is the read-only state handed to presentation after a tick
// Slices are owned by the snapshot; it may be shared across goroutines once published
type Snapshot struct {
	SessionID string        `json:"session_id"`
	Frame     int64         `json:"frame"`
	Elapsed   time.Duration `json:"elapsed"`

	Player     PlayerView `json:"player"`
	PlayerDead bool       `json:"player_dead"`

	// Weapon is the selected weapon, valid when HasWeapon
	Weapon    WeaponView   `json:"weapon"`
	HasWeapon bool         `json:"has_weapon"`
	Arsenal   []WeaponView `json:"arsenal"`

	// Enemies are ordered by handle
	Enemies    []EnemyView `json:"enemies"`
	EnemyCount int         `json:"enemy_count"`
	Kills      int64       `json:"kills"`

	// Events are those emitted during the tick that produced this snapshot
	Events []event.GameEvent `json:"events,omitempty"`
}

type PlayerView struct {
	Pos                    vmath.Vec2F   `json:"pos"`
	Health                 int           `json:"health"`
	MaxHealth              int           `json:"max_health"`
	Invincible             bool          `json:"invincible"`
	InvincibilityRemaining time.Duration `json:"invincibility_remaining"`
}

type WeaponView struct {
	Name            string        `json:"name"`
	Slot            int           `json:"slot"`
	CurrentAmmo     int           `json:"current_ammo"`
	MaxAmmo         int           `json:"max_ammo"`
	Reloading       bool          `json:"reloading"`
	ReloadRemaining time.Duration `json:"reload_remaining"`
	State           string        `json:"state"`
}

type EnemyView struct {
	Entity core.Entity `json:"entity"`
	Pos    vmath.Vec2F `json:"pos"`
	Health int         `json:"health"`
}

func newWeaponView(w component.WeaponComponent) WeaponView {
	return WeaponView{
		Name:            w.Name,
		Slot:            w.Slot,
		CurrentAmmo:     w.CurrentAmmo,
		MaxAmmo:         w.MaxAmmo,
		Reloading:       w.Reloading,
		ReloadRemaining: w.ReloadRemaining,
		State:           w.State().String(),
	}
}
