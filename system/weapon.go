package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/cthulhu-strike/component"
	"github.com/lixenwraith/cthulhu-strike/core"
	"github.com/lixenwraith/cthulhu-strike/engine"
	"github.com/lixenwraith/cthulhu-strike/event"
	"github.com/lixenwraith/cthulhu-strike/input"
	"github.com/lixenwraith/cthulhu-strike/parameter"
	"github.com/lixenwraith/cthulhu-strike/vmath"
)

// WeaponSystem runs the fire-control state machine of every weapon
// Timers of all weapons advance each tick; only the selected weapon fires or reloads on input
type WeaponSystem struct {
	world *engine.World

	// Telemetry
	statShots   *atomic.Int64
	statKills   *atomic.Int64
	statReloads *atomic.Int64
}

// NewWeaponSystem creates a new weapon system
func NewWeaponSystem(world *engine.World) engine.System {
	return &WeaponSystem{
		world:       world,
		statShots:   world.Resources.Status.Ints.Get("weapon.shots"),
		statKills:   world.Resources.Status.Ints.Get("combat.kills"),
		statReloads: world.Resources.Status.Ints.Get("weapon.reloads"),
	}
}

// Name returns system's name
func (s *WeaponSystem) Name() string {
	return "weapon"
}

func (s *WeaponSystem) Priority() int {
	return parameter.PriorityWeapon
}

func (s *WeaponSystem) Update() {
	dt := s.world.Resources.Time.DeltaTime
	armory := s.world.Resources.Armory

	for _, e := range armory.Slots {
		s.tickTimers(e, dt)
	}

	selected := armory.Selected
	if !selected.Valid() {
		return
	}
	weapon, ok := s.world.Components.Weapon.GetComponent(selected)
	if !ok {
		return
	}

	frame := s.world.Resources.Input.Frame
	trigger := frame.JustPressed(input.ActionFire)
	if weapon.Automatic {
		trigger = frame.IsHeld(input.ActionFire)
	}
	if trigger && weapon.CanFire() {
		weapon = s.fire(selected, weapon)
	}

	if frame.IsHeld(input.ActionReload) && !weapon.Reloading {
		weapon = s.startReload(selected, weapon, true)
	}

	s.world.Components.Weapon.SetComponent(selected, weapon)
}

// tickTimers advances both countdowns, finishing a reload when it expires
func (s *WeaponSystem) tickTimers(e core.Entity, dt time.Duration) {
	weapon, ok := s.world.Components.Weapon.GetComponent(e)
	if !ok {
		return
	}

	if weapon.FireDelayRemaining > 0 {
		weapon.FireDelayRemaining = max(weapon.FireDelayRemaining-dt, 0)
	}

	if weapon.Reloading {
		weapon.ReloadRemaining -= dt
		if weapon.ReloadRemaining <= 0 {
			weapon.ReloadRemaining = 0
			weapon.Reloading = false
			weapon.CurrentAmmo = weapon.MaxAmmo
			s.world.PushEvent(event.EventReloadFinished, &event.ReloadPayload{
				Weapon: e,
				Name:   weapon.Name,
			})
		}
	}

	s.world.Components.Weapon.SetComponent(e, weapon)
}

// fire consumes one round and resolves the cone from the player towards the cursor
// An emptied magazine starts reloading immediately
func (s *WeaponSystem) fire(e core.Entity, weapon component.WeaponComponent) component.WeaponComponent {
	weapon.CurrentAmmo--
	weapon.FireDelayRemaining = weapon.FireDelay

	aim := s.world.Resources.Input.Frame.Cursor
	var origin vmath.Vec2F
	var hits, kills int
	if player, ok := s.world.Components.Actor.GetComponent(s.world.Resources.Player.Entity); ok {
		origin = player.Pos
		hits, kills = resolveCone(s.world, origin, aim, weapon.Damage)
	}

	s.statShots.Add(1)
	s.statKills.Add(int64(kills))

	s.world.PushEvent(event.EventWeaponFired, &event.WeaponFiredPayload{
		Weapon:    e,
		Name:      weapon.Name,
		AmmoLeft:  weapon.CurrentAmmo,
		Hits:      hits,
		Kills:     kills,
		Origin:    origin,
		AimTarget: aim,
	})

	if weapon.CurrentAmmo <= 0 {
		weapon.CurrentAmmo = 0
		weapon = s.startReload(e, weapon, false)
	}
	return weapon
}

func (s *WeaponSystem) startReload(e core.Entity, weapon component.WeaponComponent, manual bool) component.WeaponComponent {
	weapon.Reloading = true
	weapon.ReloadRemaining = weapon.ReloadTime
	s.statReloads.Add(1)

	s.world.PushEvent(event.EventReloadStarted, &event.ReloadPayload{
		Weapon: e,
		Name:   weapon.Name,
		Manual: manual,
	})
	return weapon
}
