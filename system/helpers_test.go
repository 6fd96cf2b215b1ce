package system

import (
	"time"

	"github.com/lixenwraith/cthulhu-strike/component"
	"github.com/lixenwraith/cthulhu-strike/core"
	"github.com/lixenwraith/cthulhu-strike/engine"
	"github.com/lixenwraith/cthulhu-strike/event"
	"github.com/lixenwraith/cthulhu-strike/input"
	"github.com/lixenwraith/cthulhu-strike/parameter"
	"github.com/lixenwraith/cthulhu-strike/vmath"
)

// newTestWorld creates a world with a player at the origin and the full catalog armed, slot 1 selected
func newTestWorld(systems ...func(*engine.World) engine.System) *engine.World {
	w := engine.NewWorld()
	w.Resources.Rand = vmath.NewFastRand(1)

	player := w.CreateEntity()
	w.Components.Actor.SetComponent(player, component.ActorComponent{
		Health: parameter.PlayerHealth,
		Speed:  parameter.PlayerSpeed,
	})
	w.Components.Player.SetComponent(player, component.PlayerComponent{
		InvincibilityWindow: parameter.PlayerInvincibilityWindow,
	})
	w.Resources.Player.Entity = player

	for i, preset := range parameter.WeaponCatalog {
		e := w.CreateEntity()
		w.Components.Weapon.SetComponent(e, component.WeaponComponent{
			Name:        preset.Name,
			Slot:        i + 1,
			Damage:      preset.Damage,
			MaxAmmo:     preset.Ammo,
			CurrentAmmo: preset.Ammo,
			FireDelay:   preset.FireDelay,
			ReloadTime:  preset.Reload,
			Automatic:   preset.Automatic,
		})
		w.Resources.Armory.Slots = append(w.Resources.Armory.Slots, e)
	}
	w.Resources.Armory.Selected = w.Resources.Armory.Slots[0]

	for _, ctor := range systems {
		w.AddSystem(ctor(w))
	}
	return w
}

// step advances the world by one tick with the given input
func step(w *engine.World, dt time.Duration, frame input.Frame) []event.GameEvent {
	w.Resources.Time.DeltaTime = dt
	w.Resources.Time.Elapsed += dt
	w.Resources.Time.FrameNumber++
	w.Resources.Input.Frame = frame
	w.Update()
	return w.Resources.Events.Consume()
}

func spawnEnemyAt(w *engine.World, pos vmath.Vec2F, health int) core.Entity {
	e := w.CreateEntity()
	w.Components.Actor.SetComponent(e, component.ActorComponent{
		Pos:    pos,
		Health: health,
		Speed:  parameter.EnemySpeed,
	})
	w.Components.Enemy.SetComponent(e, component.EnemyComponent{})
	return e
}

func selectedWeapon(w *engine.World) component.WeaponComponent {
	weapon, _ := w.Components.Weapon.GetComponent(w.Resources.Armory.Selected)
	return weapon
}

func pressFire(cursor vmath.Vec2F) input.Frame {
	return input.Frame{
		Held:    input.NewActionSet(input.ActionFire),
		Pressed: input.NewActionSet(input.ActionFire),
		Cursor:  cursor,
	}
}

func holdFire(cursor vmath.Vec2F) input.Frame {
	return input.Frame{
		Held:   input.NewActionSet(input.ActionFire),
		Cursor: cursor,
	}
}

func countEvents(events []event.GameEvent, t event.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == t {
			n++
		}
	}
	return n
}
