package engine

import (
	"github.com/lixenwraith/cthulhu-strike/component"
	"github.com/lixenwraith/cthulhu-strike/core"
)

// ComponentStore holds the typed arenas, replacing dynamic component queries with typed accessors
type ComponentStore struct {
	Actor  *Store[component.ActorComponent]
	Player *Store[component.PlayerComponent]
	Enemy  *Store[component.EnemyComponent]
	Weapon *Store[component.WeaponComponent]
}

func initComponentStores(w *World) {
	w.Components = ComponentStore{
		Actor:  NewStore[component.ActorComponent](),
		Player: NewStore[component.PlayerComponent](),
		Enemy:  NewStore[component.EnemyComponent](),
		Weapon: NewStore[component.WeaponComponent](),
	}
}

func (w *World) removeFromAllStores(e core.Entity) {
	w.Components.Actor.RemoveEntity(e)
	w.Components.Player.RemoveEntity(e)
	w.Components.Enemy.RemoveEntity(e)
	w.Components.Weapon.RemoveEntity(e)
}
