package system

import (
	"github.com/lixenwraith/cthulhu-strike/engine"
	"github.com/lixenwraith/cthulhu-strike/event"
	"github.com/lixenwraith/cthulhu-strike/input"
	"github.com/lixenwraith/cthulhu-strike/parameter"
)

// SelectSystem switches the current weapon from hotkey actions
// A later hotkey wins when several are held; timers of the old weapon keep running
type SelectSystem struct {
	world *engine.World
}

// NewSelectSystem creates a new weapon selection system
func NewSelectSystem(world *engine.World) engine.System {
	return &SelectSystem{world: world}
}

// Name returns system's name
func (s *SelectSystem) Name() string {
	return "select"
}

func (s *SelectSystem) Priority() int {
	return parameter.PrioritySelect
}

func (s *SelectSystem) Update() {
	frame := s.world.Resources.Input.Frame
	armory := s.world.Resources.Armory

	target := armory.Selected
	for i, action := range input.SelectActions {
		if !frame.IsHeld(action) {
			continue
		}
		if e, ok := armory.SlotEntity(i + 1); ok {
			target = e
		}
	}

	if target == armory.Selected {
		return
	}
	weapon, ok := s.world.Components.Weapon.GetComponent(target)
	if !ok {
		return
	}

	armory.Selected = target
	s.world.PushEvent(event.EventWeaponSelected, &event.WeaponSelectedPayload{
		Weapon: target,
		Name:   weapon.Name,
		Slot:   weapon.Slot,
	})
}
