package engine

import (
	"slices"

	"github.com/lixenwraith/cthulhu-strike/core"
	"github.com/lixenwraith/cthulhu-strike/event"
	"github.com/lixenwraith/cthulhu-strike/parameter"
	"github.com/lixenwraith/cthulhu-strike/status"
)

// World contains all entities, their components and the shared resources
// Mutated only by the tick pipeline, one system at a time
type World struct {
	nextEntityID core.Entity

	Components ComponentStore
	Resources  *Resources

	systems []System
}

// NewWorld creates an empty world with initialized stores and resources
// Rand is left nil; the owner must provide a source before spawning runs
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Resources: &Resources{
			Time:   &TimeResource{},
			Input:  &InputResource{},
			Armory: &ArmoryResource{},
			Player: &PlayerResource{},
			Tuning: DefaultTuning(),
			Status: status.NewRegistry(),
			Events: event.NewQueue(parameter.EventQueueInitialCap),
		},
	}
	initComponentStores(w)
	return w
}

// CreateEntity reserves a new entity handle
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
// Handles are never reused, so stale handles resolve to nothing
func (w *World) DestroyEntity(e core.Entity) {
	w.removeFromAllStores(e)
}

// AddSystem adds a system and keeps the pipeline sorted by priority
// Equal priorities keep registration order
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
	slices.SortStableFunc(w.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
}


// Update runs all systems sequentially in priority order
func (w *World) Update() {
	for _, system := range w.systems {
		system.Update()
	}
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resources.Events.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resources.Time.FrameNumber,
	})
}
