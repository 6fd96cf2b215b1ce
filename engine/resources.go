package engine

import (
	"time"

	"github.com/lixenwraith/cthulhu-strike/core"
	"github.com/lixenwraith/cthulhu-strike/event"
	"github.com/lixenwraith/cthulhu-strike/input"
	"github.com/lixenwraith/cthulhu-strike/parameter"
	"github.com/lixenwraith/cthulhu-strike/status"
	"github.com/lixenwraith/cthulhu-strike/vmath"
)

// Resources holds world-owned singletons that systems share
// Replaces process-wide globals: everything lives on the World and is passed explicitly
type Resources struct {
	Time   *TimeResource
	Input  *InputResource
	Armory *ArmoryResource
	Player *PlayerResource
	Tuning *TuningResource
	Status *status.Registry
	Events *event.Queue
	Rand   vmath.Source
}

// TimeResource is updated at the start of every tick
type TimeResource struct {
	// DeltaTime is the measured frame duration, never negative
	DeltaTime time.Duration

	// Elapsed is simulated time since the first tick
	Elapsed time.Duration

	// FrameNumber counts ticks, starting at 1 on the first tick
	FrameNumber int64
}

// InputResource carries the abstracted input of the current tick
type InputResource struct {
	Frame input.Frame
}

// PlayerResource caches the handle of the single player actor
type PlayerResource struct {
	Entity core.Entity
}

// ArmoryResource is the weapon registry and selection state
type ArmoryResource struct {
	// Slots lists weapon handles in hotkey order, Slots[0] is hotkey 1
	Slots []core.Entity

	// Selected is the current weapon, zero when nothing is selected
	Selected core.Entity
}

// SlotEntity resolves a 1-based hotkey slot
func (a *ArmoryResource) SlotEntity(slot int) (core.Entity, bool) {
	if slot < 1 || slot > len(a.Slots) {
		return 0, false
	}
	return a.Slots[slot-1], true
}

// TuningResource holds the balance values systems read each tick
// Filled once from config before the first tick
type TuningResource struct {
	PlayerHalfExtent float64
	EnemyHalfExtent  float64
	EnemySpeed       float64
	EnemyHealth      int

	SpawnInterval time.Duration
	SpawnDistance float64
	SpawnCap      int

	EngagementRange  float64
	ConeHalfAngleRad float64
}

// DefaultTuning returns the compiled-in balance values
func DefaultTuning() *TuningResource {
	return &TuningResource{
		PlayerHalfExtent: parameter.ActorHalfExtent,
		EnemyHalfExtent:  parameter.ActorHalfExtent,
		EnemySpeed:       parameter.EnemySpeed,
		EnemyHealth:      parameter.EnemyHealth,
		SpawnInterval:    parameter.EnemySpawnInterval,
		SpawnDistance:    parameter.EnemySpawnDistance,
		SpawnCap:         parameter.EnemyMaxCount,
		EngagementRange:  parameter.EngagementRange,
		ConeHalfAngleRad: vmath.Radians(parameter.ConeHalfAngleDegrees),
	}
}
