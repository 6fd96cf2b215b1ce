package system

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/cthulhu-strike/component"
	"github.com/lixenwraith/cthulhu-strike/engine"
	"github.com/lixenwraith/cthulhu-strike/event"
	"github.com/lixenwraith/cthulhu-strike/parameter"
	"github.com/lixenwraith/cthulhu-strike/vmath"
)

// SpawnSystem places enemies on a ring around the player at a fixed cadence
// The cadence is decoupled from frame rate by an accumulator; each crossed interval is one attempt
// An attempt at the population cap does nothing and is not queued
type SpawnSystem struct {
	world *engine.World

	accumulator time.Duration

	// Telemetry
	statSpawned *atomic.Int64
	statAlive   *atomic.Int64
}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem(world *engine.World) engine.System {
	return &SpawnSystem{
		world:       world,
		statSpawned: world.Resources.Status.Ints.Get("spawn.count"),
		statAlive:   world.Resources.Status.Ints.Get("enemy.alive"),
	}
}

// Name returns system's name
func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) Update() {
	interval := s.world.Resources.Tuning.SpawnInterval
	if interval <= 0 {
		return
	}

	s.accumulator += s.world.Resources.Time.DeltaTime
	for s.accumulator >= interval {
		s.accumulator -= interval
		s.attempt()
	}

	s.statAlive.Store(int64(s.world.Components.Enemy.CountEntities()))
}

func (s *SpawnSystem) attempt() {
	tuning := s.world.Resources.Tuning
	if s.world.Components.Enemy.CountEntities() >= tuning.SpawnCap {
		return
	}
	rng := s.world.Resources.Rand
	if rng == nil {
		return
	}
	player, ok := s.world.Components.Actor.GetComponent(s.world.Resources.Player.Entity)
	if !ok {
		return
	}

	theta := rng.Float64() * 2 * math.Pi
	sin, cos := math.Sincos(theta)
	pos := vmath.V2FAdd(player.Pos, vmath.Vec2F{X: cos * tuning.SpawnDistance, Y: sin * tuning.SpawnDistance})

	e := s.world.CreateEntity()
	s.world.Components.Actor.SetComponent(e, component.ActorComponent{
		Pos:    pos,
		Health: tuning.EnemyHealth,
		Speed:  tuning.EnemySpeed,
	})
	s.world.Components.Enemy.SetComponent(e, component.EnemyComponent{
		SpawnFrame: s.world.Resources.Time.FrameNumber,
	})

	s.statSpawned.Add(1)
	s.world.PushEvent(event.EventEnemySpawned, &event.EnemySpawnedPayload{
		Enemy: e,
		Pos:   pos,
	})
}
