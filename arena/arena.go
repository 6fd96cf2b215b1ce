// Package arena assembles the world, its systems and the armory into one tickable simulation
package arena

import (
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/cthulhu-strike/component"
	"github.com/lixenwraith/cthulhu-strike/config"
	"github.com/lixenwraith/cthulhu-strike/engine"
	"github.com/lixenwraith/cthulhu-strike/input"
	"github.com/lixenwraith/cthulhu-strike/status"
	"github.com/lixenwraith/cthulhu-strike/system"
	"github.com/lixenwraith/cthulhu-strike/vmath"
)

// Arena owns one simulation run
// Not safe for concurrent use; other goroutines read the status registry or published snapshots
type Arena struct {
	world     *engine.World
	sessionID uuid.UUID
	maxHealth int

	// Telemetry
	statFrame    *atomic.Int64
	statElapsed  *status.AtomicFloat
	statHealth   *atomic.Int64
	statKills    *atomic.Int64
	statSelected *status.AtomicString
	statDead     *atomic.Bool
}

// Option customizes arena construction
type Option func(*options)

type options struct {
	source vmath.Source
	seed   uint64
}

// WithSource injects the spawner's random source
func WithSource(src vmath.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithSeed seeds the default random source, ignored when WithSource is given
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// New validates cfg and builds a ready arena; nil cfg uses defaults
// The player starts at the origin with the first weapon selected
func New(cfg *config.Config, opts ...Option) (*Arena, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("arena config: %w", err)
	}

	o := options{seed: uint64(time.Now().UnixNano())}
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		o.source = vmath.NewFastRand(o.seed)
	}

	world := engine.NewWorld()
	world.Resources.Rand = o.source
	world.Resources.Tuning = tuningFromConfig(cfg)

	reg := world.Resources.Status
	a := &Arena{
		world:        world,
		sessionID:    uuid.New(),
		maxHealth:    cfg.Player.Health,
		statFrame:    reg.Ints.Get("arena.frame"),
		statElapsed:  reg.Floats.Get("arena.elapsed_seconds"),
		statHealth:   reg.Ints.Get("player.health"),
		statKills:    reg.Ints.Get("combat.kills"),
		statSelected: reg.Strings.Get("weapon.selected"),
		statDead:     reg.Bools.Get("player.dead"),
	}

	a.createPlayer(cfg.Player)
	a.createArmory(cfg.Weapons)

	world.AddSystem(system.NewSelectSystem(world))
	world.AddSystem(system.NewWeaponSystem(world))
	world.AddSystem(system.NewContactSystem(world))
	world.AddSystem(system.NewPlayerMovementSystem(world))
	world.AddSystem(system.NewEnemyMovementSystem(world))
	world.AddSystem(system.NewSpawnSystem(world))

	a.publishStatus()
	return a, nil
}

func tuningFromConfig(cfg *config.Config) *engine.TuningResource {
	return &engine.TuningResource{
		PlayerHalfExtent: cfg.Player.HalfExtent,
		EnemyHalfExtent:  cfg.Enemy.HalfExtent,
		EnemySpeed:       cfg.Enemy.Speed,
		EnemyHealth:      cfg.Enemy.Health,
		SpawnInterval:    cfg.Spawn.Interval.Std(),
		SpawnDistance:    cfg.Spawn.Distance,
		SpawnCap:         cfg.Spawn.MaxCount,
		EngagementRange:  cfg.Targeting.Range,
		ConeHalfAngleRad: vmath.Radians(cfg.Targeting.HalfAngleDegrees),
	}
}

func (a *Arena) createPlayer(pc config.PlayerConfig) {
	e := a.world.CreateEntity()
	a.world.Components.Actor.SetComponent(e, component.ActorComponent{
		Health: pc.Health,
		Speed:  pc.Speed,
	})
	a.world.Components.Player.SetComponent(e, component.PlayerComponent{
		InvincibilityWindow: pc.InvincibilityWindow.Std(),
	})
	a.world.Resources.Player.Entity = e
}

// createArmory registers weapons in hotkey order, magazines full, timers idle
func (a *Arena) createArmory(weapons []config.WeaponConfig) {
	armory := a.world.Resources.Armory
	for i, wc := range weapons {
		e := a.world.CreateEntity()
		a.world.Components.Weapon.SetComponent(e, component.WeaponComponent{
			Name:        wc.Name,
			Slot:        i + 1,
			Damage:      wc.Damage,
			MaxAmmo:     wc.Ammo,
			CurrentAmmo: wc.Ammo,
			FireDelay:   wc.FireDelay.Std(),
			ReloadTime:  wc.Reload.Std(),
			Automatic:   wc.Automatic,
		})
		armory.Slots = append(armory.Slots, e)
	}
	if len(armory.Slots) > 0 {
		armory.Selected = armory.Slots[0]
	}
}

// Tick advances the simulation by dt and returns the resulting state
// Negative dt is treated as zero
func (a *Arena) Tick(dt time.Duration, frame input.Frame) Snapshot {
	dt = max(dt, 0)

	t := a.world.Resources.Time
	t.DeltaTime = dt
	t.Elapsed += dt
	t.FrameNumber++
	a.world.Resources.Input.Frame = frame

	a.world.Update()

	events := a.world.Resources.Events.Consume()
	a.publishStatus()

	snap := a.Snapshot()
	snap.Events = events
	return snap
}

// Snapshot reports the current state without advancing time; Events is empty
func (a *Arena) Snapshot() Snapshot {
	w := a.world
	snap := Snapshot{
		SessionID: a.sessionID.String(),
		Frame:     w.Resources.Time.FrameNumber,
		Elapsed:   w.Resources.Time.Elapsed,
		Kills:     a.statKills.Load(),
	}

	playerEntity := w.Resources.Player.Entity
	if actor, ok := w.Components.Actor.GetComponent(playerEntity); ok {
		pc, _ := w.Components.Player.GetComponent(playerEntity)
		snap.Player = PlayerView{
			Pos:                    actor.Pos,
			Health:                 actor.Health,
			MaxHealth:              a.maxHealth,
			Invincible:             pc.Invincible,
			InvincibilityRemaining: pc.InvincibilityRemaining,
		}
		snap.PlayerDead = !actor.Alive()
	}

	for _, e := range w.Resources.Armory.Slots {
		weapon, ok := w.Components.Weapon.GetComponent(e)
		if !ok {
			continue
		}
		view := newWeaponView(weapon)
		snap.Arsenal = append(snap.Arsenal, view)
		if e == w.Resources.Armory.Selected {
			snap.Weapon = view
			snap.HasWeapon = true
		}
	}

	enemies := w.Components.Enemy.GetAllEntities()
	slices.Sort(enemies)
	snap.Enemies = make([]EnemyView, 0, len(enemies))
	for _, e := range enemies {
		actor, ok := w.Components.Actor.GetComponent(e)
		if !ok {
			continue
		}
		snap.Enemies = append(snap.Enemies, EnemyView{
			Entity: e,
			Pos:    actor.Pos,
			Health: actor.Health,
		})
	}
	snap.EnemyCount = len(snap.Enemies)

	return snap
}

func (a *Arena) publishStatus() {
	t := a.world.Resources.Time
	a.statFrame.Store(t.FrameNumber)
	a.statElapsed.Set(t.Elapsed.Seconds())

	if actor, ok := a.world.Components.Actor.GetComponent(a.world.Resources.Player.Entity); ok {
		a.statHealth.Store(int64(actor.Health))
		a.statDead.Store(!actor.Alive())
	}
	if weapon, ok := a.world.Components.Weapon.GetComponent(a.world.Resources.Armory.Selected); ok {
		a.statSelected.Store(weapon.Name)
	}
}

// SessionID identifies this run in logs and the debug endpoint
func (a *Arena) SessionID() uuid.UUID {
	return a.sessionID
}

// Status returns the metrics registry, safe to read from any goroutine
func (a *Arena) Status() *status.Registry {
	return a.world.Resources.Status
}
