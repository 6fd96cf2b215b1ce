package system

import (
	"sync/atomic"

	"github.com/lixenwraith/cthulhu-strike/engine"
	"github.com/lixenwraith/cthulhu-strike/event"
	"github.com/lixenwraith/cthulhu-strike/parameter"
	"github.com/lixenwraith/cthulhu-strike/vmath"
)

// ContactSystem applies enemy contact damage to the player behind an invincibility gate
// While invincible only the countdown advances; otherwise the first overlapping enemy hits once
type ContactSystem struct {
	world *engine.World

	// Telemetry
	statHealth     *atomic.Int64
	statInvincible *atomic.Bool
	statHits       *atomic.Int64
}

// NewContactSystem creates a new contact system
func NewContactSystem(world *engine.World) engine.System {
	return &ContactSystem{
		world:          world,
		statHealth:     world.Resources.Status.Ints.Get("player.health"),
		statInvincible: world.Resources.Status.Bools.Get("player.invincible"),
		statHits:       world.Resources.Status.Ints.Get("player.hits"),
	}
}

// Name returns system's name
func (s *ContactSystem) Name() string {
	return "contact"
}

func (s *ContactSystem) Priority() int {
	return parameter.PriorityContact
}

func (s *ContactSystem) Update() {
	playerEntity := s.world.Resources.Player.Entity
	actor, ok := s.world.Components.Actor.GetComponent(playerEntity)
	if !ok {
		return
	}
	player, ok := s.world.Components.Player.GetComponent(playerEntity)
	if !ok {
		return
	}

	if player.Invincible {
		player.InvincibilityRemaining -= s.world.Resources.Time.DeltaTime
		if player.InvincibilityRemaining <= 0 {
			player.InvincibilityRemaining = 0
			player.Invincible = false
			s.world.PushEvent(event.EventPlayerVulnerable, nil)
		}
		s.world.Components.Player.SetComponent(playerEntity, player)
		s.statInvincible.Store(player.Invincible)
		return
	}

	tuning := s.world.Resources.Tuning
	playerHalf := vmath.Vec2F{X: tuning.PlayerHalfExtent, Y: tuning.PlayerHalfExtent}
	enemyHalf := vmath.Vec2F{X: tuning.EnemyHalfExtent, Y: tuning.EnemyHalfExtent}

	for _, e := range s.world.Components.Enemy.GetAllEntities() {
		enemy, ok := s.world.Components.Actor.GetComponent(e)
		if !ok || !enemy.Alive() {
			continue
		}
		if !vmath.AABBOverlap(actor.Pos, playerHalf, enemy.Pos, enemyHalf) {
			continue
		}

		actor.Health -= parameter.PlayerContactDamage
		player.Invincible = true
		player.InvincibilityRemaining = player.InvincibilityWindow

		s.world.Components.Actor.SetComponent(playerEntity, actor)
		s.world.Components.Player.SetComponent(playerEntity, player)

		s.statHealth.Store(int64(actor.Health))
		s.statInvincible.Store(true)
		s.statHits.Add(1)

		s.world.PushEvent(event.EventPlayerHit, &event.PlayerHitPayload{
			Attacker: e,
			Health:   actor.Health,
		})
		return
	}
}
