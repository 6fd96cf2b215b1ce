package system

import (
	"github.com/lixenwraith/cthulhu-strike/engine"
	"github.com/lixenwraith/cthulhu-strike/input"
	"github.com/lixenwraith/cthulhu-strike/parameter"
	"github.com/lixenwraith/cthulhu-strike/vmath"
)

// PlayerMovementSystem moves the player from held direction actions
// The step is normalized so diagonal speed equals axial speed
type PlayerMovementSystem struct {
	world *engine.World
}

// NewPlayerMovementSystem creates a new player movement system
func NewPlayerMovementSystem(world *engine.World) engine.System {
	return &PlayerMovementSystem{world: world}
}

// Name returns system's name
func (s *PlayerMovementSystem) Name() string {
	return "player_move"
}

func (s *PlayerMovementSystem) Priority() int {
	return parameter.PriorityPlayerMove
}

func (s *PlayerMovementSystem) Update() {
	playerEntity := s.world.Resources.Player.Entity
	actor, ok := s.world.Components.Actor.GetComponent(playerEntity)
	if !ok {
		return
	}

	offset := DirectionOffset(s.world.Resources.Input.Frame)
	if offset.IsZero() {
		return
	}

	dist := actor.Speed * s.world.Resources.Time.DeltaTime.Seconds()
	target := vmath.V2FAdd(actor.Pos, offset)
	actor.Pos = vmath.V2FAdd(actor.Pos, vmath.ScaledVectorTo(actor.Pos, target, dist))
	s.world.Components.Actor.SetComponent(playerEntity, actor)
}

// DirectionOffset sums held directions into a unit-per-axis offset, opposites cancel
// Y grows downward
func DirectionOffset(frame input.Frame) vmath.Vec2F {
	var offset vmath.Vec2F
	if frame.IsHeld(input.ActionMoveUp) {
		offset.Y--
	}
	if frame.IsHeld(input.ActionMoveDown) {
		offset.Y++
	}
	if frame.IsHeld(input.ActionMoveLeft) {
		offset.X--
	}
	if frame.IsHeld(input.ActionMoveRight) {
		offset.X++
	}
	return offset
}

// EnemyMovementSystem steers every enemy straight at the player
type EnemyMovementSystem struct {
	world *engine.World
}

// NewEnemyMovementSystem creates a new enemy pursuit system
func NewEnemyMovementSystem(world *engine.World) engine.System {
	return &EnemyMovementSystem{world: world}
}

// Name returns system's name
func (s *EnemyMovementSystem) Name() string {
	return "enemy_move"
}

func (s *EnemyMovementSystem) Priority() int {
	return parameter.PriorityEnemyMove
}

func (s *EnemyMovementSystem) Update() {
	player, ok := s.world.Components.Actor.GetComponent(s.world.Resources.Player.Entity)
	if !ok {
		return
	}
	dt := s.world.Resources.Time.DeltaTime.Seconds()

	for _, e := range s.world.Components.Enemy.GetAllEntities() {
		enemy, ok := s.world.Components.Actor.GetComponent(e)
		if !ok {
			continue
		}
		step := vmath.ScaledVectorTo(enemy.Pos, player.Pos, enemy.Speed*dt)
		enemy.Pos = vmath.V2FAdd(enemy.Pos, step)
		s.world.Components.Actor.SetComponent(e, enemy)
	}
}
