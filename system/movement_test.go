package system

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/cthulhu-strike/input"
	"github.com/lixenwraith/cthulhu-strike/parameter"
	"github.com/lixenwraith/cthulhu-strike/vmath"
)

func TestPlayerMovementSystem_Displacement(t *testing.T) {
	tests := []struct {
		name     string
		held     input.ActionSet
		wantDist float64
		wantDir  vmath.Vec2F
	}{
		{"right", input.NewActionSet(input.ActionMoveRight), 120, vmath.Vec2F{X: 1}},
		{"up", input.NewActionSet(input.ActionMoveUp), 120, vmath.Vec2F{Y: -1}},
		{"diagonal", input.NewActionSet(input.ActionMoveDown, input.ActionMoveLeft), 120, vmath.V2FNormalize(vmath.Vec2F{X: -1, Y: 1})},
		{"opposites cancel", input.NewActionSet(input.ActionMoveLeft, input.ActionMoveRight), 0, vmath.Vec2F{}},
		{"idle", 0, 0, vmath.Vec2F{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(NewPlayerMovementSystem)
			step(w, time.Second, input.Frame{Held: tt.held})

			actor, _ := w.Components.Actor.GetComponent(w.Resources.Player.Entity)
			if d := vmath.V2FMag(actor.Pos); math.Abs(d-tt.wantDist) > 1e-9 {
				t.Errorf("distance = %v, want %v", d, tt.wantDist)
			}
			if tt.wantDist > 0 {
				dir := vmath.V2FNormalize(actor.Pos)
				if math.Abs(dir.X-tt.wantDir.X) > 1e-9 || math.Abs(dir.Y-tt.wantDir.Y) > 1e-9 {
					t.Errorf("direction = %v, want %v", dir, tt.wantDir)
				}
			}
		})
	}
}

func TestPlayerMovementSystem_FrameRateIndependent(t *testing.T) {
	coarse := newTestWorld(NewPlayerMovementSystem)
	fine := newTestWorld(NewPlayerMovementSystem)
	frame := input.Frame{Held: input.NewActionSet(input.ActionMoveRight, input.ActionMoveUp)}

	step(coarse, 500*time.Millisecond, frame)
	for range 50 {
		step(fine, 10*time.Millisecond, frame)
	}

	a, _ := coarse.Components.Actor.GetComponent(coarse.Resources.Player.Entity)
	b, _ := fine.Components.Actor.GetComponent(fine.Resources.Player.Entity)
	if d := vmath.V2FMag(vmath.V2FSub(a.Pos, b.Pos)); d > 1e-6 {
		t.Errorf("positions diverge by %v: %v vs %v", d, a.Pos, b.Pos)
	}
}

func TestEnemyMovementSystem_Pursuit(t *testing.T) {
	w := newTestWorld(NewPlayerMovementSystem, NewEnemyMovementSystem)
	enemy := spawnEnemyAt(w, vmath.Vec2F{X: 300, Y: 400}, 25)

	step(w, time.Second, input.Frame{})

	actor, _ := w.Components.Actor.GetComponent(enemy)
	// 500 units out, 90 closer along the line to the origin
	want := vmath.V2FScale(vmath.Vec2F{X: 300, Y: 400}, (500-parameter.EnemySpeed)/500)
	if math.Abs(actor.Pos.X-want.X) > 1e-9 || math.Abs(actor.Pos.Y-want.Y) > 1e-9 {
		t.Errorf("enemy at %v, want %v", actor.Pos, want)
	}
}

func TestEnemyMovementSystem_ChasesMovedPlayer(t *testing.T) {
	w := newTestWorld(NewPlayerMovementSystem, NewEnemyMovementSystem)
	enemy := spawnEnemyAt(w, vmath.Vec2F{X: 0, Y: 500}, 25)

	// Player moves first, enemy steers at the updated position
	step(w, time.Second, input.Frame{Held: input.NewActionSet(input.ActionMoveRight)})

	player, _ := w.Components.Actor.GetComponent(w.Resources.Player.Entity)
	actor, _ := w.Components.Actor.GetComponent(enemy)
	want := vmath.V2FAdd(vmath.Vec2F{Y: 500}, vmath.ScaledVectorTo(vmath.Vec2F{Y: 500}, player.Pos, parameter.EnemySpeed))
	if math.Abs(actor.Pos.X-want.X) > 1e-9 || math.Abs(actor.Pos.Y-want.Y) > 1e-9 {
		t.Errorf("enemy at %v, want %v", actor.Pos, want)
	}
}

func TestDirectionOffset(t *testing.T) {
	got := DirectionOffset(input.Frame{Held: input.NewActionSet(input.ActionMoveUp, input.ActionMoveDown, input.ActionMoveRight)})
	if got != (vmath.Vec2F{X: 1, Y: 0}) {
		t.Errorf("offset = %v, want (1,0)", got)
	}
}
