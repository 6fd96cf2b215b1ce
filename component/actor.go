package component

import (
	"github.com/lixenwraith/cthulhu-strike/vmath"
)

// ActorComponent is the positioned, healthed body shared by player and enemies
type ActorComponent struct {
	// Pos is the world position, depth is not tracked
	Pos vmath.Vec2F

	// Health may go non-positive to signal death
	Health int

	// Speed is in world units per second
	Speed float64
}

// Alive reports whether health is still positive
func (a ActorComponent) Alive() bool {
	return a.Health > 0
}
