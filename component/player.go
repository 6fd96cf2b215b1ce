package component

import (
	"time"
)

// PlayerComponent tags the single player actor and holds its contact immunity
type PlayerComponent struct {
	// Invincible is true iff InvincibilityRemaining > 0
	Invincible bool

	// InvincibilityRemaining counts down while invincible
	InvincibilityRemaining time.Duration

	// InvincibilityWindow is the full immunity duration applied on each hit
	InvincibilityWindow time.Duration
}
