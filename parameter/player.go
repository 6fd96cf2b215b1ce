package parameter

import (
	"time"
)

// Player Actor
const (
	// PlayerSpeed is movement speed in world units/sec, equal on axes and diagonals
	PlayerSpeed = 120.0

	// PlayerHealth is starting health, contact damage removes 1 per hit
	PlayerHealth = 5

	// PlayerInvincibilityWindow is the immunity after contact damage
	PlayerInvincibilityWindow = 2 * time.Second

	// PlayerContactDamage is health lost per contact hit
	PlayerContactDamage = 1
)

// Actor Size
const (
	// ActorSize is the visual edge length of player and enemy squares
	ActorSize = 30.0

	// ActorHalfExtent is the AABB half size used for contact tests
	ActorHalfExtent = ActorSize / 2
)
