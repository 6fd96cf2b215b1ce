package parameter

import (
	"time"
)

// Enemy Actor
const (
	// EnemySpeed is pursuit speed in world units/sec
	EnemySpeed = 90.0

	// EnemyHealth is starting health of a spawned enemy
	EnemyHealth = 25
)

// Spawn Scheduler
const (
	// EnemySpawnInterval is the fixed cadence of spawn attempts, independent of frame rate
	EnemySpawnInterval = 1 * time.Second

	// EnemySpawnDistance is the radial distance from the player of a new enemy
	EnemySpawnDistance = 750.0

	// EnemyMaxCount is the population cap checked on each spawn attempt
	EnemyMaxCount = 10
)
