package component

// EnemyComponent tags a pursuing enemy actor
type EnemyComponent struct {
	// SpawnFrame is the tick that created the enemy
	SpawnFrame int64
}
