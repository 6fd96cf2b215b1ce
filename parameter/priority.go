package parameter

// System Execution Priorities (lower runs first)
// Later systems read state written by earlier ones in the same tick
const (
	PrioritySelect     = 10
	PriorityWeapon     = 20 // Timers, fire, cone damage, manual reload
	PriorityContact    = 40 // Invincibility countdown or contact check
	PriorityPlayerMove = 50
	PriorityEnemyMove  = 60 // After player move, pursues the updated position
	PrioritySpawn      = 70
)
