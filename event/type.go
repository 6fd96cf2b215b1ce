package event

// EventType represents the type of game event
type EventType int

const (
	// === Weapon Event ===

	// EventWeaponSelected signals a selection change
	// Trigger: SelectSystem | Payload: *WeaponSelectedPayload
	EventWeaponSelected EventType = iota

	// EventWeaponFired signals a shot that consumed ammo
	// Trigger: WeaponSystem | Payload: *WeaponFiredPayload
	EventWeaponFired

	// EventReloadStarted signals entry into the reload state (auto or manual)
	// Trigger: WeaponSystem | Payload: *ReloadPayload
	EventReloadStarted

	// EventReloadFinished signals magazine refill
	// Trigger: WeaponSystem | Payload: *ReloadPayload
	EventReloadFinished

	// === Combat Event ===

	// EventEnemyHit signals non-lethal cone damage
	// Trigger: WeaponSystem cone resolution | Payload: *EnemyHitPayload
	EventEnemyHit

	// EventEnemyKilled signals enemy removal by cone damage
	// Trigger: WeaponSystem cone resolution | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventPlayerHit signals contact damage to the player
	// Trigger: ContactSystem | Payload: *PlayerHitPayload
	EventPlayerHit

	// EventPlayerVulnerable signals the end of the invincibility window
	// Trigger: ContactSystem | Payload: nil
	EventPlayerVulnerable

	// === Spawn Event ===

	// EventEnemySpawned signals a new enemy from the scheduler
	// Trigger: SpawnSystem | Payload: *EnemySpawnedPayload
	EventEnemySpawned
)

var typeNames = map[EventType]string{
	EventWeaponSelected:   "WeaponSelected",
	EventWeaponFired:      "WeaponFired",
	EventReloadStarted:    "ReloadStarted",
	EventReloadFinished:   "ReloadFinished",
	EventEnemyHit:         "EnemyHit",
	EventEnemyKilled:      "EnemyKilled",
	EventPlayerHit:        "PlayerHit",
	EventPlayerVulnerable: "PlayerVulnerable",
	EventEnemySpawned:     "EnemySpawned",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a single occurrence emitted by a system during a tick
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
