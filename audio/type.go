package audio

import (
	"github.com/lixenwraith/cthulhu-strike/event"
)

// SoundType identifies a one-shot sound effect
type SoundType int

const (
	SoundShot SoundType = iota
	SoundHurt
	SoundKill
	SoundReloadStart
	SoundReloadFinish

	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundShot:         "shot",
	SoundHurt:         "hurt",
	SoundKill:         "kill",
	SoundReloadStart:  "reload_start",
	SoundReloadFinish: "reload_finish",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// SoundForEvent maps a gameplay event to its effect, false for silent events
func SoundForEvent(ev event.GameEvent) (SoundType, bool) {
	switch ev.Type {
	case event.EventWeaponFired:
		return SoundShot, true
	case event.EventPlayerHit:
		return SoundHurt, true
	case event.EventEnemyKilled:
		return SoundKill, true
	case event.EventReloadStarted:
		return SoundReloadStart, true
	case event.EventReloadFinished:
		return SoundReloadFinish, true
	default:
		return 0, false
	}
}
