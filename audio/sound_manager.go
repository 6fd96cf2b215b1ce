package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/cthulhu-strike/event"
	"github.com/lixenwraith/cthulhu-strike/parameter"
)

// SoundManager plays one-shot effects through a shared mixer
// Every method is a no-op until Initialize succeeds, so the game runs silent without a device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool

	muted  atomic.Bool
	played atomic.Int64
}

// NewSoundManager creates a new sound manager with the given linear master volume
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		volume: volume,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()

	sm.initialized = false
}

// Play queues a sound effect on the mixer
func (sm *SoundManager) Play(soundType SoundType) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := GetSoundEffect(soundType, sm.rate, sm.volume)
	if s == nil {
		return
	}

	// Mixer is read by the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played.Add(1)
}

// HandleEvents plays the sounds for one tick's events, each sound at most once per batch
func (sm *SoundManager) HandleEvents(events []event.GameEvent) {
	var seen [soundTypeCount]bool
	for _, ev := range events {
		st, ok := SoundForEvent(ev)
		if !ok || seen[st] {
			continue
		}
		seen[st] = true
		sm.Play(st)
	}
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			log.Printf("[audio] muted=%v", !old)
			return !old
		}
	}
}

// SetMuted sets the mute state
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Played returns the number of effects queued since creation
func (sm *SoundManager) Played() int64 {
	return sm.played.Load()
}
