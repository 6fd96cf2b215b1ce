package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioMasterVolume is the default linear gain applied to every effect
	AudioMasterVolume = 0.6
)

// Shot Sound (noise burst)
const (
	ShotSoundDuration = 60 * time.Millisecond
	ShotSoundAttack   = 2 * time.Millisecond
	ShotSoundRelease  = 40 * time.Millisecond
)

// Hurt Sound (low saw buzz on contact damage)
const (
	HurtSoundDuration = 150 * time.Millisecond
	HurtSoundAttack   = 5 * time.Millisecond
	HurtSoundRelease  = 60 * time.Millisecond
	HurtSoundFreq     = 110.0
)

// Kill Sound (descending two notes)
const (
	KillSoundNoteDuration = 70 * time.Millisecond
	KillSoundAttack       = 3 * time.Millisecond
	KillSoundRelease      = 40 * time.Millisecond
	KillSoundFreqHigh     = 659.25 // E5
	KillSoundFreqLow      = 440.0  // A4
)

// Reload Sounds (click on start, rising chime on finish)
const (
	ReloadSoundDuration  = 40 * time.Millisecond
	ReloadSoundAttack    = 1 * time.Millisecond
	ReloadSoundRelease   = 20 * time.Millisecond
	ReloadStartFreq      = 220.0
	ReloadFinishFreqLow  = 523.25 // C5
	ReloadFinishFreqHigh = 783.99 // G5
)
