package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/cthulhu-strike/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope spanning duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies linear gain; log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateShotSound generates a short noise burst for a fired round
func CreateShotSound(rate beep.SampleRate, vol float64) beep.Streamer {
	noise := NewOscillator(0, parameter.ShotSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.ShotSoundDuration, parameter.ShotSoundAttack, parameter.ShotSoundRelease, rate)
	return newVolume(shaped, vol*0.5)
}

// CreateHurtSound generates a low saw buzz for contact damage
func CreateHurtSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(parameter.HurtSoundFreq, parameter.HurtSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.HurtSoundDuration, parameter.HurtSoundAttack, parameter.HurtSoundRelease, rate)
	return newVolume(shaped, vol)
}

// CreateKillSound generates a descending two-note square blip
func CreateKillSound(rate beep.SampleRate, vol float64) beep.Streamer {
	d := parameter.KillSoundNoteDuration

	high := NewOscillator(parameter.KillSoundFreqHigh, d, WaveSquare, rate)
	highShaped := NewEnvelope(high, d, parameter.KillSoundAttack, parameter.KillSoundRelease, rate)

	low := NewOscillator(parameter.KillSoundFreqLow, d, WaveSquare, rate)
	lowShaped := NewEnvelope(low, d, parameter.KillSoundAttack, parameter.KillSoundRelease, rate)

	return newVolume(beep.Seq(highShaped, lowShaped), vol*0.4)
}

// CreateReloadStartSound generates a dull click
func CreateReloadStartSound(rate beep.SampleRate, vol float64) beep.Streamer {
	d := parameter.ReloadSoundDuration
	osc := NewOscillator(parameter.ReloadStartFreq, d, WaveSquare, rate)
	shaped := NewEnvelope(osc, d, parameter.ReloadSoundAttack, parameter.ReloadSoundRelease, rate)
	return newVolume(shaped, vol*0.3)
}

// CreateReloadFinishSound generates a rising two-note sine chime
func CreateReloadFinishSound(rate beep.SampleRate, vol float64) beep.Streamer {
	d := parameter.ReloadSoundDuration

	n1 := NewOscillator(parameter.ReloadFinishFreqLow, d, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, d, parameter.ReloadSoundAttack, parameter.ReloadSoundRelease, rate)

	n2 := NewOscillator(parameter.ReloadFinishFreqHigh, d, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, d, parameter.ReloadSoundAttack, parameter.ReloadSoundRelease, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), vol*0.6)
}

// GetSoundEffect returns the streamer for the given type, nil for unknown types
func GetSoundEffect(soundType SoundType, rate beep.SampleRate, vol float64) beep.Streamer {
	switch soundType {
	case SoundShot:
		return CreateShotSound(rate, vol)
	case SoundHurt:
		return CreateHurtSound(rate, vol)
	case SoundKill:
		return CreateKillSound(rate, vol)
	case SoundReloadStart:
		return CreateReloadStartSound(rate, vol)
	case SoundReloadFinish:
		return CreateReloadFinishSound(rate, vol)
	default:
		return nil
	}
}
