package audio

import (
	"time"
)

// Effect timing
const (
	ResetSoundDuration = 180 * time.Millisecond
	ResetSoundAttack   = 5 * time.Millisecond
	ResetSoundRelease  = 120 * time.Millisecond

	InvalidSoundDuration = 120 * time.Millisecond
	InvalidSoundAttack   = 2 * time.Millisecond
	InvalidSoundRelease  = 60 * time.Millisecond

	FarewellNoteDuration = 140 * time.Millisecond
	FarewellSoundAttack  = 5 * time.Millisecond
	FarewellSoundRelease = 90 * time.Millisecond
)

// Config controls audio output
type Config struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultConfig returns audio disabled at half volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:      false,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundReset:    0.6,
			SoundInvalid:  0.8,
			SoundFarewell: 1.0,
		},
	}
}

// SetVolumePercent sets master volume from a 0-100 value, clamped
func (c *Config) SetVolumePercent(v int) {
	c.MasterVolume = float64(v) / 100.0
	if c.MasterVolume < 0 {
		c.MasterVolume = 0
	}
	if c.MasterVolume > 1 {
		c.MasterVolume = 1
	}
}
