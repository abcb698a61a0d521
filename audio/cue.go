// Package audio plays short synthesized cues for seating actions.
//
// Audio is optional: when the speaker cannot be opened every call is a no-op.
package audio

import (
	"errors"

	"github.com/lixenwraith/seat-planner/constants"
)

// Cue identifies a sound cue
type Cue int

const (
	CuePickUp  Cue = iota // Student lifted from the roster
	CueSeated             // Student placed on a seat
	CueEvicted            // Occupant sent back to the roster
	CueRefused            // Drop on a disabled seat
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CuePickUp:
		return "PickUp"
	case CueSeated:
		return "Seated"
	case CueEvicted:
		return "Evicted"
	case CueRefused:
		return "Refused"
	default:
		return "Unknown"
	}
}

var ErrInvalidVolume = errors.New("volume must be between 0 and 1")

// Config holds audio settings
type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
}

// DefaultConfig returns disabled audio at half volume
func DefaultConfig() Config {
	return Config{
		Enabled:      false,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
	}
}

// Validate checks the volume range and fills a missing sample rate
func (c *Config) Validate() error {
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return ErrInvalidVolume
	}
	if c.SampleRate <= 0 {
		c.SampleRate = constants.AudioSampleRate
	}
	return nil
}
