package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundReset    SoundType = iota // Board reseeded
	SoundInvalid                   // Rejected prompt entry
	SoundFarewell                  // Leaving the program
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundReset:
		return "reset"
	case SoundInvalid:
		return "invalid"
	case SoundFarewell:
		return "farewell"
	default:
		return "unknown"
	}
}

// ErrDisabled is returned when initializing a manager whose config disables audio
var ErrDisabled = errors.New("audio disabled")
