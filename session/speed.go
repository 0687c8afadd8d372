package session

import (
	"errors"
	"fmt"
	"time"
)

// Speed levels and their frame interval mapping
const (
	MinSpeed = 1
	MaxSpeed = 5

	SlowestInterval = 600 * time.Millisecond
	IntervalStep    = 100 * time.Millisecond
)

// ErrSpeedOutOfRange is returned for levels outside [MinSpeed, MaxSpeed]
var ErrSpeedOutOfRange = errors.New("speed out of range")

// IntervalFor maps a speed level to its frame interval, 1 -> 600ms through 5 -> 200ms
func IntervalFor(speed int) (time.Duration, error) {
	if speed < MinSpeed || speed > MaxSpeed {
		return 0, fmt.Errorf("speed %d: %w", speed, ErrSpeedOutOfRange)
	}
	return SlowestInterval - time.Duration(speed-MinSpeed)*IntervalStep, nil
}

// Settings is the immutable configuration of one play session
type Settings struct {
	Speed    int
	Interval time.Duration
}

// NewSettings derives session settings from a speed level
func NewSettings(speed int) (Settings, error) {
	interval, err := IntervalFor(speed)
	if err != nil {
		return Settings{}, err
	}
	return Settings{Speed: speed, Interval: interval}, nil
}
