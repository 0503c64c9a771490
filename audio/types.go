package audio

import "errors"

// SoundType represents the one-shot sound effects
type SoundType int

const (
	SoundFood      SoundType = iota // Food eaten
	SoundPowerUp                    // Power-up collected
	SoundCollision                  // Round lost
	soundTypeCount
)

func (t SoundType) String() string {
	switch t {
	case SoundFood:
		return "food"
	case SoundPowerUp:
		return "power_up"
	case SoundCollision:
		return "collision"
	}
	return "unknown"
}

// ErrUnknownSound is returned for sound types without a generator
var ErrUnknownSound = errors.New("unknown sound type")
