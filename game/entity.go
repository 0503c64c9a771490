package game

import (
	"fmt"
	"time"
)

// FoodKind selects points and glyph of a food item
type FoodKind uint8

const (
	FoodNormal FoodKind = iota // +1 × multiplier
	FoodGolden                 // flat bonus
	FoodPoison                 // flat penalty
)

var foodNames = [...]string{
	FoodNormal: "normal",
	FoodGolden: "golden",
	FoodPoison: "poison",
}

func (k FoodKind) String() string {
	if int(k) < len(foodNames) {
		return foodNames[k]
	}
	return "unknown"
}

// Glyph returns the display rune
func (k FoodKind) Glyph() rune {
	switch k {
	case FoodGolden:
		return '$'
	case FoodPoison:
		return 'x'
	default:
		return '*'
	}
}

func (k FoodKind) MarshalText() ([]byte, error) {
	if int(k) >= len(foodNames) {
		return nil, fmt.Errorf("food kind: cannot encode %d", k)
	}
	return []byte(foodNames[k]), nil
}

func (k *FoodKind) UnmarshalText(text []byte) error {
	for i, name := range foodNames {
		if name == string(text) {
			*k = FoodKind(i)
			return nil
		}
	}
	return fmt.Errorf("food kind: unknown value %q", text)
}

// PowerUpKind enumerates pickups. Speed, Slow and Multiplier are continuous
// (timed, reverted on expiry); the rest are one-shot
type PowerUpKind uint8

const (
	PowerUpSpeed PowerUpKind = iota
	PowerUpGrow
	PowerUpSlow
	PowerUpObstacleRemove
	PowerUpShrink
	PowerUpInvincible
	PowerUpMultiplier
	powerUpKindCount
)

var powerUpNames = [...]string{
	PowerUpSpeed:          "speed",
	PowerUpGrow:           "grow",
	PowerUpSlow:           "slow",
	PowerUpObstacleRemove: "obstacle_remove",
	PowerUpShrink:         "shrink",
	PowerUpInvincible:     "invincible",
	PowerUpMultiplier:     "multiplier",
}

func (k PowerUpKind) String() string {
	if k < powerUpKindCount {
		return powerUpNames[k]
	}
	return "unknown"
}

// Glyph returns the display rune
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpSpeed:
		return '>'
	case PowerUpGrow:
		return '+'
	case PowerUpSlow:
		return '<'
	case PowerUpObstacleRemove:
		return '~'
	case PowerUpShrink:
		return '-'
	case PowerUpInvincible:
		return '!'
	case PowerUpMultiplier:
		return 'M'
	default:
		return '?'
	}
}

// Continuous reports whether the kind becomes a timed Effect on pickup
func (k PowerUpKind) Continuous() bool {
	switch k {
	case PowerUpSpeed, PowerUpSlow, PowerUpMultiplier:
		return true
	case PowerUpGrow, PowerUpObstacleRemove, PowerUpShrink, PowerUpInvincible:
		return false
	default:
		return false
	}
}

func (k PowerUpKind) MarshalText() ([]byte, error) {
	if k >= powerUpKindCount {
		return nil, fmt.Errorf("power-up kind: cannot encode %d", k)
	}
	return []byte(powerUpNames[k]), nil
}

func (k *PowerUpKind) UnmarshalText(text []byte) error {
	for i, name := range powerUpNames {
		if name == string(text) {
			*k = PowerUpKind(i)
			return nil
		}
	}
	return fmt.Errorf("power-up kind: unknown value %q", text)
}

// ObstacleKind is cosmetic, collision is uniform
type ObstacleKind uint8

const (
	ObstacleSmall ObstacleKind = iota
	ObstacleLarge
)

// Glyph returns the display rune
func (k ObstacleKind) Glyph() rune {
	if k == ObstacleLarge {
		return '█'
	}
	return '#'
}

func (k ObstacleKind) MarshalText() ([]byte, error) {
	switch k {
	case ObstacleSmall:
		return []byte("small"), nil
	case ObstacleLarge:
		return []byte("large"), nil
	default:
		return nil, fmt.Errorf("obstacle kind: cannot encode %d", k)
	}
}

func (k *ObstacleKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "small":
		*k = ObstacleSmall
	case "large":
		*k = ObstacleLarge
	default:
		return fmt.Errorf("obstacle kind: unknown value %q", text)
	}
	return nil
}

// Food is the single edible item on the board
type Food struct {
	Position Position `json:"position"`
	Kind     FoodKind `json:"kind"`
}

// PowerUp is an uncollected pickup on the board
type PowerUp struct {
	Position Position    `json:"position"`
	Kind     PowerUpKind `json:"kind"`
}

// Obstacle is a lethal cell unless the snake is invincible
type Obstacle struct {
	Position Position     `json:"position"`
	Kind     ObstacleKind `json:"kind"`
}

// Effect is a collected continuous power-up. A zero Expiry means the effect
// has not been applied yet
type Effect struct {
	Kind   PowerUpKind `json:"kind"`
	Expiry time.Time   `json:"expiry"`
}

// Stamped reports whether the effect has been applied
func (e Effect) Stamped() bool {
	return !e.Expiry.IsZero()
}
