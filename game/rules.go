package game

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/snake/constants"
)

// Rules are the gameplay tunables. They are read-only during a round
type Rules struct {
	InitialTickDelay time.Duration `toml:"initial_tick_delay"`
	MinTickDelay     time.Duration `toml:"min_tick_delay"`
	LevelSpeedDecay  float64       `toml:"level_speed_decay"`

	PointsPerLevel    int `toml:"points_per_level"`
	ObstaclesPerLevel int `toml:"obstacles_per_level"`

	GoldenFoodChance float64 `toml:"golden_food_chance"`
	PoisonFoodChance float64 `toml:"poison_food_chance"`
	GoldenFoodPoints int     `toml:"golden_food_points"`
	PoisonFoodPoints int     `toml:"poison_food_points"`

	ScoreMultiplierWindow time.Duration `toml:"score_multiplier_window"`

	PowerUpSpawnChance    float64       `toml:"power_up_spawn_chance"`
	PowerUpDuration       time.Duration `toml:"power_up_duration"`
	InvincibilityDuration time.Duration `toml:"invincibility_duration"`
	SpeedFactor           float64       `toml:"speed_factor"`
	SlowFactor            float64       `toml:"slow_factor"`
	ResizeSegments        int           `toml:"resize_segments"`
	MinShrinkLength       int           `toml:"min_shrink_length"`
	PowerUpHeadClearance  int           `toml:"power_up_head_clearance"`

	LargeObstacleChance float64 `toml:"large_obstacle_chance"`
}

// DefaultRules returns the stock rule set
func DefaultRules() Rules {
	return Rules{
		InitialTickDelay:      constants.InitialTickDelay,
		MinTickDelay:          constants.MinTickDelay,
		LevelSpeedDecay:       constants.LevelSpeedDecay,
		PointsPerLevel:        constants.PointsPerLevel,
		ObstaclesPerLevel:     constants.ObstaclesPerLevel,
		GoldenFoodChance:      constants.GoldenFoodChance,
		PoisonFoodChance:      constants.PoisonFoodChance,
		GoldenFoodPoints:      constants.GoldenFoodPoints,
		PoisonFoodPoints:      constants.PoisonFoodPoints,
		ScoreMultiplierWindow: constants.ScoreMultiplierWindow,
		PowerUpSpawnChance:    constants.PowerUpSpawnChance,
		PowerUpDuration:       constants.PowerUpDuration,
		InvincibilityDuration: constants.InvincibilityDuration,
		SpeedFactor:           constants.SpeedFactor,
		SlowFactor:            constants.SlowFactor,
		ResizeSegments:        constants.ResizeSegments,
		MinShrinkLength:       constants.MinShrinkLength,
		PowerUpHeadClearance:  constants.PowerUpHeadClearance,
		LargeObstacleChance:   constants.LargeObstacleChance,
	}
}

// ErrInvalidRules is wrapped by Validate failures
var ErrInvalidRules = errors.New("invalid rules")

// Validate rejects rule sets that would break state invariants
func (r Rules) Validate() error {
	switch {
	case r.MinTickDelay <= 0:
		return fmt.Errorf("%w: min tick delay must be positive", ErrInvalidRules)
	case r.InitialTickDelay < r.MinTickDelay:
		return fmt.Errorf("%w: initial tick delay below floor", ErrInvalidRules)
	case r.LevelSpeedDecay <= 0 || r.LevelSpeedDecay > 1:
		return fmt.Errorf("%w: level speed decay must be in (0, 1]", ErrInvalidRules)
	case r.PointsPerLevel <= 0:
		return fmt.Errorf("%w: points per level must be positive", ErrInvalidRules)
	case r.ObstaclesPerLevel < 0:
		return fmt.Errorf("%w: obstacles per level is negative", ErrInvalidRules)
	case r.SpeedFactor <= 0 || r.SlowFactor <= 0:
		return fmt.Errorf("%w: speed factors must be positive", ErrInvalidRules)
	case r.MinShrinkLength < constants.InitialSnakeLength:
		return fmt.Errorf("%w: shrink floor below %d", ErrInvalidRules, constants.InitialSnakeLength)
	case r.ResizeSegments < 0 || r.PowerUpHeadClearance < 0:
		return fmt.Errorf("%w: negative segment or clearance count", ErrInvalidRules)
	}
	for _, p := range []float64{r.GoldenFoodChance, r.PoisonFoodChance, r.PowerUpSpawnChance, r.LargeObstacleChance} {
		if p < 0 || p > 1 || math.IsNaN(p) {
			return fmt.Errorf("%w: probability %v out of [0, 1]", ErrInvalidRules, p)
		}
	}
	return nil
}

// Settings are the player-adjustable toggles, changed only by commands
type Settings struct {
	GrowthAmount  int     `json:"growth_amount" toml:"growth"`
	SelfCollision bool    `json:"self_collision" toml:"self_collision"`
	Volume        float64 `json:"volume" toml:"volume"`
}

// DefaultSettings returns the initial toggles
func DefaultSettings() Settings {
	return Settings{
		GrowthAmount:  constants.DefaultGrowthAmount,
		SelfCollision: true,
		Volume:        constants.DefaultVolume,
	}
}

// Normalize clamps out-of-range values loaded from disk
func (s Settings) Normalize() Settings {
	s.GrowthAmount = min(max(s.GrowthAmount, constants.MinGrowthAmount), constants.MaxGrowthAmount)
	s.Volume = clampVolume(s.Volume)
	return s
}

func clampVolume(v float64) float64 {
	if math.IsNaN(v) {
		return constants.DefaultVolume
	}
	// Snap to the step grid so repeated ±step round-trips
	v = math.Round(v/constants.VolumeStep) * constants.VolumeStep
	return math.Round(min(max(v, 0), 1)*100) / 100
}
