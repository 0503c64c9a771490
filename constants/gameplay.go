package constants

import "time"

// Food
const (
	// GoldenFoodChance and PoisonFoodChance are independent thresholds, remainder is normal food
	GoldenFoodChance = 0.10
	PoisonFoodChance = 0.05

	GoldenFoodPoints = 5
	PoisonFoodPoints = -2

	// DefaultGrowthAmount is the number of segments gained per food
	DefaultGrowthAmount = 1
	MinGrowthAmount     = 1
	MaxGrowthAmount     = 5
)

// Score Multiplier
const (
	// ScoreMultiplierWindow is the span within which consecutive pickups escalate the multiplier
	ScoreMultiplierWindow = 5 * time.Second
)

// Power-ups
const (
	// PowerUpSpawnChance is rolled on every food consumption
	PowerUpSpawnChance = 0.2

	// PowerUpDuration is the lifetime of continuous effects (speed, slow, multiplier)
	PowerUpDuration = 10 * time.Second

	// InvincibilityDuration is how long obstacle and self collisions are ignored
	InvincibilityDuration = 5 * time.Second

	SpeedFactor = 0.8
	SlowFactor  = 1.25

	// ResizeSegments is the number of segments added by grow and removed by shrink
	ResizeSegments = 3

	// MinShrinkLength is the body length floor for shrink
	MinShrinkLength = 3

	// PowerUpHeadClearance is the Chebyshev distance from the head a power-up may not spawn within
	PowerUpHeadClearance = 2
)

// Leveling & Obstacles
const (
	PointsPerLevel    = 10
	ObstaclesPerLevel = 3

	// LargeObstacleChance selects the cosmetic large obstacle glyph
	LargeObstacleChance = 0.3
)

// Settings
const (
	DefaultVolume = 0.5
	VolumeStep    = 0.1
)
