package constants

import "time"

// Board Defaults
const (
	// DefaultGridWidth and DefaultGridHeight are used when the terminal size is unknown
	DefaultGridWidth  = 60
	DefaultGridHeight = 20

	// MinGridWidth and MinGridHeight is the smallest playable board
	MinGridWidth  = 10
	MinGridHeight = 6

	// InitialSnakeLength is the body length at round start
	InitialSnakeLength = 2
)

// Tick Delay
const (
	// InitialTickDelay is the delay between simulation ticks at level 1
	InitialTickDelay = 150 * time.Millisecond

	// MinTickDelay is the floor for the effective tick delay
	MinTickDelay = 40 * time.Millisecond

	// LevelSpeedDecay multiplies the tick delay on each level up
	LevelSpeedDecay = 0.9
)
