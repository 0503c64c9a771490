package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the render and input poll interval (~60 FPS)
	// Simulation ticks are gated separately by the state's tick delay
	FrameUpdateInterval = 16 * time.Millisecond

	// InputEventBuffer is the capacity of the terminal event channel
	InputEventBuffer = 100

	// MaxQueuedTurns bounds buffered direction keys, extra presses are dropped
	MaxQueuedTurns = 3
)

// Placement Limits
const (
	// MaxPlacementAttempts bounds random sampling before falling back to a scan
	MaxPlacementAttempts = 256
)

// Persistence Defaults
const (
	DefaultConfigPath    = "snake.toml"
	DefaultSavePath      = "savegame.json"
	DefaultHighScorePath = "highscore.json"
	DefaultHistoryPath   = "history.db"

	// HistoryListLimit is the number of rounds shown on the game over screen
	HistoryListLimit = 5
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "snake.log"
)
