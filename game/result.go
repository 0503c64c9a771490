package game

// Status is the per-tick outcome
type Status uint8

const (
	StatusContinue Status = iota
	StatusGameOver
)

// Reason names the terminal condition of a round
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonHitObstacle
	ReasonHitSelf
)

func (r Reason) String() string {
	switch r {
	case ReasonHitObstacle:
		return "hit_obstacle"
	case ReasonHitSelf:
		return "hit_self"
	default:
		return "none"
	}
}

// EventType classifies what happened during a tick
type EventType uint8

const (
	// EventFoodEaten signals a food consumption
	// Consumer: audio ("food") | Payload: Food, Points
	EventFoodEaten EventType = iota

	// EventPowerUpCollected signals a pickup at the head
	// Consumer: audio ("power_up") | Payload: PowerUp
	EventPowerUpCollected

	// EventEffectExpired signals a continuous effect being reverted
	// Payload: PowerUp
	EventEffectExpired

	// EventLevelUp signals a level crossing
	// Payload: Level
	EventLevelUp

	// EventCollision signals the terminal collision
	// Consumer: audio ("collision") | Payload: Reason
	EventCollision
)

// Event is a single tick occurrence for collaborators
type Event struct {
	Type    EventType
	Food    FoodKind
	PowerUp PowerUpKind
	Points  int
	Level   int
	Reason  Reason
}

// Result is the outward-visible outcome of Step
type Result struct {
	Status Status
	Reason Reason

	// Ticked is false when the step was skipped by pause or the delay gate
	Ticked bool

	// Score at the end of the step, carried for high score comparison
	Score int

	// NewHighScore is set when a terminal score exceeded the previous high score
	NewHighScore bool

	Events []Event
}

// Over reports a terminal result
func (r Result) Over() bool {
	return r.Status == StatusGameOver
}
