package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GameState is the whole mutable simulation state. It is owned by a single
// loop; Step and Apply are not safe for concurrent use
type GameState struct {
	SessionID string `json:"session_id"`

	Score     int           `json:"score"`
	Level     int           `json:"level"`
	HighScore int           `json:"high_score"`
	TickDelay time.Duration `json:"tick_delay"`

	// SpeedFactor is the product of active speed/slow effects
	SpeedFactor float64 `json:"speed_factor"`

	// Snake body, tail first, head last
	Snake     []Position `json:"snake"`
	Direction Direction  `json:"direction"`

	Food      Food       `json:"food"`
	PowerUps  []PowerUp  `json:"power_ups"`
	Effects   []Effect   `json:"effects"`
	Obstacles []Obstacle `json:"obstacles"`

	Paused              bool      `json:"paused"`
	Invincible          bool      `json:"invincible"`
	InvincibilityExpiry time.Time `json:"invincibility_expiry"`

	// ScoreMultiplier escalates with pickups inside the multiplier window
	ScoreMultiplier int `json:"score_multiplier"`
	// BonusMultiplier is doubled by each active multiplier power-up
	BonusMultiplier       int       `json:"bonus_multiplier"`
	MultiplierWindowStart time.Time `json:"multiplier_window_start"`

	LastStep time.Time `json:"last_step"`
	Settings Settings  `json:"settings"`
}

// NewGameState creates a fresh round: a two-segment snake heading right
// from the board center, one food and the level 1 obstacles
func NewGameState(w *World, now time.Time, settings Settings, highScore int) (*GameState, error) {
	row, col := w.Height/2, w.Width/2-1
	s := &GameState{
		SessionID:       uuid.NewString(),
		Level:           1,
		HighScore:       highScore,
		TickDelay:       w.Rules.InitialTickDelay,
		SpeedFactor:     1,
		Snake:           []Position{{Row: row, Col: col}, {Row: row, Col: col + 1}},
		Direction:       DirRight,
		ScoreMultiplier: 1,
		BonusMultiplier: 1,
		LastStep:        now,
		Settings:        settings.Normalize(),
	}

	food, err := w.NewFood(s)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	s.Food = food
	s.maintainObstacles(w)
	return s, nil
}

// Head returns the snake head
func (s *GameState) Head() Position {
	return s.Snake[len(s.Snake)-1]
}

// EffectiveTickDelay is the base delay scaled by active effects, floored
func (s *GameState) EffectiveTickDelay(r Rules) time.Duration {
	d := time.Duration(float64(s.TickDelay) * s.SpeedFactor)
	return max(d, r.MinTickDelay)
}

// Multiplier is the factor applied to normal food
func (s *GameState) Multiplier() int {
	return s.ScoreMultiplier * s.BonusMultiplier
}

// occupied collects every cell a spawn must avoid
func (s *GameState) occupied() map[Position]struct{} {
	cells := make(map[Position]struct{}, len(s.Snake)+len(s.PowerUps)+len(s.Obstacles)+1)
	for _, p := range s.Snake {
		cells[p] = struct{}{}
	}
	cells[s.Food.Position] = struct{}{}
	for _, p := range s.PowerUps {
		cells[p.Position] = struct{}{}
	}
	for _, o := range s.Obstacles {
		cells[o.Position] = struct{}{}
	}
	return cells
}

// Rebase shifts every stored timestamp by d. Used when restoring a snapshot
// written under a different clock
func (s *GameState) Rebase(d time.Duration) {
	shift := func(t time.Time) time.Time {
		if t.IsZero() {
			return t
		}
		return t.Add(d)
	}
	s.LastStep = shift(s.LastStep)
	s.InvincibilityExpiry = shift(s.InvincibilityExpiry)
	s.MultiplierWindowStart = shift(s.MultiplierWindowStart)
	for i := range s.Effects {
		s.Effects[i].Expiry = shift(s.Effects[i].Expiry)
	}
}

// Check reports structural problems in a state loaded from outside
func (s *GameState) Check(w *World) error {
	switch {
	case len(s.Snake) < 2:
		return fmt.Errorf("snake length %d below 2", len(s.Snake))
	case !s.Direction.Valid():
		return fmt.Errorf("invalid direction %d", s.Direction)
	case s.Level < 1:
		return fmt.Errorf("level %d below 1", s.Level)
	case s.TickDelay <= 0:
		return fmt.Errorf("tick delay %v not positive", s.TickDelay)
	case s.SpeedFactor <= 0:
		return fmt.Errorf("speed factor %v not positive", s.SpeedFactor)
	case s.ScoreMultiplier < 1 || s.BonusMultiplier < 1:
		return fmt.Errorf("multiplier below 1")
	}
	inside := func(p Position) bool {
		return p.Row >= 0 && p.Row < w.Height && p.Col >= 0 && p.Col < w.Width
	}
	for _, p := range s.Snake {
		if !inside(p) {
			return fmt.Errorf("snake cell %v outside %dx%d board", p, w.Width, w.Height)
		}
	}
	if !inside(s.Food.Position) {
		return fmt.Errorf("food %v outside board", s.Food.Position)
	}
	for _, o := range s.Obstacles {
		if !inside(o.Position) {
			return fmt.Errorf("obstacle %v outside board", o.Position)
		}
	}
	for _, p := range s.PowerUps {
		if !inside(p.Position) {
			return fmt.Errorf("power-up %v outside board", p.Position)
		}
	}
	for _, e := range s.Effects {
		if !e.Kind.Continuous() {
			return fmt.Errorf("effect %s is not continuous", e.Kind)
		}
	}
	return nil
}
