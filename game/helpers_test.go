package game

import (
	"testing"
	"time"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// quietRules disables every random spawn so tests control the board
func quietRules() Rules {
	r := DefaultRules()
	r.GoldenFoodChance = 0
	r.PoisonFoodChance = 0
	r.PowerUpSpawnChance = 0
	r.ObstaclesPerLevel = 0
	return r
}

func newTestWorld(t *testing.T, mutate func(*Rules)) *World {
	t.Helper()
	r := quietRules()
	if mutate != nil {
		mutate(&r)
	}
	w, err := NewWorld(30, 20, r, 1)
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	return w
}

// bareState builds a state with the given body (tail first), heading right,
// food parked in the corner
func bareState(w *World, body ...Position) *GameState {
	return &GameState{
		Level:           1,
		TickDelay:       w.Rules.InitialTickDelay,
		SpeedFactor:     1,
		Snake:           body,
		Direction:       DirRight,
		Food:            Food{Position: Position{Row: 0, Col: 0}},
		ScoreMultiplier: 1,
		BonusMultiplier: 1,
		LastStep:        t0,
		Settings:        DefaultSettings(),
	}
}

func pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// mustStep runs Step and fails the test on error
func mustStep(t *testing.T, s *GameState, w *World, now time.Time, intent Direction) Result {
	t.Helper()
	res, err := s.Step(w, now, intent)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	return res
}

func hasEvent(res Result, typ EventType) bool {
	for _, e := range res.Events {
		if e.Type == typ {
			return true
		}
	}
	return false
}
