package game

import "time"

// consumeFood scores the current food. Every food counts as a scoring event
// for the multiplier window; the window is updated before points are added
func (s *GameState) consumeFood(w *World, now time.Time, res *Result) {
	s.registerScoringEvent(w.Rules.ScoreMultiplierWindow, now)

	var points int
	switch s.Food.Kind {
	case FoodNormal:
		points = s.Multiplier()
	case FoodGolden:
		points = w.Rules.GoldenFoodPoints
	case FoodPoison:
		points = w.Rules.PoisonFoodPoints
	}
	s.Score = max(s.Score+points, 0)

	res.Events = append(res.Events, Event{Type: EventFoodEaten, Food: s.Food.Kind, Points: points})
}

// registerScoringEvent escalates the windowed multiplier when the previous
// event lies within window, resets it otherwise, and restarts the window
func (s *GameState) registerScoringEvent(window time.Duration, now time.Time) {
	if !s.MultiplierWindowStart.IsZero() && now.Sub(s.MultiplierWindowStart) <= window {
		s.ScoreMultiplier++
	} else {
		s.ScoreMultiplier = 1
	}
	s.MultiplierWindowStart = now
}
