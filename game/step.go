package game

import (
	"fmt"
	"time"
)

// Steer applies a direction intent unless it is invalid or reverses the
// current heading
func (s *GameState) Steer(intent Direction) bool {
	if !intent.Valid() || intent == s.Direction.Opposite() {
		return false
	}
	s.Direction = intent
	return true
}

// Step advances the simulation by at most one tick. The stage order is fixed:
// steer, pause gate, delay gate, effect tick, move, food, append head,
// invincibility expiry, collisions, pickups, leveling, obstacle maintenance.
// A non-nil error means the board has no room left for food
func (s *GameState) Step(w *World, now time.Time, intent Direction) (Result, error) {
	s.Steer(intent)

	res := Result{Status: StatusContinue, Score: s.Score}
	if s.Paused {
		return res, nil
	}
	// Fractional time is dropped, ticks never accumulate
	if now.Sub(s.LastStep) < s.EffectiveTickDelay(w.Rules) {
		return res, nil
	}
	s.LastStep = now
	res.Ticked = true

	s.tickEffects(w, now, &res)

	newHead := w.Move(s.Head(), s.Direction)

	if newHead == s.Food.Position {
		s.consumeFood(w, now, &res)
		s.duplicateHead(s.Settings.GrowthAmount - 1)

		food, err := w.NewFood(s, newHead)
		if err != nil {
			s.Snake = append(s.Snake, newHead)
			res.Score = s.Score
			return res, fmt.Errorf("tick: %w", err)
		}
		s.Food = food

		if w.roll(w.Rules.PowerUpSpawnChance) {
			// A crowded board simply skips the spawn
			if p, err := w.NewPowerUp(s, newHead); err == nil {
				s.PowerUps = append(s.PowerUps, p)
			}
		}
	} else {
		s.Snake = s.Snake[1:]
	}

	s.Snake = append(s.Snake, newHead)

	if s.Invincible && now.After(s.InvincibilityExpiry) {
		s.Invincible = false
	}

	if !s.Invincible {
		if s.obstacleAt(newHead) {
			return s.gameOver(ReasonHitObstacle, res), nil
		}
		if s.Settings.SelfCollision && s.bodyContains(newHead) {
			return s.gameOver(ReasonHitSelf, res), nil
		}
	}

	s.collectPowerUps(w, now, newHead, &res)
	s.levelUp(w, &res)
	s.maintainObstacles(w)

	res.Score = s.Score
	return res, nil
}

func (s *GameState) obstacleAt(p Position) bool {
	for _, o := range s.Obstacles {
		if o.Position == p {
			return true
		}
	}
	return false
}

// bodyContains checks every segment except the head just appended
func (s *GameState) bodyContains(p Position) bool {
	for _, seg := range s.Snake[:len(s.Snake)-1] {
		if seg == p {
			return true
		}
	}
	return false
}

func (s *GameState) gameOver(reason Reason, res Result) Result {
	res.Status = StatusGameOver
	res.Reason = reason
	res.Score = s.Score
	res.Events = append(res.Events, Event{Type: EventCollision, Reason: reason})
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		res.NewHighScore = true
	}
	return res
}

// duplicateHead stacks n copies of the current head so the body grows as it
// moves away
func (s *GameState) duplicateHead(n int) {
	head := s.Head()
	for range n {
		s.Snake = append(s.Snake, head)
	}
}
