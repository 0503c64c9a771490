package game

import (
	"slices"
	"time"
)

// tickEffects applies unstamped effects and reverts expired ones. It walks a
// copy of the active set and swaps in the survivors afterwards
func (s *GameState) tickEffects(w *World, now time.Time, res *Result) {
	if len(s.Effects) == 0 {
		return
	}

	survivors := make([]Effect, 0, len(s.Effects))
	for _, e := range slices.Clone(s.Effects) {
		switch {
		case !e.Stamped():
			s.applyEffect(w, e.Kind)
			e.Expiry = now.Add(w.Rules.PowerUpDuration)
			survivors = append(survivors, e)
		case now.After(e.Expiry):
			s.revertEffect(w, e.Kind)
			res.Events = append(res.Events, Event{Type: EventEffectExpired, PowerUp: e.Kind})
		default:
			survivors = append(survivors, e)
		}
	}
	s.Effects = survivors
	s.normalizeSpeed()
}

// activate applies a continuous effect immediately and starts its timer
func (s *GameState) activate(w *World, now time.Time, kind PowerUpKind) {
	s.applyEffect(w, kind)
	s.Effects = append(s.Effects, Effect{Kind: kind, Expiry: now.Add(w.Rules.PowerUpDuration)})
}

func (s *GameState) applyEffect(w *World, kind PowerUpKind) {
	switch kind {
	case PowerUpSpeed:
		s.SpeedFactor *= w.Rules.SpeedFactor
	case PowerUpSlow:
		s.SpeedFactor *= w.Rules.SlowFactor
	case PowerUpMultiplier:
		s.BonusMultiplier *= 2
	case PowerUpGrow, PowerUpShrink, PowerUpObstacleRemove, PowerUpInvincible:
		// One-shot kinds never become effects
	}
}

func (s *GameState) revertEffect(w *World, kind PowerUpKind) {
	switch kind {
	case PowerUpSpeed:
		s.SpeedFactor /= w.Rules.SpeedFactor
	case PowerUpSlow:
		s.SpeedFactor /= w.Rules.SlowFactor
	case PowerUpMultiplier:
		s.BonusMultiplier = max(s.BonusMultiplier/2, 1)
	case PowerUpGrow, PowerUpShrink, PowerUpObstacleRemove, PowerUpInvincible:
	}
}

// normalizeSpeed drops accumulated float error once no speed effect is left
func (s *GameState) normalizeSpeed() {
	for _, e := range s.Effects {
		if e.Kind == PowerUpSpeed || e.Kind == PowerUpSlow {
			return
		}
	}
	s.SpeedFactor = 1
}

// collectPowerUps removes every power-up at the head and applies it
func (s *GameState) collectPowerUps(w *World, now time.Time, head Position, res *Result) {
	var picked []PowerUpKind
	remaining := s.PowerUps[:0:0]
	for _, p := range s.PowerUps {
		if p.Position == head {
			picked = append(picked, p.Kind)
			continue
		}
		remaining = append(remaining, p)
	}
	if len(picked) == 0 {
		return
	}
	s.PowerUps = remaining

	for _, kind := range picked {
		s.pickUp(w, now, kind)
		res.Events = append(res.Events, Event{Type: EventPowerUpCollected, PowerUp: kind})
	}
}

func (s *GameState) pickUp(w *World, now time.Time, kind PowerUpKind) {
	switch kind {
	case PowerUpSpeed, PowerUpSlow, PowerUpMultiplier:
		s.activate(w, now, kind)
	case PowerUpGrow:
		s.growTail(w.Rules.ResizeSegments)
	case PowerUpShrink:
		s.shrinkTail(w.Rules.ResizeSegments, w.Rules.MinShrinkLength)
	case PowerUpObstacleRemove:
		s.removeRandomObstacle(w)
	case PowerUpInvincible:
		s.Invincible = true
		s.InvincibilityExpiry = now.Add(w.Rules.InvincibilityDuration)
	}
}

// growTail stacks n copies of the tail, the body extends as it moves
func (s *GameState) growTail(n int) {
	if n <= 0 {
		return
	}
	tail := s.Snake[0]
	grown := make([]Position, 0, len(s.Snake)+n)
	for range n {
		grown = append(grown, tail)
	}
	s.Snake = append(grown, s.Snake...)
}

// shrinkTail drops up to n tail segments, keeping at least floor
func (s *GameState) shrinkTail(n, floor int) {
	drop := min(n, len(s.Snake)-floor)
	if drop <= 0 {
		return
	}
	s.Snake = s.Snake[drop:]
}

func (s *GameState) removeRandomObstacle(w *World) {
	if len(s.Obstacles) == 0 {
		return
	}
	i := w.rng.Intn(len(s.Obstacles))
	s.Obstacles = slices.Delete(slices.Clone(s.Obstacles), i, i+1)
}
