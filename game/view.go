package game

import (
	"slices"
	"time"
)

// EffectView is an active effect with its remaining time
type EffectView struct {
	Kind      PowerUpKind
	Remaining time.Duration
}

// View is the read-only frame snapshot handed to the renderer
type View struct {
	Width, Height int

	Snake     []Position
	Direction Direction
	Food      Food
	PowerUps  []PowerUp
	Obstacles []Obstacle

	Score           int
	Level           int
	HighScore       int
	ScoreMultiplier int
	BonusMultiplier int
	TickDelay       time.Duration

	Paused              bool
	Invincible          bool
	InvincibleRemaining time.Duration
	Effects             []EffectView

	Settings Settings
}

// View copies the renderable parts of the state
func (s *GameState) View(w *World, now time.Time) View {
	v := View{
		Width:           w.Width,
		Height:          w.Height,
		Snake:           slices.Clone(s.Snake),
		Direction:       s.Direction,
		Food:            s.Food,
		PowerUps:        slices.Clone(s.PowerUps),
		Obstacles:       slices.Clone(s.Obstacles),
		Score:           s.Score,
		Level:           s.Level,
		HighScore:       max(s.HighScore, s.Score),
		ScoreMultiplier: s.ScoreMultiplier,
		BonusMultiplier: s.BonusMultiplier,
		TickDelay:       s.EffectiveTickDelay(w.Rules),
		Paused:          s.Paused,
		Invincible:      s.Invincible,
		Settings:        s.Settings,
	}
	if s.Invincible {
		v.InvincibleRemaining = max(s.InvincibilityExpiry.Sub(now), 0)
	}
	for _, e := range s.Effects {
		var left time.Duration
		if e.Stamped() {
			left = max(e.Expiry.Sub(now), 0)
		}
		v.Effects = append(v.Effects, EffectView{Kind: e.Kind, Remaining: left})
	}
	return v
}
