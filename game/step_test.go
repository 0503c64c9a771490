package game

import (
	"errors"
	"math"
	"testing"
	"time"
)

// TestScenarioEatFood verifies a head landing on food scores and grows
func TestScenarioEatFood(t *testing.T) {
	w := newTestWorld(t, nil)
	s := bareState(w, pos(10, 10), pos(10, 11))
	s.Food = Food{Position: pos(10, 12), Kind: FoodNormal}

	res := mustStep(t, s, w, t0.Add(150*time.Millisecond), DirNone)

	if !res.Ticked || res.Over() {
		t.Fatalf("Expected a continuing tick, got %+v", res)
	}
	if s.Score != 1 {
		t.Errorf("Expected score 1, got %d", s.Score)
	}
	if len(s.Snake) != 3 {
		t.Errorf("Expected length 3, got %d", len(s.Snake))
	}
	if s.Head() != pos(10, 12) {
		t.Errorf("Expected head (10,12), got %v", s.Head())
	}
	for _, p := range s.Snake {
		if p == s.Food.Position {
			t.Errorf("Food regenerated on snake cell %v", p)
		}
	}
	if !hasEvent(res, EventFoodEaten) {
		t.Error("Expected food event")
	}
}

// TestScenarioHitSelf verifies turning into the body ends the round
func TestScenarioHitSelf(t *testing.T) {
	w := newTestWorld(t, nil)
	s := bareState(w, pos(5, 5), pos(5, 6), pos(5, 7), pos(5, 8), pos(6, 8), pos(6, 7))
	s.Direction = DirLeft
	s.Score = 7

	res := mustStep(t, s, w, t0.Add(150*time.Millisecond), DirUp)

	if !res.Over() || res.Reason != ReasonHitSelf {
		t.Fatalf("Expected HitSelf, got status %v reason %v", res.Status, res.Reason)
	}
	if res.Score != 7 {
		t.Errorf("Expected terminal score 7, got %d", res.Score)
	}
	if !res.NewHighScore || s.HighScore != 7 {
		t.Errorf("Expected new high score 7, got %d (flag %v)", s.HighScore, res.NewHighScore)
	}
	if !hasEvent(res, EventCollision) {
		t.Error("Expected collision event")
	}
}

// TestSelfCollisionDisabled verifies the toggle lets the snake cross itself
func TestSelfCollisionDisabled(t *testing.T) {
	w := newTestWorld(t, nil)
	s := bareState(w, pos(5, 5), pos(5, 6), pos(5, 7), pos(5, 8), pos(6, 8), pos(6, 7))
	s.Direction = DirLeft
	s.Settings.SelfCollision = false

	res := mustStep(t, s, w, t0.Add(150*time.Millisecond), DirUp)
	if res.Over() {
		t.Errorf("Expected no game over with self collision off, got %v", res.Reason)
	}
}

// TestSelfCollisionExcludesNewHead verifies no false positive at minimum length
func TestSelfCollisionExcludesNewHead(t *testing.T) {
	w := newTestWorld(t, nil)
	s := bareState(w, pos(3, 3), pos(3, 4))

	for i := 1; i <= 40; i++ {
		res := mustStep(t, s, w, t0.Add(time.Duration(i)*150*time.Millisecond), DirNone)
		if res.Over() {
			t.Fatalf("Tick %d: unexpected game over %v", i, res.Reason)
		}
		if len(s.Snake) != 2 {
			t.Fatalf("Tick %d: expected length 2, got %d", i, len(s.Snake))
		}
	}
}

// TestTailChaseIsSafe verifies entering the cell the tail leaves this tick
func TestTailChaseIsSafe(t *testing.T) {
	w := newTestWorld(t, nil)
	s := bareState(w, pos(3, 3), pos(3, 4), pos(4, 4), pos(4, 3))
	s.Direction = DirLeft

	res := mustStep(t, s, w, t0.Add(150*time.Millisecond), DirUp)
	if res.Over() {
		t.Fatalf("Expected tail chase to be safe, got %v", res.Reason)
	}
	if s.Head() != pos(3, 3) {
		t.Errorf("Expected head (3,3), got %v", s.Head())
	}
}

// TestScenarioSpeedPowerUp verifies speed applies on pickup and reverts on expiry
func TestScenarioSpeedPowerUp(t *testing.T) {
	w := newTestWorld(t, nil)
	s := bareState(w, pos(10, 10), pos(10, 11))
	s.PowerUps = []PowerUp{{Position: pos(10, 12), Kind: PowerUpSpeed}}
	before := s.EffectiveTickDelay(w.Rules)

	t1 := t0.Add(150 * time.Millisecond)
	res := mustStep(t, s, w, t1, DirNone)
	if !hasEvent(res, EventPowerUpCollected) {
		t.Fatal("Expected power-up pickup")
	}
	if len(s.PowerUps) != 0 {
		t.Errorf("Expected power-up removed from board, %d left", len(s.PowerUps))
	}
	if got, want := s.EffectiveTickDelay(w.Rules), time.Duration(float64(before)*0.8); got != want {
		t.Errorf("Expected tick delay %v after pickup, got %v", want, got)
	}

	// Exactly at expiry the effect is still active
	mustStep(t, s, w, t1.Add(w.Rules.PowerUpDuration), DirNone)
	if len(s.Effects) != 1 {
		t.Fatalf("Expected effect active at expiry boundary, got %d", len(s.Effects))
	}

	res = mustStep(t, s, w, t1.Add(w.Rules.PowerUpDuration+200*time.Millisecond), DirNone)
	if !hasEvent(res, EventEffectExpired) {
		t.Error("Expected expiry event")
	}
	if len(s.Effects) != 0 {
		t.Errorf("Expected no active effects, got %d", len(s.Effects))
	}
	if got := s.EffectiveTickDelay(w.Rules); got != before {
		t.Errorf("Expected tick delay restored to %v, got %v", before, got)
	}
	if s.TickDelay != w.Rules.InitialTickDelay {
		t.Errorf("Base tick delay changed: %v", s.TickDelay)
	}
}

// TestSpeedSlowInterleavedInversion verifies overlapping speed/slow effects cancel out
func TestSpeedSlowInterleavedInversion(t *testing.T) {
	w := newTestWorld(t, nil)
	s := bareState(w, pos(10, 10), pos(10, 11))
	before := s.EffectiveTickDelay(w.Rules)

	kinds := []PowerUpKind{PowerUpSpeed, PowerUpSlow, PowerUpSpeed, PowerUpSpeed, PowerUpSlow}
	for i, k := range kinds {
		s.activate(w, t0.Add(time.Duration(i)*time.Second), k)
	}
	// Partial expiry: the first two lapse
	var res Result
	s.tickEffects(w, t0.Add(w.Rules.PowerUpDuration+1500*time.Millisecond), &res)
	if len(s.Effects) != 3 {
		t.Fatalf("Expected 3 effects after partial expiry, got %d", len(s.Effects))
	}
	want := w.Rules.SpeedFactor * w.Rules.SpeedFactor * w.Rules.SlowFactor
	if math.Abs(s.SpeedFactor-want) > 1e-9 {
		t.Errorf("Expected factor %v, got %v", want, s.SpeedFactor)
	}

	s.tickEffects(w, t0.Add(w.Rules.PowerUpDuration+time.Minute), &res)
	if len(s.Effects) != 0 {
		t.Fatalf("Expected all effects expired, got %d", len(s.Effects))
	}
	if got := s.EffectiveTickDelay(w.Rules); got != before {
		t.Errorf("Expected tick delay %v, got %v", before, got)
	}
}

// TestUnstampedEffectAppliedOnTick verifies restored effects start on the next tick
func TestUnstampedEffectAppliedOnTick(t *testing.T) {
	w := newTestWorld(t, nil)
	s := bareState(w, pos(10, 10), pos(10, 11))
	s.Effects = []Effect{{Kind: PowerUpSlow}}

	t1 := t0.Add(150 * time.Millisecond)
	mustStep(t, s, w, t1, DirNone)

	if len(s.Effects) != 1 || !s.Effects[0].Stamped() {
		t.Fatalf("Expected stamped effect, got %+v", s.Effects)
	}
	if !s.Effects[0].Expiry.Equal(t1.Add(w.Rules.PowerUpDuration)) {
		t.Errorf("Expected expiry %v, got %v", t1.Add(w.Rules.PowerUpDuration), s.Effects[0].Expiry)
	}
	if s.SpeedFactor != w.Rules.SlowFactor {
		t.Errorf("Expected factor %v, got %v", w.Rules.SlowFactor, s.SpeedFactor)
	}
}

// TestScenarioLevelUp verifies a threshold crossing raises level, speed and obstacles
func TestScenarioLevelUp(t *testing.T) {
	w := newTestWorld(t, func(r *Rules) { r.ObstaclesPerLevel = 3 })
	s := bareState(w, pos(10, 10), pos(10, 11))
	s.Score = 9
	s.Food = Food{Position: pos(10, 12), Kind: FoodNormal}

	res := mustStep(t, s, w, t0.Add(150*time.Millisecond), DirNone)

	if s.Score != 10 {
		t.Fatalf("Expected score 10, got %d", s.Score)
	}
	if s.Level != 2 {
		t.Errorf("Expected level 2, got %d", s.Level)
	}
	if target := s.ObstacleTarget(w.Rules); target != 6 {
		t.Errorf("Expected obstacle target 6, got %d", target)
	}
	if len(s.Obstacles) != 6 {
		t.Errorf("Expected 6 obstacles, got %d", len(s.Obstacles))
	}
	if want := time.Duration(float64(w.Rules.InitialTickDelay) * w.Rules.LevelSpeedDecay); s.TickDelay != want {
		t.Errorf("Expected tick delay %v, got %v", want, s.TickDelay)
	}
	if !hasEvent(res, EventLevelUp) {
		t.Error("Expected level up event")
	}
}

// TestLevelUpSkippedThresholds verifies large jumps cross several levels
func TestLevelUpSkippedThresholds(t *testing.T) {
	w := newTestWorld(t, nil)
	s := bareState(w, pos(10, 10), pos(10, 11))
	s.Score = 18
	s.Food = Food{Position: pos(10, 12), Kind: FoodGolden}

	mustStep(t, s, w, t0.Add(150*time.Millisecond), DirNone)

	if s.Score != 23 {
		t.Fatalf("Expected score 23, got %d", s.Score)
	}
	if s.Level != 3 {
		t.Errorf("Expected level 3, got %d", s.Level)
	}
}

// TestLevelNotRepeatedAfterPoison verifies dropping under a threshold and recrossing
func TestLevelNotRepeatedAfterPoison(t *testing.T) {
	w := newTestWorld(t, nil)
	s := bareState(w, pos(10, 10), pos(10, 11))
	s.Score = 10
	s.Level = 2
	s.Food = Food{Position: pos(10, 12), Kind: FoodPoison}

	mustStep(t, s, w, t0.Add(150*time.Millisecond), DirNone)
	if s.Score != 8 || s.Level != 2 {
		t.Fatalf("Expected score 8 level 2, got %d level %d", s.Score, s.Level)
	}

	// Windowed multiplier is 2 here, so 9 becomes 11
	s.Score = 9
	s.Food = Food{Position: w.Move(s.Head(), s.Direction)}
	mustStep(t, s, w, t0.Add(300*time.Millisecond), DirNone)
	if s.Score != 11 {
		t.Fatalf("Expected score 11, got %d", s.Score)
	}
	if s.Level != 2 {
		t.Errorf("Expected level to stay 2 on recrossing 10, got %d", s.Level)
	}
}

// TestTickDelayFloor verifies leveling never pushes the delay under the floor
func TestTickDelayFloor(t *testing.T) {
	w := newTestWorld(t, nil)
	s := bareState(w, pos(10, 10), pos(10, 11))
	s.Score = 1000
	var res Result
	s.levelUp(w, &res)

	if s.TickDelay != w.Rules.MinTickDelay {
		t.Errorf("Expected floor %v, got %v", w.Rules.MinTickDelay, s.TickDelay)
	}
	s.SpeedFactor = 0.01
	if got := s.EffectiveTickDelay(w.Rules); got != w.Rules.MinTickDelay {
		t.Errorf("Expected effective floor %v, got %v", w.Rules.MinTickDelay, got)
	}
}

// TestFoodKindsScore verifies golden and poison deltas and the zero floor
func TestFoodKindsScore(t *testing.T) {
	tests := []struct {
		name  string
		kind  FoodKind
		start int
		want  int
	}{
		{"normal", FoodNormal, 3, 4},
		{"golden", FoodGolden, 3, 8},
		{"poison", FoodPoison, 3, 1},
		{"poison floors at zero", FoodPoison, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, nil)
			s := bareState(w, pos(10, 10), pos(10, 11))
			s.Score = tt.start
			s.Food = Food{Position: pos(10, 12), Kind: tt.kind}

			mustStep(t, s, w, t0.Add(150*time.Millisecond), DirNone)
			if s.Score != tt.want {
				t.Errorf("Expected score %d, got %d", tt.want, s.Score)
			}
		})
	}
}

// TestGrowthAmount verifies the growth setting controls segments per food
func TestGrowthAmount(t *testing.T) {
	for growth := 1; growth <= 5; growth++ {
		w := newTestWorld(t, nil)
		s := bareState(w, pos(10, 10), pos(10, 11))
		s.Settings.GrowthAmount = growth
		s.Food = Food{Position: pos(10, 12)}

		mustStep(t, s, w, t0.Add(150*time.Millisecond), DirNone)
		if len(s.Snake) != 2+growth {
			t.Errorf("Growth %d: expected length %d, got %d", growth, 2+growth, len(s.Snake))
		}
		if s.Head() != pos(10, 12) {
			t.Errorf("Growth %d: expected head (10,12), got %v", growth, s.Head())
		}
	}
}

// TestScoreMultiplierWindow verifies escalation inside the window and reset outside
func TestScoreMultiplierWindow(t *testing.T) {
	w := newTestWorld(t, nil)
	s := bareState(w, pos(10, 10), pos(10, 11))
	eatAt := func(now time.Time) {
		t.Helper()
		s.Food = Food{Position: w.Move(s.Head(), s.Direction)}
		mustStep(t, s, w, now, DirNone)
	}

	eatAt(t0.Add(150 * time.Millisecond))
	if s.ScoreMultiplier != 1 || s.Score != 1 {
		t.Fatalf("First pickup: expected multiplier 1 score 1, got %d score %d", s.ScoreMultiplier, s.Score)
	}

	eatAt(t0.Add(time.Second))
	if s.ScoreMultiplier != 2 || s.Score != 3 {
		t.Errorf("Within window: expected multiplier 2 score 3, got %d score %d", s.ScoreMultiplier, s.Score)
	}

	eatAt(t0.Add(time.Second + w.Rules.ScoreMultiplierWindow + time.Second))
	if s.ScoreMultiplier != 1 || s.Score != 4 {
		t.Errorf("After window: expected multiplier 1 score 4, got %d score %d", s.ScoreMultiplier, s.Score)
	}
}

// TestMultiplierPowerUp verifies doubling on pickup, halving on expiry, and
// independence from the window reset
func TestMultiplierPowerUp(t *testing.T) {
	w := newTestWorld(t, nil)
	s := bareState(w, pos(10, 10), pos(10, 11))
	s.PowerUps = []PowerUp{{Position: pos(10, 12), Kind: PowerUpMultiplier}}

	t1 := t0.Add(150 * time.Millisecond)
	mustStep(t, s, w, t1, DirNone)
	if s.BonusMultiplier != 2 {
		t.Fatalf("Expected bonus multiplier 2, got %d", s.BonusMultiplier)
	}

	s.Food = Food{Position: w.Move(s.Head(), s.Direction)}
	mustStep(t, s, w, t1.Add(time.Second), DirNone)
	if s.Score != 2 {
		t.Errorf("Expected doubled normal food score 2, got %d", s.Score)
	}
	if s.ScoreMultiplier != 1 {
		t.Errorf("Expected windowed multiplier unaffected at 1, got %d", s.ScoreMultiplier)
	}

	mustStep(t, s, w, t1.Add(w.Rules.PowerUpDuration+time.Second), DirNone)
	if s.BonusMultiplier != 1 {
		t.Errorf("Expected bonus multiplier restored to 1, got %d", s.BonusMultiplier)
	}
}

// TestInvincibility verifies obstacles are ignored until the status lapses
func TestInvincibility(t *testing.T) {
	w := newTestWorld(t, nil)
	s := bareState(w, pos(10, 10), pos(10, 11))
	s.PowerUps = []PowerUp{{Position: pos(10, 12), Kind: PowerUpInvincible}}
	s.Obstacles = []Obstacle{{Position: pos(10, 14)}, {Position: pos(10, 16)}}

	step := 150 * time.Millisecond
	t1 := t0.Add(step)
	mustStep(t, s, w, t1, DirNone)
	if !s.Invincible {
		t.Fatal("Expected invincible after pickup")
	}
	if !s.InvincibilityExpiry.Equal(t1.Add(w.Rules.InvincibilityDuration)) {
		t.Errorf("Unexpected expiry %v", s.InvincibilityExpiry)
	}

	mustStep(t, s, w, t1.Add(step), DirNone)
	res := mustStep(t, s, w, t1.Add(2*step), DirNone)
	if res.Over() {
		t.Fatalf("Expected to pass through obstacle while invincible, got %v", res.Reason)
	}
	if s.Head() != pos(10, 14) {
		t.Fatalf("Expected head on obstacle cell (10,14), got %v", s.Head())
	}
	mustStep(t, s, w, t1.Add(3*step), DirNone)

	res = mustStep(t, s, w, t1.Add(w.Rules.InvincibilityDuration+time.Millisecond), DirNone)
	if s.Invincible {
		t.Error("Expected invincibility cleared")
	}
	if !res.Over() || res.Reason != ReasonHitObstacle {
		t.Errorf("Expected HitObstacle after expiry, got status %v reason %v", res.Status, res.Reason)
	}
}

// TestGrowAndShrinkPowerUps verifies one-shot resizing and the shrink floor
func TestGrowAndShrinkPowerUps(t *testing.T) {
	tests := []struct {
		name string
		kind PowerUpKind
		body int
		want int
	}{
		{"grow", PowerUpGrow, 2, 5},
		{"shrink long", PowerUpShrink, 8, 5},
		{"shrink to floor", PowerUpShrink, 4, 3},
		{"shrink at minimum", PowerUpShrink, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, nil)
			body := make([]Position, 0, tt.body)
			for i := 0; i < tt.body; i++ {
				body = append(body, pos(10, 2+i))
			}
			s := bareState(w, body...)
			s.PowerUps = []PowerUp{{Position: w.Move(s.Head(), DirRight), Kind: tt.kind}}

			mustStep(t, s, w, t0.Add(150*time.Millisecond), DirNone)
			if len(s.Snake) != tt.want {
				t.Errorf("Expected length %d, got %d", tt.want, len(s.Snake))
			}
			if len(s.Effects) != 0 {
				t.Errorf("One-shot kind left %d effects", len(s.Effects))
			}
		})
	}
}

// TestObstacleRemovePowerUp verifies one obstacle disappears
func TestObstacleRemovePowerUp(t *testing.T) {
	w := newTestWorld(t, nil)
	s := bareState(w, pos(10, 10), pos(10, 11))
	s.PowerUps = []PowerUp{{Position: pos(10, 12), Kind: PowerUpObstacleRemove}}
	s.Obstacles = []Obstacle{{Position: pos(2, 2)}, {Position: pos(3, 3)}}

	mustStep(t, s, w, t0.Add(150*time.Millisecond), DirNone)
	if len(s.Obstacles) != 1 {
		t.Errorf("Expected 1 obstacle left, got %d", len(s.Obstacles))
	}
}

// TestCollisionBeforePickup verifies an obstacle under a power-up still kills
func TestCollisionBeforePickup(t *testing.T) {
	w := newTestWorld(t, nil)
	s := bareState(w, pos(10, 10), pos(10, 11))
	s.Obstacles = []Obstacle{{Position: pos(10, 12)}}
	s.PowerUps = []PowerUp{{Position: pos(10, 12), Kind: PowerUpInvincible}}

	res := mustStep(t, s, w, t0.Add(150*time.Millisecond), DirNone)
	if !res.Over() || res.Reason != ReasonHitObstacle {
		t.Errorf("Expected HitObstacle, got %v", res.Reason)
	}
	if s.Invincible {
		t.Error("Power-up must not be collected on a terminal tick")
	}
}

// TestDirectionReversalRejected verifies all four opposite pairs
func TestDirectionReversalRejected(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		s := &GameState{Direction: d}
		if s.Steer(d.Opposite()) {
			t.Errorf("%v: reversal to %v accepted", d, d.Opposite())
		}
		if s.Direction != d {
			t.Errorf("%v: direction changed to %v", d, s.Direction)
		}
	}

	s := &GameState{Direction: DirUp}
	if s.Steer(Direction(42)) || s.Steer(DirNone) {
		t.Error("Invalid intents must be ignored")
	}
	if !s.Steer(DirLeft) || s.Direction != DirLeft {
		t.Errorf("Expected perpendicular turn accepted, got %v", s.Direction)
	}
}

// TestPausedStepOnlySteers verifies pause freezes everything but direction
func TestPausedStepOnlySteers(t *testing.T) {
	w := newTestWorld(t, nil)
	s := bareState(w, pos(10, 10), pos(10, 11))
	s.Paused = true

	res := mustStep(t, s, w, t0.Add(time.Second), DirDown)
	if res.Ticked {
		t.Error("Expected no tick while paused")
	}
	if s.Direction != DirDown {
		t.Errorf("Expected direction down, got %v", s.Direction)
	}
	if s.Head() != pos(10, 11) {
		t.Errorf("Snake moved while paused: %v", s.Head())
	}
}

// TestTickGate verifies steps before the delay are no-ops and no time accumulates
func TestTickGate(t *testing.T) {
	w := newTestWorld(t, nil)
	s := bareState(w, pos(10, 10), pos(10, 11))

	if res := mustStep(t, s, w, t0.Add(100*time.Millisecond), DirNone); res.Ticked {
		t.Fatal("Expected gate to hold before the delay")
	}
	if res := mustStep(t, s, w, t0.Add(400*time.Millisecond), DirNone); !res.Ticked {
		t.Fatal("Expected tick after the delay")
	}
	if s.Head() != pos(10, 12) {
		t.Errorf("Expected exactly one move, head at %v", s.Head())
	}
	if res := mustStep(t, s, w, t0.Add(500*time.Millisecond), DirNone); res.Ticked {
		t.Error("Expected no carried-over time after a late tick")
	}
}

// TestTorusWrap verifies edges connect
func TestTorusWrap(t *testing.T) {
	w := newTestWorld(t, nil)

	s := bareState(w, pos(10, 28), pos(10, 29))
	mustStep(t, s, w, t0.Add(150*time.Millisecond), DirNone)
	if s.Head() != pos(10, 0) {
		t.Errorf("Expected wrap to (10,0), got %v", s.Head())
	}

	s = bareState(w, pos(1, 5), pos(0, 5))
	s.Direction = DirUp
	mustStep(t, s, w, t0.Add(150*time.Millisecond), DirNone)
	if s.Head() != pos(19, 5) {
		t.Errorf("Expected wrap to (19,5), got %v", s.Head())
	}
}

// TestFoodExhaustion verifies a full board fails explicitly
func TestFoodExhaustion(t *testing.T) {
	r := quietRules()
	w, err := NewWorld(10, 6, r, 7)
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	s := bareState(w, pos(0, 0), pos(0, 1))
	s.Food = Food{Position: pos(0, 2)}
	for row := 0; row < w.Height; row++ {
		for col := 0; col < w.Width; col++ {
			p := pos(row, col)
			if row == 0 && col <= 2 {
				continue
			}
			s.Obstacles = append(s.Obstacles, Obstacle{Position: p})
		}
	}

	_, err = s.Step(w, t0.Add(150*time.Millisecond), DirNone)
	if !errors.Is(err, ErrNoFreeCell) {
		t.Fatalf("Expected ErrNoFreeCell, got %v", err)
	}
}

// TestLengthInvariantRandomPlay drives random turns and checks length bounds
func TestLengthInvariantRandomPlay(t *testing.T) {
	r := DefaultRules()
	r.PowerUpSpawnChance = 1
	w, err := NewWorld(40, 20, r, 99)
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	s, err := NewGameState(w, t0, DefaultSettings(), 0)
	if err != nil {
		t.Fatalf("NewGameState failed: %v", err)
	}

	dirs := []Direction{DirUp, DirRight, DirDown, DirLeft}
	now := t0
	for i := 0; i < 2000; i++ {
		now = now.Add(s.EffectiveTickDelay(w.Rules))
		intent := DirNone
		if w.rng.Intn(4) == 0 {
			intent = dirs[w.rng.Intn(len(dirs))]
		}
		res, err := s.Step(w, now, intent)
		if err != nil {
			t.Fatalf("Tick %d: %v", i, err)
		}
		if len(s.Snake) < 2 {
			t.Fatalf("Tick %d: length %d below 2", i, len(s.Snake))
		}
		if s.ScoreMultiplier < 1 || s.BonusMultiplier < 1 {
			t.Fatalf("Tick %d: multiplier below 1", i)
		}
		if res.Over() {
			return
		}
	}
}
