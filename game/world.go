package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/lixenwraith/snake/constants"
)

// ErrNoFreeCell is returned when every cell is occupied or rejected
var ErrNoFreeCell = errors.New("no free cell")

// World is the board geometry, rule set and random source. It does not
// change during a tick
type World struct {
	Width  int
	Height int
	Rules  Rules

	rng *rand.Rand
}

// NewWorld creates a world with a seeded random source
func NewWorld(width, height int, rules Rules, seed int64) (*World, error) {
	if width < constants.MinGridWidth || height < constants.MinGridHeight {
		return nil, fmt.Errorf("board %dx%d below minimum %dx%d", width, height, constants.MinGridWidth, constants.MinGridHeight)
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &World{
		Width:  width,
		Height: height,
		Rules:  rules,
		rng:    rand.New(rand.NewSource(seed)),
	}, nil
}

// Wrap folds a position onto the torus
func (w *World) Wrap(p Position) Position {
	return Position{
		Row: ((p.Row % w.Height) + w.Height) % w.Height,
		Col: ((p.Col % w.Width) + w.Width) % w.Width,
	}
}

// Move returns the wrapped neighbor of p in direction d
func (w *World) Move(p Position, d Direction) Position {
	dr, dc := d.Delta()
	return w.Wrap(Position{Row: p.Row + dr, Col: p.Col + dc})
}

func (w *World) roll(p float64) bool {
	return w.rng.Float64() < p
}

// FreePosition returns a cell not occupied by the snake, food, obstacles,
// power-ups or any of exclude
func (w *World) FreePosition(s *GameState, exclude ...Position) (Position, error) {
	return w.freePosition(s, nil, exclude)
}

// freePosition samples at most MaxPlacementAttempts random cells, then scans
// the board for what is left so dense boards terminate deterministically
func (w *World) freePosition(s *GameState, reject func(Position) bool, exclude []Position) (Position, error) {
	taken := s.occupied()
	for _, p := range exclude {
		taken[p] = struct{}{}
	}
	usable := func(p Position) bool {
		if _, ok := taken[p]; ok {
			return false
		}
		return reject == nil || !reject(p)
	}

	for range constants.MaxPlacementAttempts {
		p := Position{Row: w.rng.Intn(w.Height), Col: w.rng.Intn(w.Width)}
		if usable(p) {
			return p, nil
		}
	}

	var free []Position
	for row := 0; row < w.Height; row++ {
		for col := 0; col < w.Width; col++ {
			if p := (Position{Row: row, Col: col}); usable(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Position{}, ErrNoFreeCell
	}
	return free[w.rng.Intn(len(free))], nil
}

// NewFood places food and draws its kind from independent thresholds
func (w *World) NewFood(s *GameState, exclude ...Position) (Food, error) {
	p, err := w.FreePosition(s, exclude...)
	if err != nil {
		return Food{}, fmt.Errorf("place food: %w", err)
	}

	kind := FoodNormal
	switch {
	case w.roll(w.Rules.GoldenFoodChance):
		kind = FoodGolden
	case w.roll(w.Rules.PoisonFoodChance):
		kind = FoodPoison
	}
	return Food{Position: p, Kind: kind}, nil
}

// NewPowerUp places a power-up of uniform kind away from the head
func (w *World) NewPowerUp(s *GameState, exclude ...Position) (PowerUp, error) {
	p, err := w.freePosition(s, w.nearHead(s), exclude)
	if err != nil {
		return PowerUp{}, fmt.Errorf("place power-up: %w", err)
	}
	return PowerUp{Position: p, Kind: PowerUpKind(w.rng.Intn(int(powerUpKindCount)))}, nil
}

// NewObstacle places an obstacle away from the head
func (w *World) NewObstacle(s *GameState, exclude ...Position) (Obstacle, error) {
	p, err := w.freePosition(s, w.nearHead(s), exclude)
	if err != nil {
		return Obstacle{}, fmt.Errorf("place obstacle: %w", err)
	}
	kind := ObstacleSmall
	if w.roll(w.Rules.LargeObstacleChance) {
		kind = ObstacleLarge
	}
	return Obstacle{Position: p, Kind: kind}, nil
}

func (w *World) nearHead(s *GameState) func(Position) bool {
	if len(s.Snake) == 0 {
		return nil
	}
	head := s.Head()
	limit := w.Rules.PowerUpHeadClearance
	return func(p Position) bool {
		return w.Distance(p, head) <= limit
	}
}

// Distance is the king-move distance between two cells on the torus, so
// cells across an edge count as neighbors
func (w *World) Distance(a, b Position) int {
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)
	return max(min(dr, w.Height-dr), min(dc, w.Width-dc))
}
