package game

import "time"

// levelUp raises the level for every threshold the score has crossed.
// Score drops from poison never lower the level
func (s *GameState) levelUp(w *World, res *Result) {
	for s.Score > 0 && s.Score >= s.Level*w.Rules.PointsPerLevel {
		s.Level++
		decayed := time.Duration(float64(s.TickDelay) * w.Rules.LevelSpeedDecay)
		s.TickDelay = max(decayed, w.Rules.MinTickDelay)
		res.Events = append(res.Events, Event{Type: EventLevelUp, Level: s.Level})
	}
}

// ObstacleTarget is the obstacle count for the current level
func (s *GameState) ObstacleTarget(r Rules) int {
	return s.Level * r.ObstaclesPerLevel
}

// maintainObstacles tops obstacles up to the level target. A saturated board
// stops the top-up without failing the tick
func (s *GameState) maintainObstacles(w *World) {
	target := s.ObstacleTarget(w.Rules)
	for len(s.Obstacles) < target {
		o, err := w.NewObstacle(s, s.ahead(w))
		if err != nil {
			return
		}
		s.Obstacles = append(s.Obstacles, o)
	}
}

// ahead is the cell the head enters next tick
func (s *GameState) ahead(w *World) Position {
	return w.Move(s.Head(), s.Direction)
}
