package game

import "github.com/lixenwraith/snake/constants"

// CommandKind enumerates what the input collaborator can request per poll
type CommandKind uint8

const (
	CmdNone CommandKind = iota
	CmdQuit
	CmdPause
	CmdDirection
	CmdGrowthUp
	CmdGrowthDown
	CmdToggleCollision
	CmdVolumeUp
	CmdVolumeDown
	CmdSave
	CmdRestart
)

// Command is one polled input. Dir is meaningful only for CmdDirection
type Command struct {
	Kind CommandKind
	Dir  Direction
}

// Intent returns the direction to hand to Step, DirNone for other commands
func (c Command) Intent() Direction {
	if c.Kind != CmdDirection {
		return DirNone
	}
	return c.Dir
}

// Apply handles pause and settings commands. Direction, quit, save and
// restart belong to Step and the loop driver and are ignored here.
// Returns true if the state changed
func (s *GameState) Apply(cmd Command) bool {
	switch cmd.Kind {
	case CmdPause:
		s.Paused = !s.Paused
		return true
	case CmdGrowthUp:
		return s.setGrowth(s.Settings.GrowthAmount + 1)
	case CmdGrowthDown:
		return s.setGrowth(s.Settings.GrowthAmount - 1)
	case CmdToggleCollision:
		s.Settings.SelfCollision = !s.Settings.SelfCollision
		return true
	case CmdVolumeUp:
		return s.setVolume(s.Settings.Volume + constants.VolumeStep)
	case CmdVolumeDown:
		return s.setVolume(s.Settings.Volume - constants.VolumeStep)
	default:
		return false
	}
}

func (s *GameState) setGrowth(n int) bool {
	n = min(max(n, constants.MinGrowthAmount), constants.MaxGrowthAmount)
	if n == s.Settings.GrowthAmount {
		return false
	}
	s.Settings.GrowthAmount = n
	return true
}

func (s *GameState) setVolume(v float64) bool {
	v = clampVolume(v)
	if v == s.Settings.Volume {
		return false
	}
	s.Settings.Volume = v
	return true
}
