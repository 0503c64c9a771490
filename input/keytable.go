// Package input maps terminal key events to game commands
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/game"
)

func dir(d game.Direction) game.Command {
	return game.Command{Kind: game.CmdDirection, Dir: d}
}

func cmd(k game.CommandKind) game.Command {
	return game.Command{Kind: k}
}

// KeyTable maps keys to commands
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, escape)
	SpecialKeys map[tcell.Key]game.Command

	// Printable rune bindings
	Runes map[rune]game.Command
}

// DefaultKeyTable returns the default key bindings: arrows, hjkl and wasd
// steer, p or space pauses, q or Esc quits
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]game.Command{
			tcell.KeyUp:     dir(game.DirUp),
			tcell.KeyDown:   dir(game.DirDown),
			tcell.KeyLeft:   dir(game.DirLeft),
			tcell.KeyRight:  dir(game.DirRight),
			tcell.KeyEscape: cmd(game.CmdQuit),
			tcell.KeyCtrlC:  cmd(game.CmdQuit),
			tcell.KeyCtrlS:  cmd(game.CmdSave),
		},

		Runes: map[rune]game.Command{
			// Vim motions
			'k': dir(game.DirUp),
			'j': dir(game.DirDown),
			'h': dir(game.DirLeft),
			'l': dir(game.DirRight),

			'w': dir(game.DirUp),
			's': dir(game.DirDown),
			'a': dir(game.DirLeft),
			'd': dir(game.DirRight),

			'p': cmd(game.CmdPause),
			' ': cmd(game.CmdPause),
			'q': cmd(game.CmdQuit),
			'r': cmd(game.CmdRestart),

			// Settings
			'+': cmd(game.CmdGrowthUp),
			'=': cmd(game.CmdGrowthUp),
			'-': cmd(game.CmdGrowthDown),
			'c': cmd(game.CmdToggleCollision),
			']': cmd(game.CmdVolumeUp),
			'[': cmd(game.CmdVolumeDown),
		},
	}
}

// Translate returns the command bound to ev. Uppercase letters match their
// lowercase binding so caps lock does not freeze the snake
func (kt *KeyTable) Translate(ev *tcell.EventKey) (game.Command, bool) {
	if ev.Key() != tcell.KeyRune {
		c, ok := kt.SpecialKeys[ev.Key()]
		return c, ok
	}
	r := ev.Rune()
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	c, ok := kt.Runes[r]
	return c, ok
}
