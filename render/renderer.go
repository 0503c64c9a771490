// Package render draws game views onto a terminal cell grid
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/game"
)

// Canvas is the subset of tcell.Screen the renderer writes to
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// RankedRound is one leaderboard line on the game over screen
type RankedRound struct {
	Score   int
	Level   int
	Length  int
	EndedAt time.Time
}

// GameOver describes the end-of-round overlay
type GameOver struct {
	Reason       string
	Score        int
	HighScore    int
	NewHighScore bool
	RoundsPlayed int
	Leaderboard  []RankedRound
}

// Renderer draws a View with the board at the top-left and the status bar on
// the row below it
type Renderer struct {
	canvas Canvas
}

// NewRenderer creates a renderer over c
func NewRenderer(c Canvas) *Renderer {
	return &Renderer{canvas: c}
}

// Draw renders one frame. over is nil while the round is running
func (r *Renderer) Draw(v game.View, over *GameOver) {
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.fill(bg)

	for _, o := range v.Obstacles {
		color := RgbObstacle
		if o.Kind == game.ObstacleLarge {
			color = RgbObstacleLarge
		}
		r.set(o.Position, o.Kind.Glyph(), bg.Foreground(color))
	}
	for _, p := range v.PowerUps {
		r.set(p.Position, p.Kind.Glyph(), bg.Foreground(RgbPowerUp).Bold(true))
	}
	r.set(v.Food.Position, v.Food.Kind.Glyph(), bg.Foreground(foodColor(v.Food.Kind)).Bold(true))
	r.drawSnake(v, bg)

	r.drawStatusBar(v)

	switch {
	case over != nil:
		r.drawGameOver(v, over)
	case v.Paused:
		r.drawCentered(v, v.Height/2, " PAUSED - p to resume ", bg.Foreground(RgbPausedText).Bold(true))
	}
}

func foodColor(k game.FoodKind) tcell.Color {
	switch k {
	case game.FoodGolden:
		return RgbFoodGolden
	case game.FoodPoison:
		return RgbFoodPoison
	default:
		return RgbFoodNormal
	}
}

// headGlyph points the head the way the snake travels
func headGlyph(d game.Direction) rune {
	switch d {
	case game.DirUp:
		return '^'
	case game.DirDown:
		return 'v'
	case game.DirLeft:
		return '<'
	default:
		return '>'
	}
}

func (r *Renderer) drawSnake(v game.View, bg tcell.Style) {
	if len(v.Snake) == 0 {
		return
	}
	body := bg.Foreground(RgbSnakeBody)
	head := bg.Foreground(RgbSnakeHead).Bold(true)
	if v.Invincible {
		body = bg.Foreground(RgbSnakeInvincible)
		head = head.Foreground(RgbSnakeInvincible)
	}

	last := len(v.Snake) - 1
	for _, p := range v.Snake[:last] {
		r.set(p, 'o', body)
	}
	// Head last so stacked growth segments never hide it
	r.set(v.Snake[last], headGlyph(v.Direction), head)
}

// StatusLine formats the status bar text
func StatusLine(v game.View) string {
	var b strings.Builder
	fmt.Fprintf(&b, " Score %d  Lvl %d  x%d", v.Score, v.Level, v.ScoreMultiplier)
	if v.BonusMultiplier > 1 {
		fmt.Fprintf(&b, "*%d", v.BonusMultiplier)
	}
	fmt.Fprintf(&b, "  Hi %d  %dms", v.HighScore, v.TickDelay.Milliseconds())

	for _, e := range v.Effects {
		fmt.Fprintf(&b, "  %c%s", e.Kind.Glyph(), seconds(e.Remaining))
	}
	if v.Invincible {
		fmt.Fprintf(&b, "  INV %s", seconds(v.InvincibleRemaining))
	}

	collision := "on"
	if !v.Settings.SelfCollision {
		collision = "off"
	}
	fmt.Fprintf(&b, "  | grow %d  self %s  vol %d%%", v.Settings.GrowthAmount, collision, int(v.Settings.Volume*100+0.5))
	return b.String()
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.0fs", d.Seconds())
}

func (r *Renderer) drawStatusBar(v game.View) {
	w, h := r.canvas.Size()
	if v.Height >= h {
		return
	}
	style := tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusBar)
	for x := 0; x < w; x++ {
		r.canvas.SetContent(x, v.Height, ' ', nil, style)
	}
	r.text(0, v.Height, StatusLine(v), style)
}

func (r *Renderer) drawGameOver(v game.View, over *GameOver) {
	box := tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbStatusBar)
	lines := []string{
		"GAME OVER",
		reasonText(over.Reason),
		fmt.Sprintf("Score %d   Best %d", over.Score, over.HighScore),
	}
	if over.NewHighScore {
		lines = append(lines, "New high score!")
	}
	if over.RoundsPlayed > 0 {
		lines = append(lines, fmt.Sprintf("Rounds played %d", over.RoundsPlayed))
	}
	if len(over.Leaderboard) > 0 {
		lines = append(lines, "", "Top rounds")
		for i, rr := range over.Leaderboard {
			lines = append(lines, fmt.Sprintf("%d. %5d  lvl %-2d len %-3d %s",
				i+1, rr.Score, rr.Level, rr.Length, rr.EndedAt.Local().Format("Jan 02 15:04")))
		}
	}
	lines = append(lines, "", "r restart   q quit")

	top := max(v.Height/2-len(lines)/2, 0)
	for i, line := range lines {
		style := box
		if i == 0 {
			style = box.Foreground(RgbGameOver).Bold(true)
		}
		r.drawCentered(v, top+i, " "+line+" ", style)
	}
}

func reasonText(reason string) string {
	switch reason {
	case game.ReasonHitObstacle.String():
		return "You hit an obstacle"
	case game.ReasonHitSelf.String():
		return "You ran into yourself"
	case "":
		return ""
	default:
		return strings.ReplaceAll(reason, "_", " ")
	}
}

func (r *Renderer) drawCentered(v game.View, row int, s string, style tcell.Style) {
	x := max((v.Width-len([]rune(s)))/2, 0)
	r.text(x, row, s, style)
}

func (r *Renderer) fill(style tcell.Style) {
	w, h := r.canvas.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.canvas.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *Renderer) set(p game.Position, ch rune, style tcell.Style) {
	w, h := r.canvas.Size()
	if p.Col < 0 || p.Row < 0 || p.Col >= w || p.Row >= h {
		return
	}
	r.canvas.SetContent(p.Col, p.Row, ch, nil, style)
}

// text writes s from x, clipped at the right edge
func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	w, h := r.canvas.Size()
	if y < 0 || y >= h {
		return
	}
	for _, ch := range s {
		if x >= w {
			return
		}
		if x >= 0 {
			r.canvas.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}
