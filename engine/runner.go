package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/game"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/persist"
	"github.com/lixenwraith/snake/render"
	"github.com/lixenwraith/snake/store"
)

// Display is the terminal surface frames are drawn to. tcell.Screen satisfies it
type Display interface {
	render.Canvas
	Show()
	Sync()
}

// Sound plays effects and music and follows the volume setting
type Sound interface {
	Play(t audio.SoundType)
	SetVolume(v float64)
	StartMusic()
	StopMusic()
}

// History records finished rounds
type History interface {
	RecordRound(ctx context.Context, r *store.Round) error
	TopRounds(ctx context.Context, limit int) ([]store.Round, error)
	CountRounds(ctx context.Context) (int, error)
}

// Options configures a Runner. Sound, Store, History, Keys and Logger may be nil
type Options struct {
	Width, Height int
	Rules         game.Rules
	Settings      game.Settings
	Seed          int64

	Clock   TimeProvider
	Events  <-chan tcell.Event
	Display Display
	Sound   Sound
	Store   *persist.Store
	History History
	Keys    *input.KeyTable
	Logger  *log.Logger
}

// Runner drives one game session: it polls input, steps the simulation on
// the frame ticker, forwards events to audio and persistence, and renders
type Runner struct {
	world    *game.World
	state    *game.GameState
	source   TimeProvider
	clock    *GameClock
	events   <-chan tcell.Event
	display  Display
	renderer *render.Renderer
	sound    Sound
	store    *persist.Store
	history  History
	keys     *input.KeyTable
	logger   *log.Logger

	// Direction keys wait here so fast double turns survive the tick gate
	pending []game.Direction
	// turned is set once a queued turn has been applied and not yet moved on
	turned bool

	over *render.GameOver
	quit bool
}

// NewRunner builds the world and resumes the saved round if one is usable,
// otherwise starts a fresh round. A corrupt save is logged and ignored
func NewRunner(opts Options) (*Runner, error) {
	world, err := game.NewWorld(opts.Width, opts.Height, opts.Rules, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("create world: %w", err)
	}

	r := &Runner{
		world:    world,
		source:   opts.Clock,
		events:   opts.Events,
		display:  opts.Display,
		renderer: render.NewRenderer(opts.Display),
		sound:    opts.Sound,
		store:    opts.Store,
		history:  opts.History,
		keys:     opts.Keys,
		logger:   opts.Logger,
	}
	if r.source == nil {
		r.source = NewMonotonicTimeProvider()
	}
	if r.keys == nil {
		r.keys = input.DefaultKeyTable()
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard, "", 0)
	}
	r.clock = NewGameClock(r.source)

	highScore := 0
	if r.store != nil {
		if highScore, err = r.store.LoadHighScore(); err != nil {
			r.logger.Printf("High score unreadable, starting from 0: %v", err)
			highScore = 0
		}

		state, err := r.store.Restore(world, r.clock.Now())
		switch {
		case err == nil:
			state.HighScore = max(state.HighScore, highScore)
			r.state = state
			r.logger.Printf("Resumed session %s at score %d", state.SessionID, state.Score)
		case errors.Is(err, persist.ErrNoSnapshot):
		default:
			r.logger.Printf("Discarding saved game: %v", err)
		}
	}

	if r.state == nil {
		state, err := game.NewGameState(world, r.clock.Now(), opts.Settings, highScore)
		if err != nil {
			return nil, err
		}
		r.state = state
	}

	r.clock.SetPaused(r.state.Paused)
	if r.sound != nil {
		r.sound.SetVolume(r.state.Settings.Volume)
	}
	r.syncMusic()
	return r, nil
}

// Run loops until ctx is cancelled, the event channel closes or the player
// quits. The unfinished round is saved on the way out
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	r.draw()
	for {
		select {
		case <-ctx.Done():
			r.shutdown()
			return nil

		case ev, ok := <-r.events:
			if !ok {
				r.shutdown()
				return nil
			}
			r.HandleEvent(ctx, ev)
			if r.quit {
				r.shutdown()
				return nil
			}

		case <-ticker.C:
			r.Update(ctx)
			r.draw()
		}
	}
}

// HandleEvent applies one terminal event
func (r *Runner) HandleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		r.display.Sync()
		r.draw()
	case *tcell.EventKey:
		cmd, ok := r.keys.Translate(ev)
		if ok {
			r.handleCommand(ctx, cmd)
		}
	}
}

func (r *Runner) handleCommand(ctx context.Context, cmd game.Command) {
	if cmd.Kind == game.CmdQuit {
		r.quit = true
		return
	}

	// A finished round only listens for restart
	if r.over != nil {
		if cmd.Kind == game.CmdRestart {
			r.restart()
		}
		return
	}

	switch cmd.Kind {
	case game.CmdDirection:
		r.queueTurn(cmd.Dir)
	case game.CmdSave:
		r.saveSnapshot(false)
	case game.CmdRestart:
		// Ignored mid-round
	case game.CmdPause:
		r.state.Apply(cmd)
		r.clock.SetPaused(r.state.Paused)
		r.syncMusic()
		r.logger.Printf("Paused: %v", r.state.Paused)
	case game.CmdVolumeUp, game.CmdVolumeDown:
		if r.state.Apply(cmd) && r.sound != nil {
			r.sound.SetVolume(r.state.Settings.Volume)
		}
	default:
		r.state.Apply(cmd)
	}
}

func (r *Runner) queueTurn(d game.Direction) {
	if n := len(r.pending); n > 0 && r.pending[n-1] == d {
		return
	}
	if len(r.pending) >= constants.MaxQueuedTurns {
		return
	}
	r.pending = append(r.pending, d)
}

// Update advances the simulation by at most one tick using the next
// queued turn
func (r *Runner) Update(ctx context.Context) {
	if r.over != nil {
		return
	}

	intent := game.DirNone
	if !r.turned && len(r.pending) > 0 {
		intent = r.pending[0]
		r.pending = r.pending[1:]
	}

	heading := r.state.Direction
	res, err := r.state.Step(r.world, r.clock.Now(), intent)
	if r.state.Direction != heading {
		r.turned = true
	}
	if res.Ticked {
		r.turned = false
	}

	r.dispatch(res.Events)

	switch {
	case err != nil:
		reason := "error"
		if errors.Is(err, game.ErrNoFreeCell) {
			reason = "board_full"
		}
		r.logger.Printf("Round ended: %v", err)
		newHigh := false
		if r.state.Score > r.state.HighScore {
			r.state.HighScore = r.state.Score
			newHigh = true
		}
		r.finishRound(ctx, reason, newHigh)
	case res.Over():
		r.finishRound(ctx, res.Reason.String(), res.NewHighScore)
	}
}

// dispatch routes tick events to audio
func (r *Runner) dispatch(events []game.Event) {
	for _, ev := range events {
		switch ev.Type {
		case game.EventFoodEaten:
			r.play(audio.SoundFood)
		case game.EventPowerUpCollected:
			r.play(audio.SoundPowerUp)
		case game.EventCollision:
			r.play(audio.SoundCollision)
		case game.EventLevelUp:
			r.logger.Printf("Level %d, tick delay %v", ev.Level, r.state.TickDelay)
		case game.EventEffectExpired:
		}
	}
}

func (r *Runner) play(t audio.SoundType) {
	if r.sound != nil {
		r.sound.Play(t)
	}
}

// syncMusic plays music only while a round is running unpaused
func (r *Runner) syncMusic() {
	if r.sound == nil {
		return
	}
	if r.over != nil || r.state.Paused {
		r.sound.StopMusic()
	} else {
		r.sound.StartMusic()
	}
}

func (r *Runner) finishRound(ctx context.Context, reason string, newHigh bool) {
	s := r.state
	r.logger.Printf("Game over (%s): score %d level %d length %d", reason, s.Score, s.Level, len(s.Snake))

	r.over = &render.GameOver{
		Reason:       reason,
		Score:        s.Score,
		HighScore:    s.HighScore,
		NewHighScore: newHigh,
	}
	r.pending = r.pending[:0]
	r.syncMusic()

	if r.store != nil {
		if newHigh {
			if err := r.store.SaveHighScore(s.HighScore); err != nil {
				r.logger.Printf("Failed to save high score: %v", err)
			}
		}
		r.saveSnapshot(true)
	}

	if r.history == nil {
		return
	}
	round := &store.Round{
		SessionID: s.SessionID,
		Score:     s.Score,
		Level:     s.Level,
		Length:    len(s.Snake),
		Reason:    reason,
		EndedAt:   r.source.Now(),
	}
	if err := r.history.RecordRound(ctx, round); err != nil {
		r.logger.Printf("Failed to record round: %v", err)
	}
	if n, err := r.history.CountRounds(ctx); err == nil {
		r.over.RoundsPlayed = n
	}
	top, err := r.history.TopRounds(ctx, constants.HistoryListLimit)
	if err != nil {
		r.logger.Printf("Failed to load leaderboard: %v", err)
		return
	}
	for _, t := range top {
		r.over.Leaderboard = append(r.over.Leaderboard, render.RankedRound{
			Score:   t.Score,
			Level:   t.Level,
			Length:  t.Length,
			EndedAt: t.EndedAt,
		})
	}
}

func (r *Runner) restart() {
	state, err := game.NewGameState(r.world, r.clock.Now(), r.state.Settings, r.state.HighScore)
	if err != nil {
		r.logger.Printf("Restart failed: %v", err)
		return
	}
	r.state = state
	r.over = nil
	r.pending = r.pending[:0]
	r.turned = false
	r.clock.SetPaused(false)
	r.syncMusic()
	r.logger.Printf("New session %s", state.SessionID)
}

func (r *Runner) saveSnapshot(over bool) {
	if r.store == nil {
		return
	}
	if err := r.store.SaveSnapshot(r.state, r.clock.Now(), over); err != nil {
		r.logger.Printf("Failed to save game: %v", err)
	}
}

// shutdown keeps the round resumable. Finished rounds were saved by finishRound
func (r *Runner) shutdown() {
	if r.over == nil {
		r.saveSnapshot(false)
	}
}

func (r *Runner) draw() {
	r.renderer.Draw(r.state.View(r.world, r.clock.Now()), r.over)
	r.display.Show()
}

// State exposes the live state for inspection
func (r *Runner) State() *game.GameState {
	return r.state
}

// Over reports whether the current round has ended
func (r *Runner) Over() bool {
	return r.over != nil
}

// Settings returns the player toggles so they can be written back to config
func (r *Runner) Settings() game.Settings {
	return r.state.Settings
}
