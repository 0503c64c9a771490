package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/config"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/persist"
	"github.com/lixenwraith/snake/store"
)

const (
	logDir      = constants.LogDir
	logFileName = constants.LogFileName
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the standard logger to logs/snake.log when debug is
// set and discards it otherwise. An oversized log is rotated aside first.
// The returned file is nil when logging is off
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	var rotateErr error
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("snake-%s.log", time.Now().Format("20060102-150405")))
		rotateErr = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if rotateErr != nil {
		// Keep appending to the oversized file rather than losing the session
		log.Printf("Log rotation failed: %v", rotateErr)
	}
	return f
}

// newLogger derives a prefixed logger sharing the standard logger's output
func newLogger(prefix string) *log.Logger {
	return log.New(log.Writer(), "["+prefix+"] ", log.Flags())
}

// boardSize leaves the last terminal row for the status bar
func boardSize(screenW, screenH int) (int, int) {
	if screenW <= 0 || screenH <= 0 {
		return constants.DefaultGridWidth, constants.DefaultGridHeight
	}
	return max(screenW, constants.MinGridWidth), max(screenH-1, constants.MinGridHeight)
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, created, err := config.Load(constants.DefaultConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}
	if created {
		if err := config.Save(constants.DefaultConfigPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write default config: %v\n", err)
		}
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	logger := newLogger("main")

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	screen.HideCursor()

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	// Audio is optional, the game runs silent without a device.
	// The runner starts the music once the round is live
	sound := audio.NewSoundManager(cfg.Settings.Volume)
	if err := sound.Initialize(); err != nil {
		logger.Printf("Audio initialization failed: %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
	}

	var history engine.History
	if h, err := store.NewSQLiteHistory(cfg.Paths.History); err != nil {
		logger.Printf("History disabled: %v", err)
	} else if err := h.Migrate(); err != nil {
		logger.Printf("History disabled: %v", err)
		h.Close()
	} else {
		history = h
		defer h.Close()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	width, height := boardSize(screen.Size())

	events := make(chan tcell.Event, constants.InputEventBuffer)
	runner, err := engine.NewRunner(engine.Options{
		Width:    width,
		Height:   height,
		Rules:    cfg.Rules,
		Settings: cfg.Settings,
		Seed:     seed,
		Clock:    engine.NewMonotonicTimeProvider(),
		Events:   events,
		Display:  screen,
		Sound:    sound,
		Store:    persist.NewStore(cfg.Paths.Save, cfg.Paths.HighScore),
		History:  history,
		Logger:   newLogger("runner"),
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		return 1
	}

	// Input polling runs on its own goroutine as PollEvent blocks
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			// nil once the screen is finalized
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Printf("Starting %dx%d board, seed %d", width, height, seed)
	if err := runner.Run(ctx); err != nil {
		logger.Printf("Run failed: %v", err)
	}

	cfg.Settings = runner.Settings()
	if err := config.Save(constants.DefaultConfigPath, cfg); err != nil {
		logger.Printf("Failed to save settings: %v", err)
	}
	return 0
}
