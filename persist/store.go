// Package persist keeps the high score and the resumable round snapshot as
// JSON files
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/snake/game"
)

var (
	// ErrNoSnapshot means there is nothing to resume
	ErrNoSnapshot = errors.New("no snapshot")
	// ErrCorruptSnapshot wraps undecodable or inconsistent snapshots
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)

// Snapshot is the on-disk form of a round
type Snapshot struct {
	SavedAt  time.Time `json:"saved_at"`
	GameOver bool      `json:"game_over"`

	*game.GameState
}

type highScoreFile struct {
	HighScore int `json:"high_score"`
}

// Store reads and writes the save files
type Store struct {
	snapshotPath  string
	highScorePath string
}

// NewStore creates a store over the two file paths. Missing parent
// directories are created on first write
func NewStore(snapshotPath, highScorePath string) *Store {
	return &Store{snapshotPath: snapshotPath, highScorePath: highScorePath}
}

// SaveSnapshot writes the state stamped with the game time it was taken at
func (s *Store) SaveSnapshot(state *game.GameState, savedAt time.Time, over bool) error {
	snap := Snapshot{SavedAt: savedAt, GameOver: over, GameState: state}
	if err := writeJSON(s.snapshotPath, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads the snapshot file as is
func (s *Store) LoadSnapshot() (Snapshot, error) {
	var snap Snapshot
	data, err := os.ReadFile(s.snapshotPath)
	if errors.Is(err, fs.ErrNotExist) {
		return snap, ErrNoSnapshot
	}
	if err != nil {
		return snap, fmt.Errorf("load snapshot: %w", err)
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if snap.GameState == nil {
		return snap, fmt.Errorf("%w: empty state", ErrCorruptSnapshot)
	}
	return snap, nil
}

// Restore loads a resumable round for w. Finished rounds count as absent.
// Timestamps are shifted so the round continues from now
func (s *Store) Restore(w *game.World, now time.Time) (*game.GameState, error) {
	snap, err := s.LoadSnapshot()
	if err != nil {
		return nil, err
	}
	if snap.GameOver {
		return nil, ErrNoSnapshot
	}
	state := snap.GameState
	if err := state.Check(w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if !snap.SavedAt.IsZero() {
		state.Rebase(now.Sub(snap.SavedAt))
	}
	state.Settings = state.Settings.Normalize()
	return state, nil
}

// LoadHighScore returns 0 when no record exists yet
func (s *Store) LoadHighScore() (int, error) {
	data, err := os.ReadFile(s.highScorePath)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load high score: %w", err)
	}
	var hs highScoreFile
	if err := json.Unmarshal(data, &hs); err != nil {
		return 0, fmt.Errorf("load high score: %w", err)
	}
	return max(hs.HighScore, 0), nil
}

// SaveHighScore overwrites the record
func (s *Store) SaveHighScore(score int) error {
	if err := writeJSON(s.highScorePath, highScoreFile{HighScore: score}); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}

// writeJSON replaces path atomically through a temp file in the same directory
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".snake-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
