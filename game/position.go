// Package game holds the snake simulation core: the state model, the
// position generator and the per-tick update. It has no terminal, audio or
// file dependencies; collaborators read a View and feed Commands.
package game

import (
	"encoding/json"
	"fmt"
)

// Position is a grid cell, row-major
type Position struct {
	Row int
	Col int
}

// MarshalJSON encodes a position as a [row, col] pair
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.Row, p.Col})
}

// UnmarshalJSON decodes a [row, col] pair
func (p *Position) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("position: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("position: expected [row, col], got %d values", len(pair))
	}
	p.Row, p.Col = pair[0], pair[1]
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is the snake heading. The zero value DirNone means no intent
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Delta returns the (dRow, dCol) offset for one step. Up decreases the row
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading, DirNone stays DirNone
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("direction: cannot encode %d", d)
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "up":
		*d = DirUp
	case "down":
		*d = DirDown
	case "left":
		*d = DirLeft
	case "right":
		*d = DirRight
	default:
		return fmt.Errorf("direction: unknown value %q", text)
	}
	return nil
}
