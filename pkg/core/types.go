// Package core defines the board contract shared by every Game of Life
// storage strategy, plus the rule and helpers built on top of it.
package core

import (
	"errors"
	"fmt"
	"sort"
)

// Size describes the dimensions of a board.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells in a board of this size.
func (s Size) Cells() int { return s.W * s.H }

// Board is the capability contract every storage strategy satisfies.
// Coordinates must satisfy 0 <= x < W and 0 <= y < H.
type Board interface {
	Name() string
	Size() Size
	Cell(x, y int) bool
	SetCell(x, y int, alive bool)
	// Load replaces the state with bits in row-major order (bits[y*W+x]).
	Load(bits []bool) error
	// Update advances the board by one generation.
	Update()
	Clear()
	// MemoryUsage reports the bytes used for cell storage.
	MemoryUsage() int
}

var (
	// ErrSeedLength is returned by Load when the seed does not cover the board.
	ErrSeedLength = errors.New("seed length does not match board size")
	// ErrUnknownBoard is returned by NewBoard for unregistered names.
	ErrUnknownBoard = errors.New("unknown board")
)

// CheckSeed validates the seed length for a board of the given size.
func CheckSeed(s Size, bits []bool) error {
	if len(bits) != s.Cells() {
		return fmt.Errorf("%w: want %d (%dx%d), got %d", ErrSeedLength, s.Cells(), s.W, s.H, len(bits))
	}
	return nil
}

// CheckSize panics on non-positive dimensions.
func CheckSize(w, h int) {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("core: invalid board size %dx%d", w, h))
	}
}

// Factory constructs a w×h board in the all-dead state.
type Factory func(w, h int) Board

var boards = map[string]Factory{}

// Register adds a board factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	boards[name] = f
}

// Boards exposes the registry of available board factories.
func Boards() map[string]Factory {
	return boards
}

// Names returns the registered board names in sorted order.
func Names() []string {
	names := make([]string, 0, len(boards))
	for name := range boards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewBoard constructs a registered board by name.
func NewBoard(name string, w, h int) (Board, error) {
	f, ok := boards[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownBoard, name, Names())
	}
	return f(w, h), nil
}
