//go:build !ebiten

package app

import (
	"fmt"

	"lifeboard/pkg/core"
	"lifeboard/pkg/god"
)

// Game stands in for the board viewer when the ebiten tag is absent, so
// headless builds of this package still compile with flags.go.
type Game struct{}

// New would wrap a board and its god catalog for display. Headless builds
// cannot open a window, so it panics.
func New(core.Board, []god.Named, *Config) *Game {
	panic("app.New requires building with the 'ebiten' tag")
}

// Reset would reseed the board; it does nothing here.
func (g *Game) Reset(int64) {}

// Update reports that no board can be stepped without the viewer.
func (g *Game) Update() error {
	return fmt.Errorf("app.Game.Update requires building with the 'ebiten' tag")
}

// Draw has nothing to render.
func (g *Game) Draw(any) {}

// Layout reports an empty window.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
