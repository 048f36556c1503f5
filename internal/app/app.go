//go:build ebiten

package app

import (
	"image/color"

	"lifeboard/internal/clock"
	"lifeboard/internal/render"
	"lifeboard/internal/ui"
	"lifeboard/pkg/core"
	"lifeboard/pkg/god"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a board to the ebiten.Game interface. It only reads the board
// through Size and Cell; changes come from Update and the god functions.
type Game struct {
	board   core.Board
	gods    []god.Named
	painter *render.GridPainter
	sidebar *ui.Sidebar
	pacer   *clock.FixedStep

	onColor  color.Color
	offColor color.Color

	scale      int
	running    bool
	tickOnce   bool
	generation int
	seed       int64
	density    float64
}

// New constructs a Game for the provided board.
func New(board core.Board, gods []god.Named, cfg *Config) *Game {
	s := board.Size()
	return &Game{
		board:    board,
		gods:     gods,
		painter:  render.NewGridPainter(s.W, s.H),
		sidebar:  ui.NewSidebar(),
		pacer:    clock.NewFixedStep(cfg.GPS),
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
		running:  !cfg.Paused,
		seed:     cfg.Seed,
		density:  cfg.Density,
	}
}

// Reset reseeds the board with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	s := g.board.Size()
	// The seed length always matches the board.
	_ = g.board.Load(core.NewRNG(seed).Seed(s.W, s.H, g.density))
	g.generation = 0
	g.tickOnce = false
}

// Update handles per-frame logic and advances the board.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.board.Clear()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(ebiten.CursorPosition())
	}

	if (g.running && g.pacer.ShouldStep()) || g.tickOnce {
		g.board.Update()
		g.generation++
		g.tickOnce = false
	}
	return nil
}

func (g *Game) toggle() {
	g.running = !g.running
	if g.running {
		g.pacer.Reset()
	}
}

func (g *Game) click(x, y int) {
	b, ok := ui.HitTest(g.buttons(), x, y)
	if !ok {
		return
	}
	switch b.Action {
	case ui.ActionGod:
		g.gods[b.God].Fn(g.board)
	case ui.ActionClear:
		g.board.Clear()
	case ui.ActionToggle:
		g.toggle()
	}
}

func (g *Game) buttons() []ui.Button {
	names := make([]string, len(g.gods))
	for i, n := range g.gods {
		names[i] = n.Name
	}
	s := g.board.Size()
	return ui.Layout(s.W*g.scale, s.H*g.scale, names, g.running)
}

// Draw renders the board and the sidebar.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.board, g.onColor, g.offColor, g.scale)
	g.sidebar.Draw(screen, g.board.Size().W*g.scale, ui.Status{
		Generation: g.generation,
		Population: core.Population(g.board),
		Board:      g.board.Name(),
		Memory:     g.board.MemoryUsage(),
	}, g.buttons())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.board.Size()
	return s.W*g.scale + ui.SidebarWidth, s.H * g.scale
}
