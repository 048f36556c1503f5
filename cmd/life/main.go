//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifeboard/internal/app"
	_ "lifeboard/pkg/boards/naive"
	_ "lifeboard/pkg/boards/packed"
	_ "lifeboard/pkg/boards/parallel"
	"lifeboard/pkg/core"
	"lifeboard/pkg/god"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	board, err := core.NewBoard(cfg.Board, cfg.Width, cfg.Height)
	if err != nil {
		log.Fatal(err)
	}
	gods := god.Catalog(cfg.Seed)

	game := app.New(board, gods, cfg)
	game.Reset(cfg.Seed)
	if cfg.God > 0 {
		gods[(cfg.God-1)%len(gods)].Fn(board)
	}

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("Game of Life — " + board.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
