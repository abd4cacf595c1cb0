//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lightsout/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	sess, err := cfg.NewSession(logger)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	game := app.New(sess, cfg.Cell)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("Lights Out")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
