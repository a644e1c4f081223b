//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"conway-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

const windowTitle = "Conway's Game of Life - ESC to exit"

func main() {
	cfg, err := app.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	driver, err := app.Start(cfg, time.Now())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(driver, cfg.Output)
	frame := driver.Frame()

	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(frame.W, frame.H)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	if err := driver.Exit(); err != nil {
		log.Fatal(err)
	}
	log.Printf("GIF generated as '%s'", cfg.Output)
}
