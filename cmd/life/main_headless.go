//go:build !ebiten

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"conway-life/internal/app"
	"conway-life/internal/render"
	"conway-life/internal/term"
)

// Without the ebiten tag the board is drawn in the terminal and Ctrl-C ends
// the run. Build with `-tags ebiten` for the window.
func main() {
	cfg, err := app.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	driver, err := app.Start(cfg, time.Now())
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	surface := term.NewSurface(ctx, os.Stdout, render.DefaultPalette(), cfg.TermScale)
	if err := app.Run(driver, surface, app.WallClock()); err != nil {
		log.Fatal(err)
	}
	surface.Close()
	log.Printf("GIF generated as '%s'", cfg.Output)
}
