//go:build !ebiten

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"lifegame/internal/app"
	"lifegame/pkg/board"
	"lifegame/pkg/sims/life"
)

// The default build runs headless. Build with -tags ebiten for the window.
func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sim := life.NewWithConfig(life.FromMap(cfg.Options))
	sim.Reset(cfg.Seed)

	logger := log.New(os.Stderr, "life: ", log.LstdFlags)
	app.Run(ctx, sim, cfg, logger)
	fmt.Print(render(sim.Board()))
}

func render(b *life.Board) string {
	var sb strings.Builder
	size := b.Size()
	for y := 1; y <= size; y++ {
		for x := 1; x <= size; x++ {
			if b.IsAlive(board.Coord{X: x, Y: y}) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
