//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"slime/internal/app"
	"slime/internal/core"
	"slime/internal/sims/slime"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()["slime"]
	if !ok {
		log.Fatal("slime simulation not registered")
	}
	sim := factory(map[string]string{"seed": strconv.FormatInt(cfg.Seed, 10)})
	world, ok := sim.(*slime.World)
	if !ok {
		log.Fatalf("unexpected simulation type %T", sim)
	}

	game := app.New(world, cfg.Scale, cfg.Seed)

	ebiten.SetWindowTitle(world.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(core.ScreenWidth*cfg.Scale, core.ScreenHeight*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
