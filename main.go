package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pong/config"
)

func main() {
	configDir := flag.String("config", "config", "directory holding display.yaml and bindings.yaml (embedded defaults are used for missing files)")
	assetsDir := flag.String("assets", "assets", "directory holding spritesheet.yaml and its texture")
	debug := flag.Bool("debug", false, "enable debug overlay")
	watch := flag.Bool("watch", false, "reload config files when they change on disk")
	mute := flag.Bool("mute", false, "disable the bounce sound")
	fixedDelta := flag.Float64("fixed-dt", 0, "simulate with a fixed frame delta in seconds instead of wall time")
	flag.Parse()

	display, err := config.LoadDisplay(*configDir)
	if err != nil {
		log.Fatal(err)
	}
	applyDisplay(display)

	game, err := NewGame(display, Options{
		ConfigDir:  *configDir,
		AssetsDir:  *assetsDir,
		Debug:      *debug,
		Watch:      *watch,
		Mute:       *mute,
		FixedDelta: *fixedDelta,
	})
	if err != nil {
		log.Fatal(err)
	}

	err = ebiten.RunGame(game)
	if cerr := game.Close(); cerr != nil {
		log.Printf("close: %v", cerr)
	}
	if err != nil {
		log.Fatal(err)
	}
}
