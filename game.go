package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/pong/assets"
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/config"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/ecs/entity"
	"github.com/milk9111/pong/ecs/system"
	"github.com/milk9111/pong/input"
)

const sampleRate = 44100

type Options struct {
	ConfigDir  string
	AssetsDir  string
	Debug      bool
	Watch      bool
	Mute       bool
	FixedDelta float64
}

type Game struct {
	display   config.Display
	configDir string
	debug     bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	input     *input.Handler
	clock     *common.Clock
	watcher   *config.Watcher
	arena     entity.Arena
	frame     ecs.Frame
}

func NewGame(display config.Display, opts Options) (*Game, error) {
	bindings, err := config.LoadBindings(opts.ConfigDir)
	if err != nil {
		return nil, err
	}

	sheet, err := assets.LoadSpriteSheet(opts.AssetsDir)
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	arena, err := entity.NewArena(world, sheet)
	if err != nil {
		return nil, fmt.Errorf("game: spawn arena: %w", err)
	}

	handler := input.NewHandler(bindings, input.EbitenDevice{})

	var blip system.Sound
	if !opts.Mute {
		blip = assets.NewBlipPlayer(audio.NewContext(sampleRate))
	}

	scheduler, err := system.NewScheduler(handler, blip)
	if err != nil {
		return nil, err
	}

	clock := common.NewClock()
	if opts.FixedDelta > 0 {
		clock = common.NewFixedClock(opts.FixedDelta)
	}

	g := &Game{
		display:   display,
		configDir: opts.ConfigDir,
		debug:     opts.Debug,
		world:     world,
		scheduler: scheduler,
		input:     handler,
		clock:     clock,
		arena:     arena,
		frame:     ecs.Frame{Axes: handler},
	}

	if opts.Watch {
		watcher, err := config.NewWatcher(opts.ConfigDir)
		if err != nil {
			log.Printf("config: watch %s: %v", opts.ConfigDir, err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

func (g *Game) Update() error {
	g.reloadChangedConfig()

	g.frame.Delta = g.clock.Tick()
	g.scheduler.Update(g.world, &g.frame)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.display.ClearColor.NRGBA())
	g.scheduler.Draw(g.world, screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, g.debugText())
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.display.Width, g.display.Height
}

// Close stops the config watcher, if any.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) debugText() string {
	text := fmt.Sprintf("FPS: %.2f  TPS: %.2f  dt: %.4f", ebiten.ActualFPS(), ebiten.ActualTPS(), g.clock.DeltaSeconds())
	tr, okT := ecs.Get(g.world, g.arena.Ball, component.TransformComponent.Kind())
	b, okB := ecs.Get(g.world, g.arena.Ball, component.BallComponent.Kind())
	if okT && okB {
		text += fmt.Sprintf("\nball: (%.1f, %.1f)  v: (%.1f, %.1f)", tr.X, tr.Y, b.VelocityX, b.VelocityY)
	}
	return text
}

func (g *Game) reloadChangedConfig() {
	if g.watcher == nil {
		return
	}

	select {
	case err := <-g.watcher.Errors:
		if err != nil {
			log.Printf("config: watch: %v", err)
		}
	default:
	}

	for _, name := range g.watcher.Poll() {
		switch name {
		case config.BindingsFile:
			bindings, err := config.LoadBindings(g.configDir)
			if err != nil {
				log.Printf("config: reload %s: %v", name, err)
				continue
			}
			g.input.SetBindings(bindings)
		case config.DisplayFile:
			display, err := config.LoadDisplay(g.configDir)
			if err != nil {
				log.Printf("config: reload %s: %v", name, err)
				continue
			}
			g.display = display
			applyDisplay(display)
		default:
			continue
		}
		log.Printf("config: reloaded %s", name)
	}
}

func applyDisplay(d config.Display) {
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetWindowSize(d.Width, d.Height)
	ebiten.SetFullscreen(d.Fullscreen)
	ebiten.SetVsyncEnabled(d.VSync)
	ebiten.SetTPS(d.TPS)
}
