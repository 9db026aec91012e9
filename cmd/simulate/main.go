// Command simulate runs the pong schedule headless at a fixed frame delta
// and prints the ball and paddle positions after every frame.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/ecs/entity"
	"github.com/milk9111/pong/ecs/system"
	"gopkg.in/yaml.v3"
)

type options struct {
	Steps  int
	Delta  float64
	Left   float64
	Right  float64
	Format string
}

type frameRecord struct {
	Step   int     `yaml:"step"`
	BallX  float64 `yaml:"ball_x"`
	BallY  float64 `yaml:"ball_y"`
	BallVX float64 `yaml:"ball_vx"`
	BallVY float64 `yaml:"ball_vy"`
	LeftY  float64 `yaml:"left_y"`
	RightY float64 `yaml:"right_y"`
	Bounce int     `yaml:"bounces"`
}

// constantAxes reports the same value for an axis every frame.
type constantAxes map[string]float64

func (a constantAxes) AxisValue(name string) (float64, bool) {
	v, ok := a[name]
	return v, ok
}

// bounceCounter stands in for the audio blip so bounces can be reported.
type bounceCounter struct {
	bounces int
}

func (b *bounceCounter) Rewind() error { return nil }
func (b *bounceCounter) Play()         { b.bounces++ }

func main() {
	var opts options
	flag.IntVar(&opts.Steps, "steps", 60, "number of frames to simulate")
	flag.Float64Var(&opts.Delta, "dt", 1.0/60, "frame delta in seconds")
	flag.Float64Var(&opts.Left, "left", 0, "constant left_paddle axis value in [-1, 1]")
	flag.Float64Var(&opts.Right, "right", 0, "constant right_paddle axis value in [-1, 1]")
	flag.StringVar(&opts.Format, "format", "csv", "output format: csv or yaml")
	flag.Parse()

	records, err := simulate(opts)
	if err != nil {
		log.Fatal(err)
	}
	if err := write(os.Stdout, opts.Format, records); err != nil {
		log.Fatal(err)
	}
}

func simulate(opts options) ([]frameRecord, error) {
	if opts.Steps < 0 {
		return nil, fmt.Errorf("simulate: negative step count %d", opts.Steps)
	}
	if opts.Delta < 0 {
		return nil, fmt.Errorf("simulate: negative dt %v", opts.Delta)
	}

	w := ecs.NewWorld()
	arena, err := entity.NewArena(w, nil)
	if err != nil {
		return nil, err
	}
	counter := &bounceCounter{}
	sched, err := system.NewScheduler(nil, counter)
	if err != nil {
		return nil, err
	}

	frame := &ecs.Frame{
		Delta: opts.Delta,
		Axes:  constantAxes{"left_paddle": opts.Left, "right_paddle": opts.Right},
	}

	records := make([]frameRecord, 0, opts.Steps)
	for i := 1; i <= opts.Steps; i++ {
		sched.Update(w, frame)

		ballT, _ := ecs.Get(w, arena.Ball, component.TransformComponent.Kind())
		ball, _ := ecs.Get(w, arena.Ball, component.BallComponent.Kind())
		left, _ := ecs.Get(w, arena.Left, component.TransformComponent.Kind())
		right, _ := ecs.Get(w, arena.Right, component.TransformComponent.Kind())
		records = append(records, frameRecord{
			Step:   i,
			BallX:  ballT.X,
			BallY:  ballT.Y,
			BallVX: ball.VelocityX,
			BallVY: ball.VelocityY,
			LeftY:  left.Y,
			RightY: right.Y,
			Bounce: counter.bounces,
		})
	}
	return records, nil
}

func write(out io.Writer, format string, records []frameRecord) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(records)
	case "csv":
		cw := csv.NewWriter(out)
		if err := cw.Write([]string{"step", "ball_x", "ball_y", "ball_vx", "ball_vy", "left_y", "right_y", "bounces"}); err != nil {
			return err
		}
		for _, r := range records {
			row := []string{
				strconv.Itoa(r.Step),
				formatFloat(r.BallX),
				formatFloat(r.BallY),
				formatFloat(r.BallVX),
				formatFloat(r.BallVY),
				formatFloat(r.LeftY),
				formatFloat(r.RightY),
				strconv.Itoa(r.Bounce),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	default:
		return fmt.Errorf("simulate: unknown format %q", format)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
