package ecs

// AxisReader answers named input axis queries. ok is false when no binding
// exists for name.
type AxisReader interface {
	AxisValue(name string) (value float64, ok bool)
}

// Frame carries the per-frame resources every system may read. It is built
// by the game loop and handed to each system explicitly.
type Frame struct {
	// Delta is the elapsed time since the previous frame, in seconds.
	Delta float64
	Axes  AxisReader
}

// AxisValue is nil-safe sugar over f.Axes.
func (f *Frame) AxisValue(name string) (float64, bool) {
	if f == nil || f.Axes == nil {
		return 0, false
	}
	return f.Axes.AxisValue(name)
}

// DeltaSeconds returns f.Delta, or zero for a nil frame.
func (f *Frame) DeltaSeconds() float64 {
	if f == nil {
		return 0
	}
	return f.Delta
}
