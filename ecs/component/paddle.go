package component

// Side tags which player owns a paddle.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// AxisName is the input axis that drives a paddle on this side.
func (s Side) AxisName() string {
	switch s {
	case SideLeft:
		return "left_paddle"
	case SideRight:
		return "right_paddle"
	default:
		return ""
	}
}

type Paddle struct {
	Side   Side
	Width  float64
	Height float64
}

var PaddleComponent = NewComponent[Paddle]("paddle")
