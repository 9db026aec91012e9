package component

// Ball stores the ball's velocity in arena units per second.
type Ball struct {
	VelocityX float64
	VelocityY float64
	Radius    float64
}

var BallComponent = NewComponent[Ball]("ball")
