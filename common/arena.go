package common

// Arena and actor dimensions in logical units. The arena is y-up with its
// origin in the bottom-left corner.
const (
	ArenaWidth  = 100.0
	ArenaHeight = 100.0

	PaddleWidth  = 16.0
	PaddleHeight = 4.0

	BallRadius    = 2.0
	BallVelocityX = 75.0
	BallVelocityY = 50.0

	// PaddleSpeed is applied per frame, not per second.
	PaddleSpeed = 1.2
)
