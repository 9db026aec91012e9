package component

// Camera is an orthographic view of Width x Height arena units centred on
// the entity transform.
type Camera struct {
	Width  float64
	Height float64
}

var CameraComponent = NewComponent[Camera]("camera")
