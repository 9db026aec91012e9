package component

// Transform is the world-space placement of an entity in arena units, y-up.
// Z and Rotation are carried for the renderer and never read by the
// simulation.
type Transform struct {
	X        float64
	Y        float64
	Z        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]("transform")
