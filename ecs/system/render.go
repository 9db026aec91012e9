package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// RenderSystem draws every sprite through the first camera in the world.
// Arena space is y-up; screen space is y-down.
type RenderSystem struct {
	camEntity ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// View maps arena coordinates onto a screen of the given size.
type View struct {
	Left, Bottom   float64
	ScaleX, ScaleY float64
	ScreenHeight   float64
}

func (v View) ToScreen(x, y float64) (float64, float64) {
	return (x - v.Left) * v.ScaleX, v.ScreenHeight - (y-v.Bottom)*v.ScaleY
}

// CameraView builds the view for a camera centred at (cx, cy).
func CameraView(cam component.Camera, cx, cy float64, screenW, screenH int) View {
	v := View{
		Left:         cx - cam.Width/2,
		Bottom:       cy - cam.Height/2,
		ScaleX:       1,
		ScaleY:       1,
		ScreenHeight: float64(screenH),
	}
	if cam.Width > 0 {
		v.ScaleX = float64(screenW) / cam.Width
	}
	if cam.Height > 0 {
		v.ScaleY = float64(screenH) / cam.Height
	}
	return v
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return
		}
		r.camEntity = camEntity
	}

	cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	bounds := screen.Bounds()
	view := CameraView(*cam, camTransform.X, camTransform.Y, bounds.Dx(), bounds.Dy())

	entities := w.Query(component.TransformComponent.Kind().ID(), component.SpriteComponent.Kind().ID())
	sort.SliceStable(entities, func(i, j int) bool {
		return layerOf(w, entities[i]) < layerOf(w, entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if t == nil || s == nil || s.Image == nil {
			continue
		}

		sb := s.Image.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(sb.Dx())/2, -float64(sb.Dy())/2)
		op.GeoM.Rotate(-t.Rotation)
		op.GeoM.Scale(view.ScaleX, view.ScaleY)
		sx, sy := view.ToScreen(t.X, t.Y)
		op.GeoM.Translate(sx, sy)
		screen.DrawImage(s.Image, op)
	}
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}
