package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pong/config"
)

// Device is the raw input source a Handler samples from.
type Device interface {
	IsKeyPressed(key ebiten.Key) bool
	GamepadAxisValue(gamepad, axis int) (float64, bool)
}

// Handler resolves named axes from bindings. Values are sampled once per
// frame by Update and stay fixed until the next Update.
type Handler struct {
	device   Device
	bindings config.Bindings
	values   map[string]float64
}

func NewHandler(bindings config.Bindings, device Device) *Handler {
	if device == nil {
		device = EbitenDevice{}
	}
	return &Handler{
		device:   device,
		bindings: bindings,
		values:   make(map[string]float64, len(bindings.Axes)),
	}
}

// SetBindings swaps the binding table. Axes no longer bound stop
// reporting immediately.
func (h *Handler) SetBindings(bindings config.Bindings) {
	h.bindings = bindings
	h.values = make(map[string]float64, len(bindings.Axes))
}

func (h *Handler) Bindings() config.Bindings {
	return h.bindings
}

// Update samples the device for every bound axis.
func (h *Handler) Update() {
	if h == nil {
		return
	}
	for name, axis := range h.bindings.Axes {
		h.values[name] = h.sample(axis)
	}
}

// AxisValue returns the last sampled value in [-1, 1]. ok is false when the
// axis is not bound.
func (h *Handler) AxisValue(name string) (float64, bool) {
	if h == nil {
		return 0, false
	}
	if _, bound := h.bindings.Axes[name]; !bound {
		return 0, false
	}
	return h.values[name], true
}

func (h *Handler) sample(axis config.Axis) float64 {
	value := 0.0
	if h.anyPressed(axis.Pos) {
		value += 1
	}
	if h.anyPressed(axis.Neg) {
		value -= 1
	}

	if axis.GamepadAxis != nil {
		if stick, ok := h.device.GamepadAxisValue(axis.Gamepad, *axis.GamepadAxis); ok && math.Abs(stick) > axis.Deadzone {
			if axis.Invert {
				stick = -stick
			}
			value = stick
		}
	}

	return math.Max(-1, math.Min(1, value))
}

func (h *Handler) anyPressed(keys []config.Key) bool {
	for _, k := range keys {
		if h.device.IsKeyPressed(k.Key) {
			return true
		}
	}
	return false
}

// EbitenDevice reads the keyboard and standard gamepads through ebiten.
type EbitenDevice struct{}

func (EbitenDevice) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (EbitenDevice) GamepadAxisValue(gamepad, axis int) (float64, bool) {
	ids := ebiten.AppendGamepadIDs(nil)
	if gamepad < 0 || gamepad >= len(ids) {
		return 0, false
	}
	id := ids[gamepad]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return 0, false
	}
	return ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxis(axis)), true
}
