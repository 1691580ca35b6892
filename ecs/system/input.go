package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ecsdemos/ecs"
	"github.com/milk9111/ecsdemos/ecs/component"
)

// InputSource is the slice of the host input API the input system reads.
type InputSource interface {
	IsKeyPressed(key ebiten.Key) bool
	Wheel() (x, y float64)
}

type ebitenInput struct{}

func (ebitenInput) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (ebitenInput) Wheel() (float64, float64) {
	return ebiten.Wheel()
}

// EbitenInput reads the keyboard and wheel through ebiten.
var EbitenInput InputSource = ebitenInput{}

// InputSystem writes the held direction keys into every Input component and
// queues a mouse wheel event for frames in which the wheel moved.
type InputSystem struct {
	Source InputSource
	// WheelUnit tells consumers how to read the wheel deltas. ebiten reports
	// both notched and smooth wheels the same way, so the host decides.
	WheelUnit ecs.MouseScrollUnit
}

func NewInputSystem(unit ecs.MouseScrollUnit) *InputSystem {
	return &InputSystem{Source: EbitenInput, WheelUnit: unit}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	src := i.Source
	if src == nil {
		src = EbitenInput
	}

	held := component.Input{
		Up:    src.IsKeyPressed(ebiten.KeyArrowUp) || src.IsKeyPressed(ebiten.KeyW),
		Down:  src.IsKeyPressed(ebiten.KeyArrowDown) || src.IsKeyPressed(ebiten.KeyS),
		Left:  src.IsKeyPressed(ebiten.KeyArrowLeft) || src.IsKeyPressed(ebiten.KeyA),
		Right: src.IsKeyPressed(ebiten.KeyArrowRight) || src.IsKeyPressed(ebiten.KeyD),
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = held
	})

	if x, y := src.Wheel(); x != 0 || y != 0 {
		w.Events().Push(ecs.Event{
			Type: ecs.EventMouseWheel,
			Data: ecs.MouseWheelEvent{Unit: i.WheelUnit, X: x, Y: y},
		})
	}
}
