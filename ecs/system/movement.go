package system

import (
	"github.com/milk9111/ecsdemos/ecs"
	"github.com/milk9111/ecsdemos/ecs/component"
)

// PlayerMovementSystem moves every player by Speed world units per frame
// along the held direction. Diagonals are not normalized.
type PlayerMovementSystem struct {
	Speed float64
}

func NewPlayerMovementSystem(speed float64) *PlayerMovementSystem {
	return &PlayerMovementSystem{Speed: speed}
}

func (m *PlayerMovementSystem) Update(w *ecs.World) {
	if m == nil || w == nil {
		return
	}

	ecs.ForEach3(w,
		component.PlayerTagComponent.Kind(),
		component.InputComponent.Kind(),
		component.TransformComponent.Kind(),
		func(_ ecs.Entity, _ *component.PlayerTag, input *component.Input, t *component.Transform) {
			dx, dy := input.Direction()
			if dx == 0 && dy == 0 {
				return
			}
			t.X += dx * m.Speed
			t.Y += dy * m.Speed
		},
	)
}
