package system

import (
	"fmt"
	"math"

	"github.com/milk9111/ecsdemos/ecs"
	"github.com/milk9111/ecsdemos/ecs/component"
)

// ScrollSystem folds this frame's mouse wheel events into every scrolling
// list. Positions stay within [-(content-viewport), 0], where the content is
// the list's height and the viewport its parent's.
type ScrollSystem struct {
	// LinePixels is the distance of one wheel line.
	LinePixels float64
}

func NewScrollSystem(linePixels float64) *ScrollSystem {
	return &ScrollSystem{LinePixels: linePixels}
}

func (s *ScrollSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for _, evt := range w.Events().Read(ecs.EventMouseWheel) {
		wheel, ok := evt.Data.(ecs.MouseWheelEvent)
		if !ok {
			continue
		}
		dy := s.delta(wheel)

		ecs.ForEach2(w,
			component.ScrollingListComponent.Kind(),
			component.UINodeComponent.Kind(),
			func(e ecs.Entity, list *component.ScrollingList, node *component.UINode) {
				viewport := parentHeight(w, e)
				maxScroll := math.Max(0, node.Height-viewport)
				list.Position = clamp(list.Position+dy, -maxScroll, 0)

				style, ok := ecs.Get(w, e, component.StyleComponent.Kind())
				if !ok {
					style = &component.Style{}
					if err := ecs.Add(w, e, component.StyleComponent.Kind(), style); err != nil {
						panic("scroll system: add style: " + err.Error())
					}
				}
				style.Top = list.Position
			},
		)
	}
}

func (s *ScrollSystem) delta(wheel ecs.MouseWheelEvent) float64 {
	if wheel.Unit == ecs.MouseScrollPixel {
		return wheel.Y
	}
	return wheel.Y * s.LinePixels
}

// parentHeight is the laid out height of a list's viewport. Lists are only
// ever built inside a viewport, so a missing parent is a broken tree.
func parentHeight(w *ecs.World, e ecs.Entity) float64 {
	parent, ok := ecs.Get(w, e, component.ParentComponent.Kind())
	if !ok {
		panic(fmt.Sprintf("scroll system: list %v has no parent", e))
	}
	node, ok := ecs.Get(w, ecs.Entity(parent.Entity), component.UINodeComponent.Kind())
	if !ok {
		panic(fmt.Sprintf("scroll system: parent %v of list %v has no ui node", ecs.Entity(parent.Entity), e))
	}
	return node.Height
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
