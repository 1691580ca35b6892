package system

import (
	"github.com/milk9111/ecsdemos/ecs"
	"github.com/milk9111/ecsdemos/ecs/component"
)

// LayoutSyncSystem copies the size ebitenui laid out for each widget into
// its UINode. Layout happens while the UI draws, so the sizes read here are
// from the previous frame.
type LayoutSyncSystem struct{}

func NewLayoutSyncSystem() *LayoutSyncSystem {
	return &LayoutSyncSystem{}
}

func (l *LayoutSyncSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w,
		component.UIWidgetComponent.Kind(),
		component.UINodeComponent.Kind(),
		func(_ ecs.Entity, uw *component.UIWidget, node *component.UINode) {
			if uw.Widget == nil {
				return
			}
			r := uw.Widget.Rect
			node.Width = float64(r.Dx())
			node.Height = float64(r.Dy())
		},
	)
}

// ScrollApplySystem pushes each list's Style.Top to the viewport showing it.
type ScrollApplySystem struct{}

func NewScrollApplySystem() *ScrollApplySystem {
	return &ScrollApplySystem{}
}

func (s *ScrollApplySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w,
		component.StyleComponent.Kind(),
		component.ScrollViewComponent.Kind(),
		func(_ ecs.Entity, style *component.Style, view *component.ScrollView) {
			if view.Target == nil {
				return
			}
			view.Target.SetTop(style.Top)
		},
	)
}
