package system

import (
	"image"
	"testing"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/ecsdemos/ecs"
	"github.com/milk9111/ecsdemos/ecs/component"
)

type recordingTarget struct {
	tops []float64
}

func (r *recordingTarget) SetTop(top float64) {
	r.tops = append(r.tops, top)
}

func TestLayoutSyncCopiesWidgetSize(t *testing.T) {
	w := ecs.NewWorld()
	wd := widget.NewWidget()
	wd.Rect = image.Rect(10, 20, 210, 620)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.UIWidgetComponent.Kind(), &component.UIWidget{Widget: wd}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.UINodeComponent.Kind(), &component.UINode{}); err != nil {
		t.Fatal(err)
	}
	empty := ecs.CreateEntity(w)
	if err := ecs.Add(w, empty, component.UIWidgetComponent.Kind(), &component.UIWidget{}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, empty, component.UINodeComponent.Kind(), &component.UINode{Width: 1, Height: 2}); err != nil {
		t.Fatal(err)
	}

	NewLayoutSyncSystem().Update(w)

	node, _ := ecs.Get(w, e, component.UINodeComponent.Kind())
	if node.Width != 200 || node.Height != 600 {
		t.Errorf("node = %+v, want 200x600", *node)
	}
	node, _ = ecs.Get(w, empty, component.UINodeComponent.Kind())
	if node.Width != 1 || node.Height != 2 {
		t.Errorf("node without widget changed: %+v", *node)
	}

	wd.Rect = image.Rect(0, 0, 50, 40)
	NewLayoutSyncSystem().Update(w)
	node, _ = ecs.Get(w, e, component.UINodeComponent.Kind())
	if node.Width != 50 || node.Height != 40 {
		t.Errorf("node after relayout = %+v, want 50x40", *node)
	}
}

func TestScrollApplyPushesTop(t *testing.T) {
	w := ecs.NewWorld()
	target := &recordingTarget{}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.StyleComponent.Kind(), &component.Style{Top: -40}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.ScrollViewComponent.Kind(), &component.ScrollView{Target: target}); err != nil {
		t.Fatal(err)
	}
	unbound := ecs.CreateEntity(w)
	if err := ecs.Add(w, unbound, component.StyleComponent.Kind(), &component.Style{Top: -5}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, unbound, component.ScrollViewComponent.Kind(), &component.ScrollView{}); err != nil {
		t.Fatal(err)
	}

	NewScrollApplySystem().Update(w)

	if len(target.tops) != 1 || target.tops[0] != -40 {
		t.Errorf("tops = %v, want [-40]", target.tops)
	}
}

func TestScrollFrame(t *testing.T) {
	// One frame of the UI demo: layout read-back, wheel, scroll, apply.
	w := ecs.NewWorld()
	target := &recordingTarget{}

	vpWidget := widget.NewWidget()
	vpWidget.Rect = image.Rect(0, 0, 200, 300)
	listWidget := widget.NewWidget()
	listWidget.Rect = image.Rect(0, 0, 200, 600)

	vp := ecs.CreateEntity(w)
	list := ecs.CreateEntity(w)
	adds := []error{
		ecs.Add(w, vp, component.UIWidgetComponent.Kind(), &component.UIWidget{Widget: vpWidget}),
		ecs.Add(w, vp, component.UINodeComponent.Kind(), &component.UINode{}),
		ecs.Add(w, list, component.UIWidgetComponent.Kind(), &component.UIWidget{Widget: listWidget}),
		ecs.Add(w, list, component.UINodeComponent.Kind(), &component.UINode{}),
		ecs.Add(w, list, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(vp)}),
		ecs.Add(w, list, component.ScrollingListComponent.Kind(), &component.ScrollingList{}),
		ecs.Add(w, list, component.StyleComponent.Kind(), &component.Style{}),
		ecs.Add(w, list, component.ScrollViewComponent.Kind(), &component.ScrollView{Target: target}),
	}
	for _, err := range adds {
		if err != nil {
			t.Fatal(err)
		}
	}

	w.AddSystem(&InputSystem{Source: &fakeInput{wheelY: -1}})
	w.AddSystem(NewLayoutSyncSystem())
	w.AddSystem(NewScrollSystem(20))
	w.AddSystem(NewScrollApplySystem())
	w.Update()

	if len(target.tops) != 1 || target.tops[0] != -20 {
		t.Fatalf("tops = %v, want [-20]", target.tops)
	}
	if n := w.Events().Len(); n != 0 {
		t.Errorf("%d events left after the frame", n)
	}
}
