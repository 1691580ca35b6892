package ui

import (
	"image"
	"testing"

	"github.com/ebitenui/ebitenui/widget"
)

func newContent(w, h int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(w, h)),
	)
}

func TestViewportPreferredSizeIgnoresContent(t *testing.T) {
	v := NewViewport(newContent(120, 600), 200, 300, nil)
	w, h := v.PreferredSize()
	if w != 200 || h != 300 {
		t.Fatalf("expected 200x300, got %dx%d", w, h)
	}
}

func TestViewportPlacesContentAtTop(t *testing.T) {
	tests := []struct {
		name string
		top  float64
		want image.Rectangle
	}{
		{name: "unscrolled", top: 0, want: image.Rect(10, 10, 210, 610)},
		{name: "scrolled_line", top: -20, want: image.Rect(10, -10, 210, 590)},
		{name: "rounds", top: -2.6, want: image.Rect(10, 7, 210, 607)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := newContent(120, 600)
			v := NewViewport(content, 200, 300, nil)
			v.SetTop(tt.top)
			v.SetLocation(image.Rect(10, 10, 210, 310))

			if got := v.GetWidget().Rect; got != image.Rect(10, 10, 210, 310) {
				t.Fatalf("viewport rect %v", got)
			}
			if got := v.ContentRect(); got != tt.want {
				t.Fatalf("content rect %v, want %v", got, tt.want)
			}
			if v.Top() != tt.top {
				t.Fatalf("top %v, want %v", v.Top(), tt.top)
			}
		})
	}
}

func TestViewportForwardsUpdateToContent(t *testing.T) {
	var updates int
	content := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(100, 600),
			widget.WidgetOpts.OnUpdate(func(widget.HasWidget) {
				updates++
			}),
		),
	)
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(NewViewport(content, 100, 300, nil))

	root.Update(&widget.UpdateObject{})
	root.Update(&widget.UpdateObject{})

	if updates != 2 {
		t.Fatalf("content updated %d times, want 2", updates)
	}
}

func TestAnchorPosition(t *testing.T) {
	tests := map[string]widget.AnchorLayoutPosition{
		"start":  widget.AnchorLayoutPositionStart,
		"center": widget.AnchorLayoutPositionCenter,
		"end":    widget.AnchorLayoutPositionEnd,
		"":       widget.AnchorLayoutPositionStart,
	}
	for in, want := range tests {
		if got := AnchorPosition(in); got != want {
			t.Fatalf("AnchorPosition(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFontsShareFacePerSize(t *testing.T) {
	f, err := LoadFonts()
	if err != nil {
		t.Fatalf("load fonts: %v", err)
	}
	if f.Face(20) != f.Face(20) {
		t.Fatalf("expected the same face pointer for equal sizes")
	}
	if f.Face(20) == f.Face(25) {
		t.Fatalf("expected distinct faces for distinct sizes")
	}
	if f.Face(0) != f.Face(DefaultFontSize) {
		t.Fatalf("expected zero size to fall back to the default")
	}
}
