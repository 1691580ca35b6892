package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	_ widget.PreferredSizeLocateableWidget = (*Viewport)(nil)
	_ widget.Updater                       = (*Viewport)(nil)
)

// Viewport is a fixed-size widget that clips a single content widget and
// draws it shifted vertically by Top pixels. A negative Top scrolls the
// content up.
type Viewport struct {
	widget     *widget.Widget
	content    widget.PreferredSizeLocateableWidget
	width      int
	height     int
	background color.Color
	top        float64
}

// NewViewport wraps content in a width x height clipping region. background
// may be nil for a transparent viewport.
func NewViewport(content widget.PreferredSizeLocateableWidget, width, height int, background color.Color, opts ...widget.WidgetOpt) *Viewport {
	return &Viewport{
		widget:     widget.NewWidget(opts...),
		content:    content,
		width:      width,
		height:     height,
		background: background,
	}
}

func (v *Viewport) GetWidget() *widget.Widget {
	return v.widget
}

// PreferredSize is the configured size; the content's size never leaks out,
// which is what keeps the viewport from growing with its list.
func (v *Viewport) PreferredSize() (int, int) {
	return v.width, v.height
}

func (v *Viewport) SetLocation(rect image.Rectangle) {
	v.widget.Rect = rect
	v.layoutContent()
}

// SetTop sets the vertical offset of the content in pixels.
func (v *Viewport) SetTop(top float64) {
	v.top = top
}

func (v *Viewport) Top() float64 {
	return v.top
}

// ContentRect is where the content was last placed, in screen pixels.
func (v *Viewport) ContentRect() image.Rectangle {
	if v.content == nil {
		return image.Rectangle{}
	}
	return v.content.GetWidget().Rect
}

func (v *Viewport) Validate() {
	v.layoutContent()
}

// Update forwards to the content so widgets inside the list still get
// cursor handling and their OnUpdate hooks.
func (v *Viewport) Update(updObj *widget.UpdateObject) {
	v.widget.Update(updObj)
	if u, ok := v.content.(widget.Updater); ok {
		u.Update(updObj)
	}
}

func (v *Viewport) Render(screen *ebiten.Image) {
	r := v.widget.Rect
	if screen == nil || r.Empty() {
		return
	}
	clip, ok := screen.SubImage(r).(*ebiten.Image)
	if !ok {
		return
	}
	if v.background != nil {
		clip.Fill(v.background)
	}
	v.layoutContent()
	if rr, ok := v.content.(interface{ Render(*ebiten.Image) }); ok {
		rr.Render(clip)
	}
}

// layoutContent places the content at its preferred height, at least as wide
// as the viewport, offset by top.
func (v *Viewport) layoutContent() {
	if v.content == nil {
		return
	}
	r := v.widget.Rect
	cw, ch := v.content.PreferredSize()
	if cw < r.Dx() {
		cw = r.Dx()
	}
	y := r.Min.Y + int(math.Round(v.top))
	v.content.SetLocation(image.Rect(r.Min.X, y, r.Min.X+cw, y+ch))
	if val, ok := v.content.(interface{ Validate() }); ok {
		val.Validate()
	}
}
