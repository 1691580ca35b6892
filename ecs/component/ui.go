package component

import "github.com/ebitenui/ebitenui/widget"

// UINode holds the size the UI layout pass computed for an entity's widget,
// in pixels. It is refreshed from the widget every frame.
type UINode struct {
	Width  float64
	Height float64
}

var UINodeComponent = NewComponent[UINode]()

// UIWidget links an entity to the ebitenui widget that renders it.
type UIWidget struct {
	Widget *widget.Widget
}

var UIWidgetComponent = NewComponent[UIWidget]()

// Parent points at the enclosing UI entity (ecs.Entity is uint64).
type Parent struct {
	Entity uint64
}

var ParentComponent = NewComponent[Parent]()

// Style carries layout properties written by systems and pushed to the UI.
type Style struct {
	// Top is the vertical offset of the node inside its parent, in pixels.
	Top float64
}

var StyleComponent = NewComponent[Style]()

// ScrollingList is the scroll state of a list panel. Position is the panel's
// offset in pixels and stays within [-maxScroll, 0].
type ScrollingList struct {
	Position float64
}

var ScrollingListComponent = NewComponent[ScrollingList]()

// ScrollTarget is the clipping widget that shows a list at a given offset.
type ScrollTarget interface {
	SetTop(top float64)
}

// ScrollView binds a list entity to the viewport that realises its Style.Top.
type ScrollView struct {
	Target ScrollTarget
}

var ScrollViewComponent = NewComponent[ScrollView]()
