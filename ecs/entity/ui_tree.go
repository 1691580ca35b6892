package entity

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ecsdemos/ecs"
	"github.com/milk9111/ecsdemos/ecs/component"
	"github.com/milk9111/ecsdemos/prefabs"
	"github.com/milk9111/ecsdemos/ui"
)

// UIResources is what the tree builder needs beyond the scene description.
type UIResources struct {
	Fonts  *ui.Fonts
	Images map[string]*ebiten.Image
}

// UITree is a built UI scene: the root widget and the entities mirroring it.
type UITree struct {
	Root     *widget.Container
	Entities []ecs.Entity
	// Lists are the scrollable list panels, in tree order.
	Lists []ecs.Entity
}

// Destroy removes the tree's entities from w.
func (t *UITree) Destroy(w *ecs.World) {
	if t == nil {
		return
	}
	for _, e := range t.Entities {
		ecs.DestroyEntity(w, e)
	}
	t.Entities = nil
	t.Lists = nil
}

type uiBuilder struct {
	w    *ecs.World
	res  UIResources
	tree *UITree
}

// BuildUITree turns a node description into ebitenui widgets and gives
// every node an entity with UINode, UIWidget and, below the root, Parent.
// Lists also get ScrollingList, Style and a ScrollView bound to their
// viewport. On error the entities created so far are destroyed.
func BuildUITree(w *ecs.World, root prefabs.NodeSpec, res UIResources) (*UITree, error) {
	if w == nil {
		return nil, fmt.Errorf("build ui: world is nil")
	}
	if res.Fonts == nil {
		return nil, fmt.Errorf("build ui: fonts are nil")
	}
	if err := root.Validate(); err != nil {
		return nil, fmt.Errorf("build ui: %w", err)
	}

	b := &uiBuilder{w: w, res: res, tree: &UITree{}}
	rootWidget, err := b.node(root, 0, "")
	if err != nil {
		b.tree.Destroy(w)
		return nil, fmt.Errorf("build ui: %w", err)
	}

	container, ok := rootWidget.(*widget.Container)
	if !ok {
		container = widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
		container.AddChild(rootWidget)
	}
	b.tree.Root = container
	return b.tree, nil
}

// node builds spec and returns the outermost widget to insert into the
// parent, which may be a border or offset wrapper around the node's own widget.
func (b *uiBuilder) node(spec prefabs.NodeSpec, parent ecs.Entity, parentLayout string) (widget.PreferredSizeLocateableWidget, error) {
	e := ecs.CreateEntity(b.w)
	b.tree.Entities = append(b.tree.Entities, e)
	if parent.Valid() {
		if err := ecs.Add(b.w, e, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(parent)}); err != nil {
			return nil, fmt.Errorf("node %q: add parent: %w", spec.Name, err)
		}
	}

	var (
		self widget.PreferredSizeLocateableWidget
		err  error
	)
	switch spec.KindOrDefault() {
	case prefabs.NodeText:
		self = b.text(spec)
	case prefabs.NodeImage:
		self, err = b.image(spec)
	case prefabs.NodeViewport:
		self, err = b.viewport(spec, e)
	case prefabs.NodeList:
		self, err = b.list(spec, e)
	default:
		self, err = b.container(spec, e)
	}
	if err != nil {
		return nil, err
	}

	if err := ecs.Add(b.w, e, component.UIWidgetComponent.Kind(), &component.UIWidget{Widget: self.GetWidget()}); err != nil {
		return nil, fmt.Errorf("node %q: add widget: %w", spec.Name, err)
	}
	if err := ecs.Add(b.w, e, component.UINodeComponent.Kind(), &component.UINode{}); err != nil {
		return nil, fmt.Errorf("node %q: add node: %w", spec.Name, err)
	}

	outer := b.border(spec, self)
	return b.place(spec, outer, parentLayout), nil
}

func sizeOpts(spec prefabs.NodeSpec) []widget.WidgetOpt {
	if spec.Width == 0 && spec.Height == 0 {
		return nil
	}
	return []widget.WidgetOpt{widget.WidgetOpts.MinSize(spec.Width, spec.Height)}
}

func (b *uiBuilder) container(spec prefabs.NodeSpec, e ecs.Entity) (*widget.Container, error) {
	opts := []widget.ContainerOpt{
		widget.ContainerOpts.WidgetOpts(sizeOpts(spec)...),
		widget.ContainerOpts.Layout(layoutFor(spec)),
	}
	if spec.Color != nil {
		opts = append(opts, widget.ContainerOpts.BackgroundImage(ui.SolidNineSlice(spec.Color.Color)))
	}
	c := widget.NewContainer(opts...)

	for i, childSpec := range spec.Children {
		child, err := b.node(childSpec, e, layoutName(spec))
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", nodeName(spec), i, err)
		}
		c.AddChild(child)
	}
	return c, nil
}

func (b *uiBuilder) text(spec prefabs.NodeSpec) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(spec.Text, b.res.Fonts.Face(spec.FontSize), spec.TextColor.Or(color.White)),
		widget.TextOpts.WidgetOpts(sizeOpts(spec)...),
	)
}

func (b *uiBuilder) image(spec prefabs.NodeSpec) (*widget.Graphic, error) {
	img, ok := b.res.Images[spec.Image]
	if !ok || img == nil {
		return nil, fmt.Errorf("node %q: unknown image %q", spec.Name, spec.Image)
	}
	return widget.NewGraphic(
		widget.GraphicOpts.Image(img),
		widget.GraphicOpts.WidgetOpts(sizeOpts(spec)...),
	), nil
}

func (b *uiBuilder) viewport(spec prefabs.NodeSpec, e ecs.Entity) (*ui.Viewport, error) {
	listSpec := spec.Children[0]
	content, err := b.node(listSpec, e, prefabs.LayoutColumn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", nodeName(spec), err)
	}

	var bg color.Color
	if spec.Color != nil {
		bg = spec.Color.Color
	}
	vp := ui.NewViewport(content, spec.Width, spec.Height, bg)

	// The list is the last entity created under this viewport.
	list := b.tree.Lists[len(b.tree.Lists)-1]
	if err := ecs.Add(b.w, list, component.ScrollViewComponent.Kind(), &component.ScrollView{Target: vp}); err != nil {
		return nil, fmt.Errorf("%s: bind scroll view: %w", nodeName(spec), err)
	}
	return vp, nil
}

func (b *uiBuilder) list(spec prefabs.NodeSpec, e ecs.Entity) (*widget.Container, error) {
	column := spec
	column.Layout = prefabs.LayoutColumn
	c, err := b.container(column, e)
	if err != nil {
		return nil, err
	}

	if items := spec.Items; items != nil {
		pattern := items.Text
		if pattern == "" {
			pattern = "Item %d"
		}
		for i := 0; i < items.Count; i++ {
			c.AddChild(widget.NewText(
				widget.TextOpts.Text(fmt.Sprintf(pattern, i), b.res.Fonts.Face(items.FontSize), items.TextColor.Or(color.White)),
			))
		}
	}

	if err := ecs.Add(b.w, e, component.ScrollingListComponent.Kind(), &component.ScrollingList{Position: 0}); err != nil {
		return nil, fmt.Errorf("%s: add scrolling list: %w", nodeName(spec), err)
	}
	if err := ecs.Add(b.w, e, component.StyleComponent.Kind(), &component.Style{}); err != nil {
		return nil, fmt.Errorf("%s: add style: %w", nodeName(spec), err)
	}
	b.tree.Lists = append(b.tree.Lists, e)
	return c, nil
}

// border wraps self in a frame of spec.Border pixels when one is set.
func (b *uiBuilder) border(spec prefabs.NodeSpec, self widget.PreferredSizeLocateableWidget) widget.PreferredSizeLocateableWidget {
	if spec.Border <= 0 {
		return self
	}
	n := spec.Border
	frame := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(ui.SolidNineSlice(spec.BorderColor.Or(color.White))),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(widget.AnchorLayoutOpts.Padding(ui.Insets(n, n, n, n)))),
	)
	self.GetWidget().LayoutData = widget.AnchorLayoutData{
		StretchHorizontal: true,
		StretchVertical:   true,
	}
	frame.AddChild(self)
	return frame
}

// place sets the layout data the parent's layout expects. Inside an anchor
// layout an offset becomes the padding of a full-size wrapper.
func (b *uiBuilder) place(spec prefabs.NodeSpec, w widget.PreferredSizeLocateableWidget, parentLayout string) widget.PreferredSizeLocateableWidget {
	if parentLayout == prefabs.LayoutRow || parentLayout == prefabs.LayoutColumn {
		w.GetWidget().LayoutData = widget.RowLayoutData{Stretch: spec.Stretch}
		return w
	}
	if parentLayout != prefabs.LayoutAnchor {
		return w
	}

	anchor := prefabs.AnchorSpec{}
	if spec.Anchor != nil {
		anchor = *spec.Anchor
	}
	w.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: ui.AnchorPosition(anchor.Horizontal),
		VerticalPosition:   ui.AnchorPosition(anchor.Vertical),
		StretchHorizontal:  anchor.StretchHorizontal,
		StretchVertical:    anchor.StretchVertical,
	}
	if anchor.Offset == (prefabs.InsetsSpec{}) {
		return w
	}

	o := anchor.Offset
	wrapper := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(widget.AnchorLayoutOpts.Padding(ui.Insets(o.Top, o.Bottom, o.Left, o.Right)))),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			StretchHorizontal: true,
			StretchVertical:   true,
		})),
	)
	wrapper.AddChild(w)
	return wrapper
}

func layoutName(spec prefabs.NodeSpec) string {
	if spec.Layout == "" {
		return prefabs.LayoutAnchor
	}
	return spec.Layout
}

func layoutFor(spec prefabs.NodeSpec) widget.Layouter {
	padding := ui.Insets(spec.Padding.Top, spec.Padding.Bottom, spec.Padding.Left, spec.Padding.Right)
	switch layoutName(spec) {
	case prefabs.LayoutRow, prefabs.LayoutColumn:
		dir := widget.DirectionHorizontal
		if spec.Layout == prefabs.LayoutColumn {
			dir = widget.DirectionVertical
		}
		return widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(dir),
			widget.RowLayoutOpts.Spacing(spec.Spacing),
			widget.RowLayoutOpts.Padding(padding),
		)
	default:
		return widget.NewAnchorLayout(widget.AnchorLayoutOpts.Padding(padding))
	}
}

func nodeName(spec prefabs.NodeSpec) string {
	if spec.Name == "" {
		return spec.KindOrDefault()
	}
	return spec.Name
}
