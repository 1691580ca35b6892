package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	MovementFile = "movement.yaml"
	UIFile       = "ui.yaml"

	// DefaultMoveSpeed is the player's displacement per frame in world units.
	DefaultMoveSpeed = 0.13
	// DefaultLinePixels converts one wheel line into pixels.
	DefaultLinePixels = 20.0
	// DefaultViewHeight is the number of world units the camera shows vertically.
	DefaultViewHeight = 10.0
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// MovementSpec is the scene of the sprite movement demo: the per-frame
// speed and the entity prefabs spawned at startup, in order.
type MovementSpec struct {
	Name      string   `yaml:"name"`
	MoveSpeed float64  `yaml:"move_speed"`
	Entities  []string `yaml:"entities"`
}

func LoadMovementSpec() (*MovementSpec, error) {
	spec, err := LoadSpec[MovementSpec](MovementFile)
	if err != nil {
		return nil, err
	}
	if spec.MoveSpeed == 0 {
		spec.MoveSpeed = DefaultMoveSpeed
	}
	return &spec, nil
}

type ScrollSpec struct {
	LinePixels float64 `yaml:"line_pixels"`
}

// UISpec is the scene of the UI layout demo.
type UISpec struct {
	Name       string     `yaml:"name"`
	ClearColor *YAMLColor `yaml:"clear_color"`
	Scroll     ScrollSpec `yaml:"scroll"`
	Root       NodeSpec   `yaml:"root"`
}

func LoadUISpec() (*UISpec, error) {
	spec, err := LoadSpec[UISpec](UIFile)
	if err != nil {
		return nil, err
	}
	if spec.Scroll.LinePixels <= 0 {
		spec.Scroll.LinePixels = DefaultLinePixels
	}
	if spec.ClearColor == nil {
		spec.ClearColor = &YAMLColor{Color: color.Black}
	}
	if err := spec.Root.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", UIFile, err)
	}
	return &spec, nil
}

// Node kinds understood by the UI tree builder.
const (
	NodeContainer = "container"
	NodeText      = "text"
	NodeImage     = "image"
	// NodeViewport clips its single list child.
	NodeViewport = "viewport"
	// NodeList is a scrollable panel; it must be the only child of a viewport.
	NodeList = "list"
)

// Container layouts.
const (
	LayoutAnchor = "anchor"
	LayoutRow    = "row"
	LayoutColumn = "column"
)

type InsetsSpec struct {
	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
	Right  int `yaml:"right"`
}

// AnchorSpec positions a node inside an anchor layout parent. Offset insets
// the node from the parent's edges, which gives absolute positioning.
// Horizontal and Vertical are start, center or end.
type AnchorSpec struct {
	Horizontal        string     `yaml:"horizontal"`
	Vertical          string     `yaml:"vertical"`
	StretchHorizontal bool       `yaml:"stretch_horizontal"`
	StretchVertical   bool       `yaml:"stretch_vertical"`
	Offset            InsetsSpec `yaml:"offset"`
}

// ItemsSpec generates Count text rows; Text is a fmt pattern given the index.
type ItemsSpec struct {
	Count     int        `yaml:"count"`
	Text      string     `yaml:"text"`
	FontSize  float64    `yaml:"font_size"`
	TextColor *YAMLColor `yaml:"text_color"`
}

type NodeSpec struct {
	Name        string      `yaml:"name"`
	Kind        string      `yaml:"kind"`
	Layout      string      `yaml:"layout"`
	Width       int         `yaml:"width"`
	Height      int         `yaml:"height"`
	Color       *YAMLColor  `yaml:"color"`
	Border      int         `yaml:"border"`
	BorderColor *YAMLColor  `yaml:"border_color"`
	Padding     InsetsSpec  `yaml:"padding"`
	Spacing     int         `yaml:"spacing"`
	Stretch     bool        `yaml:"stretch"`
	Anchor      *AnchorSpec `yaml:"anchor"`
	Text        string      `yaml:"text"`
	FontSize    float64     `yaml:"font_size"`
	TextColor   *YAMLColor  `yaml:"text_color"`
	Image       string      `yaml:"image"`
	Items       *ItemsSpec  `yaml:"items"`
	Children    []NodeSpec  `yaml:"children"`
}

// KindOrDefault treats an empty kind as a container.
func (n NodeSpec) KindOrDefault() string {
	if n.Kind == "" {
		return NodeContainer
	}
	return n.Kind
}

// Validate checks the tree shape the builder relies on.
func (n NodeSpec) Validate() error {
	return n.validate("root", "")
}

func (n NodeSpec) validate(path, parentKind string) error {
	if n.Name != "" {
		path = path + "/" + n.Name
	}
	kind := n.KindOrDefault()
	switch kind {
	case NodeContainer:
		switch n.Layout {
		case "", LayoutAnchor, LayoutRow, LayoutColumn:
		default:
			return fmt.Errorf("node %s: unknown layout %q", path, n.Layout)
		}
	case NodeText:
		if n.Text == "" {
			return fmt.Errorf("node %s: text node without text", path)
		}
	case NodeImage:
		if n.Image == "" {
			return fmt.Errorf("node %s: image node without image", path)
		}
	case NodeViewport:
		if len(n.Children) != 1 || n.Children[0].KindOrDefault() != NodeList {
			return fmt.Errorf("node %s: viewport needs exactly one list child", path)
		}
	case NodeList:
		if parentKind != NodeViewport {
			return fmt.Errorf("node %s: list must be the child of a viewport", path)
		}
	default:
		return fmt.Errorf("node %s: unknown kind %q", path, n.Kind)
	}
	if kind != NodeContainer && kind != NodeViewport && kind != NodeList && len(n.Children) > 0 {
		return fmt.Errorf("node %s: %s nodes cannot have children", path, kind)
	}
	if n.Border < 0 {
		return fmt.Errorf("node %s: negative border", path)
	}
	for i, child := range n.Children {
		if err := child.validate(fmt.Sprintf("%s[%d]", path, i), kind); err != nil {
			return err
		}
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the parsed colour, or fallback when the field was absent.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
