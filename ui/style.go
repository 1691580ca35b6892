package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// SolidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func SolidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

// Insets converts plain edge sizes to ebitenui insets.
func Insets(top, bottom, left, right int) *widget.Insets {
	return &widget.Insets{Top: top, Bottom: bottom, Left: left, Right: right}
}

// AnchorPosition maps start/center/end to an anchor layout position.
// Anything else means start.
func AnchorPosition(s string) widget.AnchorLayoutPosition {
	switch s {
	case "center":
		return widget.AnchorLayoutPositionCenter
	case "end":
		return widget.AnchorLayoutPositionEnd
	default:
		return widget.AnchorLayoutPositionStart
	}
}
