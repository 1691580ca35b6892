package component

import "image/color"

// Camera projects the world with a fixed visible height; the visible width
// follows the screen's aspect ratio.
type Camera struct {
	ViewHeight float64
	ClearColor color.Color
}

var CameraComponent = NewComponent[Camera]()
