package ui

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSize is used when a text node does not set one.
const DefaultFontSize = 16

// Fonts hands out Go Regular faces, one per size.
type Fonts struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.Face
}

func LoadFonts() (*Fonts, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ui: load font: %w", err)
	}
	return &Fonts{source: s, faces: make(map[float64]*text.Face)}, nil
}

// Face returns the shared face for size. ebitenui keeps the pointer, so the
// same size always yields the same pointer.
func (f *Fonts) Face(size float64) *text.Face {
	if size <= 0 {
		size = DefaultFontSize
	}
	if face, ok := f.faces[size]; ok {
		return face
	}
	var face text.Face = &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = &face
	return &face
}
