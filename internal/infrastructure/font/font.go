// Package font builds the font faces used by the HUD and menus.
package font

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Faces holds one face per text role
type Faces struct {
	Body  font.Face
	Title font.Face
}

// Load parses the bundled Go fonts at the given sizes
func Load(bodySize, titleSize float64) (*Faces, error) {
	body, err := newFace(goregular.TTF, bodySize)
	if err != nil {
		return nil, fmt.Errorf("failed to load body font: %w", err)
	}
	title, err := newFace(gobold.TTF, titleSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load title font: %w", err)
	}
	return &Faces{Body: body, Title: title}, nil
}

// Fallback returns the fixed 7x13 bitmap face for every role
func Fallback() *Faces {
	return &Faces{Body: basicfont.Face7x13, Title: basicfont.Face7x13}
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	tt, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
