// Package pixel contains the binary image representation used for training and classification: a square grid of
// shaded and unshaded pixels, optionally tagged with a class label.
package pixel

import "fmt"

// Shade is the binary value of a single pixel.
type Shade uint8

const (
	Unshaded Shade = iota
	Shaded
)

// NumShades is the number of shade levels a pixel can take.
const NumShades = 2

// Valid reports whether s is one of the known shade levels.
func (s Shade) Valid() bool {
	return s < NumShades
}

func (s Shade) String() string {
	switch s {
	case Unshaded:
		return "unshaded"
	case Shaded:
		return "shaded"
	}
	return fmt.Sprintf("shade(%d)", uint8(s))
}

// Glyphs is the alphabet of characters that denote a shaded pixel in the textual image format.
type Glyphs []rune

// DefaultGlyphs are the shading characters of the standard digit datasets.
var DefaultGlyphs = Glyphs{'#', '+'}

// Shade maps a character to a shade.
func (g Glyphs) Shade(r rune) Shade {
	for _, glyph := range g {
		if glyph == r {
			return Shaded
		}
	}
	return Unshaded
}
