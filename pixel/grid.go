package pixel

import (
	"strings"

	"github.com/pkg/errors"
)

// Grid is a square matrix of shades stored in row-major order.
type Grid struct {
	size   int
	shades []Shade
}

// NewGrid creates an unshaded grid of size x size pixels.
func NewGrid(size int) Grid {
	if size < 0 {
		size = 0
	}
	return Grid{
		size:   size,
		shades: make([]Shade, size*size),
	}
}

// Size is the number of rows (and columns) of the grid.
func (g Grid) Size() int {
	return g.size
}

// At returns the shade of the pixel at row r, column c.
func (g Grid) At(r, c int) Shade {
	return g.shades[r*g.size+c]
}

// Set changes the shade of the pixel at row r, column c.
func (g Grid) Set(r, c int, s Shade) {
	g.shades[r*g.size+c] = s
}

// Equal reports whether two grids have the same size and the same shades.
func (g Grid) Equal(o Grid) bool {
	if g.size != o.size {
		return false
	}
	for i := range g.shades {
		if g.shades[i] != o.shades[i] {
			return false
		}
	}
	return true
}

// String renders the grid using '#' for shaded pixels and ' ' otherwise.
func (g Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.At(r, c) == Shaded {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseRows builds a grid from its textual rows. Exactly size rows are required, and each row must contain at least
// size characters; characters past size are ignored.
func ParseRows(rows []string, size int, glyphs Glyphs) (Grid, error) {
	if len(rows) != size {
		return Grid{}, errors.Errorf("expected %d rows, got %d", size, len(rows))
	}
	g := NewGrid(size)
	for r, row := range rows {
		chars := []rune(row)
		if len(chars) < size {
			return Grid{}, errors.Errorf("row %d has %d characters, expected at least %d", r, len(chars), size)
		}
		for c := 0; c < size; c++ {
			g.Set(r, c, glyphs.Shade(chars[c]))
		}
	}
	return g, nil
}

// LabeledImage is a grid tagged with the class it belongs to.
type LabeledImage struct {
	Label int
	Grid
}

// NewLabeledImage creates a new labeled image.
func NewLabeledImage(label int, grid Grid) LabeledImage {
	return LabeledImage{
		Label: label,
		Grid:  grid,
	}
}
