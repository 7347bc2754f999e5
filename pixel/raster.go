package pixel

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// DefaultThreshold is the luminance below which a rasterised pixel is considered shaded.
const DefaultThreshold uint8 = 128

// FromImage scales src to a size x size grid. Pixels whose luminance falls below threshold (dark ink on a light
// background) become shaded.
func FromImage(src image.Image, size int, threshold uint8) Grid {
	dst := image.NewGray(image.Rect(0, 0, size, size))
	// Paint the background white so that transparent regions count as unshaded.
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	g := NewGrid(size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if dst.GrayAt(c, r).Y < threshold {
				g.Set(r, c, Shaded)
			}
		}
	}
	return g
}

// Decode reads an encoded image (png, jpeg or gif) and rasterises it into a grid.
func Decode(r io.Reader, size int, threshold uint8) (Grid, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return Grid{}, errors.Wrap(err, "decoding image")
	}
	return FromImage(src, size, threshold), nil
}
