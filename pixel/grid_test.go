package pixel_test

import (
	"testing"

	"github.com/hscells/bayes/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlyphsShade(t *testing.T) {
	assert.Equal(t, pixel.Shaded, pixel.DefaultGlyphs.Shade('#'))
	assert.Equal(t, pixel.Shaded, pixel.DefaultGlyphs.Shade('+'))
	assert.Equal(t, pixel.Unshaded, pixel.DefaultGlyphs.Shade(' '))
	assert.Equal(t, pixel.Unshaded, pixel.DefaultGlyphs.Shade('.'))
	assert.Equal(t, pixel.Shaded, pixel.Glyphs{'x'}.Shade('x'))
	assert.Equal(t, pixel.Unshaded, pixel.Glyphs{'x'}.Shade('#'))
}

func TestShadeValid(t *testing.T) {
	assert.True(t, pixel.Unshaded.Valid())
	assert.True(t, pixel.Shaded.Valid())
	assert.False(t, pixel.Shade(2).Valid())
}

func TestParseRows(t *testing.T) {
	g, err := pixel.ParseRows([]string{
		"###",
		"# +",
		"+##",
	}, 3, pixel.DefaultGlyphs)
	require.NoError(t, err)

	want := pixel.NewGrid(3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			want.Set(r, c, pixel.Shaded)
		}
	}
	want.Set(1, 1, pixel.Unshaded)
	assert.True(t, want.Equal(g))
	assert.Equal(t, "###\n# #\n###\n", g.String())
}

func TestParseRowsIgnoresTrailingCharacters(t *testing.T) {
	g, err := pixel.ParseRows([]string{"#  ####", " #    #"}, 2, pixel.DefaultGlyphs)
	require.NoError(t, err)
	assert.Equal(t, pixel.Shaded, g.At(0, 0))
	assert.Equal(t, pixel.Unshaded, g.At(0, 1))
	assert.Equal(t, pixel.Unshaded, g.At(1, 0))
	assert.Equal(t, pixel.Shaded, g.At(1, 1))
}

func TestParseRowsErrors(t *testing.T) {
	_, err := pixel.ParseRows([]string{"##", "#"}, 2, pixel.DefaultGlyphs)
	assert.Error(t, err)

	_, err = pixel.ParseRows([]string{"##"}, 2, pixel.DefaultGlyphs)
	assert.Error(t, err)
}

func TestGridEqual(t *testing.T) {
	a, b := pixel.NewGrid(2), pixel.NewGrid(2)
	assert.True(t, a.Equal(b))
	b.Set(1, 0, pixel.Shaded)
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(pixel.NewGrid(3)))
}
