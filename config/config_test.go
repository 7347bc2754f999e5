package config_test

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/hscells/bayes/config"
	"github.com/hscells/bayes/learning"
	"github.com/hscells/bayes/pixel"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c, err := config.Parse("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
	assert.Equal(t, 28, c.GridSize)
	assert.Equal(t, 1.0, c.Smoothing)
	assert.Equal(t, pixel.DefaultGlyphs, c.Glyphs)
}

func TestParse(t *testing.T) {
	c, err := config.Parse(`grid.size=5
smoothing=0.5
shade.glyphs=x@
raster.threshold=64
store.path=/tmp/models
store.cache.size=4
headway.server=http://localhost:7000
`)
	require.NoError(t, err)
	assert.Equal(t, 5, c.GridSize)
	assert.Equal(t, 0.5, c.Smoothing)
	assert.Equal(t, pixel.Glyphs{'x', '@'}, c.Glyphs)
	assert.Equal(t, uint8(64), c.Threshold)
	assert.Equal(t, "/tmp/models", c.StorePath)
	assert.Equal(t, 4, c.CacheSize)
	assert.Equal(t, "http://localhost:7000", c.HeadwayServer)

	opts := c.DatasetOptions()
	assert.Equal(t, 5, opts.GridSize)
	assert.Equal(t, c.Glyphs, opts.Glyphs)
	assert.Len(t, c.TrainOptions(false), 2)
}

func TestParseInvalid(t *testing.T) {
	_, err := config.Parse("grid.size=0")
	assert.Error(t, err)

	_, err = config.Parse("smoothing=0")
	assert.True(t, errors.Is(err, learning.ErrSmoothing))

	_, err = config.Parse("raster.threshold=300")
	assert.Error(t, err)
}

func TestParseUnparsable(t *testing.T) {
	for _, s := range []string{
		"grid.size=abc",
		"smoothing=x",
		"raster.threshold=x",
		"store.cache.size=four",
	} {
		_, err := config.Parse(s)
		assert.Error(t, err, s)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bayes.properties")
	require.NoError(t, ioutil.WriteFile(path, []byte("grid.size=3\n"), 0644))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.GridSize)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.properties"))
	assert.Error(t, err)
}
