// Package config loads the settings shared by the command-line tools and pipeline from a properties file:
//
//	grid.size=28
//	smoothing=1.0
//	shade.glyphs=#+
//	raster.threshold=128
//	store.path=/var/cache/bayes
//	store.cache.size=16
//	headway.server=
//
// Keys that are absent take their default values.
package config

import (
	"strconv"
	"strings"

	"github.com/hscells/bayes/dataset"
	"github.com/hscells/bayes/learning"
	"github.com/hscells/bayes/pixel"
	"github.com/magiconair/properties"
	"github.com/pkg/errors"
)

// Config contains the parameters for parsing, training and storing models.
type Config struct {
	GridSize      int
	Smoothing     float64
	Glyphs        pixel.Glyphs
	Threshold     uint8
	StorePath     string
	CacheSize     int
	HeadwayServer string
}

// Default is the configuration for 28x28 digit images.
func Default() Config {
	return Config{
		GridSize:  28,
		Smoothing: learning.DefaultSmoothing,
		Glyphs:    pixel.DefaultGlyphs,
		Threshold: pixel.DefaultThreshold,
		CacheSize: 16,
	}
}

// Load reads a configuration from a properties file.
func Load(path string) (Config, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return Config{}, errors.Wrapf(err, "loading configuration %s", path)
	}
	return fromProperties(p)
}

// Parse reads a configuration from the contents of a properties file.
func Parse(s string) (Config, error) {
	p, err := properties.LoadString(s)
	if err != nil {
		return Config{}, errors.Wrap(err, "parsing configuration")
	}
	return fromProperties(p)
}

func fromProperties(p *properties.Properties) (Config, error) {
	c := Default()
	var err error
	if c.GridSize, err = getInt(p, "grid.size", c.GridSize); err != nil {
		return Config{}, err
	}
	if c.Smoothing, err = getFloat64(p, "smoothing", c.Smoothing); err != nil {
		return Config{}, err
	}
	if glyphs := p.GetString("shade.glyphs", ""); len(glyphs) > 0 {
		c.Glyphs = pixel.Glyphs(glyphs)
	}
	threshold, err := getInt(p, "raster.threshold", int(c.Threshold))
	if err != nil {
		return Config{}, err
	}
	c.StorePath = p.GetString("store.path", c.StorePath)
	if c.CacheSize, err = getInt(p, "store.cache.size", c.CacheSize); err != nil {
		return Config{}, err
	}
	c.HeadwayServer = p.GetString("headway.server", c.HeadwayServer)

	if c.GridSize <= 0 {
		return Config{}, errors.Errorf("grid.size must be positive, got %d", c.GridSize)
	}
	if !(c.Smoothing > 0) {
		return Config{}, errors.Wrapf(learning.ErrSmoothing, "got %v", c.Smoothing)
	}
	if threshold < 0 || threshold > 255 {
		return Config{}, errors.Errorf("raster.threshold must be in [0, 255], got %d", threshold)
	}
	c.Threshold = uint8(threshold)
	return c, nil
}

// getInt is like Properties.GetInt, but a value that is present and not an integer is an error.
func getInt(p *properties.Properties, key string, def int) (int, error) {
	v, ok := p.Get(key)
	if !ok {
		return def, nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, errors.Wrapf(err, "%s=%q", key, v)
	}
	return i, nil
}

func getFloat64(p *properties.Properties, key string, def float64) (float64, error) {
	v, ok := p.Get(key)
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "%s=%q", key, v)
	}
	return f, nil
}

// DatasetOptions are the options for parsing datasets with this configuration.
func (c Config) DatasetOptions() dataset.Options {
	return dataset.Options{
		GridSize: c.GridSize,
		Glyphs:   c.Glyphs,
	}
}

// TrainOptions are the options for training models with this configuration.
func (c Config) TrainOptions(progress bool) []learning.Option {
	return []learning.Option{
		learning.Smoothing(c.Smoothing),
		learning.Progress(progress),
	}
}
