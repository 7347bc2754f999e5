package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-errors/errors"
	"github.com/hscells/bayes/config"
	"github.com/hscells/bayes/store"
	"github.com/peterbourgon/diskv"
)

// Settings are the command-line flags that override configuration values. Zero values leave the configuration
// untouched.
type Settings struct {
	Config    string  `help:"properties file to load settings from" arg:"-c"`
	GridSize  int     `help:"number of rows and columns of every image" arg:"-g"`
	Smoothing float64 `help:"additive smoothing constant" arg:"-s"`
	Glyphs    string  `help:"characters that denote a shaded pixel"`
}

// LoadConfig loads the configuration file (if any) and applies the flag overrides.
func LoadConfig(s Settings) (config.Config, error) {
	c := config.Default()
	if len(s.Config) > 0 {
		var err error
		c, err = config.Load(s.Config)
		if err != nil {
			return config.Config{}, err
		}
	}
	if s.GridSize > 0 {
		c.GridSize = s.GridSize
	}
	if s.Smoothing > 0 {
		c.Smoothing = s.Smoothing
	}
	if len(s.Glyphs) > 0 {
		c.Glyphs = []rune(s.Glyphs)
	}
	return c, nil
}

// OpenStore opens the on-disk model store configured in c.
func OpenStore(c config.Config) (store.ModelStore, error) {
	if len(c.StorePath) == 0 {
		return store.ModelStore{}, errors.New("no store.path configured")
	}
	return store.NewDiskvModelStore(diskv.New(store.NewDiskvOptions(c.StorePath)), c.CacheSize)
}

// Fatal prints err along with the stack trace of where Fatal was called and exits.
func Fatal(w io.Writer, err error) {
	fmt.Fprintln(w, errors.Wrap(err, 1).ErrorStack())
	os.Exit(1)
}
