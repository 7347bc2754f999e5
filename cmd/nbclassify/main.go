// Package nbclassify labels images with a trained naive Bayes classifier.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/hscells/bayes"
	"github.com/hscells/bayes/cmd"
	"github.com/hscells/bayes/config"
	"github.com/hscells/bayes/dataset"
	"github.com/hscells/bayes/learning"
	"github.com/hscells/bayes/pixel"
	"github.com/pkg/errors"
)

type args struct {
	cmd.Settings
	Model     string   `help:"trained model file" arg:"-m"`
	ModelID   string   `help:"id of a model in the configured store"`
	Posterior bool     `help:"print the posterior probability of every label"`
	Inputs    []string `arg:"positional,required" help:"dataset files or image files (png, jpeg, gif) to classify"`
}

func (args) Version() string {
	return "nbclassify 17.Oct.2026"
}

func (args) Description() string {
	return `Classify images with a trained naive Bayes model. Dataset files print one label per record; image files
are scaled to the grid size of the model and print a single label.`
}

func main() {
	var args args
	arg.MustParse(&args)

	c, err := cmd.LoadConfig(args.Settings)
	if err != nil {
		cmd.Fatal(os.Stderr, err)
	}

	m, err := loadModel(args, c)
	if err != nil {
		cmd.Fatal(os.Stderr, err)
	}

	for _, input := range args.Inputs {
		grids, err := readGrids(input, m.GridSize(), c)
		if err != nil {
			cmd.Fatal(os.Stderr, err)
		}

		for i, g := range grids {
			label, err := m.Classify(g)
			if err != nil {
				cmd.Fatal(os.Stderr, err)
			}
			if !args.Posterior {
				fmt.Printf("%s\t%d\t%d\n", input, i, label)
				continue
			}
			posterior, err := m.Posterior(g)
			if err != nil {
				cmd.Fatal(os.Stderr, err)
			}
			probs := make([]string, len(posterior))
			for j, l := range m.Labels() {
				probs[j] = fmt.Sprintf("%d:%.4f", l, posterior[j])
			}
			fmt.Printf("%s\t%d\t%d\t%s\n", input, i, label, strings.Join(probs, " "))
		}
	}
}

func loadModel(args args, c config.Config) (*learning.NaiveBayes, error) {
	switch {
	case len(args.Model) > 0:
		return bayes.ReadModel(args.Model, c.GridSize)
	case len(args.ModelID) > 0:
		s, err := cmd.OpenStore(c)
		if err != nil {
			return nil, err
		}
		return s.Get(args.ModelID)
	}
	return nil, errors.New("one of --model or --modelid is required")
}

// readGrids decodes an image file into a single grid, or reads every image of a dataset file.
func readGrids(input string, gridSize int, c config.Config) ([]pixel.Grid, error) {
	switch strings.ToLower(filepath.Ext(input)) {
	case ".png", ".jpg", ".jpeg", ".gif":
		f, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		g, err := pixel.Decode(f, gridSize, c.Threshold)
		if err != nil {
			return nil, errors.Wrap(err, input)
		}
		return []pixel.Grid{g}, nil
	}

	opts := c.DatasetOptions()
	opts.GridSize = gridSize
	d, err := dataset.Load(input, opts)
	if err != nil {
		return nil, err
	}
	grids := make([]pixel.Grid, d.Len())
	for i, img := range d.Images() {
		grids[i] = img.Grid
	}
	return grids, nil
}
