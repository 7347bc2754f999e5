// Package dataset reads collections of labeled binary images. A dataset is parsed once from its textual form and is
// read-only afterwards.
//
// The textual form is a sequence of records, each consisting of a line holding the integer label followed by
// GridSize lines of pixel characters:
//
//	4
//	#  #
//	#  #
//	####
//	   #
//
// Characters in the shading alphabet (by default '#' and '+') are shaded pixels, anything else is unshaded.
package dataset

import (
	"github.com/hscells/bayes/pixel"
	"github.com/pkg/errors"
)

var (
	// ErrMalformedInput is returned when a record cannot be parsed.
	ErrMalformedInput = errors.New("malformed input")
	// ErrEmptySource is returned when there is nothing to read: the source is missing, cannot be opened, or holds
	// at most one line.
	ErrEmptySource = errors.New("empty source")
)

// Options controls how a dataset is parsed.
type Options struct {
	GridSize int
	Glyphs   pixel.Glyphs
}

// DefaultOptions uses the default shading glyphs for the given grid size.
func DefaultOptions(gridSize int) Options {
	return Options{
		GridSize: gridSize,
		Glyphs:   pixel.DefaultGlyphs,
	}
}

// Dataset is an ordered collection of labeled images that all share the same grid size.
type Dataset struct {
	gridSize int
	images   []pixel.LabeledImage
	labels   []int
	counts   map[int]int
}

// New creates an empty dataset for images of the given grid size.
func New(gridSize int) *Dataset {
	return &Dataset{
		gridSize: gridSize,
		counts:   make(map[int]int),
	}
}

// Add appends an image to the dataset, recording its label if it has not been seen before.
func (d *Dataset) Add(img pixel.LabeledImage) error {
	if img.Size() != d.gridSize {
		return errors.Wrapf(ErrMalformedInput, "image has grid size %d, dataset expects %d", img.Size(), d.gridSize)
	}
	if img.Label < 0 {
		return errors.Wrapf(ErrMalformedInput, "negative label %d", img.Label)
	}
	if _, ok := d.counts[img.Label]; !ok {
		d.labels = append(d.labels, img.Label)
	}
	d.counts[img.Label]++
	d.images = append(d.images, img)
	return nil
}

// GridSize is the number of rows and columns of every image.
func (d *Dataset) GridSize() int {
	return d.gridSize
}

// Images are the images in the order they were read.
func (d *Dataset) Images() []pixel.LabeledImage {
	return d.images
}

// Labels are the distinct labels in the order they were first seen.
func (d *Dataset) Labels() []int {
	return d.labels
}

// Len is the number of images.
func (d *Dataset) Len() int {
	return len(d.images)
}

// Count is the number of images carrying label.
func (d *Dataset) Count(label int) int {
	return d.counts[label]
}
