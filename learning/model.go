// Package learning contains the probabilistic model used to classify binary images. A model is either trained once
// from a dataset or loaded from its persisted textual form, and it is read-only afterwards, so a single model may be
// shared by concurrent classifications.
package learning

import (
	"io"

	"github.com/hscells/bayes/pixel"
)

// Model is an abstract representation of a trained classifier that can label grids and output itself.
type Model interface {
	// Classify must return the most likely label of the grid.
	Classify(g pixel.Grid) (int, error)
	// Output must write the learned model to a writer.
	Output(w io.Writer) error
}
