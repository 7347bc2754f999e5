// Package eval measures how well a trained model labels a held-out dataset.
package eval

import (
	"github.com/hscells/bayes/dataset"
	"github.com/hscells/bayes/learning"
	"github.com/pkg/errors"
	"gopkg.in/cheggaaa/pb.v1"
)

// Prediction pairs the true label of an image with the label a model assigned to it.
type Prediction struct {
	Actual    int
	Predicted int
}

// Correct reports whether the model labelled the image correctly.
func (p Prediction) Correct() bool {
	return p.Actual == p.Predicted
}

// Evaluator is an interface for scoring a set of predictions.
type Evaluator interface {
	Score(predictions []Prediction) float64
	Name() string
}

// Predict classifies every image of d with m.
func Predict(m learning.Model, d *dataset.Dataset, progress bool) ([]Prediction, error) {
	var bar *pb.ProgressBar
	if progress {
		bar = pb.New(d.Len())
		bar.Start()
		defer bar.Finish()
	}

	predictions := make([]Prediction, d.Len())
	for i, img := range d.Images() {
		label, err := m.Classify(img.Grid)
		if err != nil {
			return nil, errors.Wrapf(err, "classifying image %d", i)
		}
		predictions[i] = Prediction{Actual: img.Label, Predicted: label}
		if bar != nil {
			bar.Increment()
		}
	}
	return predictions, nil
}

// Evaluate scores predictions using the supplied evaluation measures.
func Evaluate(evaluators []Evaluator, predictions []Prediction) map[string]float64 {
	scores := make(map[string]float64, len(evaluators))
	for _, evaluator := range evaluators {
		scores[evaluator.Name()] = evaluator.Score(predictions)
	}
	return scores
}
