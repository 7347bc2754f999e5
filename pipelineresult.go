package bayes

import (
	"github.com/hscells/bayes/eval"
	"github.com/hscells/bayes/learning"
)

// ResultType identifies what a PipelineResult carries.
type ResultType uint8

const (
	Trained ResultType = iota
	Stored
	Evaluation
	Error
	Done
)

// PipelineResult is the output of a pipeline.
type PipelineResult struct {
	Model       *learning.NaiveBayes
	ModelID     string
	Evaluations []string
	Confusion   eval.ConfusionMatrix
	Scores      map[string]float64
	Error       error
	Type        ResultType
}
