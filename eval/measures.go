package eval

import (
	"gonum.org/v1/gonum/stat"
)

type accuracyEvaluator struct{}
type macroPrecisionEvaluator struct{}
type macroRecallEvaluator struct{}
type macroF1Evaluator struct{}
type numCorrect struct{}
type numPredictions struct{}

var (
	// Accuracy is the fraction of correctly labelled images.
	Accuracy = accuracyEvaluator{}
	// MacroPrecision is precision averaged over every label.
	MacroPrecision = macroPrecisionEvaluator{}
	// MacroRecall is recall averaged over every label.
	MacroRecall = macroRecallEvaluator{}
	// MacroF1 is the F1 measure averaged over every label.
	MacroF1 = macroF1Evaluator{}
	// NumCorrect is the number of correctly labelled images.
	NumCorrect = numCorrect{}
	// NumPredictions is the number of labelled images.
	NumPredictions = numPredictions{}

	// All contains every evaluation measure.
	All = []Evaluator{Accuracy, MacroPrecision, MacroRecall, MacroF1, NumCorrect, NumPredictions}
)

func (accuracyEvaluator) Name() string {
	return "Accuracy"
}

func (accuracyEvaluator) Score(predictions []Prediction) float64 {
	if len(predictions) == 0 {
		return 0
	}
	return NumCorrect.Score(predictions) / float64(len(predictions))
}

func (numCorrect) Name() string {
	return "NumCorrect"
}

func (numCorrect) Score(predictions []Prediction) float64 {
	correct := 0.0
	for _, p := range predictions {
		if p.Correct() {
			correct++
		}
	}
	return correct
}

func (numPredictions) Name() string {
	return "NumPredictions"
}

func (numPredictions) Score(predictions []Prediction) float64 {
	return float64(len(predictions))
}

func (macroPrecisionEvaluator) Name() string {
	return "MacroPrecision"
}

func (macroPrecisionEvaluator) Score(predictions []Prediction) float64 {
	cm := NewConfusionMatrix(predictions)
	return macro(cm, cm.Precision)
}

func (macroRecallEvaluator) Name() string {
	return "MacroRecall"
}

func (macroRecallEvaluator) Score(predictions []Prediction) float64 {
	cm := NewConfusionMatrix(predictions)
	return macro(cm, cm.Recall)
}

func (macroF1Evaluator) Name() string {
	return "MacroF1"
}

func (macroF1Evaluator) Score(predictions []Prediction) float64 {
	cm := NewConfusionMatrix(predictions)
	return macro(cm, func(label int) float64 {
		p, r := cm.Precision(label), cm.Recall(label)
		if p+r == 0 {
			return 0
		}
		return 2 * p * r / (p + r)
	})
}

// macro averages a per-label measure over every label of the confusion matrix.
func macro(cm ConfusionMatrix, measure func(label int) float64) float64 {
	labels := cm.Labels()
	if len(labels) == 0 {
		return 0
	}
	scores := make([]float64, len(labels))
	for i, label := range labels {
		scores[i] = measure(label)
	}
	return stat.Mean(scores, nil)
}
