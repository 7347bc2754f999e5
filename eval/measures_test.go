package eval_test

import (
	"testing"

	"github.com/hscells/bayes/dataset"
	"github.com/hscells/bayes/eval"
	"github.com/hscells/bayes/learning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var predictions = []eval.Prediction{
	{Actual: 0, Predicted: 0},
	{Actual: 0, Predicted: 0},
	{Actual: 0, Predicted: 1},
	{Actual: 1, Predicted: 1},
	{Actual: 1, Predicted: 0},
	{Actual: 2, Predicted: 2},
}

func TestAccuracy(t *testing.T) {
	assert.InDelta(t, 4.0/6.0, eval.Accuracy.Score(predictions), 1e-9)
	assert.Equal(t, 4.0, eval.NumCorrect.Score(predictions))
	assert.Equal(t, 6.0, eval.NumPredictions.Score(predictions))
	assert.Equal(t, 0.0, eval.Accuracy.Score(nil))
}

func TestConfusionMatrix(t *testing.T) {
	cm := eval.NewConfusionMatrix(predictions)

	assert.Equal(t, []int{0, 1, 2}, cm.Labels())
	assert.Equal(t, 2, cm.Count(0, 0))
	assert.Equal(t, 1, cm.Count(0, 1))
	assert.Equal(t, 1, cm.Count(1, 0))
	assert.Equal(t, 0, cm.Count(2, 0))

	assert.InDelta(t, 2.0/3.0, cm.Precision(0), 1e-9)
	assert.InDelta(t, 2.0/3.0, cm.Recall(0), 1e-9)
	assert.InDelta(t, 0.5, cm.Precision(1), 1e-9)
	assert.InDelta(t, 0.5, cm.Recall(1), 1e-9)
	assert.InDelta(t, 1.0, cm.Precision(2), 1e-9)
	assert.Equal(t, 0.0, cm.Recall(7))
}

func TestMacroMeasures(t *testing.T) {
	want := (2.0/3.0 + 0.5 + 1.0) / 3.0
	assert.InDelta(t, want, eval.MacroPrecision.Score(predictions), 1e-9)
	assert.InDelta(t, want, eval.MacroRecall.Score(predictions), 1e-9)
	// Precision equals recall for every label, so F1 does too.
	assert.InDelta(t, want, eval.MacroF1.Score(predictions), 1e-9)
	assert.Equal(t, 0.0, eval.MacroF1.Score(nil))
}

func TestEvaluate(t *testing.T) {
	scores := eval.Evaluate([]eval.Evaluator{eval.Accuracy, eval.NumPredictions}, predictions)
	assert.Len(t, scores, 2)
	assert.Equal(t, 6.0, scores["NumPredictions"])
}

func TestPredict(t *testing.T) {
	d, err := dataset.Load("../testdata/size_three_no_repeats.txt", dataset.DefaultOptions(3))
	require.NoError(t, err)
	m, err := learning.Train(d)
	require.NoError(t, err)

	p, err := eval.Predict(m, d, false)
	require.NoError(t, err)
	require.Len(t, p, 3)
	assert.Equal(t, 1.0, eval.Accuracy.Score(p))

	_, err = eval.Predict(learning.NewNaiveBayes(3), d, false)
	assert.Error(t, err)
}
