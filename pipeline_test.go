package bayes_test

import (
	"path/filepath"
	"testing"

	"github.com/hscells/bayes"
	"github.com/hscells/bayes/config"
	"github.com/hscells/bayes/dataset"
	"github.com/hscells/bayes/eval"
	"github.com/hscells/bayes/output"
	"github.com/hscells/bayes/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridThree() config.Config {
	c := config.Default()
	c.GridSize = 3
	return c
}

// collect drains a pipeline and groups its results by type.
func collect(p bayes.Pipeline) map[bayes.ResultType][]bayes.PipelineResult {
	c := make(chan bayes.PipelineResult)
	go p.Execute(c)

	results := make(map[bayes.ResultType][]bayes.PipelineResult)
	for result := range c {
		results[result.Type] = append(results[result.Type], result)
	}
	return results
}

func TestPipeline(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "model.txt")
	s := store.NewMapModelStore()

	p := bayes.NewPipeline(gridThree(),
		bayes.TrainingData("testdata/size_three_with_repeats.txt"),
		bayes.TestData("testdata/size_three_no_repeats.txt"),
		bayes.ModelOutput(modelPath),
		bayes.ModelStorage(s),
		bayes.Evaluation(eval.Accuracy, eval.MacroF1),
		bayes.EvaluationOutput(output.JsonEvaluationFormatter, output.BasicEvaluationFormatter))

	results := collect(p)
	require.Empty(t, results[bayes.Error])
	require.Len(t, results[bayes.Trained], 1)
	require.Len(t, results[bayes.Stored], 1)
	require.Len(t, results[bayes.Evaluation], 1)
	require.Len(t, results[bayes.Done], 1)

	trained := results[bayes.Trained][0].Model
	assert.Equal(t, []int{0, 1, 4}, trained.Labels())

	stored, err := s.Get(results[bayes.Stored][0].ModelID)
	require.NoError(t, err)
	assert.Equal(t, trained.Priors(), stored.Priors())

	evaluation := results[bayes.Evaluation][0]
	assert.Equal(t, 1.0, evaluation.Scores["Accuracy"])
	assert.Len(t, evaluation.Evaluations, 2)
	assert.Equal(t, "Accuracy 1\nMacroF1 1\n", evaluation.Evaluations[1])

	loaded, err := bayes.ReadModel(modelPath, 3)
	require.NoError(t, err)
	assert.Equal(t, trained.Labels(), loaded.Labels())
}

func TestPipelineModelInput(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "model.txt")
	collect(bayes.NewPipeline(gridThree(),
		bayes.TrainingData("testdata/size_three_no_repeats.txt"),
		bayes.ModelOutput(modelPath)))

	results := collect(bayes.NewPipeline(gridThree(),
		bayes.ModelInput(modelPath),
		bayes.TestData("testdata/size_three_no_repeats.txt")))
	require.Empty(t, results[bayes.Error])
	require.Len(t, results[bayes.Evaluation], 1)
	assert.Equal(t, 1.0, results[bayes.Evaluation][0].Scores["Accuracy"])
	assert.Equal(t, 3.0, results[bayes.Evaluation][0].Scores["NumPredictions"])
}

func TestPipelineErrors(t *testing.T) {
	results := collect(bayes.NewPipeline(gridThree()))
	require.Len(t, results[bayes.Error], 1)
	assert.Empty(t, results[bayes.Done])

	results = collect(bayes.NewPipeline(gridThree(), bayes.TrainingData("testdata/empty_file.txt")))
	require.Len(t, results[bayes.Error], 1)
	assert.ErrorIs(t, results[bayes.Error][0].Error, dataset.ErrEmptySource)

	results = collect(bayes.NewPipeline(gridThree(), bayes.ModelInput(filepath.Join(t.TempDir(), "missing.txt"))))
	require.Len(t, results[bayes.Error], 1)
}
