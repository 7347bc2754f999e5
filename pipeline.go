// Package bayes provides a framework for constructing reproducible naive Bayes image classification experiments.
package bayes

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hscells/bayes/config"
	"github.com/hscells/bayes/dataset"
	"github.com/hscells/bayes/eval"
	"github.com/hscells/bayes/learning"
	"github.com/hscells/bayes/output"
	"github.com/hscells/bayes/store"
	"github.com/hscells/headway"
	"github.com/pkg/errors"
)

// Pipeline contains all the information for training, storing and evaluating a model.
type Pipeline struct {
	Config               config.Config
	TrainingPath         string
	TestPath             string
	ModelInputPath       string
	ModelOutputPath      string
	ModelStore           store.ModelStorer
	Evaluations          []eval.Evaluator
	EvaluationFormatters []output.EvaluationFormatter
	Progress             bool
}

type trainingData string
type testData string
type modelInput string
type modelOutput string

// TrainingData configures the dataset a model is trained on.
func TrainingData(path string) func() interface{} {
	return func() interface{} {
		return trainingData(path)
	}
}

// TestData configures the dataset a model is evaluated on.
func TestData(path string) func() interface{} {
	return func() interface{} {
		return testData(path)
	}
}

// ModelInput configures a previously trained model to load instead of training one.
func ModelInput(path string) func() interface{} {
	return func() interface{} {
		return modelInput(path)
	}
}

// ModelOutput configures the file the trained model is written to.
func ModelOutput(path string) func() interface{} {
	return func() interface{} {
		return modelOutput(path)
	}
}

// ModelStorage configures a store that trained models are put into.
func ModelStorage(s store.ModelStorer) func() interface{} {
	return func() interface{} {
		return s
	}
}

// Evaluation adds evaluation measures to the pipeline.
func Evaluation(measures ...eval.Evaluator) func() interface{} {
	return func() interface{} {
		return measures
	}
}

// EvaluationOutput adds evaluation formatters to the pipeline.
func EvaluationOutput(formatters ...output.EvaluationFormatter) func() interface{} {
	return func() interface{} {
		return formatters
	}
}

// Progress displays progress bars while training and evaluating.
func Progress(show bool) func() interface{} {
	return func() interface{} {
		return show
	}
}

// NewPipeline creates a new pipeline. Components are provided via the optional functional arguments.
func NewPipeline(c config.Config, components ...func() interface{}) Pipeline {
	p := Pipeline{
		Config: c,
	}

	for _, component := range components {
		val := component()
		switch v := val.(type) {
		case trainingData:
			p.TrainingPath = string(v)
		case testData:
			p.TestPath = string(v)
		case modelInput:
			p.ModelInputPath = string(v)
		case modelOutput:
			p.ModelOutputPath = string(v)
		case store.ModelStorer:
			p.ModelStore = v
		case []eval.Evaluator:
			p.Evaluations = v
		case []output.EvaluationFormatter:
			p.EvaluationFormatters = v
		case bool:
			p.Progress = v
		}
	}

	return p
}

// Execute runs the pipeline, sending results on c as they become available. The channel is closed once the pipeline
// has finished, either after a Done result or after the first Error result.
func (p Pipeline) Execute(c chan PipelineResult) {
	defer close(c)
	log.Println("starting bayes pipeline...")

	var hw *headway.Client
	if len(p.Config.HeadwayServer) > 0 {
		hw = headway.NewClient(p.Config.HeadwayServer, fmt.Sprintf("bayes pipeline [#%d]", time.Now().Unix()))
	}
	notify := func(step float64, msg string) {
		if hw != nil {
			_ = hw.Send(step, 3, msg)
		}
	}
	fail := func(err error) {
		notify(3, err.Error())
		c <- PipelineResult{
			Error: err,
			Type:  Error,
		}
	}

	m, err := p.model()
	if err != nil {
		fail(err)
		return
	}
	c <- PipelineResult{
		Model: m,
		Type:  Trained,
	}
	notify(1, fmt.Sprintf("[model] %d labels", len(m.Labels())))

	if len(p.ModelOutputPath) > 0 {
		log.Printf("writing model to %s...\n", p.ModelOutputPath)
		if err := writeModel(m, p.ModelOutputPath); err != nil {
			fail(err)
			return
		}
	}

	if p.ModelStore != nil {
		id, err := p.ModelStore.Put(m)
		if err != nil {
			fail(err)
			return
		}
		log.Printf("stored model as %s\n", id)
		c <- PipelineResult{
			Model:   m,
			ModelID: id,
			Type:    Stored,
		}
	}
	notify(2, "[model] saved")

	if len(p.TestPath) > 0 {
		log.Println("evaluating model...")
		test, err := dataset.Load(p.TestPath, p.Config.DatasetOptions())
		if err != nil {
			fail(err)
			return
		}
		if test.GridSize() != m.GridSize() {
			fail(errors.Wrapf(learning.ErrGridSize, "test data has grid size %d, model expects %d", test.GridSize(), m.GridSize()))
			return
		}
		predictions, err := eval.Predict(m, test, p.Progress)
		if err != nil {
			fail(err)
			return
		}

		evaluators := p.Evaluations
		if len(evaluators) == 0 {
			evaluators = eval.All
		}
		scores := eval.Evaluate(evaluators, predictions)

		outputs := make([]string, len(p.EvaluationFormatters))
		for i, formatter := range p.EvaluationFormatters {
			outputs[i], err = formatter(scores)
			if err != nil {
				fail(err)
				return
			}
		}
		c <- PipelineResult{
			Model:       m,
			Evaluations: outputs,
			Scores:      scores,
			Confusion:   eval.NewConfusionMatrix(predictions),
			Type:        Evaluation,
		}
	}
	notify(3, "[pipeline] done!")

	log.Println("bayes pipeline complete")
	c <- PipelineResult{
		Type: Done,
	}
}

// model trains a model from the training data, or loads a previously trained one.
func (p Pipeline) model() (*learning.NaiveBayes, error) {
	switch {
	case len(p.TrainingPath) > 0:
		log.Printf("loading training data from %s...\n", p.TrainingPath)
		d, err := dataset.Load(p.TrainingPath, p.Config.DatasetOptions())
		if err != nil {
			return nil, err
		}
		log.Printf("training on %d images with %d labels...\n", d.Len(), len(d.Labels()))
		return learning.Train(d, p.Config.TrainOptions(p.Progress)...)
	case len(p.ModelInputPath) > 0:
		log.Printf("loading model from %s...\n", p.ModelInputPath)
		return ReadModel(p.ModelInputPath, p.Config.GridSize)
	}
	return nil, errors.New("pipeline needs either training data or a model to load")
}

// ReadModel loads a model for grids of gridSize from the file at path.
func ReadModel(path string, gridSize int) (*learning.NaiveBayes, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening model %s", path)
	}
	defer f.Close()
	m := learning.NewNaiveBayes(gridSize)
	if _, err := m.ReadFrom(f); err != nil {
		return nil, errors.Wrapf(err, "reading model %s", path)
	}
	return m, nil
}

func writeModel(m *learning.NaiveBayes, path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "creating model %s", path)
	}
	if err := m.Output(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing model %s", path)
	}
	return f.Close()
}
