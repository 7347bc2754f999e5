// Package nbeval evaluates a naive Bayes classifier against a labeled test dataset.
package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/hscells/bayes"
	"github.com/hscells/bayes/cmd"
	"github.com/hscells/bayes/eval"
	"github.com/hscells/bayes/output"
)

type args struct {
	cmd.Settings
	Model     string `help:"trained model file to evaluate" arg:"-m"`
	Train     string `help:"dataset to train a model on before evaluating it" arg:"-t"`
	Test      string `help:"labeled dataset to evaluate against" arg:"required"`
	Confusion bool   `help:"also print the confusion matrix"`
	Progress  bool   `help:"display progress bars"`
}

func (args) Version() string {
	return "nbeval 17.Oct.2026"
}

func (args) Description() string {
	return `Evaluate a naive Bayes classifier (either a trained model file or one trained on the fly) on a test dataset.`
}

func main() {
	var args args
	arg.MustParse(&args)

	c, err := cmd.LoadConfig(args.Settings)
	if err != nil {
		cmd.Fatal(os.Stderr, err)
	}

	components := []func() interface{}{
		bayes.TestData(args.Test),
		bayes.Evaluation(eval.All...),
		bayes.EvaluationOutput(output.JsonEvaluationFormatter),
		bayes.Progress(args.Progress),
	}
	if len(args.Train) > 0 {
		components = append(components, bayes.TrainingData(args.Train))
	} else {
		components = append(components, bayes.ModelInput(args.Model))
	}

	results := make(chan bayes.PipelineResult)
	go bayes.NewPipeline(c, components...).Execute(results)

	for result := range results {
		switch result.Type {
		case bayes.Evaluation:
			for _, e := range result.Evaluations {
				fmt.Println(e)
			}
			if args.Confusion {
				fmt.Print(output.ConfusionFormatter(result.Confusion))
			}
		case bayes.Error:
			cmd.Fatal(os.Stderr, result.Error)
		}
	}
}
