// Package nbtrain trains a naive Bayes classifier from a dataset of labeled images.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/hscells/bayes"
	"github.com/hscells/bayes/cmd"
)

var (
	name    = "nbtrain"
	version = "17.Oct.2026"
)

type args struct {
	cmd.Settings
	Data     string `help:"dataset of labeled images to train on" arg:"-d,required"`
	Output   string `help:"file to write the trained model to" arg:"-o"`
	Store    bool   `help:"put the trained model into the configured store"`
	Progress bool   `help:"display a progress bar while training"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`%s
Train a naive Bayes classifier over binary-pixel images.`, name)
}

func main() {
	var args args
	arg.MustParse(&args)

	c, err := cmd.LoadConfig(args.Settings)
	if err != nil {
		cmd.Fatal(os.Stderr, err)
	}

	components := []func() interface{}{
		bayes.TrainingData(args.Data),
		bayes.Progress(args.Progress),
	}
	if len(args.Output) > 0 {
		components = append(components, bayes.ModelOutput(args.Output))
	}
	if args.Store {
		s, err := cmd.OpenStore(c)
		if err != nil {
			cmd.Fatal(os.Stderr, err)
		}
		components = append(components, bayes.ModelStorage(s))
	}

	results := make(chan bayes.PipelineResult)
	go bayes.NewPipeline(c, components...).Execute(results)

	for result := range results {
		switch result.Type {
		case bayes.Trained:
			log.Printf("trained model with labels %v\n", result.Model.Labels())
		case bayes.Stored:
			fmt.Println(result.ModelID)
		case bayes.Error:
			cmd.Fatal(os.Stderr, result.Error)
		}
	}
}
