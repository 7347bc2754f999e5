package learning

import (
	"math"

	"github.com/hscells/bayes/pixel"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Score computes the log-likelihood of label for g:
//
//	log P(label) + Σ log P(g[r][c] | label)
//
// Summing logarithms avoids the underflow of multiplying gridSize² small probabilities.
func (m *NaiveBayes) Score(g pixel.Grid, label int) (float64, error) {
	if err := m.checkGrid(g); err != nil {
		return 0, err
	}
	l, ok := m.index[label]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownLabel, "%d", label)
	}
	return m.score(g, l), nil
}

func (m *NaiveBayes) score(g pixel.Grid, l int) float64 {
	score := math.Log(m.priors[l])
	for r := 0; r < m.gridSize; r++ {
		for c := 0; c < m.gridSize; c++ {
			score += math.Log(m.conditionals[m.offset(r, c, g.At(r, c), l)])
		}
	}
	return score
}

func (m *NaiveBayes) checkGrid(g pixel.Grid) error {
	if g.Size() != m.gridSize {
		return errors.Wrapf(ErrGridSize, "grid has size %d, model expects %d", g.Size(), m.gridSize)
	}
	for r := 0; r < m.gridSize; r++ {
		for c := 0; c < m.gridSize; c++ {
			if !g.At(r, c).Valid() {
				return errors.Errorf("invalid shade %d at (%d, %d)", g.At(r, c), r, c)
			}
		}
	}
	return nil
}

// Scores computes the score of every label, in label order.
func (m *NaiveBayes) Scores(g pixel.Grid) ([]float64, error) {
	if len(m.labels) == 0 {
		return nil, ErrNoLabels
	}
	if err := m.checkGrid(g); err != nil {
		return nil, err
	}
	scores := make([]float64, len(m.labels))
	for l := range m.labels {
		scores[l] = m.score(g, l)
	}
	return scores, nil
}

// Classify returns the label with the greatest score. Ties go to the label that comes first in the model's label
// order.
func (m *NaiveBayes) Classify(g pixel.Grid) (int, error) {
	scores, err := m.Scores(g)
	if err != nil {
		return 0, err
	}
	// MaxIdx returns the first index of the maximum.
	return m.labels[floats.MaxIdx(scores)], nil
}

// Posterior normalises the scores of every label into probabilities that sum to one, in label order.
func (m *NaiveBayes) Posterior(g pixel.Grid) ([]float64, error) {
	scores, err := m.Scores(g)
	if err != nil {
		return nil, err
	}
	z := floats.LogSumExp(scores)
	posterior := make([]float64, len(scores))
	for i, s := range scores {
		posterior[i] = math.Exp(s - z)
	}
	return posterior, nil
}
