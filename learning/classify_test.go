package learning_test

import (
	"math"
	"testing"

	"github.com/hscells/bayes/learning"
	"github.com/hscells/bayes/pixel"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestClassifyTrainingExamples(t *testing.T) {
	d := load(t, "../testdata/size_three_no_repeats.txt", 3)
	m := train(t, d)

	for _, img := range d.Images() {
		label, err := m.Classify(img.Grid)
		require.NoError(t, err)
		assert.Equal(t, img.Label, label)
	}
}

func TestClassifyWellSeparated(t *testing.T) {
	d := read(t, `1
#####
.....
.....
.....
.....
2
#....
#....
#....
#....
#....
1
#####
#####
.....
.....
.....
2
##...
##...
#....
#....
#....
1
.....
#####
.....
.....
.....
2
.#...
.#...
.#...
.#...
.#...
`, 5)
	m := train(t, d)

	for _, img := range d.Images() {
		label, err := m.Classify(img.Grid)
		require.NoError(t, err)
		assert.Equal(t, img.Label, label)
	}
}

func TestScore(t *testing.T) {
	m := train(t, read(t, "3\n#\n", 1))

	shaded := pixel.NewGrid(1)
	shaded.Set(0, 0, pixel.Shaded)
	score, err := m.Score(shaded, 3)
	require.NoError(t, err)
	// log(1) + log(1)
	assert.InDelta(t, 0.0, score, epsilon)

	score, err = m.Score(pixel.NewGrid(1), 3)
	require.NoError(t, err)
	// log(1) + log(0.5)
	assert.InDelta(t, math.Log(0.5), score, epsilon)
}

func TestScoreErrors(t *testing.T) {
	m := train(t, load(t, "../testdata/size_three_no_repeats.txt", 3))

	_, err := m.Score(pixel.NewGrid(3), 2)
	assert.True(t, errors.Is(err, learning.ErrUnknownLabel))

	_, err = m.Score(pixel.NewGrid(4), 0)
	assert.True(t, errors.Is(err, learning.ErrGridSize))

	_, err = m.Classify(pixel.NewGrid(2))
	assert.True(t, errors.Is(err, learning.ErrGridSize))

	bad := pixel.NewGrid(3)
	bad.Set(1, 1, pixel.Shade(5))
	_, err = m.Classify(bad)
	assert.Error(t, err)
}

func TestClassifyTiesGoToFirstLabel(t *testing.T) {
	grid := pixel.NewGrid(1)
	grid.Set(0, 0, pixel.Shaded)

	m := train(t, read(t, "5\n#\n2\n#\n", 1))
	label, err := m.Classify(grid)
	require.NoError(t, err)
	assert.Equal(t, 5, label)

	m = train(t, read(t, "2\n#\n5\n#\n", 1))
	label, err = m.Classify(grid)
	require.NoError(t, err)
	assert.Equal(t, 2, label)
}

func TestClassifySingleLabel(t *testing.T) {
	m := train(t, read(t, "8\n##\n##\n8\n#.\n.#\n", 2))

	for _, rows := range [][]string{{"..", ".."}, {"##", "##"}, {".#", "#."}} {
		g, err := pixel.ParseRows(rows, 2, pixel.DefaultGlyphs)
		require.NoError(t, err)
		label, err := m.Classify(g)
		require.NoError(t, err)
		assert.Equal(t, 8, label)
	}
}

func TestClassifyNoLabels(t *testing.T) {
	_, err := learning.NewNaiveBayes(3).Classify(pixel.NewGrid(3))
	assert.True(t, errors.Is(err, learning.ErrNoLabels))
}

func TestPosterior(t *testing.T) {
	d := load(t, "../testdata/size_three_with_repeats.txt", 3)
	m := train(t, d)

	posterior, err := m.Posterior(d.Images()[1].Grid)
	require.NoError(t, err)
	require.Len(t, posterior, 3)
	assert.InDelta(t, 1.0, floats.Sum(posterior), epsilon)
	// Label 1 is the second label.
	assert.Equal(t, 1, floats.MaxIdx(posterior))
}
