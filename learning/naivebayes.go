package learning

import (
	"io"

	"github.com/hscells/bayes/dataset"
	"github.com/hscells/bayes/pixel"
	"github.com/pkg/errors"
	"gopkg.in/cheggaaa/pb.v1"
)

// DefaultSmoothing is the additive (Laplace) smoothing constant.
const DefaultSmoothing = 1.0

type options struct {
	smoothing float64
	progress  bool
}

// Option configures training.
type Option func(o *options)

// Smoothing sets the additive smoothing constant used for priors and conditionals.
func Smoothing(alpha float64) Option {
	return func(o *options) {
		o.smoothing = alpha
	}
}

// Progress displays a progress bar over the grid rows while training.
func Progress(show bool) Option {
	return func(o *options) {
		o.progress = show
	}
}

// NaiveBayes is a naive Bayes classifier over binary pixel grids. It stores a prior probability per label and a
// conditional probability for every pixel, shade and label.
type NaiveBayes struct {
	gridSize  int
	smoothing float64

	labels []int
	index  map[int]int
	counts []int

	priors []float64
	// conditionals is indexed by offset(r, c, s, l).
	conditionals []float64
}

// NewNaiveBayes creates an empty model for grids of the given size, ready to be loaded with ReadFrom.
func NewNaiveBayes(gridSize int) *NaiveBayes {
	return &NaiveBayes{
		gridSize:  gridSize,
		smoothing: DefaultSmoothing,
		index:     make(map[int]int),
	}
}

// Train estimates priors and conditionals from d.
func Train(d *dataset.Dataset, opts ...Option) (*NaiveBayes, error) {
	o := options{smoothing: DefaultSmoothing}
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.smoothing > 0) {
		return nil, errors.Wrapf(ErrSmoothing, "got %v", o.smoothing)
	}
	if d == nil {
		return nil, errors.New("no dataset to train on")
	}

	m := NewNaiveBayes(d.GridSize())
	m.smoothing = o.smoothing
	m.setLabels(d.Labels())
	for _, img := range d.Images() {
		if img.Size() != m.gridSize {
			return nil, errors.Wrapf(ErrGridSize, "image has grid size %d, model expects %d", img.Size(), m.gridSize)
		}
	}
	for i, label := range m.labels {
		m.counts[i] = d.Count(label)
	}

	m.estimatePriors(d.Len())
	m.estimateConditionals(d, o.progress)
	return m, nil
}

func (m *NaiveBayes) setLabels(labels []int) {
	m.labels = make([]int, len(labels))
	copy(m.labels, labels)
	m.index = make(map[int]int, len(labels))
	for i, label := range m.labels {
		m.index[label] = i
	}
	m.counts = make([]int, len(labels))
}

// estimatePriors computes (count(L) + α) / (N + |L|α) for every label.
func (m *NaiveBayes) estimatePriors(total int) {
	k := float64(len(m.labels)) * m.smoothing
	m.priors = make([]float64, len(m.labels))
	for i, count := range m.counts {
		m.priors[i] = (float64(count) + m.smoothing) / (float64(total) + k)
	}
}

// estimateConditionals computes (count(r, c, s, L) + α) / (count(L) + |L|α) for every cell, shade and label. Each
// image is visited exactly once per cell.
func (m *NaiveBayes) estimateConditionals(d *dataset.Dataset, progress bool) {
	n := len(m.labels)
	m.conditionals = make([]float64, m.gridSize*m.gridSize*pixel.NumShades*n)

	var bar *pb.ProgressBar
	if progress {
		bar = pb.New(m.gridSize)
		bar.Start()
		defer bar.Finish()
	}

	k := float64(n) * m.smoothing
	for r := 0; r < m.gridSize; r++ {
		for c := 0; c < m.gridSize; c++ {
			for _, img := range d.Images() {
				m.conditionals[m.offset(r, c, img.At(r, c), m.index[img.Label])]++
			}
			for s := pixel.Shade(0); s < pixel.NumShades; s++ {
				for l := 0; l < n; l++ {
					i := m.offset(r, c, s, l)
					m.conditionals[i] = (m.conditionals[i] + m.smoothing) / (float64(m.counts[l]) + k)
				}
			}
		}
		if bar != nil {
			bar.Increment()
		}
	}
}

func (m *NaiveBayes) offset(r, c int, s pixel.Shade, l int) int {
	return ((r*m.gridSize+c)*pixel.NumShades+int(s))*len(m.labels) + l
}

// GridSize is the size of the grids the model classifies.
func (m *NaiveBayes) GridSize() int {
	return m.gridSize
}

// Labels are the labels known to the model, in training (or load) order.
func (m *NaiveBayes) Labels() []int {
	labels := make([]int, len(m.labels))
	copy(labels, m.labels)
	return labels
}

// Count is the number of training images with label. Models loaded from disk do not know their counts.
func (m *NaiveBayes) Count(label int) int {
	if i, ok := m.index[label]; ok && i < len(m.counts) {
		return m.counts[i]
	}
	return 0
}

// Prior is the prior probability of label.
func (m *NaiveBayes) Prior(label int) (float64, bool) {
	i, ok := m.index[label]
	if !ok {
		return 0, false
	}
	return m.priors[i], true
}

// Priors maps every label to its prior probability.
func (m *NaiveBayes) Priors() map[int]float64 {
	priors := make(map[int]float64, len(m.labels))
	for i, label := range m.labels {
		priors[label] = m.priors[i]
	}
	return priors
}

// Conditional is the probability that the pixel at row r, column c has shade s given label.
func (m *NaiveBayes) Conditional(r, c int, s pixel.Shade, label int) (float64, error) {
	if r < 0 || r >= m.gridSize || c < 0 || c >= m.gridSize {
		return 0, errors.Errorf("cell (%d, %d) outside of a %dx%d grid", r, c, m.gridSize, m.gridSize)
	}
	if !s.Valid() {
		return 0, errors.Errorf("invalid shade %d", s)
	}
	l, ok := m.index[label]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownLabel, "%d", label)
	}
	return m.conditionals[m.offset(r, c, s, l)], nil
}

// Output writes the model in its textual form.
func (m *NaiveBayes) Output(w io.Writer) error {
	_, err := m.WriteTo(w)
	return err
}
