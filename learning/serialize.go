package learning

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"strconv"

	"github.com/hscells/bayes/pixel"
	"github.com/pkg/errors"
)

// WriteTo writes the model as whitespace-delimited text:
//
//	<label count>
//	<label_1> <prior_1> ... <label_N> <prior_N>
//	<conditionals of cell (0, 0): shade 0 for every label, then shade 1 for every label>
//	...
//
// Cells are written one per line in row-major order. The grid size is not written; it must be supplied to
// NewNaiveBayes before reading the model back.
func (m *NaiveBayes) WriteTo(w io.Writer) (int64, error) {
	var buff bytes.Buffer
	buff.WriteString(strconv.Itoa(len(m.labels)))
	buff.WriteByte('\n')
	for i, label := range m.labels {
		if i > 0 {
			buff.WriteByte(' ')
		}
		buff.WriteString(strconv.Itoa(label))
		buff.WriteByte(' ')
		buff.WriteString(formatProbability(m.priors[i]))
	}
	buff.WriteByte('\n')

	if len(m.labels) > 0 {
		for r := 0; r < m.gridSize; r++ {
			for c := 0; c < m.gridSize; c++ {
				for s := pixel.Shade(0); s < pixel.NumShades; s++ {
					for l := range m.labels {
						if s > 0 || l > 0 {
							buff.WriteByte(' ')
						}
						buff.WriteString(formatProbability(m.conditionals[m.offset(r, c, s, l)]))
					}
				}
				buff.WriteByte('\n')
			}
		}
	}

	return buff.WriteTo(w)
}

func formatProbability(p float64) string {
	return strconv.FormatFloat(p, 'g', -1, 64)
}
// ReadFrom replaces the labels, priors and conditionals of the model with those read from r. The model is left
// unchanged if the input is truncated or malformed.
//
// Reading stops right after the last token of the model, so the returned count is the length of the model text.
// A reader that is not an io.ByteScanner is buffered and may have read past the model.
func (m *NaiveBayes) ReadFrom(r io.Reader) (int64, error) {
	if m.gridSize <= 0 {
		return 0, errors.Errorf("grid size must be positive, got %d", m.gridSize)
	}
	t := newTokenizer(r)

	n, err := t.readInt("label count")
	if err != nil {
		return t.n, err
	}
	if n < 0 {
		return t.n, errors.Wrapf(ErrMalformedModel, "negative label count %d", n)
	}
	cells := m.gridSize * m.gridSize * pixel.NumShades
	if n > 0 && cells > math.MaxInt/n {
		return t.n, errors.Wrapf(ErrMalformedModel, "label count %d is too large", n)
	}

	var (
		labels []int
		priors []float64
	)
	seen := make(map[int]bool)
	for i := 0; i < n; i++ {
		label, err := t.readInt("label")
		if err != nil {
			return t.n, err
		}
		if label < 0 {
			return t.n, errors.Wrapf(ErrMalformedModel, "negative label %d", label)
		}
		if seen[label] {
			return t.n, errors.Wrapf(ErrMalformedModel, "duplicate label %d", label)
		}
		seen[label] = true

		prior, err := t.readProbability("prior")
		if err != nil {
			return t.n, err
		}
		labels = append(labels, label)
		priors = append(priors, prior)
	}

	conditionals := make([]float64, cells*n)
	for i := range conditionals {
		conditionals[i], err = t.readProbability("conditional")
		if err != nil {
			return t.n, err
		}
	}

	m.setLabels(labels)
	m.priors = priors
	m.conditionals = conditionals
	return t.n, nil
}

// tokenizer splits a model into whitespace-delimited tokens one byte at a time, counting the bytes it consumes.
type tokenizer struct {
	r    io.ByteScanner
	n    int64
	read int
	buff []byte
}

func newTokenizer(r io.Reader) *tokenizer {
	br, ok := r.(io.ByteScanner)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &tokenizer{r: br}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r' || b == '\v' || b == '\f'
}

func (t *tokenizer) next(what string) (string, error) {
	t.buff = t.buff[:0]
	for {
		b, err := t.r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.Wrap(err, "reading model")
		}
		if isSpace(b) {
			if len(t.buff) > 0 {
				// Leave the delimiter for whatever reads r next.
				if err := t.r.UnreadByte(); err != nil {
					return "", errors.Wrap(err, "reading model")
				}
				break
			}
			t.n++
			continue
		}
		t.n++
		t.buff = append(t.buff, b)
	}
	if len(t.buff) == 0 {
		return "", errors.Wrapf(ErrTruncatedModel, "expected %s after %d values", what, t.read)
	}
	t.read++
	return string(t.buff), nil
}

func (t *tokenizer) readInt(what string) (int, error) {
	s, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedModel, "%s %q is not an integer", what, s)
	}
	return v, nil
}

func (t *tokenizer) readProbability(what string) (float64, error) {
	s, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedModel, "%s %q is not a number", what, s)
	}
	if math.IsNaN(v) || v <= 0 || v > 1 {
		return 0, errors.Wrapf(ErrMalformedModel, "%s %v is not in (0, 1]", what, v)
	}
	return v, nil
}
