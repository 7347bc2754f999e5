package dataset

import (
	"bufio"
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/hscells/bayes/pixel"
	"github.com/pkg/errors"
)

// Read parses records from r until the end of the stream.
func Read(r io.Reader, opts Options) (*Dataset, error) {
	if opts.GridSize <= 0 {
		return nil, errors.Errorf("grid size must be positive, got %d", opts.GridSize)
	}
	if opts.Glyphs == nil {
		opts.Glyphs = pixel.DefaultGlyphs
	}

	d := New(opts.GridSize)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		label, err := strconv.Atoi(text)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedInput, "line %d: label %q is not an integer", line, text)
		}
		if label < 0 {
			return nil, errors.Wrapf(ErrMalformedInput, "line %d: label %d is negative", line, label)
		}

		rows := make([]string, 0, opts.GridSize)
		for len(rows) < opts.GridSize && scanner.Scan() {
			line++
			rows = append(rows, scanner.Text())
		}
		if len(rows) < opts.GridSize {
			if err := scanner.Err(); err != nil {
				return nil, errors.Wrap(err, "reading dataset")
			}
			return nil, errors.Wrapf(ErrMalformedInput, "image %d (label %d) has %d of %d rows", d.Len(), label, len(rows), opts.GridSize)
		}

		grid, err := pixel.ParseRows(rows, opts.GridSize, opts.Glyphs)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedInput, "image %d (label %d): %v", d.Len(), label, err)
		}
		if err := d.Add(pixel.NewLabeledImage(label, grid)); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading dataset")
	}
	return d, nil
}

// Load reads a dataset from the file at path. The file must exist and contain more than one line.
func Load(path string, opts Options) (*Dataset, error) {
	if len(path) == 0 {
		return nil, errors.Wrap(ErrEmptySource, "no file path given")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrEmptySource, "%s: %v", path, err)
	}
	defer f.Close()

	b, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(ErrEmptySource, "reading %s: %v", path, err)
	}
	if countLines(b) <= 1 {
		return nil, errors.Wrapf(ErrEmptySource, "%s has no records", path)
	}
	return Read(bytes.NewReader(b), opts)
}

func countLines(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	n := bytes.Count(b, []byte{'\n'})
	if b[len(b)-1] != '\n' {
		n++
	}
	return n
}
