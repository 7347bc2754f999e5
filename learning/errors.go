package learning

import "github.com/pkg/errors"

var (
	// ErrNoLabels is returned when classifying with a model that knows no labels.
	ErrNoLabels = errors.New("model has no labels")
	// ErrUnknownLabel is returned when a label is not known to the model.
	ErrUnknownLabel = errors.New("unknown label")
	// ErrGridSize is returned when a grid does not match the grid size of the model.
	ErrGridSize = errors.New("grid size mismatch")
	// ErrTruncatedModel is returned when a persisted model ends before all values are read.
	ErrTruncatedModel = errors.New("truncated model")
	// ErrMalformedModel is returned when a persisted model contains a value that cannot be used.
	ErrMalformedModel = errors.New("malformed model")
	// ErrSmoothing is returned for a smoothing constant that would allow zero probabilities.
	ErrSmoothing = errors.New("smoothing constant must be positive")
)
