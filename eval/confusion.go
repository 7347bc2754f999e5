package eval

import (
	"sort"

	"github.com/xtgo/set"
)

// ConfusionMatrix counts, for every actual label, how often each label was predicted.
type ConfusionMatrix struct {
	counts map[int]map[int]int
	labels []int
}

// NewConfusionMatrix tallies predictions.
func NewConfusionMatrix(predictions []Prediction) ConfusionMatrix {
	cm := ConfusionMatrix{counts: make(map[int]map[int]int)}
	labels := make(sort.IntSlice, 0, 2*len(predictions))
	for _, p := range predictions {
		if _, ok := cm.counts[p.Actual]; !ok {
			cm.counts[p.Actual] = make(map[int]int)
		}
		cm.counts[p.Actual][p.Predicted]++
		labels = append(labels, p.Actual, p.Predicted)
	}
	sort.Sort(labels)
	size := set.Uniq(labels)
	cm.labels = labels[:size]
	return cm
}

// Labels are every actual or predicted label, in ascending order.
func (cm ConfusionMatrix) Labels() []int {
	return cm.labels
}

// Count is the number of images with label actual that were predicted as predicted.
func (cm ConfusionMatrix) Count(actual, predicted int) int {
	return cm.counts[actual][predicted]
}

// Precision is the fraction of images predicted as label that actually carry it.
func (cm ConfusionMatrix) Precision(label int) float64 {
	tp, predicted := 0, 0
	for actual, row := range cm.counts {
		predicted += row[label]
		if actual == label {
			tp = row[label]
		}
	}
	if predicted == 0 {
		return 0
	}
	return float64(tp) / float64(predicted)
}

// Recall is the fraction of images carrying label that were predicted as label.
func (cm ConfusionMatrix) Recall(label int) float64 {
	row := cm.counts[label]
	total := 0
	for _, n := range row {
		total += n
	}
	if total == 0 {
		return 0
	}
	return float64(row[label]) / float64(total)
}
