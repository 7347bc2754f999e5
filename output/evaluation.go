// Package output provides different formats of output for experiments.
package output

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// EvaluationFormatter is used in a pipeline to output evaluation results.
type EvaluationFormatter func(map[string]float64) (string, error)

// JsonEvaluationFormatter outputs results in a JSON format.
func JsonEvaluationFormatter(results map[string]float64) (string, error) {
	v, err := json.MarshalIndent(results, "", "    ")
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// BasicEvaluationFormatter outputs one "name value" line per measure, sorted by name.
func BasicEvaluationFormatter(results map[string]float64) (string, error) {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(results[name], 'f', -1, 64))
		b.WriteByte('\n')
	}
	return b.String(), nil
}
