package output

import (
	"fmt"
	"strings"

	"github.com/hscells/bayes/eval"
)

// ConfusionFormatter renders a confusion matrix as a table with actual labels as rows and predicted labels as
// columns.
func ConfusionFormatter(cm eval.ConfusionMatrix) string {
	labels := cm.Labels()
	var b strings.Builder
	b.WriteString("actual\\predicted")
	for _, label := range labels {
		fmt.Fprintf(&b, "\t%d", label)
	}
	b.WriteByte('\n')
	for _, actual := range labels {
		fmt.Fprintf(&b, "%d", actual)
		for _, predicted := range labels {
			fmt.Fprintf(&b, "\t%d", cm.Count(actual, predicted))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
