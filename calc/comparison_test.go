package calc

import (
	"testing"

	"github.com/Knetic/govaluate"
	"github.com/stretchr/testify/require"
)

// Cross-check against an independent evaluator on the operator subset both
// implementations define identically (+ - * / with standard precedence and
// float division).
func TestEvaluateAgainstGovaluate(t *testing.T) {
	exprs := []string{
		"3 + 4 * 2",
		"(3 + 4) * 2",
		"10 - 2 - 3",
		"100 / 4 / 5",
		"1.5 * 4 + 2.25",
		"2 * (3 + 4) - 10 / 5",
		"(1 + 2) * (3 + 4)",
		"5 / 2 + 5 / 4",
	}

	for _, expr := range exprs {
		got, err := Evaluate(expr, 0)
		require.NoError(t, err, expr)

		ref, err := govaluate.NewEvaluableExpression(expr)
		require.NoError(t, err, expr)
		want, err := ref.Evaluate(nil)
		require.NoError(t, err, expr)

		require.InDelta(t, want.(float64), got, 1e-9, expr)
	}
}
