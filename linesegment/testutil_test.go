package linesegment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikenye/linesweep/point"
	"github.com/mikenye/linesweep/types"
)

// pt is a short constructor for test literals.
func pt(x, y float64) point.Point {
	return point.New(x, y)
}

// seg is a short constructor for test literals.
func seg(x1, y1, x2, y2 float64) Segment {
	return New(pt(x1, y1), pt(x2, y2))
}

// linePair is an (index, location) pair within a MultiLinePoint, used for
// order-insensitive comparison in tests.
type linePair struct {
	idx int
	loc types.LineLocation
}

func pairsOf(m *MultiLinePoint) []linePair {
	out := make([]linePair, len(m.Lines))
	for i := range m.Lines {
		out[i] = linePair{m.Lines[i], m.Locations[i]}
	}
	return out
}

// assertSameCrossings asserts that got and want describe the same set of
// crossings: same shared points in the same order (both inputs are
// expected to already be sorted lexicographically), and the same
// (line index, location) pairs within each, ignoring order.
func assertSameCrossings(t *testing.T, got, want []*MultiLinePoint) {
	t.Helper()
	if !assert.Equal(t, len(want), len(got), "result count mismatch") {
		return
	}
	for i := range want {
		assert.Truef(t, got[i].Shared.Eq(want[i].Shared), "point %d mismatch: got %s want %s", i, got[i].Shared, want[i].Shared)
		assert.ElementsMatch(t, pairsOf(want[i]), pairsOf(got[i]), "line set mismatch at point %d (%s)", i, want[i].Shared)
	}
}
