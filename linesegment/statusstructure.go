package linesegment

import (
	"cmp"
	"math"

	"github.com/mikenye/linesweep/orderedmap"
	"github.com/mikenye/linesweep/point"
)

// sweepState holds the mutable position and slope tables the SweepLine
// comparator reads on every comparison. It is owned exclusively by a
// single FindIntersections invocation and never shared across calls, matching the "no
// process-wide mutable state" requirement: each comparison re-reads these
// tables rather than the ordered map caching anything.
type sweepState struct {
	// sweepSegments[i] is segment i reordered so Start() is its
	// lexicographically-smaller endpoint (the sweep's own "upper" point),
	// independent of the caller's original direction.
	sweepSegments []Segment

	// slope[i] = (end.x-start.x)/(end.y-start.y) of sweepSegments[i]; +Inf
	// for horizontal segments.
	slope []float64

	// position[i] is the x coordinate at which segment i currently
	// crosses the sweep line, maintained lazily at event boundaries.
	position []float64
}

// sweepLineType is the ordered map backing the SweepLine: line index to an
// unused placeholder value, ordered by the stateful CompareLines
// comparator.
type sweepLineType = orderedmap.Tree[int, struct{}]

func newSweepLine(st *sweepState) *sweepLineType {
	return orderedmap.New[int, struct{}](sweepLineComparator(st))
}

// sweepLineComparator orders lines by current
// position, then by slope, then by index. It is stateful by design — it
// closes over st, whose position/slope tables the caller mutates between
// comparisons.
func sweepLineComparator(st *sweepState) orderedmap.Comparator[int] {
	return func(a, b int) int {
		if a == b {
			return 0
		}
		if st.position[a] != st.position[b] {
			if st.position[a] < st.position[b] {
				return -1
			}
			return 1
		}
		if st.slope[a] != st.slope[b] {
			if st.slope[a] < st.slope[b] {
				return -1
			}
			return 1
		}
		return cmp.Compare(a, b)
	}
}

// recomputePositions updates position[i] for every line currently on the
// sweep line to its crossing x at cursor.Y(). Horizontal
// lines (slope == +Inf) are left at their previous position, the x of the
// event at which they were inserted.
func (st *sweepState) recomputePositions(sweepLine *sweepLineType, cursor point.Point) {
	for _, idx := range sweepLine.Keys() {
		if math.IsInf(st.slope[idx], 1) {
			continue
		}
		seg := st.sweepSegments[idx]
		st.position[idx] = st.slope[idx]*(cursor.Y()-seg.Start().Y()) + seg.Start().X()
	}
}
