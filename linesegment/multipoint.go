package linesegment

import (
	"fmt"
	"strings"

	"github.com/mikenye/linesweep/point"
	"github.com/mikenye/linesweep/types"
)

// MultiLinePoint records a single point shared by one or more input
// segments, together with where that point falls on each participating
// segment. After Normalize, Locations[k] reflects the original direction of
// the segment at Lines[k], not the direction the sweep engine assigned it
// internally.
type MultiLinePoint struct {
	Shared    point.Point
	Lines     []int
	Locations []types.LineLocation
}

// NewMultiLinePoint creates an empty MultiLinePoint at shared.
func NewMultiLinePoint(shared point.Point) *MultiLinePoint {
	return &MultiLinePoint{Shared: shared}
}

// AddLine records that segment index idx touches Shared at location loc. It
// is a no-op, returning false, if idx is already present.
func (m *MultiLinePoint) AddLine(idx int, loc types.LineLocation) bool {
	for _, existing := range m.Lines {
		if existing == idx {
			return false
		}
	}
	m.Lines = append(m.Lines, idx)
	m.Locations = append(m.Locations, loc)
	return true
}

// LocationOf returns the location recorded for segment idx, and whether it
// was found.
func (m *MultiLinePoint) LocationOf(idx int) (types.LineLocation, bool) {
	for i, existing := range m.Lines {
		if existing == idx {
			return m.Locations[i], true
		}
	}
	return types.None, false
}

// String returns a human-readable representation of m.
func (m *MultiLinePoint) String() string {
	parts := make([]string, len(m.Lines))
	for i, idx := range m.Lines {
		parts[i] = fmt.Sprintf("%d:%s", idx, m.Locations[i])
	}
	return fmt.Sprintf("%s {%s}", m.Shared, strings.Join(parts, ", "))
}

// wasFlipped reports whether seg's original direction runs from its
// lexicographically-larger endpoint to its smaller one — the direction the
// sweep engine's initialization would have had to reverse to obtain the
// "upper" (sweep-start) endpoint.
func wasFlipped(seg Segment) bool {
	return CompareExact(seg.Start(), seg.End()) > 0
}

// Normalize rewrites event's location tags so they reflect each
// participating segment's original direction rather than the sweep
// engine's internal lexicographic convention: for any segment whose
// lexicographically-larger endpoint was its original Start, Start and End
// tags are swapped.
func Normalize(event *MultiLinePoint, lines []Segment) {
	for i, idx := range event.Lines {
		if !wasFlipped(lines[idx]) {
			continue
		}
		switch event.Locations[i] {
		case types.Start:
			event.Locations[i] = types.End
		case types.End:
			event.Locations[i] = types.Start
		}
	}
}
