package linesegment

import (
	"fmt"
	"sort"

	"github.com/mikenye/linesweep/point"
	"github.com/mikenye/linesweep/types"
)

// Split consumes a set of segments and the crossings previously computed
// over them (by [FindIntersections] or [FindIntersectionsSimple]) and
// returns the segments cut at every crossing, so pieces of segments that
// cross each other meet only at shared endpoints. A collinear overlap is
// recorded as a single crossing point, so pieces of collinearly
// overlapping segments can still overlap one another.
//
// For each segment, crossings tagging it Start or End replace its
// endpoints with the crossing's shared point; crossings tagging it Between
// are sorted by squared distance from the (possibly replaced) start and
// become interior cut points. A segment with no crossings is emitted
// unchanged.
func Split(lines []Segment, crossings []*MultiLinePoint) ([]Segment, error) {
	cutsPerSegment := make([][]cut, len(lines))

	for _, c := range crossings {
		for i, idx := range c.Lines {
			if idx < 0 || idx >= len(lines) {
				return nil, fmt.Errorf("%w: crossing references segment index %d", ErrIndexOutOfRange, idx)
			}
			loc := c.Locations[i]
			if loc == types.Start || loc == types.End || loc == types.Between {
				cutsPerSegment[idx] = append(cutsPerSegment[idx], cut{p: c.Shared, loc: loc})
			}
		}
	}

	var out []Segment
	for i, seg := range lines {
		cuts := cutsPerSegment[i]
		if len(cuts) == 0 {
			out = append(out, seg)
			continue
		}
		out = append(out, splitSegment(seg, cuts)...)
	}
	return out, nil
}

// cut is one crossing point recorded against a single segment, tagged with
// where on that segment it falls.
type cut struct {
	p   point.Point
	loc types.LineLocation
}

// splitSegment cuts a single segment at its recorded crossings, replacing
// endpoints touched by a Start/End crossing and inserting interior points
// for every Between crossing, ordered by distance from the (possibly
// replaced) start.
func splitSegment(seg Segment, cuts []cut) []Segment {
	start, end := seg.Start(), seg.End()
	var interior []point.Point

	for _, c := range cuts {
		switch c.loc {
		case types.Start:
			start = c.p
		case types.End:
			end = c.p
		case types.Between:
			interior = append(interior, c.p)
		}
	}

	sort.Slice(interior, func(i, j int) bool {
		return start.DistanceSquaredToPoint(interior[i]) < start.DistanceSquaredToPoint(interior[j])
	})

	points := make([]point.Point, 0, len(interior)+2)
	points = append(points, start)
	points = append(points, interior...)
	points = append(points, end)

	var out []Segment
	for k := 0; k+1 < len(points); k++ {
		if points[k].Eq(points[k+1]) {
			continue
		}
		out = append(out, New(points[k], points[k+1]))
	}
	return out
}
