package linesegment

import (
	"github.com/mikenye/linesweep/orderedmap"
	"github.com/mikenye/linesweep/point"
	"github.com/mikenye/linesweep/types"
)

// schedule is the sweep engine's queue of future event points, ordered by
// the exact lexicographic comparator. It is an
// orderedmap.Tree keyed on the raw point value: no epsilon is ever applied
// here, so that distinct points are always treated as distinct, even when
// very close together.
type schedule = orderedmap.Tree[point.Point, *MultiLinePoint]

func newSchedule() *schedule {
	return orderedmap.New[point.Point, *MultiLinePoint](CompareExact)
}

// addEvent records that segment idx touches p with the given internal
// event location (Start, End, or Between), creating the event if this is
// the first line to touch p.
func addEvent(s *schedule, p point.Point, idx int, loc types.LineLocation) {
	node, inserted := s.TryAdd(p, nil)
	if inserted {
		node.SetValue(NewMultiLinePoint(p))
	}
	node.Value().AddLine(idx, loc)
}
