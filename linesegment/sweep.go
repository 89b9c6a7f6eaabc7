package linesegment

import (
	"fmt"

	"github.com/mikenye/linesweep/point"
	"github.com/mikenye/linesweep/types"
)

// FindIntersections computes every point shared by two or more of the
// given segments using a Bentley-Ottmann-style sweep, running in
// O((n+k) log n) time where k is the number of intersections.
//
// The sweep engine uses only exact comparisons: it never accepts an ε,
// because epsilon matching in the schedule would merge distinct event
// points inconsistently and corrupt the sweep line. Callers who want
// tolerance-based merging should use FindIntersectionsSimpleEps instead.
//
// Results are returned sorted lexicographically by (shared.y, shared.x).
func FindIntersections(lines []Segment) ([]*MultiLinePoint, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	st := &sweepState{
		sweepSegments: make([]Segment, len(lines)),
		slope:         make([]float64, len(lines)),
		position:      make([]float64, len(lines)),
	}

	sch := newSchedule()

	for i, seg := range lines {
		if seg.Start().Eq(seg.End()) {
			return nil, fmt.Errorf("%w: segment %d has coincident start and end points", ErrInvalidArgument, i)
		}

		upper, lower := seg.Start(), seg.End()
		if CompareExact(upper, lower) > 0 {
			upper, lower = lower, upper
		}
		swept := New(upper, lower)
		st.sweepSegments[i] = swept
		st.slope[i] = swept.Slope()

		addEvent(sch, upper, i, types.Start)
		addEvent(sch, lower, i, types.End)
	}

	sweepLine := newSweepLine(st)

	var output []*MultiLinePoint

	for !sch.Empty() {
		minNode := sch.Min()
		cursor := minNode.Key()
		event := minNode.Value()
		sch.Remove(cursor)

		logDebugf("processing event at %s with %d lines", cursor, len(event.Lines))

		removeSet := make(map[int]bool)
		for i, idx := range event.Lines {
			loc := event.Locations[i]
			if loc == types.End || loc == types.Between {
				removeSet[idx] = true
			}
		}

		var outerPred, outerSucc *int
		for idx := range removeSet {
			node := sweepLine.NodeAt(idx)
			if node == nil {
				return nil, fmt.Errorf("%w: line %d expected on sweep line at %s", ErrSearchStructureCorrupted, idx, cursor)
			}
			if prev := node.Prev(); prev != nil && !removeSet[prev.Key()] {
				k := prev.Key()
				outerPred = &k
			}
			if next := node.Next(); next != nil && !removeSet[next.Key()] {
				k := next.Key()
				outerSucc = &k
			}
		}
		for idx := range removeSet {
			sweepLine.Remove(idx)
		}

		adding := false
		for _, loc := range event.Locations {
			if loc == types.Start || loc == types.Between {
				adding = true
				break
			}
		}

		if !adding {
			if outerPred != nil && outerSucc != nil {
				addCrossing(st, sch, *outerPred, *outerSucc, cursor, event)
			}
			if len(event.Lines) >= 2 && distinctSlopes(st, event) >= 2 {
				Normalize(event, lines)
				output = append(output, event)
			}
			continue
		}

		st.recomputePositions(sweepLine, cursor)

		var inserted []int
		for i, idx := range event.Lines {
			loc := event.Locations[i]
			if loc != types.Start && loc != types.Between {
				continue
			}
			st.position[idx] = cursor.X()
			sweepLine.Put(idx, struct{}{})
			inserted = append(inserted, idx)
		}

		if len(inserted) > 0 {
			insertedSet := make(map[int]bool, len(inserted))
			leftmost, rightmost := inserted[0], inserted[0]
			cmpFn := sweepLineComparator(st)
			for _, idx := range inserted {
				insertedSet[idx] = true
				if cmpFn(idx, leftmost) < 0 {
					leftmost = idx
				}
				if cmpFn(idx, rightmost) > 0 {
					rightmost = idx
				}
			}

			if leftNode := sweepLine.NodeAt(leftmost); leftNode != nil {
				if prev := leftNode.Prev(); prev != nil && !insertedSet[prev.Key()] {
					addCrossing(st, sch, prev.Key(), leftmost, cursor, event)
				}
			}
			if rightNode := sweepLine.NodeAt(rightmost); rightNode != nil {
				if next := rightNode.Next(); next != nil && !insertedSet[next.Key()] {
					addCrossing(st, sch, rightmost, next.Key(), cursor, event)
				}
			}
		}

		if len(event.Lines) >= 2 {
			Normalize(event, lines)
			output = append(output, event)
		}
	}

	if !sweepLine.Empty() {
		return nil, fmt.Errorf("%w: sweep line non-empty at termination", ErrSearchStructureCorrupted)
	}

	return output, nil
}

// distinctSlopes counts the number of distinct slopes among event's
// participating lines, using st's slope table.
func distinctSlopes(st *sweepState, event *MultiLinePoint) int {
	seen := make(map[float64]bool)
	for _, idx := range event.Lines {
		seen[st.slope[idx]] = true
	}
	return len(seen)
}

// addCrossing tests neighbours a and b for a
// new intersection, rejecting pure endpoint-endpoint meetings (already
// scheduled as Start/End events), and schedule any genuine crossing
// relative to cursor — discarding it if it falls before cursor, merging it
// into the current event if it falls exactly at cursor, or inserting a new
// schedule entry if it falls later. event is the event currently being
// processed at cursor (already removed from sch by the caller), so an
// exactly-at-cursor crossing is merged directly into it rather than
// re-inserted into the schedule.
func addCrossing(st *sweepState, sch *schedule, a, b int, cursor point.Point, event *MultiLinePoint) {
	segA, segB := st.sweepSegments[a], st.sweepSegments[b]
	result := Find(segA.Start(), segA.End(), segB.Start(), segB.End())

	if result.Shared == nil {
		return
	}
	if !result.First.Contains() || !result.Second.Contains() {
		return
	}
	firstEndpoint := result.First == types.Start || result.First == types.End
	secondEndpoint := result.Second == types.Start || result.Second == types.End
	if firstEndpoint && secondEndpoint {
		return
	}

	shared := *result.Shared

	switch c := CompareExact(shared, cursor); {
	case c < 0:
		return
	case c == 0:
		event.AddLine(a, result.First)
		event.AddLine(b, result.Second)
	default:
		node, inserted := sch.TryAdd(shared, nil)
		if inserted {
			node.SetValue(NewMultiLinePoint(shared))
		}
		node.Value().AddLine(a, result.First)
		node.Value().AddLine(b, result.Second)
	}
}
