package linesegment

import (
	"fmt"

	"github.com/mikenye/linesweep/options"
	"github.com/mikenye/linesweep/orderedmap"
	"github.com/mikenye/linesweep/point"
)

// FindIntersectionsSimple finds every point shared by two or more of the
// given segments by comparing every unordered pair with [Find]. It runs
// in O(n²) time regardless of the
// number of intersections and is the brute-force fallback for callers
// who don't need the sweep engine's O((n+k) log n) performance, or who
// need tolerance-based merging via [FindIntersectionsSimpleEps].
//
// Results are returned sorted lexicographically by (shared.y, shared.x),
// matching [FindIntersections].
func FindIntersectionsSimple(lines []Segment) []*MultiLinePoint {
	return bruteForce(lines, CompareExact)
}

// FindIntersectionsSimpleEps is [FindIntersectionsSimple] with tolerance:
// crossings whose shared points lie within eps of each other, per
// [CompareEpsilon], are merged into a single MultiLinePoint. eps must be
// positive.
func FindIntersectionsSimpleEps(lines []Segment, eps float64) ([]*MultiLinePoint, error) {
	if eps <= 0 {
		return nil, fmt.Errorf("%w: epsilon must be positive, got %g", ErrInvalidArgument, eps)
	}
	cmp := func(a, b point.Point) int { return CompareEpsilon(a, b, eps) }
	return bruteForce(lines, cmp, options.WithEpsilon(eps)), nil
}

// bruteForce is the shared O(n²) engine behind FindIntersectionsSimple and
// FindIntersectionsSimpleEps: it differs only in the comparator used to
// merge nearby crossing points, and in whether Find is given a tolerance.
func bruteForce(lines []Segment, cmp orderedmap.Comparator[point.Point], opts ...options.GeometryOptionsFunc) []*MultiLinePoint {
	results := orderedmap.New[point.Point, *MultiLinePoint](cmp)

	for i := 0; i < len(lines); i++ {
		for j := i + 1; j < len(lines); j++ {
			a, b := lines[i].Start(), lines[i].End()
			c, d := lines[j].Start(), lines[j].End()

			result := Find(a, b, c, d, opts...)
			if !result.Exists() {
				continue
			}

			shared := *result.Shared
			node, inserted := results.TryAdd(shared, nil)
			if inserted {
				node.SetValue(NewMultiLinePoint(shared))
			}
			node.Value().AddLine(i, result.First)
			node.Value().AddLine(j, result.Second)
		}
	}

	keys := results.Keys()
	out := make([]*MultiLinePoint, 0, len(keys))
	for _, k := range keys {
		v, _ := results.Get(k)
		out = append(out, v)
	}
	return out
}
