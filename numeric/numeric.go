// Package numeric provides the floating-point comparisons the
// intersection code is built on.
//
// Cross products of nearly-collinear points, and the coordinates of
// crossing points computed on long segments, rarely land exactly on the
// values exact arithmetic would predict. Every tolerance decision in this
// module reduces to the comparisons here, with the caller supplying the
// epsilon: the pairwise intersector's cross-product-is-zero tests, the
// epsilon variant of the lexicographic point comparator, and the closed
// bounding-box check in Segment.ContainsPoint.
package numeric

import "math"

// FloatEquals reports whether a and b differ by at most epsilon. An
// epsilon of zero degenerates to exact comparison. This is the single
// definition of "equal within tolerance" in the module; callers never
// restate the threshold themselves.
func FloatEquals(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

// FloatGreaterThanOrEqualTo reports whether a is greater than b or within
// epsilon of it. Used for the closed lower bounds of a segment's bounding
// box, where a point epsilon below the minimum still counts as contained.
func FloatGreaterThanOrEqualTo(a, b, epsilon float64) bool {
	return a > b || FloatEquals(a, b, epsilon)
}

// FloatLessThanOrEqualTo reports whether a is less than b or within
// epsilon of it, the upper-bound counterpart of
// [FloatGreaterThanOrEqualTo].
func FloatLessThanOrEqualTo(a, b, epsilon float64) bool {
	return a < b || FloatEquals(a, b, epsilon)
}
