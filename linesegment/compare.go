package linesegment

import (
	"github.com/mikenye/linesweep/numeric"
	"github.com/mikenye/linesweep/point"
)

// CompareExact orders two points by y then x using bitwise comparison. This
// is the comparator the sweep engine's Schedule is keyed on: no tolerance is
// permitted here, because the schedule must treat distinct points as
// distinct.
func CompareExact(a, b point.Point) int {
	if a.Y() != b.Y() {
		if a.Y() < b.Y() {
			return -1
		}
		return 1
	}
	if a.X() != b.X() {
		if a.X() < b.X() {
			return -1
		}
		return 1
	}
	return 0
}

// CompareEpsilon orders two points by y then x, treating coordinates within
// eps of each other as equal in each coordinate independently (y dominates,
// then x). Used by the brute-force intersector to merge nearby crossings;
// the sweep engine never uses it.
func CompareEpsilon(a, b point.Point, eps float64) int {
	if !numeric.FloatEquals(a.Y(), b.Y(), eps) {
		if a.Y() < b.Y() {
			return -1
		}
		return 1
	}
	if !numeric.FloatEquals(a.X(), b.X(), eps) {
		if a.X() < b.X() {
			return -1
		}
		return 1
	}
	return 0
}
