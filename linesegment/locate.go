package linesegment

import (
	"github.com/mikenye/linesweep/options"
	"github.com/mikenye/linesweep/point"
	"github.com/mikenye/linesweep/types"
)

// LocateCollinear classifies q, which is assumed to already lie on the
// infinite line carrying the directed segment a->b, relative to that
// segment: Start, Between, End, Before, or After. Collinearity with a->b is
// a precondition; LocateCollinear does not verify it.
func LocateCollinear(a, b, q point.Point, opts ...options.GeometryOptionsFunc) types.LineLocation {
	if q.Eq(a, opts...) {
		return types.Start
	}
	if q.Eq(b, opts...) {
		return types.End
	}

	u := b.Sub(a)
	v := q.Sub(a)

	if u.X()*v.X() < 0 || u.Y()*v.Y() < 0 {
		return types.Before
	}

	lenU := u.X()*u.X() + u.Y()*u.Y()
	lenV := v.X()*v.X() + v.Y()*v.Y()
	if lenU < lenV {
		return types.After
	}

	return types.Between
}
