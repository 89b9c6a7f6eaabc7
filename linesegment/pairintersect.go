package linesegment

import (
	"fmt"
	"math"

	"github.com/mikenye/linesweep/numeric"
	"github.com/mikenye/linesweep/options"
	"github.com/mikenye/linesweep/point"
	"github.com/mikenye/linesweep/types"
)

// maxEpsilonDoublings bounds the recursive ε-widening in Find: a
// contradiction between the cross-product straddle test and the parametric
// in-range test is resolved by doubling ε and retrying, but the doubling
// must terminate. Past this many doublings Find gives up and reports
// Parallel rather than loop forever.
const maxEpsilonDoublings = 50

// PairResult is the outcome of intersecting two line segments ab and cd:
// how their supporting lines relate, the point they share (if any), and
// where that point falls on each segment.
type PairResult struct {
	// Shared is the point where the two supporting lines meet (Divergent),
	// or the endpoint of cd contained in ab (Collinear), or nil if there
	// is none. For a Divergent result it may lie outside one or both
	// segments; Exists reports whether it lies on both.
	Shared *point.Point

	// First is where Shared falls relative to the directed segment ab.
	First types.LineLocation

	// Second is where Shared falls relative to the directed segment cd.
	Second types.LineLocation

	// Relation is how the two infinite lines carrying ab and cd relate.
	Relation types.LineRelation
}

// Exists reports whether the two segments actually meet: Shared is present
// and lies on the closed domain of both segments.
func (r PairResult) Exists() bool {
	return r.Shared != nil && r.First.Contains() && r.Second.Contains()
}

// Hash returns a hash of r. The shared point's coordinates contribute
// their IEEE-754 bit patterns, folded together with the location and
// relation tags via XOR, so that bitwise-equal results always hash
// equally — including negative zero and other values where numeric
// equality and bit equality disagree.
func (r PairResult) Hash() uint64 {
	h := uint64(r.Relation) ^ uint64(r.First)<<8 ^ uint64(r.Second)<<24
	if r.Shared != nil {
		h ^= math.Float64bits(r.Shared.X()) ^ math.Float64bits(r.Shared.Y())
	}
	return h
}

// String returns a human-readable representation of r.
func (r PairResult) String() string {
	if r.Shared == nil {
		return fmt.Sprintf("{relation=%s, shared=none}", r.Relation)
	}
	return fmt.Sprintf("{relation=%s, shared=%s, first=%s, second=%s}", r.Relation, r.Shared, r.First, r.Second)
}

// Find computes the relationship between segment ab (a to b) and segment cd
// (c to d), combining Cormen's Segments-Intersect cross-product test with
// O'Rourke's parametric test for robustness. An optional ε may be supplied
// via [options.WithEpsilon]; the effective tolerance used for
// cross-product-near-zero tests is never below 1e-10, even at the default
// (exact) entry point, since near-collinear cases are common and
// bitwise-exact cross products are rarely exactly zero in practice.
func Find(a, b, c, d point.Point, opts ...options.GeometryOptionsFunc) PairResult {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)
	userEpsilon := geoOpts.Epsilon

	epsEff := userEpsilon
	if epsEff < 1e-10 {
		epsEff = 1e-10
	}

	for i := 0; i < maxEpsilonDoublings; i++ {
		result, consistent := findAt(a, b, c, d, epsEff, userEpsilon)
		if consistent {
			logDebugf("Find: resolved at epsEff=%g after %d doublings", epsEff, i)
			return result
		}
		epsEff *= 2
	}

	logDebugf("Find: gave up after %d doublings, reporting Parallel", maxEpsilonDoublings)
	return PairResult{Relation: types.Parallel}
}

// findAt attempts to classify ab vs cd at a single value of epsEff. The
// second return value is false only when the cross-product straddle test
// and the parametric in-range test contradict each other, signalling the
// caller should widen epsEff and retry.
func findAt(a, b, c, d point.Point, epsEff, userEpsilon float64) (PairResult, bool) {
	d1 := point.Cross(c, a, d)
	d2 := point.Cross(c, b, d)
	d3 := point.Cross(a, c, b)
	d4 := point.Cross(a, d, b)

	z1 := numeric.FloatEquals(d1, 0, epsEff)
	z2 := numeric.FloatEquals(d2, 0, epsEff)
	z3 := numeric.FloatEquals(d3, 0, epsEff)
	z4 := numeric.FloatEquals(d4, 0, epsEff)

	if z1 && z2 && z3 && z4 {
		return collinearResult(a, b, c, d, options.WithEpsilon(epsEff)), true
	}

	switch {
	case z1:
		shared := a
		return PairResult{Shared: &shared, First: types.Start, Second: LocateCollinear(c, d, a), Relation: types.Divergent}, true
	case z2:
		shared := b
		return PairResult{Shared: &shared, First: types.End, Second: LocateCollinear(c, d, b), Relation: types.Divergent}, true
	case z3:
		shared := c
		return PairResult{Shared: &shared, First: LocateCollinear(a, b, c), Second: types.Start, Relation: types.Divergent}, true
	case z4:
		shared := d
		return PairResult{Shared: &shared, First: LocateCollinear(a, b, d), Second: types.End, Relation: types.Divergent}, true
	}

	den := (d.X()-c.X())*(b.Y()-a.Y()) - (b.X()-a.X())*(d.Y()-c.Y())
	if numeric.FloatEquals(den, 0, epsEff) {
		return PairResult{Relation: types.Parallel}, true
	}

	s := ((d.X()-c.X())*(c.Y()-a.Y()) - (c.X()-a.X())*(d.Y()-c.Y())) / den
	t := ((b.X()-a.X())*(c.Y()-a.Y()) - (c.X()-a.X())*(b.Y()-a.Y())) / den

	straddleAB := sign(d1) != sign(d2)
	sBetween := s > 0 && s < 1
	if straddleAB != sBetween {
		return PairResult{}, false
	}

	straddleCD := sign(d3) != sign(d4)
	tBetween := t > 0 && t < 1
	if straddleCD != tBetween {
		return PairResult{}, false
	}

	var first, second types.LineLocation
	switch {
	case sBetween:
		first = types.Between
	case s <= 0:
		first = types.Before
	default:
		first = types.After
	}
	switch {
	case tBetween:
		second = types.Between
	case t <= 0:
		second = types.Before
	default:
		second = types.After
	}

	shared := b.Scale(a, s)

	if userEpsilon > 0 {
		if shared.Eq(a, options.WithEpsilon(userEpsilon)) {
			first = types.Start
		} else if shared.Eq(b, options.WithEpsilon(userEpsilon)) {
			first = types.End
		}
		if shared.Eq(c, options.WithEpsilon(userEpsilon)) {
			second = types.Start
		} else if shared.Eq(d, options.WithEpsilon(userEpsilon)) {
			second = types.End
		}
	}

	return PairResult{Shared: &shared, First: first, Second: second, Relation: types.Divergent}, true
}

// collinearResult handles the case where ab and cd lie on the same infinite
// line: probe the lexicographically-smaller of {c, d} against ab first,
// then the other, and report the first one contained in ab. If neither is
// contained, the segments are collinear but disjoint.
func collinearResult(a, b, c, d point.Point, opts ...options.GeometryOptionsFunc) PairResult {
	type probe struct {
		p   point.Point
		loc types.LineLocation
	}
	first, second := probe{c, types.Start}, probe{d, types.End}
	if CompareExact(d, c) < 0 {
		first, second = second, first
	}

	if loc := LocateCollinear(a, b, first.p, opts...); loc.Contains() {
		shared := first.p
		return PairResult{Shared: &shared, First: loc, Second: first.loc, Relation: types.Collinear}
	}
	if loc := LocateCollinear(a, b, second.p, opts...); loc.Contains() {
		shared := second.p
		return PairResult{Shared: &shared, First: loc, Second: second.loc, Relation: types.Collinear}
	}
	return PairResult{Relation: types.Collinear}
}

func sign(v float64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
