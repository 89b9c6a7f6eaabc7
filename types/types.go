// Package types defines the small, shared enumerations used across the
// linesweep library to describe how two lines relate to each other and
// where a point falls with respect to a directed segment.
//
// These types carry no behavior beyond classification: they are the
// vocabulary that the segment classifier, the pairwise intersector, and the
// sweep engine use to describe what they found.
package types

import "fmt"

// LineRelation describes the relationship between the infinite lines
// carrying two segments.
type LineRelation uint8

const (
	// Parallel indicates the two lines never meet (or are the default,
	// zero-value relation for "no intersection").
	Parallel LineRelation = iota

	// Collinear indicates the two lines are the same infinite line.
	Collinear

	// Divergent indicates the two lines cross at exactly one point.
	Divergent
)

// String returns a human-readable name for r.
//
// Panics:
//   - if r is not one of the defined constants.
func (r LineRelation) String() string {
	switch r {
	case Parallel:
		return "Parallel"
	case Collinear:
		return "Collinear"
	case Divergent:
		return "Divergent"
	default:
		panic(fmt.Errorf("unsupported LineRelation: %d", r))
	}
}

// LineLocation places a point relative to a directed segment a→b.
//
// The collinear tags (None, Before, Start, Between, End, After) are
// assigned to distinct powers of two, excluding None, so that "is this
// point actually contained in the segment" can be tested with a single
// bitmask (see [LineLocation.Contains]) rather than a switch over three
// cases. Left and Right are side tags used for non-collinear proximity
// and do not participate in the containment mask.
type LineLocation uint16

const (
	// None indicates no meaningful relationship was computed (e.g. the
	// default for a Parallel PairResult).
	None LineLocation = 0

	// Before indicates the point lies on the line a→b, before a.
	Before LineLocation = 1 << iota

	// Start indicates the point coincides with a.
	Start

	// Between indicates the point lies strictly between a and b.
	Between

	// End indicates the point coincides with b.
	End

	// After indicates the point lies on the line a→b, after b.
	After

	// Left indicates the point lies to the left of the directed segment
	// a→b (non-collinear).
	Left

	// Right indicates the point lies to the right of the directed segment
	// a→b (non-collinear).
	Right
)

// containedMask is the set of tags for which the point actually lies on
// the closed segment, as opposed to merely on its supporting line.
const containedMask = Start | Between | End

// Contains reports whether loc places the point on the closed segment
// (as opposed to on its line but outside it, or to one side of it).
func (loc LineLocation) Contains() bool {
	return loc&containedMask != 0
}

// String returns a human-readable name for loc.
//
// Panics:
//   - if loc is not one of the defined constants.
func (loc LineLocation) String() string {
	switch loc {
	case None:
		return "None"
	case Before:
		return "Before"
	case Start:
		return "Start"
	case Between:
		return "Between"
	case End:
		return "End"
	case After:
		return "After"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		panic(fmt.Errorf("unsupported LineLocation: %d", loc))
	}
}
