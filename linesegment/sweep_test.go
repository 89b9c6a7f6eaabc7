package linesegment

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikenye/linesweep/options"
	"github.com/mikenye/linesweep/types"
)

func TestFindIntersections_EmptyInput(t *testing.T) {
	out, err := FindIntersections(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFindIntersections_ZeroLengthSegmentRejected(t *testing.T) {
	_, err := FindIntersections([]Segment{seg(1, 1, 1, 1)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestFindIntersections_S1_CrossShape(t *testing.T) {
	lines := []Segment{
		seg(0, 0, 10, 0),
		seg(5, -5, 5, 5),
	}
	out, err := FindIntersections(lines)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].Shared.Eq(pt(5, 0)))
	assertSameCrossings(t, out, FindIntersectionsSimple(lines))
}

func TestFindIntersections_S2_Triangle(t *testing.T) {
	lines := []Segment{
		seg(0, 0, 4, 0),
		seg(4, 0, 2, 3),
		seg(2, 3, 0, 0),
	}
	out, err := FindIntersections(lines)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for _, mp := range out {
		for _, loc := range mp.Locations {
			assert.Contains(t, []types.LineLocation{types.Start, types.End}, loc)
		}
	}
	assertSameCrossings(t, out, FindIntersectionsSimple(lines))
}

func TestFindIntersections_S3_CollinearOverlap(t *testing.T) {
	lines := []Segment{
		seg(0, 0, 4, 4),
		seg(1, 1, 3, 3),
	}
	out, err := FindIntersections(lines)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].Shared.Eq(pt(1, 1)))
	assertSameCrossings(t, out, FindIntersectionsSimple(lines))
}

func TestFindIntersections_S4_PencilOfFive(t *testing.T) {
	lines := []Segment{
		seg(-5, 0, 5, 0),
		seg(0, -5, 0, 5),
		seg(-5, -5, 5, 5),
		seg(-5, 5, 5, -5),
		seg(-5, -2, 5, 2),
	}
	out, err := FindIntersections(lines)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].Shared.Eq(pt(0, 0)))
	assert.Len(t, out[0].Lines, 5)
	for _, loc := range out[0].Locations {
		assert.Equal(t, types.Between, loc)
	}
	assertSameCrossings(t, out, FindIntersectionsSimple(lines))
}

func TestFindIntersections_S5_ParallelNonCollinear(t *testing.T) {
	lines := []Segment{
		seg(0, 0, 10, 0),
		seg(0, 1, 10, 1),
	}
	out, err := FindIntersections(lines)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFindIntersections_S6_CollinearDisjoint(t *testing.T) {
	lines := []Segment{
		seg(0, 0, 1, 1),
		seg(2, 2, 3, 3),
	}
	out, err := FindIntersections(lines)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFindIntersections_SortOrder(t *testing.T) {
	lines := []Segment{
		seg(0, 0, 10, 10),
		seg(0, 10, 10, 0),
		seg(0, 5, 10, 5),
	}
	out, err := FindIntersections(lines)
	require.NoError(t, err)
	require.True(t, len(out) >= 2)
	for i := 1; i < len(out); i++ {
		assert.LessOrEqual(t, CompareExact(out[i-1].Shared, out[i].Shared), 0)
	}
}

// TestFindIntersections_DirectionIndependence: reversing every input
// segment's direction must not change the set of reported crossings, only
// how Normalize reports Start/End for each.
func TestFindIntersections_DirectionIndependence(t *testing.T) {
	lines := []Segment{
		seg(0, 0, 4, 0),
		seg(4, 0, 2, 3),
		seg(2, 3, 0, 0),
	}
	flipped := make([]Segment, len(lines))
	for i, s := range lines {
		flipped[i] = s.Flip()
	}

	out, err := FindIntersections(lines)
	require.NoError(t, err)
	outFlipped, err := FindIntersections(flipped)
	require.NoError(t, err)

	require.Equal(t, len(out), len(outFlipped))
	for i := range out {
		assert.True(t, out[i].Shared.Eq(outFlipped[i].Shared))
	}
}

func TestFindIntersections_ContainmentProperty(t *testing.T) {
	lines := []Segment{
		seg(0, 0, 10, 10),
		seg(0, 10, 10, 0),
		seg(0, 5, 10, 5),
		seg(3, 0, 3, 10),
	}
	out, err := FindIntersections(lines)
	require.NoError(t, err)
	for _, mp := range out {
		for i, idx := range mp.Lines {
			loc := mp.Locations[i]
			assert.True(t, loc.Contains(), "location %s at %s does not claim containment", loc, mp.Shared)
			assert.True(t, lines[idx].ContainsPoint(mp.Shared, options.WithEpsilon(1e-9)), "point %s not within tolerance of segment %d (%s)", mp.Shared, idx, lines[idx])
		}
	}
}

// TestFindIntersections_RandomCompleteness checks that, for modest
// random inputs, the sweep engine agrees with the brute-force pairwise
// enumeration.
func TestFindIntersections_RandomCompleteness(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		n := 5 + rng.Intn(20)
		lines := make([]Segment, 0, n)
		for len(lines) < n {
			x1, y1 := rng.Float64()*20-10, rng.Float64()*20-10
			x2, y2 := rng.Float64()*20-10, rng.Float64()*20-10
			s := seg(x1, y1, x2, y2)
			if s.Start().Eq(s.End()) {
				continue
			}
			lines = append(lines, s)
		}

		sweepResult, err := FindIntersections(lines)
		require.NoError(t, err)
		bruteResult := FindIntersectionsSimple(lines)

		assertSameCrossings(t, sweepResult, bruteResult)
	}
}
