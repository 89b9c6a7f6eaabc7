package linesegment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindIntersectionsSimple_Cross(t *testing.T) {
	lines := []Segment{
		seg(0, 0, 10, 0),
		seg(5, -5, 5, 5),
	}
	out := FindIntersectionsSimple(lines)
	require.Len(t, out, 1)
	assert.True(t, out[0].Shared.Eq(pt(5, 0)))
}

func TestFindIntersectionsSimple_NoIntersections(t *testing.T) {
	lines := []Segment{
		seg(0, 0, 10, 0),
		seg(0, 1, 10, 1),
	}
	assert.Empty(t, FindIntersectionsSimple(lines))
}

func TestFindIntersectionsSimpleEps_RejectsNonPositiveEpsilon(t *testing.T) {
	_, err := FindIntersectionsSimpleEps(nil, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = FindIntersectionsSimpleEps(nil, -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestFindIntersectionsSimpleEps_MergesNearbyCrossings(t *testing.T) {
	// Four segments whose six pairwise crossings all fall within a few
	// times 1e-7 of (5,0) — close enough to merge under a generous
	// epsilon into a single MultiLinePoint.
	lines := []Segment{
		seg(0, 0, 10, 0),
		seg(5, -5, 5, 5),
		seg(1e-7, -5, 10+1e-7, 5),
		seg(1e-7, 5, 10+1e-7, -5),
	}
	out, err := FindIntersectionsSimpleEps(lines, 1e-3)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Len(t, out[0].Lines, 4)
}

func TestFindIntersectionsSimple_SortOrder(t *testing.T) {
	lines := []Segment{
		seg(0, 0, 10, 10),
		seg(0, 10, 10, 0),
		seg(0, 5, 10, 5),
	}
	out := FindIntersectionsSimple(lines)
	for i := 1; i < len(out); i++ {
		assert.LessOrEqual(t, CompareExact(out[i-1].Shared, out[i].Shared), 0)
	}
}
