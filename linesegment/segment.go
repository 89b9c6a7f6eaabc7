// Package linesegment implements the line-intersection subsystem: a robust
// pairwise segment-segment intersection primitive, a Bentley-Ottmann-style
// sweep engine for many segments at once, and an O(n²) brute-force fallback
// with a companion segment splitter.
package linesegment

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mikenye/linesweep/numeric"
	"github.com/mikenye/linesweep/options"
	"github.com/mikenye/linesweep/point"
)

// Segment is a directed straight line between two distinct 2D points.
type Segment struct {
	start, end point.Point
}

// New creates a new Segment from start to end. A zero-length segment
// (start == end) is accepted here; only the sweep engine rejects it,
// during input validation.
func New(start, end point.Point) Segment {
	return Segment{start: start, end: end}
}

// Start returns the segment's start point.
func (s Segment) Start() point.Point {
	return s.start
}

// End returns the segment's end point.
func (s Segment) End() point.Point {
	return s.end
}

// Flip returns the segment with its endpoints reversed.
func (s Segment) Flip() Segment {
	return Segment{start: s.end, end: s.start}
}

// Center returns the midpoint of the segment.
func (s Segment) Center() point.Point {
	return point.New((s.start.X()+s.end.X())/2, (s.start.Y()+s.end.Y())/2)
}

// Slope returns dx/dy of the segment, i.e. how much x changes per unit
// increase in y. This is the orientation a sweep moving in increasing y
// actually cares about, not the conventional dy/dx slope. Horizontal
// segments (end.Y() == start.Y()) report +Inf.
func (s Segment) Slope() float64 {
	dy := s.end.Y() - s.start.Y()
	if dy == 0 {
		return math.Inf(1)
	}
	return (s.end.X() - s.start.X()) / dy
}

// XAtY returns the x coordinate at which the segment's supporting line
// crosses horizontal line y. For a horizontal segment this returns the
// x of its start point, since every point on it shares y already.
func (s Segment) XAtY(y float64) float64 {
	slope := s.Slope()
	if math.IsInf(slope, 1) {
		return s.start.X()
	}
	return s.start.X() + slope*(y-s.start.Y())
}

// ContainsPoint reports whether p lies on the closed segment s, within the
// given tolerance (default exact).
func (s Segment) ContainsPoint(p point.Point, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)
	eps := geoOpts.Epsilon

	cross := point.Cross(s.start, s.end, p)
	if !numeric.FloatEquals(cross, 0, maxCrossEpsilon(s, eps)) {
		return false
	}

	minX, maxX := math.Min(s.start.X(), s.end.X()), math.Max(s.start.X(), s.end.X())
	minY, maxY := math.Min(s.start.Y(), s.end.Y()), math.Max(s.start.Y(), s.end.Y())

	return numeric.FloatGreaterThanOrEqualTo(p.X(), minX, eps) &&
		numeric.FloatLessThanOrEqualTo(p.X(), maxX, eps) &&
		numeric.FloatGreaterThanOrEqualTo(p.Y(), minY, eps) &&
		numeric.FloatLessThanOrEqualTo(p.Y(), maxY, eps)
}

// maxCrossEpsilon scales the cross-product tolerance by the segment's
// length, since the magnitude of a collinearity cross product grows with
// the length of the vectors involved even when the angular deviation does
// not.
func maxCrossEpsilon(s Segment, eps float64) float64 {
	length := s.start.DistanceToPoint(s.end)
	if length <= 1 {
		return eps
	}
	return eps * length
}

// Eq reports whether two segments share the same start and end points,
// within the given tolerance (default exact).
func (s Segment) Eq(other Segment, opts ...options.GeometryOptionsFunc) bool {
	return s.start.Eq(other.start, opts...) && s.end.Eq(other.end, opts...)
}

// String returns a human-readable representation of s.
func (s Segment) String() string {
	return fmt.Sprintf("%s -> %s", s.start, s.end)
}

// MarshalJSON serializes Segment as JSON, preserving its direction.
func (s Segment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Start point.Point `json:"start"`
		End   point.Point `json:"end"`
	}{Start: s.start, End: s.end})
}

// UnmarshalJSON deserializes JSON into a Segment.
func (s *Segment) UnmarshalJSON(data []byte) error {
	var temp struct {
		Start point.Point `json:"start"`
		End   point.Point `json:"end"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	s.start = temp.Start
	s.end = temp.End
	return nil
}
