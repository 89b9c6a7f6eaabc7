// Package point defines the foundational geometric primitive in the
// linesweep library, the Point type. Every other type in this module —
// line segments, the ordered maps keyed on sweep position, the pairwise
// intersector — is built on top of it.
//
// # Overview
//
// Point represents a point in two-dimensional space with float64
// coordinates. It supports the small set of vector operations the
// line-intersection subsystem needs: translation, subtraction, scalar
// scaling, and the signed cross product used throughout for orientation
// tests.
//
// # Equality
//
// Eq performs exact equality by default; pass [options.WithEpsilon] to
// treat coordinates within a tolerance as equal. There is no global
// epsilon: every comparison that needs tolerance takes it explicitly, so
// that a Point (and everything built on it) never depends on mutable
// package state shared between callers.
package point

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mikenye/linesweep/numeric"
	"github.com/mikenye/linesweep/options"
)

// Point represents a point in two-dimensional space with x and y
// coordinates of type float64.
type Point struct {
	x float64
	y float64
}

// New creates a new Point with the specified x and y coordinates.
func New(x, y float64) Point {
	return Point{x: x, y: y}
}

// X returns the x-coordinate of the point.
func (p Point) X() float64 {
	return p.x
}

// Y returns the y-coordinate of the point.
func (p Point) Y() float64 {
	return p.y
}

// Coordinates returns the x and y coordinates of the point as separate
// values.
func (p Point) Coordinates() (x, y float64) {
	return p.x, p.y
}

// Add returns the sum of two points as if they were vectors:
// (p.X()+q.X(), p.Y()+q.Y()).
func (p Point) Add(q Point) Point {
	return Point{x: p.x + q.x, y: p.y + q.y}
}

// Sub returns the vector from q to p: (p.X()-q.X(), p.Y()-q.Y()).
func (p Point) Sub(q Point) Point {
	return Point{x: p.x - q.x, y: p.y - q.y}
}

// Negate returns a new Point with both coordinates negated.
func (p Point) Negate() Point {
	return Point{x: -p.x, y: -p.y}
}

// Scale returns ref + s·(p−ref), i.e. p scaled by factor s about ref.
func (p Point) Scale(ref Point, s float64) Point {
	return Point{
		x: ref.x + (p.x-ref.x)*s,
		y: ref.y + (p.y-ref.y)*s,
	}
}

// CrossProduct returns the 2D cross product (determinant) of the vectors
// p and q, treated as originating at the origin:
//
//	p × q = p.x*q.y - p.y*q.x
//
// A positive result indicates q is counterclockwise from p, a negative
// result indicates clockwise, and zero indicates the vectors are
// collinear.
func (p Point) CrossProduct(q Point) float64 {
	return p.x*q.y - p.y*q.x
}

// Cross computes the signed area of the parallelogram spanned by o→a and
// o→b:
//
//	cross(o, a, b) = (a.x-o.x)*(b.y-o.y) - (a.y-o.y)*(b.x-o.x)
//
// This is the orientation primitive used throughout the line-intersection
// subsystem: its sign classifies b as left of, right of, or collinear with
// the directed line o→a.
func Cross(o, a, b Point) float64 {
	return a.Sub(o).CrossProduct(b.Sub(o))
}

// DistanceSquaredToPoint calculates the squared Euclidean distance between
// p and q, avoiding the square root where only comparisons are needed.
func (p Point) DistanceSquaredToPoint(q Point) float64 {
	dx, dy := q.x-p.x, q.y-p.y
	return dx*dx + dy*dy
}

// DistanceToPoint calculates the Euclidean distance between p and q.
func (p Point) DistanceToPoint(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredToPoint(q))
}

// Eq determines whether p and q are equal.
//
// By default this is a bitwise-exact comparison of both coordinates. Pass
// [options.WithEpsilon] to treat coordinates within the given tolerance as
// equal.
func (p Point) Eq(q Point, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)
	if geoOpts.Epsilon == 0 {
		return p.x == q.x && p.y == q.y
	}
	return numeric.FloatEquals(p.x, q.x, geoOpts.Epsilon) && numeric.FloatEquals(p.y, q.y, geoOpts.Epsilon)
}

// String returns a string representation of p in the format "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.x, p.y)
}

// MarshalJSON serializes Point as JSON.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{X: p.x, Y: p.y})
}

// UnmarshalJSON deserializes JSON into a Point.
func (p *Point) UnmarshalJSON(data []byte) error {
	var temp struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.x = temp.X
	p.y = temp.Y
	return nil
}
