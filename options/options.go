// Package options carries the optional tolerance parameter through the
// linesweep API.
//
// Operations that compare coordinates accept a trailing
// ...GeometryOptionsFunc instead of an explicit epsilon argument:
// point.Eq, linesegment.Segment.ContainsPoint, linesegment.LocateCollinear
// and the pairwise intersector linesegment.Find all resolve their options
// the same way. The default is exact comparison; callers opt into
// tolerance per call with WithEpsilon. There is no package-level default
// to mutate, so concurrent callers never observe each other's settings.
package options

// GeometryOptions holds the resolved optional parameters for a single
// geometric operation.
type GeometryOptions struct {
	// Epsilon is the absolute tolerance applied per coordinate, or per
	// scalar for cross products: values within Epsilon of each other
	// compare as equal. Zero means exact comparison.
	Epsilon float64
}

// GeometryOptionsFunc mutates a GeometryOptions. Functions across the
// module take a variadic ...GeometryOptionsFunc so tolerance can be
// supplied without widening their signatures.
type GeometryOptionsFunc func(*GeometryOptions)

// ApplyGeometryOptions resolves opts against defaults, applying each
// option in order. Later options win.
func ApplyGeometryOptions(defaults GeometryOptions, opts ...GeometryOptionsFunc) GeometryOptions {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}
