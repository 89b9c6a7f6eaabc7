package options

// WithEpsilon sets the absolute tolerance for the operation it is passed
// to. A negative value is treated as zero, keeping the comparison exact.
func WithEpsilon(epsilon float64) GeometryOptionsFunc {
	return func(opts *GeometryOptions) {
		if epsilon < 0 {
			epsilon = 0
		}
		opts.Epsilon = epsilon
	}
}
