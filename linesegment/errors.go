package linesegment

import "errors"

// ErrInvalidArgument is returned when a caller passes ε ≤ 0 where a
// positive tolerance is required, or a zero-length segment to the sweep
// engine.
var ErrInvalidArgument = errors.New("linesegment: invalid argument")

// ErrIndexOutOfRange is returned by Split when a crossing references a
// segment index outside the bounds of the input slice.
var ErrIndexOutOfRange = errors.New("linesegment: index out of range")

// ErrSearchStructureCorrupted is returned by the sweep engine when an
// internal invariant of the status structure was violated: an expected
// node was missing on removal, or the structure was non-empty at
// termination. With the algorithm as specified this should not occur for
// valid finite input; it is retained as a defensive, fatal error.
var ErrSearchStructureCorrupted = errors.New("linesegment: search structure corrupted")
