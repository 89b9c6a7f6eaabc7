package numeric_test

import (
	"fmt"

	"github.com/mikenye/linesweep/numeric"
)

func ExampleFloatEquals() {
	// Cross product of the segment (0,0)->(10,0) with the probe point
	// (5,1e-12), which sits a hair above the segment's line. Exact
	// comparison sees the residue; a tolerance comparison treats the
	// three points as collinear.
	cross := (10.0-0.0)*(1e-12-0.0) - (0.0-0.0)*(5.0-0.0)

	fmt.Printf("cross == 0 exactly: %t\n", cross == 0)
	fmt.Printf("cross == 0 within 1e-10: %t\n", numeric.FloatEquals(cross, 0, 1e-10))

	// Output:
	// cross == 0 exactly: false
	// cross == 0 within 1e-10: true
}

func ExampleFloatGreaterThanOrEqualTo() {
	// A crossing point computed at x = -1e-12 should still count as
	// inside a segment whose bounding box starts at x = 0.
	x := -1e-12

	fmt.Printf("x >= 0 exactly: %t\n", x >= 0)
	fmt.Printf("x >= 0 within 1e-9: %t\n", numeric.FloatGreaterThanOrEqualTo(x, 0, 1e-9))

	// Output:
	// x >= 0 exactly: false
	// x >= 0 within 1e-9: true
}
