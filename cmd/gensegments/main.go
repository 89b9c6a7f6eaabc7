// Command gensegments generates random line segments in a plane and
// prints them to stdout as JSON. With --intersect it additionally runs
// the generated segments through the sweep engine (or the brute-force
// intersector, with --simple) and prints the resulting crossings
// instead.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mikenye/linesweep/linesegment"
	"github.com/mikenye/linesweep/point"
)

func main() {
	cmd := &cli.Command{
		Name:      "gensegments",
		Usage:     "Generates random line segments in a plane and outputs them (or their intersections) as JSON",
		UsageText: "gensegments --number <value> --maxx <value> --minx <value> --maxy <value> --miny <value> [--intersect] [--simple] [--epsilon <value>]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Usage:    "The number of segments to create",
				Value:    3,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "maxx",
				Usage:    "The maximum X value of the plane",
				OnlyOnce: true,
				Value:    10,
			},
			&cli.IntFlag{
				Name:     "minx",
				Usage:    "The minimum X value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.IntFlag{
				Name:     "maxy",
				Usage:    "The maximum Y value of the plane",
				OnlyOnce: true,
				Value:    10,
			},
			&cli.IntFlag{
				Name:     "miny",
				Usage:    "The minimum Y value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.BoolFlag{
				Name:     "intersect",
				Usage:    "Feed the generated segments through the intersection engine and print the crossings instead of the segments",
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:     "simple",
				Usage:    "Use the O(n^2) brute-force intersector instead of the sweep engine (only meaningful with --intersect)",
				OnlyOnce: true,
			},
			&cli.FloatFlag{
				Name:     "epsilon",
				Usage:    "Tolerance for merging nearby crossings when --simple is also set; 0 uses exact comparisons",
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      app,
		Authors:     []any{"https://github.com/mikenye"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func randomIntInRange(min, max int64) int64 {
	return min + rand.Int64N(max-min+1)
}

func app(_ context.Context, cmd *cli.Command) error {
	minx := cmd.Int("minx")
	maxx := cmd.Int("maxx")
	miny := cmd.Int("miny")
	maxy := cmd.Int("maxy")
	n := cmd.Int("number")

	if minx >= maxx {
		return fmt.Errorf("maxx must be greater than minx")
	}
	if miny >= maxy {
		return fmt.Errorf("maxy must be greater than miny")
	}

	segments := make([]linesegment.Segment, n)
	for i := int64(0); i < n; i++ {
		for {
			start := point.New(float64(randomIntInRange(minx, maxx)), float64(randomIntInRange(miny, maxy)))
			end := point.New(float64(randomIntInRange(minx, maxx)), float64(randomIntInRange(miny, maxy)))
			if !start.Eq(end) {
				segments[i] = linesegment.New(start, end)
				break
			}
		}
	}

	if !cmd.Bool("intersect") {
		return printJSON(segments)
	}

	if cmd.Bool("simple") {
		eps := cmd.Float("epsilon")
		if eps > 0 {
			crossings, err := linesegment.FindIntersectionsSimpleEps(segments, eps)
			if err != nil {
				return err
			}
			return printJSON(crossings)
		}
		return printJSON(linesegment.FindIntersectionsSimple(segments))
	}

	crossings, err := linesegment.FindIntersections(segments)
	if err != nil {
		return err
	}
	return printJSON(crossings)
}

func printJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}
