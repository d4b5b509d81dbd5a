// Command mapgen writes a synthetic street map, with random route queries,
// in the layout the dijkstra command reads.
//
// Usage:
//
//	mapgen [-kind grid|path|random] [-rows 10] [-cols 10] [-n 50] [-p 0.1]
//	       [-oneway 0.2] [-queries 5] [-seed 1] [-out map.dat]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MarkSixtyFour/class-djikstra/builder"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet("mapgen", flag.ContinueOnError)
	fset.SetOutput(stderr)
	var (
		kind    = fset.String("kind", "grid", "topology: grid, path or random")
		rows    = fset.Int("rows", 10, "grid rows")
		cols    = fset.Int("cols", 10, "grid columns")
		n       = fset.Int("n", 50, "intersections for path and random")
		p       = fset.Float64("p", 0.1, "street probability for random")
		oneWay  = fset.Float64("oneway", 0, "fraction of one-way streets")
		queries = fset.Int("queries", 5, "random route queries")
		seed    = fset.Int64("seed", 1, "random seed")
		out     = fset.String("out", "", "output file (default stdout)")
	)
	if err := fset.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if *oneWay < 0 || *oneWay > 1 {
		fmt.Fprintln(stderr, "mapgen: -oneway must be in [0,1]")
		return 2
	}

	var ctor builder.Constructor
	switch *kind {
	case "grid":
		ctor = builder.Grid(*rows, *cols)
	case "path":
		ctor = builder.Path(*n)
	case "random":
		ctor = builder.RandomSparse(*n, *p)
	default:
		fmt.Fprintf(stderr, "mapgen: unknown kind %q\n", *kind)
		return 2
	}
	ctors := []builder.Constructor{ctor}
	if *queries > 0 {
		ctors = append(ctors, builder.RandomQueries(*queries))
	}

	m, err := builder.BuildMap([]builder.BuilderOption{
		builder.WithSeed(*seed),
		builder.WithOneWay(*oneWay),
	}, ctors...)
	if err != nil {
		fmt.Fprintln(stderr, "mapgen:", err)
		return 1
	}

	w := stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintln(stderr, "mapgen:", err)
			return 1
		}
		defer f.Close()
		w = f
	}
	if err := m.Encode(w); err != nil {
		fmt.Fprintln(stderr, "mapgen:", err)
		return 1
	}

	return 0
}
