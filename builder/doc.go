// Package builder generates synthetic street maps for tests, benchmarks
// and the mapgen command. It follows a "functional options" style: every
// topology is a Constructor appended to a mapfile.Map, and BuilderOptions
// tune placement, labels, one-way streets and randomness.
//
// Constructors:
//
//   - Grid(rows, cols):       Manhattan-style blocks, streets to the east and south.
//   - Path(n):                a single avenue of n intersections heading east.
//   - RandomSparse(n, p):     n scattered intersections, each pair joined with probability p.
//   - RandomQueries(k):       k source/destination cases over the vertices built so far.
//
// Constructors compose: each one numbers its vertices after those already in
// the map, so BuildMap(opts, Grid(3,3), Path(4)) yields two disconnected
// neighborhoods.
//
// Options:
//
//   - WithOrigin(lat, lon):   position of the first intersection (default 44.97, -93.23).
//   - WithSpacing(deg):       distance between neighbors in degrees (default 0.001).
//   - WithOneWay(p):          fraction of streets that are one-way; needs an RNG when 0<p<1.
//   - WithSeed / WithRand:    randomness for stochastic constructors.
//   - WithLabelScheme(fn):    vertex labels for Path and RandomSparse.
//
// Option constructors panic on meaningless values; constructors return the
// sentinel errors in errors.go.
package builder
