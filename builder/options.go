package builder

import "math/rand"

// BuilderOption customizes generated maps.
type BuilderOption func(*builderConfig)

// WithLabelScheme sets the labels used by Path and RandomSparse.
// Panics if fn is nil.
func WithLabelScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelScheme(nil)")
	}
	return func(c *builderConfig) {
		c.labelFn = fn
	}
}

// WithRand installs r as the random source. Panics if r is nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a deterministic random source seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOrigin places the first intersection at (lat, lon).
// Panics outside [-90,90] × [-180,180].
func WithOrigin(lat, lon float64) BuilderOption {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		panic("builder: WithOrigin out of range")
	}
	return func(c *builderConfig) {
		c.origin.Lat, c.origin.Lon = lat, lon
	}
}

// WithSpacing sets the distance between neighboring intersections in
// degrees. Panics if deg <= 0.
func WithSpacing(deg float64) BuilderOption {
	if deg <= 0 {
		panic("builder: WithSpacing(deg<=0)")
	}
	return func(c *builderConfig) {
		c.spacing = deg
	}
}

// WithOneWay makes a fraction p of generated streets one-way.
// Panics outside [0,1].
func WithOneWay(p float64) BuilderOption {
	if p < 0 || p > 1 {
		panic("builder: WithOneWay(p∉[0,1])")
	}
	return func(c *builderConfig) {
		c.oneWay = p
	}
}
