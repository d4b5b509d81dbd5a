package builder

import (
	"fmt"
	"math/rand"

	"github.com/MarkSixtyFour/class-djikstra/geo"
	"github.com/MarkSixtyFour/class-djikstra/mapfile"
)

type builderConfig struct {
	// labelFn names vertex i of a Path or RandomSparse constructor.
	labelFn func(int) string

	// rng drives RandomSparse, RandomQueries and WithOneWay; nil until set.
	rng *rand.Rand

	origin  geo.Coord // first intersection
	spacing float64   // degrees between neighbors
	oneWay  float64   // fraction of one-way streets, in [0,1]
}

const (
	defaultOriginLat = 44.97
	defaultOriginLon = -93.23
	defaultSpacing   = 0.001
)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		labelFn: intersectionLabel,
		rng:     nil,
		origin:  geo.Coord{Lat: defaultOriginLat, Lon: defaultOriginLon},
		spacing: defaultSpacing,
		oneWay:  0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func intersectionLabel(i int) string {
	return fmt.Sprintf("Intersection %d", i)
}

// direction picks TwoWay, or OneWay with probability cfg.oneWay.
func (cfg builderConfig) direction() mapfile.Direction {
	switch {
	case cfg.oneWay <= 0:
		return mapfile.TwoWay
	case cfg.oneWay >= 1:
		return mapfile.OneWay
	case cfg.rng.Float64() < cfg.oneWay:
		return mapfile.OneWay
	default:
		return mapfile.TwoWay
	}
}

// needsRand reports whether cfg.direction would consult the RNG.
func (cfg builderConfig) needsRand() bool {
	return cfg.oneWay > 0 && cfg.oneWay < 1
}
