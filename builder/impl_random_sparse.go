package builder

import (
	"fmt"
	"math"

	"github.com/MarkSixtyFour/class-djikstra/mapfile"
)

const (
	methodRandomSparse      = "RandomSparse"
	methodRandomQueries     = "RandomQueries"
	minRandomSparseVertices = 1
	minQueries              = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor for n intersections scattered over a
// square of side spacing·√n south-east of the origin. Each unordered pair
// (i<j) becomes a street with probability p, pairs visited in ascending
// order so a fixed seed gives a fixed map.
//
// Contract:
//   - n ≥ 1 (ErrTooFewVertices), p ∈ [0,1] (ErrInvalidProbability).
//   - An RNG is always required for placement (ErrNeedRandSource).
//
// Complexity: O(n²) pair trials.
func RandomSparse(n int, p float64) Constructor {
	return func(m *mapfile.Map, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		side := cfg.spacing * math.Sqrt(float64(n))
		base := len(m.Vertices)
		for i := 0; i < n; i++ {
			addVertex(m,
				cfg.origin.Lat-cfg.rng.Float64()*side,
				cfg.origin.Lon+cfg.rng.Float64()*side,
				cfg.labelFn(i))
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p || p == probMax {
					addStreet(m, cfg, base+i, base+j)
				}
			}
		}

		return nil
	}
}

// RandomQueries returns a Constructor appending k cases whose endpoints are
// drawn uniformly from the vertices already in the map.
//
// Contract: k ≥ 1 and a non-empty map (ErrTooFewVertices), RNG required.
func RandomQueries(k int) Constructor {
	return func(m *mapfile.Map, cfg builderConfig) error {
		if k < minQueries || len(m.Vertices) == 0 {
			return fmt.Errorf("%s: k=%d over %d vertices: %w",
				methodRandomQueries, k, len(m.Vertices), ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomQueries, ErrNeedRandSource)
		}

		n := len(m.Vertices)
		for i := 0; i < k; i++ {
			m.Queries = append(m.Queries, mapfile.QueryRecord{
				Source:      cfg.rng.Intn(n),
				Destination: cfg.rng.Intn(n),
			})
		}

		return nil
	}
}
