package builder

import (
	"fmt"

	"github.com/MarkSixtyFour/class-djikstra/mapfile"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for n intersections along one avenue heading
// east from the origin, joined i → i+1.
//
// Contract: n ≥ 2 (else ErrTooFewVertices). Labels come from the label scheme.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(m *mapfile.Map, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if cfg.needsRand() && cfg.rng == nil {
			return fmt.Errorf("%s: one-way ratio %.2f: %w", methodPath, cfg.oneWay, ErrNeedRandSource)
		}

		prev := -1
		for i := 0; i < n; i++ {
			v := addVertex(m, cfg.origin.Lat, cfg.origin.Lon+float64(i)*cfg.spacing, cfg.labelFn(i))
			if prev >= 0 {
				addStreet(m, cfg, prev, v)
			}
			prev = v
		}

		return nil
	}
}
