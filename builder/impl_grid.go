package builder

import (
	"fmt"

	"github.com/MarkSixtyFour/class-djikstra/mapfile"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols block of intersections.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Intersection (r,c) sits r·spacing south and c·spacing east of the
//     origin and is labeled "<r> St & <c> Ave".
//   - Vertices are added in row-major order; for each (r,c) a street to the
//     east neighbor then one to the south neighbor is emitted where present.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(m *mapfile.Map, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if cfg.needsRand() && cfg.rng == nil {
			return fmt.Errorf("%s: one-way ratio %.2f: %w", methodGrid, cfg.oneWay, ErrNeedRandSource)
		}

		base := len(m.Vertices)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				addVertex(m,
					cfg.origin.Lat-float64(r)*cfg.spacing,
					cfg.origin.Lon+float64(c)*cfg.spacing,
					fmt.Sprintf("%d St & %d Ave", r, c))
			}
		}

		at := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					addStreet(m, cfg, at(r, c), at(r, c+1))
				}
				if r+1 < rows {
					addStreet(m, cfg, at(r, c), at(r+1, c))
				}
			}
		}

		return nil
	}
}
