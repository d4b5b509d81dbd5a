// errors.go: sentinel errors for the builder package. Constructors wrap
// them with "%w" and a method prefix; callers branch with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, k) is
// below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor or option needs
// an RNG (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a map that could not
// be built into a graph.
var ErrConstructFailed = errors.New("builder: construction failed")
