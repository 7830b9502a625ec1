package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor or a stretch range
// was used without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a plan could not be materialized
// (nil constructor, or core rejected an edge).
var ErrConstructFailed = errors.New("builder: construction failed")
