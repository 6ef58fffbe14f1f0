package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is too small.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates that an option received an invalid value.
var ErrOptionViolation = errors.New("builder: invalid option value")
