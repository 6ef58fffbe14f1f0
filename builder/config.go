package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces one edge weight. It must be deterministic for a given rng
// state and never return a negative value.
type WeightFn func(rng *rand.Rand) int64

// Option customizes a Build call.
type Option func(*builderConfig)

type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
	err      error
}

const defaultConstWeight = int64(1)

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:      nil, // no RNG unless explicitly set
		weightFn: ConstantWeightFn(defaultConstWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() int64 { return c.weightFn(c.rng) }

// WithSeed installs a fresh rand.Rand seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs r as the shared random source. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *builderConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithWeightFn installs fn as the weight generator. A nil fn is ignored.
func WithWeightFn(fn WeightFn) Option {
	return func(c *builderConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithUniformWeights draws weights uniformly from [min, max].
// Requires 0 <= min <= max; otherwise Build fails with ErrOptionViolation.
func WithUniformWeights(min, max int64) Option {
	return func(c *builderConfig) {
		if min < 0 || max < min {
			c.err = fmt.Errorf("%w: require 0 <= min <= max, got min=%d max=%d", ErrOptionViolation, min, max)
			return
		}
		c.weightFn = UniformWeightFn(min, max)
	}
}

// ConstantWeightFn always yields value.
func ConstantWeightFn(value int64) WeightFn {
	return func(*rand.Rand) int64 { return value }
}

// UniformWeightFn samples uniformly in [min, max]. With a nil rng it yields min.
func UniformWeightFn(min, max int64) WeightFn {
	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
