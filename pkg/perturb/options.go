package perturb

import "math/rand"

type options struct {
	rng *rand.Rand
}

// Option configures a Perturber.
type Option func(*options)

// WithSeed seeds the corruption RNG so runs are reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies a random source directly. Options apply in order, so
// the last of WithSeed/WithRand wins.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}
