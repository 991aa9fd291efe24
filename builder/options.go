// SPDX-License-Identifier: MIT
// Package: polylattice/builder
//
// options.go: functional options for builderConfig.
//
// Policy:
//   • Options are pure setters; meaningless arguments panic at option
//     construction (programmer error), never inside constructors.

package builder

import "math/rand"

// BuilderOption mutates a builderConfig during resolution.
type BuilderOption func(*builderConfig)

// WithSeed installs a deterministic RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs a caller-owned RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}
