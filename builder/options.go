// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
