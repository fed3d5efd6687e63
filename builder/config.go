// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng    = nil (pure/deterministic unless seeded)
//   • offset = 0   (constructors start at vertex 0)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// offset is added to every vertex index a constructor emits.
	offset int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{rng: nil, offset: 0}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
