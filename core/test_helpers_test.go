// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for graphwalk/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep concurrent tests free of *testing.T calls inside goroutines.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/graphwalk/core"
)

// Common vertex indices used across core tests.
const (
	V0 = 0
	V1 = 1
	V2 = 2
	V3 = 3
)

// Triangle builds the 3-vertex graph with edges 0-1, 1-2, 0-2 inserted in that order.
func Triangle(t testing.TB, opts ...core.GraphOption) *core.Graph {
	t.Helper()

	g, err := core.NewGraph(3, opts...)
	MustNoError(t, err, "NewGraph(3)")
	for _, e := range [][2]int{{V0, V1}, {V1, V2}, {V0, V2}} {
		MustNoError(t, g.AddEdge(e[0], e[1]), "AddEdge")
	}

	return g
}

// MustNoError FAILS the test if err != nil.
// op is a short operation label such as "AddEdge(0,1)".
func MustNoError(t testing.TB, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
func MustErrorIs(t testing.TB, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustNoErrorsFromChan drains errCh and FAILS on the first non-nil error.
// Goroutines send only unexpected errors so failures stay signal-rich.
func MustNoErrorsFromChan(t testing.TB, errCh <-chan error, op string) {
	t.Helper()

	for err := range errCh {
		if err == nil {
			continue
		}
		t.Fatalf("%s: unexpected concurrent error: %v", op, err)
	}
}
