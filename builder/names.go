// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// names.go - lookup of deterministic shapes by name for command-line use.

package builder

import (
	"fmt"
	"sort"
	"strings"
)

// shapeDef describes a named shape: how many vertices it needs for a size
// parameter and how to build it.
type shapeDef struct {
	vertices func(size int) int
	build    func(size int) Constructor
}

var shapes = map[string]shapeDef{
	"path":     {vertices: identity, build: Path},
	"cycle":    {vertices: identity, build: Cycle},
	"star":     {vertices: identity, build: Star},
	"complete": {vertices: identity, build: Complete},
	"grid": {
		vertices: func(size int) int { return size * size },
		build:    func(size int) Constructor { return Grid(size, size) },
	},
}

func identity(size int) int { return size }

// ByName returns the Constructor for the named shape and the number of
// vertices it needs. "grid" builds a size×size square grid.
// Names are case-insensitive; unknown names return ErrUnknownShape.
func ByName(name string, size int) (Constructor, int, error) {
	def, ok := shapes[strings.ToLower(name)]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q (known: %s)", ErrUnknownShape, name, strings.Join(ShapeNames(), ", "))
	}
	if size < 1 {
		return nil, 0, fmt.Errorf("shape %s: size=%d < 1: %w", name, size, ErrTooFewVertices)
	}

	return def.build(size), def.vertices(size), nil
}

// ShapeNames lists the names accepted by ByName in sorted order.
func ShapeNames() []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
