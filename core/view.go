// File: view.go
// Role: Human-readable rendering of the adjacency lists.
// Determinism:
//   - One line per vertex in ascending vertex order, neighbors in Graph.Order().
// Concurrency:
//   - Takes a snapshot under the read lock, writes after releasing it.

package core

import (
	"fmt"
	"io"
	"strings"
)

// Display writes one line per vertex listing its neighbors in stored order:
//
//	vertex 0: head -> 2 -> 1
//
// A vertex with no neighbors renders as "vertex 3: head".
func (g *Graph) Display(w io.Writer) error {
	for v, list := range g.AdjacencyList() {
		if _, err := fmt.Fprintln(w, formatLine(v, list)); err != nil {
			return fmt.Errorf("core: display vertex %d: %w", v, err)
		}
	}

	return nil
}

// String renders the same text as Display.
func (g *Graph) String() string {
	var sb strings.Builder
	_ = g.Display(&sb) // strings.Builder never fails

	return sb.String()
}

func formatLine(v int, list []int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "vertex %d: head", v)
	for _, nbr := range list {
		fmt.Fprintf(&sb, " -> %d", nbr)
	}

	return sb.String()
}
