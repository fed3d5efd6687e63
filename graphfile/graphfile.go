// Package graphfile loads a core.Graph from a YAML edge list.
//
// Document shape:
//
//	vertices: 3
//	loops: false          # optional, default false
//	order: newest-first   # optional: newest-first | oldest-first
//	edges:
//	  - [0, 1]
//	  - {from: 1, to: 2}
//	  - [0, 2]
//
// Edges are inserted in document order, so the file fully determines the
// neighbor lists and therefore every traversal order.
package graphfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphwalk/core"
)

// ErrMalformed is returned when the document is not valid YAML, has unknown
// fields, or contains an edge that is not exactly two integers.
var ErrMalformed = errors.New("graphfile: malformed graph document")

// document is the top-level YAML structure.
type document struct {
	Vertices *int   `yaml:"vertices"`
	Loops    *bool  `yaml:"loops"`
	Order    string `yaml:"order"`
	Edges    []edge `yaml:"edges"`
}

// edge accepts both the [u, v] and {from: u, to: v} forms.
type edge struct {
	U, V int
}

func (e *edge) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var pair []int
		if err := node.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("line %d: edge has %d endpoints, want 2", node.Line, len(pair))
		}
		e.U, e.V = pair[0], pair[1]
		return nil
	case yaml.MappingNode:
		// node.Decode does not inherit the decoder's KnownFields setting
		for i := 0; i < len(node.Content); i += 2 {
			switch key := node.Content[i]; key.Value {
			case "from", "to":
			default:
				return fmt.Errorf("line %d: unknown edge field %q", key.Line, key.Value)
			}
		}
		var m struct {
			From *int `yaml:"from"`
			To   *int `yaml:"to"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		if m.From == nil || m.To == nil {
			return fmt.Errorf("line %d: edge needs both from and to", node.Line)
		}
		e.U, e.V = *m.From, *m.To
		return nil
	default:
		return fmt.Errorf("line %d: unsupported edge form", node.Line)
	}
}

// Parse reads one YAML document from r and builds the graph it describes.
// opts are applied before the document's own loops/order settings, so the
// file wins where both speak.
func Parse(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.Vertices == nil {
		return nil, fmt.Errorf("%w: missing vertices", ErrMalformed)
	}

	order, err := core.ParseNeighborOrder(doc.Order)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	gopts := append([]core.GraphOption(nil), opts...)
	if doc.Order != "" {
		gopts = append(gopts, core.WithNeighborOrder(order))
	}
	if doc.Loops != nil {
		if *doc.Loops {
			gopts = append(gopts, core.WithLoops())
		} else {
			gopts = append(gopts, core.WithoutLoops())
		}
	}

	g, err := core.NewGraph(*doc.Vertices, gopts...)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	for i, e := range doc.Edges {
		if err = g.AddEdge(e.U, e.V); err != nil {
			return nil, fmt.Errorf("graphfile: edge #%d (%d, %d): %w", i, e.U, e.V, err)
		}
	}

	return g, nil
}

// Load opens path and parses it with Parse.
func Load(path string, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	defer f.Close()

	g, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
