// Package graphfile reads and writes graphs as YAML documents:
//
//	vertices: [A, B, C]
//	undirected: true
//	edges:
//	  - [0, 1, 4]                     # u, v, weight by index
//	  - {from: B, to: C, weight: 2}   # or by label
//
// The sequence form addresses vertices by index, the mapping form by label;
// both may be mixed in one document. A mapping edge without a weight gets
// weight 1. With undirected set, every edge is mirrored on load.
package graphfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wgraph/core"
)

var (
	// ErrBadEdge indicates an edge entry that is neither [u, v, w] nor a
	// {from, to, weight} mapping.
	ErrBadEdge = errors.New("graphfile: malformed edge")

	// ErrNoVertices indicates a document without a vertex list.
	ErrNoVertices = errors.New("graphfile: no vertices")
)

// defaultWeight applies to mapping edges that omit weight.
const defaultWeight = 1.0

// Document is the YAML form of a graph.
type Document struct {
	Vertices   []string   `yaml:"vertices"`
	Undirected bool       `yaml:"undirected,omitempty"`
	Edges      []EdgeSpec `yaml:"edges"`
}

// EdgeSpec is one entry of the edges list.
type EdgeSpec struct {
	// ByLabel selects the mapping form; From/To are then used instead of U/V.
	ByLabel bool

	U, V     int
	From, To string
	Weight   float64
}

// labelEdge is the mapping form of an edge.
type labelEdge struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Weight *float64 `yaml:"weight,omitempty"`
}

// UnmarshalYAML accepts either a three-element sequence or a mapping.
func (e *EdgeSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		if len(node.Content) != 3 {
			return fmt.Errorf("%w at line %d: want [u, v, weight], got %d elements",
				ErrBadEdge, node.Line, len(node.Content))
		}
		if err := node.Content[0].Decode(&e.U); err != nil {
			return fmt.Errorf("%w at line %d: u: %v", ErrBadEdge, node.Line, err)
		}
		if err := node.Content[1].Decode(&e.V); err != nil {
			return fmt.Errorf("%w at line %d: v: %v", ErrBadEdge, node.Line, err)
		}
		if err := node.Content[2].Decode(&e.Weight); err != nil {
			return fmt.Errorf("%w at line %d: weight: %v", ErrBadEdge, node.Line, err)
		}
		e.ByLabel = false
		return nil

	case yaml.MappingNode:
		var le labelEdge
		if err := node.Decode(&le); err != nil {
			return fmt.Errorf("%w at line %d: %v", ErrBadEdge, node.Line, err)
		}
		if le.From == "" || le.To == "" {
			return fmt.Errorf("%w at line %d: from and to are required", ErrBadEdge, node.Line)
		}
		*e = EdgeSpec{ByLabel: true, From: le.From, To: le.To, Weight: defaultWeight}
		if le.Weight != nil {
			e.Weight = *le.Weight
		}
		return nil

	default:
		return fmt.Errorf("%w at line %d: unexpected YAML node kind", ErrBadEdge, node.Line)
	}
}

// MarshalYAML writes index edges as flow sequences and label edges as
// flow mappings, one per line.
func (e EdgeSpec) MarshalYAML() (interface{}, error) {
	var node yaml.Node
	var err error
	if e.ByLabel {
		err = node.Encode(labelEdge{From: e.From, To: e.To, Weight: &e.Weight})
	} else {
		err = node.Encode([]interface{}{e.U, e.V, e.Weight})
	}
	if err != nil {
		return nil, err
	}
	node.Style = yaml.FlowStyle

	return &node, nil
}

// Read decodes a Document from r.
func Read(r io.Reader) (*Document, error) {
	d := new(Document)
	if err := yaml.NewDecoder(r).Decode(d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoVertices
		}
		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}
	if len(d.Vertices) == 0 {
		return nil, ErrNoVertices
	}

	return d, nil
}

// Load reads the Document stored at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Write encodes d to w with two-space indentation.
func Write(w io.Writer, d *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("graphfile: encode: %w", err)
	}

	return enc.Close()
}

// FromEdges builds a Document with index edges. With undirected set the
// edges are written as given and mirrored again on load.
func FromEdges(vertices []string, edges []core.Edge, undirected bool) *Document {
	d := &Document{
		Vertices:   append([]string(nil), vertices...),
		Undirected: undirected,
		Edges:      make([]EdgeSpec, len(edges)),
	}
	for i, e := range edges {
		d.Edges[i] = EdgeSpec{U: e.From, V: e.To, Weight: e.Weight}
	}

	return d
}

// EdgeList resolves every EdgeSpec to a core.Edge, mirrored when the
// document is undirected.
//
// Errors: core.ErrUnknownVertex for a label that is not in Vertices.
// Index ranges are checked by core when the graph is built.
func (d *Document) EdgeList() ([]core.Edge, error) {
	index := make(map[string]int, len(d.Vertices))
	for i, v := range d.Vertices {
		if _, dup := index[v]; !dup {
			index[v] = i
		}
	}

	edges := make([]core.Edge, 0, len(d.Edges))
	for i, es := range d.Edges {
		e := core.Edge{From: es.U, To: es.V, Weight: es.Weight}
		if es.ByLabel {
			from, ok := index[es.From]
			if !ok {
				return nil, fmt.Errorf("graphfile: edge %d: %w: %q", i, core.ErrUnknownVertex, es.From)
			}
			to, ok := index[es.To]
			if !ok {
				return nil, fmt.Errorf("graphfile: edge %d: %w: %q", i, core.ErrUnknownVertex, es.To)
			}
			e.From, e.To = from, to
		}
		edges = append(edges, e)
	}

	if d.Undirected {
		return core.Undirected(edges...), nil
	}

	return edges, nil
}

// Graph builds the core.Graph described by d.
func (d *Document) Graph() (*core.Graph[string], error) {
	edges, err := d.EdgeList()
	if err != nil {
		return nil, err
	}
	g, err := core.NewGraph(d.Vertices, edges)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}

	return g, nil
}
