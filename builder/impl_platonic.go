// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_platonic.go - canonical data and the PlatonicSolid constructor.
//
// Contract:
//   - Reserves the shell vertices 0..V-1 of the chosen solid and emits its
//     pre-sorted shell edges (U<V, lexicographic).
//   - withCenter adds a hub at local index V and spokes hub → i, i ascending.
//   - Unknown solid ⇒ ErrOptionViolation.
//
// Complexity: O(V+E) of the chosen solid.

package builder

import (
	"fmt"
	"strings"
)

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

// String returns the solid name, or "Unknown".
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// ParsePlatonicName resolves a case-insensitive solid name.
func ParsePlatonicName(s string) (PlatonicName, error) {
	for p := Tetrahedron; p <= Icosahedron; p++ {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, s, ErrOptionViolation)
}

// chord is an unordered shell edge {U,V} with U<V.
type chord struct{ U, V int }

// platonicVertexCounts maps each solid to its shell vertex count.
var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

// platonicEdgeSets maps each solid to its canonical shell edge list.
var platonicEdgeSets = map[PlatonicName][]chord{
	// K4 on 0..3.
	Tetrahedron: {
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3},
		{2, 3},
	},

	// Bottom face 0-1-2-3, top face 4-5-6-7, verticals i-(i+4).
	Cube: {
		{0, 1}, {0, 3}, {0, 4}, {1, 2}, {1, 5}, {2, 3},
		{2, 6}, {3, 7}, {4, 5}, {4, 7}, {5, 6}, {6, 7},
	},

	// Poles 0 and 1, equator 2-4-3-5.
	Octahedron: {
		{0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 3}, {1, 4}, {1, 5},
		{2, 4}, {2, 5}, {3, 4}, {3, 5},
	},

	// Top pentagon 0..4, bottom pentagon 5..9, middle 10-cycle 10..19;
	// top spokes to even middle indices, bottom spokes to odd ones.
	Dodecahedron: {
		{0, 1}, {0, 4}, {0, 10}, {1, 2}, {1, 12}, {2, 3}, {2, 14},
		{3, 4}, {3, 16}, {4, 18},
		{5, 6}, {5, 9}, {5, 11}, {6, 7}, {6, 13}, {7, 8}, {7, 15},
		{8, 9}, {8, 17}, {9, 19},
		{10, 11}, {10, 19}, {11, 12}, {12, 13}, {13, 14},
		{14, 15}, {15, 16}, {16, 17}, {17, 18}, {18, 19},
	},

	// Pole 0, top ring 1..5, bottom ring 6..10, pole 11.
	Icosahedron: {
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 5}, {1, 6}, {1, 7},
		{2, 3}, {2, 7}, {2, 8},
		{3, 4}, {3, 8}, {3, 9},
		{4, 5}, {4, 9}, {4, 10},
		{5, 6}, {5, 10},
		{6, 7}, {6, 10}, {6, 11},
		{7, 8}, {7, 11},
		{8, 9}, {8, 11},
		{9, 10}, {9, 11},
		{10, 11},
	},
}

// PlatonicSolid returns a Constructor that builds the chosen Platonic shell,
// optionally with a central hub connected to every shell vertex.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(b *blueprint, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}

		b.reserve(n)
		for _, ch := range platonicEdgeSets[name] {
			b.connect(ch.U, ch.V, cfg.weight())
		}

		if withCenter {
			hub := n
			b.reserve(n + 1)
			for i := 0; i < n; i++ {
				b.connect(hub, i, cfg.weight())
			}
		}

		return nil
	}
}
