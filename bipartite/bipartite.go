// Package bipartite: two-coloring via breadth-first propagation.
package bipartite

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphx/core"
)

// ErrNilGraph is returned if a nil graph pointer is passed.
var ErrNilGraph = errors.New("bipartite: graph is nil")

// Side labels one half of a bipartition.
type Side uint8

const (
	// SideA is the side assigned to the first vertex of each component.
	SideA Side = iota
	// SideB is the opposite side.
	SideB
)

// String returns "A" or "B".
func (s Side) String() string {
	if s == SideA {
		return "A"
	}

	return "B"
}

// opposite returns the other side.
func (s Side) opposite() Side {
	if s == SideA {
		return SideB
	}

	return SideA
}

// Result holds the outcome of a bipartiteness check.
//
// When Bipartite is true, Side maps every vertex to its partition
// label; labels are per-component. When false, Side is nil.
type Result[V comparable] struct {
	Bipartite bool
	Side      map[V]Side
}

// Partition checks whether g is bipartite, visiting components in
// vertex insertion order. The returned Result is an independent
// snapshot; g is never mutated.
func Partition[V comparable](g *core.Graph[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	vertices := g.Vertices()
	side := make(map[V]Side, len(vertices))
	queue := make([]V, 0, len(vertices))

	for _, start := range vertices {
		if _, seen := side[start]; seen {
			continue
		}
		// New component: seed with SideA and propagate.
		side[start] = SideA
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			neighbors, err := g.Neighbors(v)
			if err != nil {
				return nil, fmt.Errorf("bipartite: neighbors of %v: %w", v, err)
			}
			for _, n := range neighbors {
				if ns, seen := side[n]; seen {
					if ns == side[v] {
						// Same side on both ends: odd cycle (or self-loop).
						return &Result[V]{Bipartite: false}, nil
					}
					continue
				}
				side[n] = side[v].opposite()
				queue = append(queue, n)
			}
		}
	}

	return &Result[V]{Bipartite: true, Side: side}, nil
}

// IsBipartite is a convenience wrapper around Partition that discards
// the partition labels.
func IsBipartite[V comparable](g *core.Graph[V]) (bool, error) {
	res, err := Partition(g)
	if err != nil {
		return false, err
	}

	return res.Bipartite, nil
}
