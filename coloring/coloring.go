// Package coloring: explicit-stack backtracking search.
package coloring

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphx/core"
)

// ThreeColor attempts to color g with Red, Green, and Blue so that no
// edge connects two vertices of the same color. On success it returns
// a fresh vertex→Color map; on a fully exhausted search it returns
// ErrNotThreeColorable. g is never mutated.
func ThreeColor[V comparable](g *core.Graph[V], opts ...Option) (map[V]Color, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s, err := newSearch(g)
	if err != nil {
		return nil, err
	}
	if len(s.order) == 0 {
		return map[V]Color{}, nil
	}

	return s.run(o)
}

// search holds the immutable constraint structure and the mutable
// assignment state of one backtracking run.
type search[V comparable] struct {
	order    []V   // vertices, most-constrained first
	adjacent [][]int // constraint edges as positions into order
	assigned []Color // current color per position, 0 = none
	tried    []Color // last color tried per position, 0 = none yet
}

// newSearch snapshots g into positional form: vertices sorted by
// descending degree (insertion order breaks ties, the original
// most-constrained-first heuristic), adjacency as index lists covering
// both edge directions. A self-loop short-circuits the whole search.
func newSearch[V comparable](g *core.Graph[V]) (*search[V], error) {
	order := g.Vertices()
	degree := make(map[V]int, len(order))
	for _, v := range order {
		d, err := g.Degree(v)
		if err != nil {
			return nil, fmt.Errorf("coloring: degree of %v: %w", v, err)
		}
		degree[v] = d
	}
	sort.SliceStable(order, func(i, j int) bool { return degree[order[i]] > degree[order[j]] })

	pos := make(map[V]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	adjacent := make([][]int, len(order))
	for _, e := range g.Edges() {
		if e.From == e.To {
			return nil, fmt.Errorf("%w: self-loop at %v", ErrNotThreeColorable, e.From)
		}
		u, v := pos[e.From], pos[e.To]
		adjacent[u] = append(adjacent[u], v)
		adjacent[v] = append(adjacent[v], u)
	}

	return &search[V]{
		order:    order,
		adjacent: adjacent,
		assigned: make([]Color, len(order)),
		tried:    make([]Color, len(order)),
	}, nil
}

// run walks positions 0..n-1 with explicit backtracking: at each
// position the next untried color consistent with colored neighbors is
// assigned; with no color left the position resets and the search falls
// back one step. Equivalent to the recursive formulation, without the
// recursion.
func (s *search[V]) run(o Options) (map[V]Color, error) {
	steps, i := 0, 0
	for {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		c := s.nextColor(i)
		if c == 0 {
			// Dead end: reset this position and back up.
			s.tried[i] = 0
			s.assigned[i] = 0
			i--
			if i < 0 {
				return nil, ErrNotThreeColorable
			}
			continue
		}

		steps++
		if o.MaxSteps > 0 && steps > o.MaxSteps {
			return nil, fmt.Errorf("%w: after %d assignments", ErrStepLimit, o.MaxSteps)
		}
		s.tried[i] = c
		s.assigned[i] = c
		i++
		if i == len(s.order) {
			return s.result(), nil
		}
	}
}

// nextColor returns the first color after tried[i] that no colored
// neighbor of position i currently holds, or 0 when exhausted.
func (s *search[V]) nextColor(i int) Color {
	for c := s.tried[i] + 1; c <= Blue; c++ {
		ok := true
		for _, n := range s.adjacent[i] {
			if s.assigned[n] == c {
				ok = false
				break
			}
		}
		if ok {
			return c
		}
	}

	return 0
}

// result copies the assignment into a caller-owned map.
func (s *search[V]) result() map[V]Color {
	out := make(map[V]Color, len(s.order))
	for i, v := range s.order {
		out[v] = s.assigned[i]
	}

	return out
}
