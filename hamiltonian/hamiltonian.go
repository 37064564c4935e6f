// Package hamiltonian: explicit-stack backtracking cycle search.
package hamiltonian

import (
	"fmt"

	"github.com/katalvlaran/graphx/core"
)

// frame enumerates the extension candidates of one path position.
type frame[V comparable] struct {
	candidates []V
	next       int
}

// Cycle searches g for a Hamiltonian cycle and returns its vertices in
// visiting order; closure back to the first element is implied, so the
// result always has exactly VertexCount entries. The start is fixed at
// the first inserted vertex. g is never mutated.
func Cycle[V comparable](g *core.Graph[V], opts ...Option) ([]V, error) {
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

	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, ErrEmptyGraph
	}
	for _, v := range vertices {
		if g.HasEdge(v, v) {
			return nil, fmt.Errorf("%w: at %v", ErrSelfLoop, v)
		}
	}

	n := len(vertices)
	start := vertices[0]
	path := make([]V, 0, n)
	path = append(path, start)
	onPath := make(map[V]bool, n)
	onPath[start] = true

	startNbrs, err := g.Neighbors(start)
	if err != nil {
		return nil, fmt.Errorf("hamiltonian: neighbors of %v: %w", start, err)
	}
	stack := make([]frame[V], 0, n)
	stack = append(stack, frame[V]{candidates: startNbrs})

	steps := 0
	for {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		// A full path closes the cycle only if the last vertex reaches
		// the start; otherwise it is a dead end like any other.
		if len(path) == n {
			if g.HasEdge(path[n-1], start) {
				return append([]V(nil), path...), nil
			}
			path, stack = pop(path, stack, onPath)
			if len(stack) == 0 {
				return nil, ErrNoHamiltonianCycle
			}
			continue
		}

		top := &stack[len(stack)-1]
		if top.next >= len(top.candidates) {
			path, stack = pop(path, stack, onPath)
			if len(stack) == 0 {
				return nil, ErrNoHamiltonianCycle
			}
			continue
		}

		cand := top.candidates[top.next]
		top.next++
		if onPath[cand] {
			continue
		}

		steps++
		if o.MaxSteps > 0 && steps > o.MaxSteps {
			return nil, fmt.Errorf("%w: after %d extensions", ErrStepLimit, o.MaxSteps)
		}

		nbrs, err := g.Neighbors(cand)
		if err != nil {
			return nil, fmt.Errorf("hamiltonian: neighbors of %v: %w", cand, err)
		}
		path = append(path, cand)
		onPath[cand] = true
		stack = append(stack, frame[V]{candidates: nbrs})
	}
}

// pop removes the deepest path vertex and its candidate frame.
func pop[V comparable](path []V, stack []frame[V], onPath map[V]bool) ([]V, []frame[V]) {
	last := path[len(path)-1]
	delete(onPath, last)

	return path[:len(path)-1], stack[:len(stack)-1]
}
