// Package eulerian: parity/connectivity preconditions and Hierholzer
// circuit construction.
package eulerian

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphx/core"
)

// Sentinel errors for Eulerian circuit construction.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("eulerian: graph is nil")

	// ErrNoEulerianCycle is the definite negative: a degree or
	// connectivity precondition fails, so no circuit exists.
	ErrNoEulerianCycle = errors.New("eulerian: no eulerian cycle")
)

// Circuit returns a closed walk over g using every edge exactly once,
// as a vertex sequence whose first vertex is repeated at the end; a
// walk over E edges has E+1 entries. A graph without edges yields an
// empty walk. g is never mutated.
func Circuit[V comparable](g *core.Graph[V]) ([]V, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// Restrict to edge-bearing vertices; isolated ones are irrelevant.
	var active []V
	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		if err != nil {
			return nil, fmt.Errorf("eulerian: degree of %v: %w", v, err)
		}
		if d > 0 {
			active = append(active, v)
		}
	}
	if len(active) == 0 {
		return []V{}, nil // trivial empty walk
	}

	if err := checkDegrees(g, active); err != nil {
		return nil, err
	}
	if err := checkConnected(g, active); err != nil {
		return nil, err
	}

	return hierholzer(g, active[0]), nil
}

// checkDegrees verifies even degree (undirected) or balanced in/out
// degree (directed) for every edge-bearing vertex.
func checkDegrees[V comparable](g *core.Graph[V], active []V) error {
	for _, v := range active {
		if g.Directed() {
			in, err := g.InDegree(v)
			if err != nil {
				return fmt.Errorf("eulerian: in-degree of %v: %w", v, err)
			}
			out, err := g.OutDegree(v)
			if err != nil {
				return fmt.Errorf("eulerian: out-degree of %v: %w", v, err)
			}
			if in != out {
				return fmt.Errorf("%w: vertex %v has in-degree %d, out-degree %d", ErrNoEulerianCycle, v, in, out)
			}
			continue
		}
		d, err := g.Degree(v)
		if err != nil {
			return fmt.Errorf("eulerian: degree of %v: %w", v, err)
		}
		if d%2 != 0 {
			return fmt.Errorf("%w: vertex %v has odd degree %d", ErrNoEulerianCycle, v, d)
		}
	}

	return nil
}

// checkConnected verifies the edge-bearing subgraph is connected, and
// strongly connected for directed graphs (forward plus reverse sweep).
func checkConnected[V comparable](g *core.Graph[V], active []V) error {
	if n := sweep(g, active[0], len(active), (*core.Graph[V]).Neighbors); n != len(active) {
		return fmt.Errorf("%w: graph not connected (%d of %d vertices reachable)", ErrNoEulerianCycle, n, len(active))
	}
	if g.Directed() {
		if n := sweep(g, active[0], len(active), (*core.Graph[V]).Predecessors); n != len(active) {
			return fmt.Errorf("%w: graph not strongly connected", ErrNoEulerianCycle)
		}
	}

	return nil
}

// sweep counts vertices reachable from start via the given adjacency
// accessor. Edge-bearing vertices only ever reach edge-bearing ones.
func sweep[V comparable](g *core.Graph[V], start V, capHint int, next func(*core.Graph[V], V) ([]V, error)) int {
	visited := make(map[V]bool, capHint)
	visited[start] = true
	queue := []V{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		ns, err := next(g, v)
		if err != nil {
			continue // vertex vanished mid-sweep is impossible here
		}
		for _, n := range ns {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}

	return len(visited)
}

// hierholzer builds the circuit over a scratch copy of the adjacency:
// follow unused edges until stuck, emit while unwinding. Emitting on
// unwind splices every sub-circuit into place; reversing at the end
// restores forward direction.
func hierholzer[V comparable](g *core.Graph[V], start V) []V {
	local := make(map[V][]V, g.VertexCount())
	for _, v := range g.Vertices() {
		ns, err := g.Neighbors(v)
		if err != nil {
			continue
		}
		local[v] = ns // Neighbors already returns a copy
	}

	var circuit []V
	stack := []V{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		if len(local[u]) == 0 {
			// no unused edges left here: backtrack
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]
			continue
		}
		// consume one edge u→v
		v := local[u][len(local[u])-1]
		local[u] = local[u][:len(local[u])-1]
		if !g.Directed() && u != v {
			// drop the mirrored entry v→u
			for i, x := range local[v] {
				if x == u {
					local[v] = append(local[v][:i], local[v][i+1:]...)
					break
				}
			}
		}
		stack = append(stack, v)
	}

	// reverse into forward order
	for i, j := 0, len(circuit)-1; i < j; i, j = i+1, j-1 {
		circuit[i], circuit[j] = circuit[j], circuit[i]
	}

	return circuit
}
