// Package iso: color refinement over a shared palette.
package iso

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphx/core"
)

// Compare refines g1 and g2 together and reports whether they could be
// isomorphic. The two graphs may use different vertex identifier types;
// refinement works on structure alone. Neither graph is mutated.
func Compare[V1, V2 comparable](g1 *core.Graph[V1], g2 *core.Graph[V2], opts ...Option) (*Result, error) {
	if g1 == nil || g2 == nil {
		return nil, ErrNilGraph
	}
	if g1.Directed() != g2.Directed() {
		return nil, ErrDirectednessMismatch
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if g1.VertexCount() != g2.VertexCount() {
		return &Result{Verdict: NotIsomorphic}, nil
	}

	a := project(g1)
	b := project(g2)
	directed := g1.Directed()

	// Round 0: seed colors from degrees through the shared palette.
	p := newPalette()
	a.seed(p, directed)
	b.seed(p, directed)
	classes := p.size()

	bound := a.n
	if b.n > bound {
		bound = b.n
	}
	if o.MaxRounds > 0 && o.MaxRounds < bound {
		bound = o.MaxRounds
	}

	rounds := 0
	for ; rounds < bound; rounds++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		p = newPalette()
		a.recolor(p, directed)
		b.recolor(p, directed)
		if p.size() == classes {
			rounds++
			break // partition stable: no further refinement possible
		}
		classes = p.size()
	}

	sizesA, histA := a.classes()
	sizesB, histB := b.classes()
	verdict := PossiblyIsomorphic
	if !sameHistogram(histA, histB) {
		verdict = NotIsomorphic
	}

	return &Result{
		Verdict:     verdict,
		Rounds:      rounds,
		ClassSizesA: sizesA,
		ClassSizesB: sizesB,
	}, nil
}

// Possibly is a convenience wrapper returning only whether the verdict
// is PossiblyIsomorphic. A false result is a definite negative.
func Possibly[V1, V2 comparable](g1 *core.Graph[V1], g2 *core.Graph[V2], opts ...Option) (bool, error) {
	res, err := Compare(g1, g2, opts...)
	if err != nil {
		return false, err
	}

	return res.Verdict == PossiblyIsomorphic, nil
}

// refinable is the type-erased positional view refinement runs on.
type refinable struct {
	n     int
	out   [][]int // out-neighbors (all neighbors when undirected)
	in    [][]int // in-neighbors, directed only
	color []int
	next  []int // scratch for the round being computed
}

// project snapshots g into positional form, dropping identifiers.
func project[V comparable](g *core.Graph[V]) *refinable {
	vertices := g.Vertices()
	pos := make(map[V]int, len(vertices))
	for i, v := range vertices {
		pos[v] = i
	}
	r := &refinable{
		n:     len(vertices),
		out:   make([][]int, len(vertices)),
		color: make([]int, len(vertices)),
		next:  make([]int, len(vertices)),
	}
	if g.Directed() {
		r.in = make([][]int, len(vertices))
	}
	for i, v := range vertices {
		ns, err := g.Neighbors(v)
		if err != nil {
			continue
		}
		for _, nb := range ns {
			r.out[i] = append(r.out[i], pos[nb])
		}
		if g.Directed() {
			ps, err := g.Predecessors(v)
			if err != nil {
				continue
			}
			for _, pv := range ps {
				r.in[i] = append(r.in[i], pos[pv])
			}
		}
	}

	return r
}

// seed assigns initial colors from degrees.
func (r *refinable) seed(p *palette, directed bool) {
	var sb strings.Builder
	for i := 0; i < r.n; i++ {
		sb.Reset()
		sb.WriteString(strconv.Itoa(len(r.out[i])))
		if directed {
			sb.WriteByte('/')
			sb.WriteString(strconv.Itoa(len(r.in[i])))
		}
		r.color[i] = p.colorOf(sb.String())
	}
}

// recolor computes one refinement round: each vertex's new color is the
// canonical index of (current color, sorted multiset of neighbor
// colors), with in- and out-neighborhoods kept separate when directed.
func (r *refinable) recolor(p *palette, directed bool) {
	var sb strings.Builder
	for i := 0; i < r.n; i++ {
		sb.Reset()
		sb.WriteString(strconv.Itoa(r.color[i]))
		writeMultiset(&sb, r.colorsOf(r.out[i]))
		if directed {
			sb.WriteByte('<')
			writeMultiset(&sb, r.colorsOf(r.in[i]))
		}
		r.next[i] = p.colorOf(sb.String())
	}
	r.color, r.next = r.next, r.color
}

// colorsOf maps neighbor positions to their current colors, sorted.
func (r *refinable) colorsOf(nbrs []int) []int {
	cs := make([]int, len(nbrs))
	for i, n := range nbrs {
		cs[i] = r.color[n]
	}
	sort.Ints(cs)

	return cs
}

// classes returns the sorted class-size distribution and the raw
// color histogram of the current partition.
func (r *refinable) classes() ([]int, map[int]int) {
	hist := make(map[int]int, r.n)
	for _, c := range r.color {
		hist[c]++
	}
	sizes := make([]int, 0, len(hist))
	for _, n := range hist {
		sizes = append(sizes, n)
	}
	sort.Ints(sizes)

	return sizes, hist
}

// palette canonicalizes signature strings to dense color indices,
// shared between both graphs so their classes stay comparable.
type palette struct {
	table map[string]int
}

func newPalette() *palette {
	return &palette{table: make(map[string]int)}
}

func (p *palette) colorOf(sig string) int {
	if c, ok := p.table[sig]; ok {
		return c
	}
	c := len(p.table)
	p.table[sig] = c

	return c
}

func (p *palette) size() int { return len(p.table) }

// writeMultiset appends a sorted color list as "|c1|c2|...".
func writeMultiset(sb *strings.Builder, cs []int) {
	for _, c := range cs {
		sb.WriteByte('|')
		sb.WriteString(strconv.Itoa(c))
	}
}

// sameHistogram reports whether two color histograms match exactly.
func sameHistogram(a, b map[int]int) bool {
	if len(a) != len(b) {
		return false
	}
	for c, n := range a {
		if b[c] != n {
			return false
		}
	}

	return true
}
