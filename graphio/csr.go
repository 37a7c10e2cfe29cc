package graphio

import "github.com/deltastepping/dstep/delta"

// CSR is a flat, read-only compressed-sparse-row adjacency view. It is the
// reference implementation of delta.Graph[W].
//
// Unlike graph.Graph (a vertex-centric structure carrying per-vertex
// mailboxes, scratch state, and message queues for a BSP execution
// model), a Δ-stepping solve needs nothing per vertex beyond its out-edges:
// CSR is intentionally the flattest possible representation.
type CSR[W delta.Weight] struct {
	offsets []uint64      // len N+1; edges of u are edges[offsets[u]:offsets[u+1]]
	edges   []delta.Edge[W]
}

func (g *CSR[W]) NumVertices() delta.VID { return delta.VID(len(g.offsets) - 1) }
func (g *CSR[W]) NumOutEdges() uint64    { return uint64(len(g.edges)) }

func (g *CSR[W]) OutNeighbors(u delta.VID) []delta.Edge[W] {
	return g.edges[g.offsets[u]:g.offsets[u+1]]
}

// Builder accumulates edges in any order (including multi-edges and
// self-loops, both tolerated by the solver) and compiles them into a CSR.
// This two-phase build mirrors graph/io.go's BuildMap-then-populate loader
// shape without its concurrent vertex-mailbox plumbing, since a flat
// adjacency array has no per-vertex state to initialize up front besides
// the offset table.
type Builder[W delta.Weight] struct {
	n     delta.VID
	lists [][]delta.Edge[W]
}

// NewBuilder preallocates n empty out-edge lists.
func NewBuilder[W delta.Weight](n delta.VID) *Builder[W] {
	return &Builder[W]{n: n, lists: make([][]delta.Edge[W], n)}
}

// AddEdge appends a directed edge u->v with weight w. Grows the vertex
// count if u or v is out of the range passed to NewBuilder.
func (b *Builder[W]) AddEdge(u, v delta.VID, w W) {
	b.grow(u)
	b.grow(v)
	b.lists[u] = append(b.lists[u], delta.Edge[W]{To: v, Weight: w})
}

func (b *Builder[W]) grow(v delta.VID) {
	if v < b.n {
		return
	}
	for b.n <= v {
		b.lists = append(b.lists, nil)
		b.n++
	}
}

// Build compiles the accumulated edge lists into a CSR.
func (b *Builder[W]) Build() *CSR[W] {
	offsets := make([]uint64, b.n+1)
	var total uint64
	for u := delta.VID(0); u < b.n; u++ {
		offsets[u] = total
		total += uint64(len(b.lists[u]))
	}
	offsets[b.n] = total

	edges := make([]delta.Edge[W], total)
	pos := 0
	for u := delta.VID(0); u < b.n; u++ {
		copy(edges[pos:], b.lists[u])
		pos += len(b.lists[u])
	}
	return &CSR[W]{offsets: offsets, edges: edges}
}
