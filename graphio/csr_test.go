package graphio

import (
	"testing"

	"github.com/deltastepping/dstep/delta"
)

func TestBuilderCompilesOffsets(t *testing.T) {
	b := NewBuilder[int32](3)
	b.AddEdge(0, 1, 2)
	b.AddEdge(0, 2, 4)
	b.AddEdge(1, 2, 1)
	g := b.Build()

	if g.NumVertices() != 3 {
		t.Fatalf("NumVertices: got %d want 3", g.NumVertices())
	}
	if g.NumOutEdges() != 3 {
		t.Fatalf("NumOutEdges: got %d want 3", g.NumOutEdges())
	}
	out0 := g.OutNeighbors(0)
	if len(out0) != 2 {
		t.Fatalf("OutNeighbors(0): got %d edges, want 2", len(out0))
	}
	out2 := g.OutNeighbors(2)
	if len(out2) != 0 {
		t.Fatalf("OutNeighbors(2): got %d edges, want 0", len(out2))
	}
}

// A vertex referenced only as an edge destination beyond the vertex count
// passed to NewBuilder must still grow the vertex set.
func TestBuilderGrowsOnOutOfRangeVertex(t *testing.T) {
	b := NewBuilder[int32](1)
	b.AddEdge(0, 5, 1)
	g := b.Build()
	if g.NumVertices() != 6 {
		t.Fatalf("NumVertices: got %d want 6", g.NumVertices())
	}
}

func TestCSRSatisfiesDeltaGraph(t *testing.T) {
	var _ delta.Graph[int32] = (*CSR[int32])(nil)
	var _ delta.Graph[float32] = (*CSR[float32])(nil)
}
