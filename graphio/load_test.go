package graphio

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEdgeList(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.el")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadEdgeListInt32(t *testing.T) {
	path := writeEdgeList(t, "# comment\n0 1 2\n1 2 3\n2 3 1\n")
	g := LoadEdgeListInt32(path, false)
	if g.NumVertices() != 4 {
		t.Fatalf("NumVertices: got %d want 4", g.NumVertices())
	}
	if g.NumOutEdges() != 3 {
		t.Fatalf("NumOutEdges: got %d want 3", g.NumOutEdges())
	}
}

func TestLoadEdgeListDefaultsWeightToOne(t *testing.T) {
	path := writeEdgeList(t, "0 1\n")
	g := LoadEdgeListInt32(path, false)
	out := g.OutNeighbors(0)
	if len(out) != 1 || out[0].Weight != 1 {
		t.Fatalf("expected a single weight-1 edge, got %v", out)
	}
}

func TestLoadEdgeListUndirectedAddsReverse(t *testing.T) {
	path := writeEdgeList(t, "0 1 5\n")
	g := LoadEdgeListInt32(path, true)
	if g.NumOutEdges() != 2 {
		t.Fatalf("NumOutEdges: got %d want 2", g.NumOutEdges())
	}
	if len(g.OutNeighbors(1)) != 1 {
		t.Fatalf("expected the reverse edge on vertex 1")
	}
}

func TestLoadEdgeListFloat32(t *testing.T) {
	path := writeEdgeList(t, "0 1 1.5\n")
	g := LoadEdgeListFloat32(path, false)
	out := g.OutNeighbors(0)
	if len(out) != 1 || out[0].Weight != 1.5 {
		t.Fatalf("expected a single weight-1.5 edge, got %v", out)
	}
}
