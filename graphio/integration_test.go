package graphio

import (
	"testing"

	"github.com/deltastepping/dstep/delta"
	"github.com/deltastepping/dstep/oracle"
)

// End-to-end scenario 6 (spec.md §8): on a random graph, the parallel
// solver must match the serial oracle exactly across several deltas and
// thread counts (P4 correctness, P5 delta-independence, P7 thread-count
// independence).
func TestSolveMatchesOracleAcrossDeltaAndThreads(t *testing.T) {
	g := RandomGraphInt32(2000, 16000, 1, 100, 12345)
	want := oracle.Dijkstra[int32](g, 0)

	for _, d := range []int32{1, 4, 64} {
		for _, p := range []int{1, 4, 16} {
			got, _, err := delta.Solve[int32](g, 0, d, delta.Options{Workers: p})
			if err != nil {
				t.Fatalf("delta=%d workers=%d: Solve: %v", d, p, err)
			}
			for v := delta.VID(0); v < g.NumVertices(); v++ {
				if got.At(v) != want[v] {
					t.Fatalf("delta=%d workers=%d vertex=%d: got %d want %d", d, p, v, got.At(v), want[v])
				}
			}
		}
	}
}

// P6: running the same (graph, source, delta) twice yields identical
// results, regardless of goroutine interleaving.
func TestSolveDeterministicAcrossRuns(t *testing.T) {
	g := RandomGraphInt32(500, 3000, 1, 50, 7)
	a, _, err := delta.Solve[int32](g, 0, 5, delta.Options{Workers: 8})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	b, _, err := delta.Solve[int32](g, 0, 5, delta.Options{Workers: 8})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	for v := delta.VID(0); v < g.NumVertices(); v++ {
		if a.At(v) != b.At(v) {
			t.Fatalf("vertex %d: run 1 got %d, run 2 got %d", v, a.At(v), b.At(v))
		}
	}
}
