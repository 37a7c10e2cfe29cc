package graphio

import (
	"math/rand"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/deltastepping/dstep/delta"
)

// RandomGraphInt32 builds a random weighted directed graph with n vertices
// and up to m distinct edges, weights uniform in [minW, maxW]. Grounded on
// cmd/lp-sssp/rand-graph.go's use of gonum/graph/simple for graph
// construction, generalized from that file's fixed weight-1 edges to the
// weighted case this solver needs, and switched from a timestamp-commands
// generator (meant for a dynamic/incremental variant, out of scope here)
// to a single static build.
func RandomGraphInt32(n int, m int, minW, maxW int32, seed int64) *CSR[int32] {
	r := rand.New(rand.NewSource(seed))
	g := simple.NewWeightedDirectedGraph(0, 0)
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}

	b := NewBuilder[int32](delta.VID(n))
	added := 0
	for added < m && g.WeightedEdges().Len() < n*(n-1) {
		src, dst := int64(r.Intn(n)), int64(r.Intn(n))
		if src == dst || g.HasEdgeFromTo(src, dst) {
			continue
		}
		w := minW
		if maxW > minW {
			w = minW + int32(r.Intn(int(maxW-minW+1)))
		}
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(src), simple.Node(dst), float64(w)))
		b.AddEdge(delta.VID(src), delta.VID(dst), w)
		added++
	}
	return b.Build()
}

// RandomGraphFloat32 is RandomGraphInt32's floating-point-weight sibling.
func RandomGraphFloat32(n int, m int, minW, maxW float32, seed int64) *CSR[float32] {
	r := rand.New(rand.NewSource(seed))
	g := simple.NewWeightedDirectedGraph(0, 0)
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}

	b := NewBuilder[float32](delta.VID(n))
	added := 0
	for added < m && g.WeightedEdges().Len() < n*(n-1) {
		src, dst := int64(r.Intn(n)), int64(r.Intn(n))
		if src == dst || g.HasEdgeFromTo(src, dst) {
			continue
		}
		w := minW + r.Float32()*(maxW-minW)
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(src), simple.Node(dst), float64(w)))
		b.AddEdge(delta.VID(src), delta.VID(dst), w)
		added++
	}
	return b.Build()
}
