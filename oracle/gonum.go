package oracle

import (
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/deltastepping/dstep/delta"
)

// GonumDijkstra is a second, independent oracle built on
// gonum.org/v1/gonum/graph/path.DijkstraFrom, grounded on
// cmd/lp-sssp/rand-graph.go's use of the same function for its reference
// shortest-path reports. Used to cross-check the hand-rolled heap oracle in
// Dijkstra (dijkstra.go) rather than relying on a single oracle
// implementation for correctness checks.
func GonumDijkstra[W delta.Weight](g delta.Graph[W], source delta.VID) []W {
	n := g.NumVertices()
	wg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for v := delta.VID(0); v < n; v++ {
		wg.AddNode(simple.Node(int64(v)))
	}
	for v := delta.VID(0); v < n; v++ {
		for _, e := range g.OutNeighbors(v) {
			wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(int64(v)), simple.Node(int64(e.To)), float64(e.Weight)))
		}
	}

	shortest := path.DijkstraFrom(simple.Node(int64(source)), wg)
	inf := delta.Infinity[W]()
	dist := make([]W, n)
	for v := delta.VID(0); v < n; v++ {
		wt := shortest.WeightTo(int64(v))
		if math.IsInf(wt, 1) {
			dist[v] = inf
			continue
		}
		dist[v] = W(wt)
	}
	return dist
}
