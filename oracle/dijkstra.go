package oracle

import (
	"github.com/deltastepping/dstep/delta"
	"github.com/deltastepping/dstep/utils"
)

// Dijkstra is the serial reference solver used only as a test oracle,
// checked against the parallel solver's output. It is intentionally not
// part of the core: no parallelism, no bucket fusion, no CAS — just a
// binary heap.
//
// Grounded on utils.PQ (utils/priority-queue.go), a generic
// container/heap-style binary heap, reused here instead of re-implementing
// one from scratch.
func Dijkstra[W delta.Weight](g delta.Graph[W], source delta.VID) []W {
	n := g.NumVertices()
	inf := delta.Infinity[W]()
	dist := make([]W, n)
	for i := range dist {
		dist[i] = inf
	}
	dist[source] = 0

	visited := make([]bool, n)
	pq := utils.PQ[pqItem[W]]{{vertex: source, dist: 0}}
	pq.Init()

	for len(pq) > 0 {
		top := pq.Pop()
		u := top.vertex
		if visited[u] {
			continue
		}
		if top.dist != dist[u] {
			continue // stale heap entry from before an improvement.
		}
		visited[u] = true

		for _, e := range g.OutNeighbors(u) {
			nd := dist[u] + e.Weight
			if nd < dist[e.To] {
				dist[e.To] = nd
				pq.Push(pqItem[W]{vertex: e.To, dist: nd})
			}
		}
	}
	return dist
}

type pqItem[W delta.Weight] struct {
	vertex delta.VID
	dist   W
}

func (a pqItem[W]) Less(b pqItem[W]) bool { return a.dist < b.dist }
