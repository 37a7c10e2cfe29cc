package delta

import "math/rand"

// PickSource picks a source uniformly at random from vertices with
// nonzero out-degree via rejection sampling, using a caller-seeded RNG for
// reproducibility. Panics only if the graph has no vertex with an
// out-edge at all (there is then no valid source to pick).
func PickSource[W Weight](g Graph[W], seed int64) VID {
	n := g.NumVertices()
	r := rand.New(rand.NewSource(seed))
	for attempt := 0; attempt < 4*int(n)+16; attempt++ {
		v := VID(r.Intn(int(n)))
		if len(g.OutNeighbors(v)) > 0 {
			return v
		}
	}
	// Fallback: linear scan, for graphs where nonzero-out-degree vertices
	// are sparse enough that rejection sampling above is unlucky.
	for v := VID(0); v < n; v++ {
		if len(g.OutNeighbors(v)) > 0 {
			return v
		}
	}
	panic("delta: graph has no vertex with an out-edge")
}
