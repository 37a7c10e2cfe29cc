package delta

// relax: for every out-edge (v, w) of u, attempt to lower D[v] to D[u]+w
// via a CAS loop, and on success enqueue v into the relaxing worker's
// local bin for its new distance. Duplicates across bins are expected and
// benign; a vertex is never removed from a bin it was previously placed
// in — staleness is resolved entirely at pop time (Phase A's filter).
func relax[W Weight](g Graph[W], d *Distances[W], lb *LocalBins, delta W, u VID) {
	du := d.At(u) // monotone; a stale (too-large) read only weakens this pass.
	for _, e := range g.OutNeighbors(u) {
		nd := du + e.Weight
		relaxEdge(d, lb, delta, e.To, nd)
	}
}

// relaxEdge is the CAS loop for one candidate distance nd of v. relax calls
// it once per out-edge; Phase A and bucket fusion both reach it through
// relax.
func relaxEdge[W Weight](d *Distances[W], lb *LocalBins, delta W, v VID, nd W) {
	addr := &d.d[v]
	for {
		od := loadWeight(addr)
		if nd >= od {
			return
		}
		if casWeight(addr, od, nd) {
			b := binIndex(nd, delta)
			lb.Append(b, v)
			return
		}
		// CAS failed: another worker improved or raced us. Re-read and retry.
	}
}
