package delta

import (
	"sync"
	"time"
)

// Solve runs the parallel Δ-stepping solver to completion and returns the
// tentative-distance vector:
//
//	solve(graph, source, delta, logging) -> distances
//
// Preconditions: 0 <= source < N, delta > 0, all edge weights >= 0 (the
// last is validated upfront only if Options.ValidateWeights is set — it is
// undefined behaviour otherwise). On success, D[v] is the length of the
// shortest path from source to v, or Infinity[W]() if v is unreachable.
func Solve[W Weight](g Graph[W], source VID, delta W, opts Options) (*Distances[W], Stats, error) {
	n := g.NumVertices()
	var zero W
	if delta <= zero {
		return nil, Stats{}, ErrInvalidDelta
	}
	if source >= n {
		return nil, Stats{}, ErrSourceOutOfRange(source, n)
	}
	if opts.ValidateWeights {
		for u := VID(0); u < n; u++ {
			for _, e := range g.OutNeighbors(u) {
				if e.Weight < zero {
					return nil, Stats{}, &NegativeWeightError{From: u, To: e.To}
				}
			}
		}
	}

	d := NewDistances[W](n)
	d.d[source] = zero

	f := newFrontier(g.NumOutEdges(), source)
	sb := newSharedBin()

	P := opts.workers()
	chunk := opts.chunkSize()
	fusionMax := opts.fusionMax()

	lbs := make([]LocalBins, P)
	br := newBarrier(P)
	stats := make([]workerStats, P)
	step := opts.Step
	if step == nil {
		step = defaultStep
	}

	var wg sync.WaitGroup
	wg.Add(P)
	for t := 0; t < P; t++ {
		go func(tidx int) {
			defer wg.Done()
			runWorker(g, d, f, sb, &lbs[tidx], br, tidx, P, chunk, fusionMax, delta, &stats[tidx], opts, step)
		}(t)
	}
	wg.Wait()

	result := Stats{}
	if opts.CollectStats {
		result = summarizeStats(stats)
	}
	return d, result, nil
}

// runWorker is the body of one of the P goroutines spawned by Solve. All P
// workers execute this function concurrently for the lifetime of the
// solve; the only suspension points are the two barriers per iteration.
func runWorker[W Weight](
	g Graph[W], d *Distances[W], f *frontier, sb *sharedBin, lb *LocalBins,
	br *barrier, tidx, P, chunk, fusionMax int, delta W,
	ws *workerStats, opts Options, step OnStep,
) {
	var iterStart time.Time
	var iterBin int32
	var iterFrontierLen int

	for iter := 0; ; iter++ {
		cur := iter & 1
		nxt := (iter + 1) & 1

		curBin := sb.get(cur)
		if curBin == NoBin {
			return // Termination: no bin has work.
		}

		if tidx == 0 && opts.Logging {
			iterStart = time.Now()
			iterBin = curBin
			iterFrontierLen = int(f.tail[cur].Load())
		}

		// Phase A: drain the current shared bin, dynamically chunked, no
		// implicit barrier at loop end.
		t0 := time.Now()
		curSlice := f.current(cur)
		curLen := len(curSlice)
		lowerBound := binLowerBound(curBin, delta)
		for {
			work, ok := f.claim(cur, curLen, chunk)
			if !ok {
				break
			}
			for _, u := range work {
				if d.At(u) < lowerBound {
					continue // stale: u's distance has fallen into a lower bin since enqueue.
				}
				relax(g, d, lb, delta, u)
				ws.relaxations++
			}
		}
		ws.add(phaseCurrentBucket, time.Since(t0))

		// Phase B: bucket fusion. Still without a barrier, repeatedly drain
		// this worker's own bin for the current priority level while it
		// stays below FUSION_MAX, extending the priority level with purely
		// local work. No stale filter here, accepting minor redundant work.
		t1 := time.Now()
		for {
			batch := lb.At(int(curBin))
			if len(batch) == 0 || len(batch) >= fusionMax {
				break
			}
			snapshot := lb.Take(int(curBin))
			for _, u := range snapshot {
				relax(g, d, lb, delta, u)
				ws.relaxations++
			}
		}
		ws.add(phaseFusion, time.Since(t1))

		// Phase C: vote for the next bin. Each worker scans its own bins
		// from curBin upward and atomically lowers S[nxt] to the smallest
		// nonempty index found.
		if b, ok := lb.firstNonEmptyFrom(int(curBin)); ok {
			sb.voteMin(nxt, int32(b))
		}

		t2 := time.Now()
		br.wait(tidx, func() {
			// Single-worker side effect between barrier 1 and barrier 2:
			// prepare buffer cur to be reused as "next".
			sb.set(cur, NoBin)
			f.reset(cur)
		})
		ws.add(phaseBarriers, time.Since(t2))

		// Phase D: copy this worker's contribution for bin S[nxt] into the
		// shared frontier F[nxt].
		t3 := time.Now()
		nextBin := sb.get(nxt)
		if nextBin != NoBin && int(nextBin) < lb.Len() {
			batch := lb.Take(int(nextBin))
			if len(batch) > 0 {
				start := f.reserve(nxt, len(batch))
				copy(f.buf[nxt][start:], batch)
			}
		}
		ws.add(phaseCopy, time.Since(t3))

		br.wait(tidx, nil) // Barrier 2, ending the iteration.

		if tidx == 0 && opts.Logging {
			step(int(iterBin), time.Since(iterStart).Milliseconds(), iterFrontierLen)
		}
	}
}
