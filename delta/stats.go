package delta

import (
	"time"

	"github.com/deltastepping/dstep/utils"
)

// phase indexes the four cumulative durations tracked per worker.
type phase int

const (
	phaseCurrentBucket phase = iota
	phaseFusion
	phaseCopy
	phaseBarriers
	numPhases
)

// workerStats accumulates one worker's relaxation count and per-phase wall
// time. Only the owning worker writes to it — aggregation across workers
// happens once, after the solve returns.
type workerStats struct {
	relaxations uint64
	elapsed     [numPhases]time.Duration
}

func (ws *workerStats) add(p phase, d time.Duration) {
	ws.elapsed[p] += d
}

// Stats is the solve-level summary: the total relaxation count over all
// workers, each of the four phase durations averaged over workers, and the
// median and 95th-percentile per-worker relaxation counts (a skewed
// distribution here means load imbalance across workers).
type Stats struct {
	Relaxations uint64

	AvgCurrentBucket time.Duration
	AvgFusion        time.Duration
	AvgCopy          time.Duration
	AvgBarriers      time.Duration

	MedianWorkerRelaxations uint64
	P95WorkerRelaxations    uint64
}

func summarizeStats(ws []workerStats) Stats {
	var s Stats
	n := time.Duration(len(ws))
	if n == 0 {
		return s
	}
	var sums [numPhases]time.Duration
	perWorker := make([]uint64, len(ws))
	for i := range ws {
		s.Relaxations += ws[i].relaxations
		perWorker[i] = ws[i].relaxations
		for p := phase(0); p < numPhases; p++ {
			sums[p] += ws[i].elapsed[p]
		}
	}
	s.AvgCurrentBucket = sums[phaseCurrentBucket] / n
	s.AvgFusion = sums[phaseFusion] / n
	s.AvgCopy = sums[phaseCopy] / n
	s.AvgBarriers = sums[phaseBarriers] / n
	s.MedianWorkerRelaxations = utils.Median(perWorker)
	s.P95WorkerRelaxations = utils.Percentile(perWorker, 95)
	return s
}
