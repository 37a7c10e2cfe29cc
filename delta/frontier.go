package delta

import (
	"math"
	"sync/atomic"
)

// NoBin is the terminal sentinel: when it survives Phase C's vote, the
// driver terminates.
const NoBin = int32(math.MaxInt32 / 2)

// frontier is the shared, double-buffered vertex set F[0], F[1]. In
// iteration i, buf[i&1] holds the current bin's vertices and buf[(i+1)&1]
// accumulates the next bin's; tail[x] is the atomic write cursor
// (valid-prefix length) for buf[x].
//
// Both buffers are preallocated to capacity >= numOutEdges, since the total
// number of successful relaxations across the run is bounded by the edge
// count — capacity only needs to suffice, not equal E exactly.
type frontier struct {
	buf  [2][]VID
	tail [2]atomic.Uint64

	// pop is each buffer's Phase-A claim cursor. It is only ever live while
	// that buffer plays the "cur" role, and is reset to 0 by the same
	// single-worker side effect that resets tail[cur] — by the time the
	// buffer becomes "cur" again, two iterations later, it is ready.
	pop [2]atomic.Uint64
}

func newFrontier(capacity uint64, source VID) *frontier {
	if capacity == 0 {
		capacity = 1
	}
	f := &frontier{}
	f.buf[0] = make([]VID, capacity)
	f.buf[1] = make([]VID, capacity)
	f.buf[0][0] = source
	f.tail[0].Store(1)
	return f
}

// current returns buf[cur] cut to its valid prefix tail[cur]: the vertices
// of bin S[cur].
func (f *frontier) current(cur int) []VID {
	return f.buf[cur][:f.tail[cur].Load()]
}

// reserve atomically claims n contiguous slots in buf[nxt] and returns the
// starting offset (Phase D's fetch_and_add).
func (f *frontier) reserve(nxt int, n int) int {
	start := f.tail[nxt].Add(uint64(n)) - uint64(n)
	return int(start)
}

// reset zeroes tail[x] and pop[x], preparing that buffer to be used as
// "next" and, later, "cur" again (the Phase-C single-worker side effect).
func (f *frontier) reset(x int) {
	f.tail[x].Store(0)
	f.pop[x].Store(0)
}

// claim reserves up to chunk vertices from buf[cur][0:curLen] for Phase A's
// dynamic work-stealing loop. Returns a sub-slice and ok=false once the
// buffer is exhausted.
func (f *frontier) claim(cur int, curLen int, chunk int) (work []VID, ok bool) {
	start := int(f.pop[cur].Add(uint64(chunk))) - chunk
	if start >= curLen {
		return nil, false
	}
	end := start + chunk
	if end > curLen {
		end = curLen
	}
	return f.buf[cur][start:end], true
}

// sharedBin holds the double-buffered bin-index state S[0], S[1].
type sharedBin struct {
	s [2]atomic.Int32
}

func newSharedBin() *sharedBin {
	sb := &sharedBin{}
	sb.s[0].Store(0)
	sb.s[1].Store(NoBin)
	return sb
}

func (sb *sharedBin) get(x int) int32 {
	return sb.s[x].Load()
}

func (sb *sharedBin) set(x int, v int32) {
	sb.s[x].Store(v)
}

// voteMin performs a true atomic min (a CAS loop, not load-then-store) on
// S[nxt]: load-then-store would lose a concurrent lower vote in the race
// window between the two.
func (sb *sharedBin) voteMin(nxt int, candidate int32) {
	for {
		old := sb.s[nxt].Load()
		if candidate >= old {
			return
		}
		if sb.s[nxt].CompareAndSwap(old, candidate) {
			return
		}
	}
}
