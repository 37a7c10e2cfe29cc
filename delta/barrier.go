package delta

// barrier is a reusable (cyclic) rendezvous point for a fixed pool of n
// workers, generalizing graph.SuperStepWaiter's per-superstep rendezvous
// (which channel-signals a single "done" worker and fans back out with
// "resume" messages) into something that can be called twice per loop
// iteration without respawning goroutines, since the whole solve runs as
// one parallel region.
type barrier struct {
	n            int
	doneMessages chan struct{}
	release      chan struct{}
}

func newBarrier(n int) *barrier {
	return &barrier{
		n:            n,
		doneMessages: make(chan struct{}, n),
		release:      make(chan struct{}),
	}
}

// wait blocks every worker until all n have arrived. Worker 0 additionally
// runs single right between the last arrival and the release of the other
// workers — this is where the current-buffer reset happens, so that by the
// time any worker proceeds past wait, S[cur] == NoBin and tail[cur] == 0
// are both visible.
func (b *barrier) wait(tidx int, single func()) {
	if tidx == 0 {
		for i := 1; i < b.n; i++ {
			<-b.doneMessages
		}
		if single != nil {
			single()
		}
		// Install a fresh release channel before closing the old one, so a
		// worker that races ahead to its next wait blocks on the new one.
		old := b.release
		b.release = make(chan struct{})
		close(old)
		return
	}
	release := b.release
	b.doneMessages <- struct{}{}
	<-release
}
