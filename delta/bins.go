package delta

// LocalBins is a worker's private, growable sequence of bins. Only the
// owning worker ever touches it — no synchronization needed.
type LocalBins struct {
	bins [][]VID
}

// ensure grows bins so that index b is valid, padding with empty (nil)
// bins in between.
func (lb *LocalBins) ensure(b int) {
	for len(lb.bins) <= b {
		lb.bins = append(lb.bins, nil)
	}
}

// Append adds v to bin b, growing the bin vector as needed.
func (lb *LocalBins) Append(b int, v VID) {
	lb.ensure(b)
	lb.bins[b] = append(lb.bins[b], v)
}

// Len returns the number of bins currently allocated (not all nonempty).
func (lb *LocalBins) Len() int {
	return len(lb.bins)
}

// At returns bin b's contents, or nil if b is beyond the allocated range.
func (lb *LocalBins) At(b int) []VID {
	if b < 0 || b >= len(lb.bins) {
		return nil
	}
	return lb.bins[b]
}

// Clear empties bin b in place, keeping its backing capacity for reuse.
func (lb *LocalBins) Clear(b int) {
	if b >= 0 && b < len(lb.bins) {
		lb.bins[b] = lb.bins[b][:0]
	}
}

// Take removes and returns bin b's contents, replacing it with a fresh
// empty slice (used by bucket fusion, which must snapshot-then-clear
// atomically with respect to its own later appends into the same bin).
func (lb *LocalBins) Take(b int) []VID {
	if b < 0 || b >= len(lb.bins) {
		return nil
	}
	got := lb.bins[b]
	lb.bins[b] = nil
	return got
}

// firstNonEmptyFrom scans upward from index from and returns the smallest
// bin index >= from that is nonempty, or (0, false) if none exists. Used by
// Phase C's bin-selection vote.
func (lb *LocalBins) firstNonEmptyFrom(from int) (int, bool) {
	for b := from; b < len(lb.bins); b++ {
		if len(lb.bins[b]) > 0 {
			return b, true
		}
	}
	return 0, false
}
