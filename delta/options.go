package delta

import "runtime"

// defaultChunkSize is the recommended dynamic work-stealing chunk for
// Phase A.
const defaultChunkSize = 64

// defaultFusionMax is the recommended bucket-fusion size threshold.
const defaultFusionMax = 1000

// OnStep is the logging hook: invoked once per iteration by a single
// worker when logging is enabled. There is no ordering requirement with
// other iterations' callbacks.
type OnStep func(binIndex int, elapsed_ms int64, frontierSize int)

// Options configures a solve. The zero value is valid: every field falls
// back to a sensible default.
//
// Deliberately not a package-level mutable variable (unlike graph.THREADS)
// — see DESIGN.md's Open Questions — since Solve is a library entry point
// that may run more than once, with different settings, concurrently.
type Options struct {
	// Workers is the fixed worker-pool size. Zero means
	// runtime.GOMAXPROCS(0).
	Workers int

	// ChunkSize is Phase A's dynamic work-stealing chunk size. Zero means
	// the recommended default of 64.
	ChunkSize int

	// FusionMax bounds bucket fusion's per-worker drain size (Phase B).
	// Zero means the recommended default of 1000.
	FusionMax int

	// ValidateWeights, when true, makes Solve scan all edges upfront and
	// return a *NegativeWeightError instead of invoking undefined
	// behaviour on a negative-weight edge.
	ValidateWeights bool

	// CollectStats makes Solve return the relaxation count and per-phase
	// timings summarized in Stats (stats.go). Workers accumulate the
	// counters either way; when false, Solve returns a zero Stats.
	CollectStats bool

	// Logging enables the OnStep hook below. If Step is nil, a zerolog
	// Debug line is emitted instead (see logging.go).
	Logging bool
	Step    OnStep
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (o Options) chunkSize() int {
	if o.ChunkSize > 0 {
		return o.ChunkSize
	}
	return defaultChunkSize
}

func (o Options) fusionMax() int {
	if o.FusionMax > 0 {
		return o.FusionMax
	}
	return defaultFusionMax
}
