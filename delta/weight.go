package delta

import (
	"math"
	"sync/atomic"
	"unsafe"
)

// Weight is the edge/distance scalar. Two build configurations are
// supported, matching the two native 32-bit types the CAS tricks below
// know how to operate on.
type Weight interface {
	~int32 | ~float32
}

// VID is a dense vertex identifier in [0, N).
type VID = uint32

// Infinity returns the distance sentinel MAX/2 for W, chosen so that one
// real distance plus one edge weight can never reach it.
func Infinity[W Weight]() W {
	var zero W
	switch any(zero).(type) {
	case int32:
		v := int32(math.MaxInt32 / 2)
		return any(v).(W)
	case float32:
		v := float32(math.MaxFloat32 / 2)
		return any(v).(W)
	default:
		panic("delta: unsupported weight type")
	}
}

// binIndex returns floor(w / delta) as a bin number. delta is guaranteed
// positive by the caller (checked once in Solve).
func binIndex[W Weight](w, delta W) int {
	switch v := any(w).(type) {
	case int32:
		d := any(delta).(int32)
		return int(v / d)
	case float32:
		d := any(delta).(float32)
		return int(math.Floor(float64(v) / float64(d)))
	default:
		panic("delta: unsupported weight type")
	}
}

// binLowerBound returns delta*b as a W, the lower edge of bin b — used by
// Phase A's stale filter (D[u] >= delta*S[cur]).
func binLowerBound[W Weight](b int32, delta W) W {
	return W(b) * delta
}

// loadWeight atomically loads *addr.
//
//go:nosplit
func loadWeight[W Weight](addr *W) (out W) {
	switch any(out).(type) {
	case int32:
		bits := atomic.LoadInt32((*int32)(unsafe.Pointer(addr)))
		return *(*W)(unsafe.Pointer(&bits))
	case float32:
		bits := atomic.LoadUint32((*uint32)(unsafe.Pointer(addr)))
		return *(*W)(unsafe.Pointer(&bits))
	default:
		panic("delta: unsupported weight type")
	}
}

// casWeight performs a lock-free compare-and-swap on *addr: for int32 this
// is a plain CAS, for float32 it is a bit-pattern CAS compared as the
// underlying uint32 (the driver only ever calls this with non-NaN finite
// values, so bit equality and float equality coincide).
//
//go:nosplit
func casWeight[W Weight](addr *W, old, new W) bool {
	switch any(old).(type) {
	case int32:
		oldI := *(*int32)(unsafe.Pointer(&old))
		newI := *(*int32)(unsafe.Pointer(&new))
		return atomic.CompareAndSwapInt32((*int32)(unsafe.Pointer(addr)), oldI, newI)
	case float32:
		oldU := *(*uint32)(unsafe.Pointer(&old))
		newU := *(*uint32)(unsafe.Pointer(&new))
		return atomic.CompareAndSwapUint32((*uint32)(unsafe.Pointer(addr)), oldU, newU)
	default:
		panic("delta: unsupported weight type")
	}
}
