package graphio

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/deltastepping/dstep/delta"
	"github.com/deltastepping/dstep/enforce"
	"github.com/deltastepping/dstep/utils"
)

// rawEdge mirrors graph.RawEdge (graph/io.go) — one line of an edge-list
// file, before raw vertex ids have been remapped to dense VIDs.
type rawEdge struct {
	srcRaw, dstRaw uint32
	weight         float64
}

// LoadEdgeListInt32 and LoadEdgeListFloat32 load a whitespace-separated
// edge-list file ("src dst [weight]" per line, "#"-prefixed lines and
// weight-less lines both permitted, the latter defaulting to weight 1) into
// a CSR. Parsing is grounded on graph/io.go's scanner loop and
// enforce.ENFORCE validation; unlike graph/io.go's concurrent
// enqueuer/dequeuer pipeline (built for a vertex-mailbox graph with per-
// thread ownership), a flat CSR builder has no per-vertex state to
// distribute across threads, so the load here is a simple two-pass scan:
// first assign dense VIDs to every raw id seen (graph/io.go's BuildMap),
// then populate the edge builder.
func LoadEdgeListInt32(path string, undirected bool) *CSR[int32] {
	vmap, lines := buildVertexMap(path)
	b := NewBuilder[int32](delta.VID(len(vmap)))
	populate(path, lines, vmap, undirected, func(s, d delta.VID, w float64) {
		b.AddEdge(s, d, int32(w))
		if undirected {
			b.AddEdge(d, s, int32(w))
		}
	})
	return b.Build()
}

func LoadEdgeListFloat32(path string, undirected bool) *CSR[float32] {
	vmap, lines := buildVertexMap(path)
	b := NewBuilder[float32](delta.VID(len(vmap)))
	populate(path, lines, vmap, undirected, func(s, d delta.VID, w float64) {
		b.AddEdge(s, d, float32(w))
		if undirected {
			b.AddEdge(d, s, float32(w))
		}
	})
	return b.Build()
}

// buildVertexMap performs the teacher's BuildMap pass: scan every line
// once, assigning each never-seen raw id the next dense VID in order of
// first appearance.
func buildVertexMap(path string) (vmap map[uint32]delta.VID, lines int) {
	file := utils.OpenFile(path)
	defer file.Close()

	vmap = make(map[uint32]delta.VID)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		text := scanner.Text()
		if strings.HasPrefix(text, "#") || len(strings.TrimSpace(text)) == 0 {
			continue
		}
		lines++
		fields := strings.Fields(text)
		enforce.ENFORCE(len(fields) == 2 || len(fields) == 3, "malformed edge line: "+text)
		src, err := strconv.ParseUint(fields[0], 10, 32)
		enforce.ENFORCE(err)
		dst, err := strconv.ParseUint(fields[1], 10, 32)
		enforce.ENFORCE(err)
		if _, ok := vmap[uint32(src)]; !ok {
			vmap[uint32(src)] = delta.VID(len(vmap))
		}
		if _, ok := vmap[uint32(dst)]; !ok {
			vmap[uint32(dst)] = delta.VID(len(vmap))
		}
	}
	enforce.ENFORCE(scanner.Err())
	return vmap, lines
}

// populate re-scans the file and invokes add for every parsed edge, using
// the already-built vertex map to remap raw ids to dense VIDs.
func populate(path string, expectedLines int, vmap map[uint32]delta.VID, undirected bool, add func(s, d delta.VID, w float64)) {
	file := utils.OpenFile(path)
	defer file.Close()

	scanner := bufio.NewScanner(file)
	seen := 0
	for scanner.Scan() {
		text := scanner.Text()
		if strings.HasPrefix(text, "#") || len(strings.TrimSpace(text)) == 0 {
			continue
		}
		seen++
		fields := strings.Fields(text)
		src, _ := strconv.ParseUint(fields[0], 10, 32)
		dst, _ := strconv.ParseUint(fields[1], 10, 32)
		weight := 1.0
		if len(fields) == 3 {
			var err error
			weight, err = strconv.ParseFloat(fields[2], 64)
			enforce.ENFORCE(err)
		}
		add(vmap[uint32(src)], vmap[uint32(dst)], weight)
	}
	enforce.ENFORCE(scanner.Err())
	if seen != expectedLines {
		log.Warn().Msg("graphio: line count changed between passes (" + utils.V(expectedLines) + " -> " + utils.V(seen) + "); file may have been modified during load")
	}
}
