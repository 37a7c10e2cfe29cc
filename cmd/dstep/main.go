// Command dstep is the external test harness around package delta. It is
// not part of the solver's contract — it exists to drive a solve from the
// command line for benchmarking and correctness spot-checks, in the style
// of cmd/lp-sssp/main.go's flag-parsing loop around framework.Framework.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/deltastepping/dstep/delta"
	"github.com/deltastepping/dstep/enforce"
	"github.com/deltastepping/dstep/graphio"
	"github.com/deltastepping/dstep/oracle"
	"github.com/deltastepping/dstep/utils"
)

func info(args ...interface{}) {
	log.Info().Msg("[dstep] " + fmt.Sprint(args...))
}

// extractGraphName mirrors cmd/common.ExtractGraphName: strip the
// directory and extension off a graph path, for use in log lines.
func extractGraphName(graphPath string) string {
	parts := strings.Split(graphPath, "/")
	base := parts[len(parts)-1]
	dotParts := strings.Split(base, ".")
	if len(dotParts) > 1 {
		return strings.Join(dotParts[:len(dotParts)-1], ".")
	}
	return base
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: dstep [flags] <source-vertex> <delta> <num-trials> <num-sources> <verify-flag> <log-flag> <graph-file>")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "\nexternal command surface: <source-vertex> <delta> <num-trials> <num-sources> <verify-flag> <log-flag> <graph-file>")
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run implements the documented external command surface:
//
//	<source-vertex> <delta> <num-trials> <num-sources> <verify-flag> <log-flag> <graph-file>
//
// source-vertex may be "-1" to mean "pick randomly per source"; every trial
// of that source reuses the same pick. Returns an
// exit code: 0 on success, nonzero on parse failure or I/O failure.
func run(args []string) int {
	fset := flag.NewFlagSet("dstep", flag.ContinueOnError)
	fset.Usage = usage
	tptr := fset.Int("t", 0, "Worker count (0 means GOMAXPROCS)")
	uptr := fset.Bool("u", false, "Treat the graph as undirected")
	floatPtr := fset.Bool("f", false, "Use float32 edge weights instead of int32")
	seedPtr := fset.Int64("seed", 1, "RNG seed for random source selection")

	if err := fset.Parse(args); err != nil {
		return 2
	}
	rest := fset.Args()
	if len(rest) != 7 {
		usage()
		return 2
	}

	sourceArg, err := strconv.ParseInt(rest[0], 10, 64)
	if err != nil {
		fmt.Fprintln(os.Stderr, "dstep: invalid source-vertex:", err)
		return 2
	}
	deltaArg, err := strconv.ParseFloat(rest[1], 64)
	if err != nil || deltaArg <= 0 {
		fmt.Fprintln(os.Stderr, "dstep: invalid delta:", rest[1])
		return 2
	}
	numTrials, err := strconv.Atoi(rest[2])
	if err != nil || numTrials < 1 {
		fmt.Fprintln(os.Stderr, "dstep: invalid num-trials:", rest[2])
		return 2
	}
	numSources, err := strconv.Atoi(rest[3])
	if err != nil || numSources < 1 {
		fmt.Fprintln(os.Stderr, "dstep: invalid num-sources:", rest[3])
		return 2
	}
	verify, err := strconv.ParseBool(rest[4])
	if err != nil {
		fmt.Fprintln(os.Stderr, "dstep: invalid verify-flag:", rest[4])
		return 2
	}
	logging, err := strconv.ParseBool(rest[5])
	if err != nil {
		fmt.Fprintln(os.Stderr, "dstep: invalid log-flag:", rest[5])
		return 2
	}
	graphPath := rest[6]

	utils.SetLoggerConsole(false)
	if logging {
		utils.SetLevel(1)
	} else {
		utils.SetLevel(0)
	}

	gName := extractGraphName(graphPath)
	info("graph ", gName, " workers ", *tptr, " trials ", numTrials, " sources ", numSources)
	defer utils.MemoryStats()

	if *floatPtr {
		return runTyped(graphio.LoadEdgeListFloat32(graphPath, *uptr), sourceArg, float32(deltaArg), numTrials, numSources, verify, logging, *tptr, *seedPtr)
	}
	return runTyped(graphio.LoadEdgeListInt32(graphPath, *uptr), sourceArg, int32(deltaArg), numTrials, numSources, verify, logging, *tptr, *seedPtr)
}

func runTyped[W delta.Weight](g delta.Graph[W], sourceArg int64, deltaVal W, numTrials, numSources int, verify, logging bool, workers int, seed int64) int {
	n := g.NumVertices()
	if n == 0 {
		fmt.Fprintln(os.Stderr, "dstep: empty graph")
		return 1
	}

	opts := delta.Options{Workers: workers, CollectStats: true, Logging: logging}

	r := rand.New(rand.NewSource(seed))
	for s := 0; s < numSources; s++ {
		source := delta.VID(0)
		if sourceArg >= 0 {
			if delta.VID(sourceArg) >= n {
				fmt.Fprintln(os.Stderr, "dstep: source out of range:", sourceArg)
				return 2
			}
			source = delta.VID(sourceArg)
		} else {
			source = delta.PickSource(g, r.Int63())
		}

		var total time.Duration
		for trial := 0; trial < numTrials; trial++ {
			t0 := time.Now()
			d, stats, err := delta.Solve(g, source, deltaVal, opts)
			elapsed := time.Since(t0)
			total += elapsed
			if err != nil {
				fmt.Fprintln(os.Stderr, "dstep: solve failed:", err)
				return 1
			}

			if verify {
				want := oracle.Dijkstra(g, source)
				for v := delta.VID(0); v < n; v++ {
					enforce.ENFORCE(d.At(v) == want[v], "mismatch at vertex ", v, ": got ", d.At(v), " want ", want[v])
				}
			}

			info("source ", source, " trial ", trial, " elapsed_ms ", elapsed.Milliseconds(), " relaxations ", stats.Relaxations)
		}
		info("source ", source, " avg_ms ", (total / time.Duration(numTrials)).Milliseconds())
	}
	return 0
}
