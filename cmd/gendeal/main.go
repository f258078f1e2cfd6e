// Package main provides the contree-gendeal CLI for generating biased
// deals and scoring them with the PIMC batch evaluator.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/demanghon/contree.ai/dealgen"
)

var (
	count       int
	seed        int64
	samples     int
	ttSizeLog2  uint
	pimcIters   int
	showVersion bool
)

func init() {
	flag.IntVar(&count, "count", 10, "Number of deals to generate")
	flag.Int64Var(&seed, "seed", 0, "Random seed (0 = use current time)")
	flag.IntVar(&samples, "samples", 0, "Generate gameplay snapshots instead of deals (0 = deal mode)")
	flag.UintVar(&ttSizeLog2, "tt-size-log2", 18, "Transposition table size, as a power of two")
	flag.IntVar(&pimcIters, "pimc-iters", 16, "PIMC determinisations per candidate trump")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println("contree-gendeal dev")
		os.Exit(0)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if samples > 0 {
		runGameplaySamples(rng)
		return
	}
	runDeals(rng)
}

func runDeals(rng *rand.Rand) {
	deals, tags := dealgen.GenerateHands(rng, count)
	for i, d := range deals {
		fmt.Printf("deal %d (%s): S=%#08x W=%#08x N=%#08x E=%#08x\n", i, strategyName(tags[i]), d.Hands[0], d.Hands[1], d.Hands[2], d.Hands[3])

		scores := dealgen.SolveHandBatchParallel([]uint32{d.Hands[0]}, pimcIters, uint64(rng.Int63()), ttSizeLog2)[0]
		for _, ts := range scores {
			fmt.Printf("  trump=%s mean=%.1f capot=%t\n", suitName(ts.Trump), ts.MeanScore, ts.CapotFound)
		}
	}
}

func runGameplaySamples(rng *rand.Rand) {
	snapshots := dealgen.GenerateGameplaySamples(rng, samples)
	for i, sample := range snapshots {
		fmt.Printf("sample %d: trump=%s player=%d history=%#08x tricksWon=%v\n",
			i, suitName(sample.State.Trump), sample.State.CurrentPlayer, sample.History, sample.State.TricksWon)
	}
}

func suitName(suit uint8) string {
	return [4]string{"D", "S", "H", "C"}[suit]
}

func strategyName(s dealgen.Strategy) string {
	switch s {
	case dealgen.Random:
		return "random"
	case dealgen.ForceCapot:
		return "force-capot"
	case dealgen.ForceBelote:
		return "force-belote"
	case dealgen.ForceShape:
		return "force-shape"
	default:
		return "unknown"
	}
}
