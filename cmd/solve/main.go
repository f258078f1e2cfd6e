// Package main provides the contree-solve CLI for solving a single
// Coinche play state from the command line.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/demanghon/contree.ai/engine"
	"github.com/demanghon/contree.ai/search"
)

var (
	trumpFlag   string
	depthCap    int
	ttSizeLog2  uint
	handsFlag   string
	leaderFlag  int
	showVersion bool
)

func init() {
	flag.StringVar(&trumpFlag, "trump", "H", "Trump suit: D, S, H, or C")
	flag.IntVar(&depthCap, "depth-cap", 32, "Maximum search depth")
	flag.UintVar(&ttSizeLog2, "tt-size-log2", 20, "Transposition table size, as a power of two")
	flag.StringVar(&handsFlag, "hands", "", "Comma-separated list of 4 hex card masks, seats 0-3")
	flag.IntVar(&leaderFlag, "leader", 0, "Seat (0-3) to move first")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println("contree-solve dev")
		os.Exit(0)
	}

	trump, err := parseSuit(trumpFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	hands, err := parseHands(handsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s := engine.NewPlayState(trump)
	s.Hands = hands
	s.CurrentPlayer = uint8(leaderFlag)

	sv := search.NewSolver(ttSizeLog2)
	result := sv.Solve(s, depthCap)

	fmt.Printf("score=%d move=%d (suit=%s rank=%d)\n",
		result.Score, result.Move, suitName(engine.Suit(result.Move)), engine.Rank(result.Move))
}

func parseSuit(s string) (uint8, error) {
	switch strings.ToUpper(s) {
	case "D":
		return engine.Diamonds, nil
	case "S":
		return engine.Spades, nil
	case "H":
		return engine.Hearts, nil
	case "C":
		return engine.Clubs, nil
	default:
		return 0, fmt.Errorf("unknown trump suit %q (want D, S, H, or C)", s)
	}
}

func suitName(suit uint8) string {
	return [4]string{"D", "S", "H", "C"}[suit]
}

func parseHands(raw string) ([4]uint32, error) {
	var hands [4]uint32
	if raw == "" {
		return hands, fmt.Errorf("-hands is required")
	}
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return hands, fmt.Errorf("-hands must list exactly 4 masks, got %d", len(parts))
	}
	for i, part := range parts {
		var mask uint32
		if _, err := fmt.Sscanf(strings.TrimSpace(part), "0x%x", &mask); err != nil {
			return hands, fmt.Errorf("seat %d: invalid hex mask %q", i, part)
		}
		hands[i] = mask
	}
	return hands, nil
}
