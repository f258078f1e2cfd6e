// Package dealgen implements the biased deal generator and the
// Perfect-Information Monte Carlo hand evaluator built on top of it.
package dealgen

import (
	"math/rand"

	"github.com/demanghon/contree.ai/engine"
)

// Strategy selects how a deal's seat-0 hand is biased.
type Strategy int

const (
	Random Strategy = iota
	ForceBelote
	ForceCapot
	ForceShape
)

// Deal is four 8-card hands summing to the full deck.
type Deal struct {
	Hands [4]uint32
}

// shuffled returns a freshly shuffled slice of the 32 card indices.
func shuffled(rng *rand.Rand) []uint8 {
	deck := make([]uint8, 32)
	for i := range deck {
		deck[i] = uint8(i)
	}
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return deck
}

func maskOf(cards []uint8) uint32 {
	var m uint32
	for _, c := range cards {
		m |= 1 << c
	}
	return m
}

// GenerateRandomHands shuffles the full deck and deals 8 cards per seat.
func GenerateRandomHands(rng *rand.Rand) Deal {
	deck := shuffled(rng)
	var d Deal
	for seat := 0; seat < 4; seat++ {
		d.Hands[seat] = maskOf(deck[seat*8 : seat*8+8])
	}
	return d
}

// trumpStrengthOrder lists trump ranks from strongest to weakest:
// J, 9, A, 10, K, Q, 8, 7.
var trumpStrengthOrder = []uint8{engine.RankJ, engine.Rank9, engine.RankA, engine.Rank10, engine.RankK, engine.RankQ, engine.Rank8, engine.Rank7}

// plainStrengthOrder lists plain-suit ranks from strongest to weakest:
// A, 10, K, Q, J, 9, 8, 7.
var plainStrengthOrder = []uint8{engine.RankA, engine.Rank10, engine.RankK, engine.RankQ, engine.RankJ, engine.Rank9, engine.Rank8, engine.Rank7}

func sideSuits(trump uint8) []uint8 {
	suits := make([]uint8, 0, 3)
	for s := uint8(0); s < 4; s++ {
		if s != trump {
			suits = append(suits, s)
		}
	}
	return suits
}

// GenerateForceBelote forces the K and Q of trump into seat 0, filling the
// remainder of every hand randomly from what's left.
func GenerateForceBelote(rng *rand.Rand, trump uint8) Deal {
	forced := []uint8{engine.Card(trump, engine.RankK), engine.Card(trump, engine.RankQ)}
	return dealWithForced(rng, forced)
}

// GenerateForceCapot builds seat 0 as a guaranteed master hand: a random
// trump length N in [4,8] taking the top-N trumps by strength, with the
// remaining 8-N cards spread across side suits as top-K solid sequences.
func GenerateForceCapot(rng *rand.Rand, trump uint8) Deal {
	n := 4 + rng.Intn(5) // [4, 8]

	forced := make([]uint8, 0, 8)
	for i := 0; i < n; i++ {
		forced = append(forced, engine.Card(trump, trumpStrengthOrder[i]))
	}

	remaining := 8 - n
	suits := sideSuits(trump)
	counts := distributeUniformly(rng, remaining, len(suits))
	for i, suit := range suits {
		for k := 0; k < counts[i]; k++ {
			forced = append(forced, engine.Card(suit, plainStrengthOrder[k]))
		}
	}

	return dealWithForced(rng, forced)
}

// distributeUniformly splits total indistinguishable units uniformly at
// random across n buckets.
func distributeUniformly(rng *rand.Rand, total, n int) []int {
	counts := make([]int, n)
	for i := 0; i < total; i++ {
		counts[rng.Intn(n)]++
	}
	return counts
}

// GenerateForceShape forces seat 0 to hold exactly trumpCount trumps and
// sideCounts[i] cards of each side suit (in trump-relative suit order:
// (trump+1)%4, (trump+2)%4, (trump+3)%4); the shape must sum to 8.
func GenerateForceShape(rng *rand.Rand, trump uint8, trumpCount int, sideCounts [3]int) Deal {
	forced := make([]uint8, 0, 8)

	trumpCards := rng.Perm(8)[:trumpCount]
	for _, rank := range trumpCards {
		forced = append(forced, engine.Card(trump, uint8(rank)))
	}

	for i := 0; i < 3; i++ {
		suit := (trump + uint8(i) + 1) % 4
		ranks := rng.Perm(8)[:sideCounts[i]]
		for _, rank := range ranks {
			forced = append(forced, engine.Card(suit, uint8(rank)))
		}
	}

	return dealWithForced(rng, forced)
}

// dealWithForced places forced cards in seat 0, then shuffles the other
// 32-len(forced) cards and deals them: seat 0 is topped up to 8 cards and
// seats 1-3 get 8 each.
func dealWithForced(rng *rand.Rand, forced []uint8) Deal {
	var d Deal
	d.Hands[0] = maskOf(forced)

	used := d.Hands[0]
	rest := make([]uint8, 0, 32-len(forced))
	for c := uint8(0); c < 32; c++ {
		if used&(1<<c) == 0 {
			rest = append(rest, c)
		}
	}
	rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })

	need0 := 8 - len(forced)
	d.Hands[0] |= maskOf(rest[:need0])
	idx := need0
	for seat := 1; seat < 4; seat++ {
		d.Hands[seat] = maskOf(rest[idx : idx+8])
		idx += 8
	}
	return d
}

// IsForceCapot reports whether hand is a guaranteed master hand: its trump
// cards (count >= 4) form a strict prefix of the trump-strength order
// starting with J, and every plain suit's held cards form a strict prefix
// of that suit's strength order starting with A.
func IsForceCapot(hand uint32, trump uint8) bool {
	trumpHand := hand & engine.MaskOfSuit(trump)
	n := engine.CountCards(trumpHand)
	if n < 4 {
		return false
	}
	if !isPrefix(trumpHand, trumpStrengthOrder, trump, n) {
		return false
	}

	for _, suit := range sideSuits(trump) {
		suitHand := hand & engine.MaskOfSuit(suit)
		k := engine.CountCards(suitHand)
		if k == 0 {
			continue
		}
		if !isPrefix(suitHand, plainStrengthOrder, suit, k) {
			return false
		}
	}
	return true
}

// isPrefix reports whether suitHand equals the first count ranks of order
// within the given suit.
func isPrefix(suitHand uint32, order []uint8, suit uint8, count int) bool {
	var want uint32
	for i := 0; i < count; i++ {
		want |= 1 << engine.Card(suit, order[i])
	}
	return suitHand == want
}
