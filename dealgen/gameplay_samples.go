package dealgen

import (
	"math/rand"

	"github.com/demanghon/contree.ai/engine"
)

// GameplaySample is a mid-round snapshot together with the card history
// mask of every card played to reach it, for training a move-prediction
// model against solver ground truth.
type GameplaySample struct {
	State   *engine.PlayState
	History uint32 // bitmask of every card already played this round
}

// GenerateGameplaySamples produces n snapshots of mid-round play states,
// reached by dealing a random hand, then replaying random legal moves up
// to a temporally-biased target trick count: 50% endgame (tricks 5-7),
// 30% midgame (tricks 3-4), 20% opening (tricks 0-2), followed by 0-3
// further random cards into the next trick.
func GenerateGameplaySamples(rng *rand.Rand, n int) []GameplaySample {
	samples := make([]GameplaySample, 0, n)
	for i := 0; i < n; i++ {
		samples = append(samples, generateSingleSample(rng))
	}
	return samples
}

func generateSingleSample(rng *rand.Rand) GameplaySample {
	targetTricks := targetTrickCount(rng)

	deal := GenerateRandomHands(rng)
	trump := uint8(rng.Intn(4))

	s := engine.NewPlayState(trump)
	s.Hands = deal.Hands

	var history uint32
	playRandomTricks(rng, s, targetTricks, &history)

	partial := rng.Intn(4)
	playRandomCards(rng, s, partial, &history)

	return GameplaySample{State: s, History: history}
}

func targetTrickCount(rng *rand.Rand) int {
	r := rng.Intn(100)
	switch {
	case r < 50:
		return 5 + rng.Intn(3) // 5..7
	case r < 80:
		return 3 + rng.Intn(2) // 3..4
	default:
		return rng.Intn(3) // 0..2
	}
}

func playRandomTricks(rng *rand.Rand, s *engine.PlayState, tricks int, history *uint32) {
	playRandomCards(rng, s, tricks*4, history)
}

// playRandomCards plays up to count random legal cards, stopping early if
// the round ends or no legal move remains.
func playRandomCards(rng *rand.Rand, s *engine.PlayState, count int, history *uint32) {
	for i := 0; i < count; i++ {
		if s.IsTerminal() {
			return
		}
		legal := s.LegalMoves()
		if legal == 0 {
			return
		}
		var moves []uint8
		engine.EachCard(legal, func(c uint8) { moves = append(moves, c) })
		move := moves[rng.Intn(len(moves))]
		s.PlayCard(move)
		*history |= 1 << move
	}
}
