package dealgen

import (
	"math/rand"

	"github.com/demanghon/contree.ai/engine"
	"github.com/demanghon/contree.ai/search"
)

// mixtureWeights is the default strategy mixture for a generated batch: 40
// random deals, 20 each of forced Capot, forced Belote, and forced shape.
var mixtureWeights = []struct {
	strategy Strategy
	weight   int
}{
	{Random, 40},
	{ForceCapot, 20},
	{ForceBelote, 20},
	{ForceShape, 20},
}

// defaultShapes cycles through four fixed shapes for the ForceShape slice
// of a batch, so that slice isn't a single repeated shape.
var defaultShapes = [][4]int{
	{5, 1, 1, 1},
	{4, 2, 1, 1},
	{6, 1, 1, 0},
	{3, 3, 1, 1},
}

// GenerateHands produces n deals drawn from the weighted strategy mixture,
// each with a uniformly random trump, alongside the strategy tag used for
// each deal.
func GenerateHands(rng *rand.Rand, n int) ([]Deal, []Strategy) {
	plan := make([]Strategy, 0, n)
	total := 0
	for _, m := range mixtureWeights {
		total += m.weight
	}
	for i := 0; i < n; i++ {
		r := rng.Intn(total)
		for _, m := range mixtureWeights {
			if r < m.weight {
				plan = append(plan, m.strategy)
				break
			}
			r -= m.weight
		}
	}

	deals := make([]Deal, n)
	for i, strat := range plan {
		trump := uint8(rng.Intn(4))
		switch strat {
		case Random:
			deals[i] = GenerateRandomHands(rng)
		case ForceCapot:
			deals[i] = GenerateForceCapot(rng, trump)
		case ForceBelote:
			deals[i] = GenerateForceBelote(rng, trump)
		case ForceShape:
			shape := defaultShapes[i%len(defaultShapes)]
			deals[i] = GenerateForceShape(rng, trump, shape[0], [3]int{shape[1], shape[2], shape[3]})
		}
	}
	return deals, plan
}

// TrumpScore is the PIMC-averaged score for one candidate trump.
type TrumpScore struct {
	Trump      uint8
	MeanScore  float64
	CapotFound bool
}

// SolveHandBatch scores southHand under PIMC for every candidate trump:
// for M determinisations, it deals the 24 unseen cards to seats 1-3,
// solves the resulting state at depth cap 32 with seat 0 to lead, and
// reports the arithmetic mean of the sampled final scores.
func SolveHandBatch(rng *rand.Rand, sv *search.Solver, southHand uint32, m int) [4]TrumpScore {
	var results [4]TrumpScore

	unseen := make([]uint8, 0, 24)
	for c := uint8(0); c < 32; c++ {
		if southHand&(1<<c) == 0 {
			unseen = append(unseen, c)
		}
	}

	for trump := uint8(0); trump < 4; trump++ {
		var sum float64
		capot := false

		for i := 0; i < m; i++ {
			shuffledUnseen := append([]uint8(nil), unseen...)
			rng.Shuffle(len(shuffledUnseen), func(a, b int) {
				shuffledUnseen[a], shuffledUnseen[b] = shuffledUnseen[b], shuffledUnseen[a]
			})

			s := engine.NewPlayState(trump)
			s.Hands[0] = southHand
			s.Hands[1] = maskOf(shuffledUnseen[0:8])
			s.Hands[2] = maskOf(shuffledUnseen[8:16])
			s.Hands[3] = maskOf(shuffledUnseen[16:24])

			result := sv.Solve(s, 32)
			sum += float64(result.Score)
			if result.Score >= 250 {
				capot = true
			}
		}

		results[trump] = TrumpScore{
			Trump:      trump,
			MeanScore:  sum / float64(m),
			CapotFound: capot,
		}
	}
	return results
}
