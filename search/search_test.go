package search

import (
	"testing"

	"github.com/demanghon/contree.ai/engine"
)

// Scenario 1 from spec.md §8: forced trick, Ace-of-trump lead.
func TestSolveForcedTrickAceOfTrumpLead(t *testing.T) {
	s := engine.NewPlayState(engine.Hearts)
	s.Hands[0] = 1 << engine.Card(engine.Hearts, engine.RankA)
	s.Hands[1] = 1 << engine.Card(engine.Hearts, engine.Rank7)
	s.Hands[2] = 1 << engine.Card(engine.Hearts, engine.Rank8)
	s.Hands[3] = 1 << engine.Card(engine.Spades, engine.Rank9)

	sv := NewSolver(16)
	result := sv.Solve(s, 32)

	if result.Score != 21 {
		t.Errorf("Score = %d, want 21", result.Score)
	}
	if result.Move != engine.Card(engine.Hearts, engine.RankA) {
		t.Errorf("Move = %d, want the Ace of trump", result.Move)
	}
}

// Scenario 2 from spec.md §8: two-trick sweep.
func TestSolveTwoTrickSweep(t *testing.T) {
	s := engine.NewPlayState(engine.Hearts)
	s.Hands[0] = (1 << engine.Card(engine.Hearts, engine.RankA)) | (1 << engine.Card(engine.Hearts, engine.RankK))
	s.Hands[1] = (1 << engine.Card(engine.Hearts, engine.Rank7)) | (1 << engine.Card(engine.Hearts, engine.Rank8))
	s.Hands[2] = (1 << engine.Card(engine.Spades, engine.Rank7)) | (1 << engine.Card(engine.Spades, engine.Rank8))
	s.Hands[3] = (1 << engine.Card(engine.Spades, engine.Rank9)) | (1 << engine.Card(engine.Spades, engine.Rank10))

	sv := NewSolver(16)
	result := sv.Solve(s, 32)

	if result.Score != 35 {
		t.Errorf("Score = %d, want 35", result.Score)
	}
}

// Scenario 3 from spec.md §8: Capot detection at depth cap 32.
func TestSolveCapotDetection(t *testing.T) {
	s := engine.NewPlayState(engine.Hearts)
	s.TricksWon[0] = 4
	s.Hands[0] = (1 << engine.Card(engine.Hearts, engine.RankJ)) |
		(1 << engine.Card(engine.Hearts, engine.Rank9)) |
		(1 << engine.Card(engine.Hearts, engine.RankA)) |
		(1 << engine.Card(engine.Hearts, engine.Rank10))
	s.Hands[1] = (1 << engine.Card(engine.Clubs, engine.Rank7)) |
		(1 << engine.Card(engine.Clubs, engine.Rank8)) |
		(1 << engine.Card(engine.Clubs, engine.Rank9)) |
		(1 << engine.Card(engine.Clubs, engine.Rank10))
	s.Hands[2] = (1 << engine.Card(engine.Clubs, engine.RankJ)) |
		(1 << engine.Card(engine.Clubs, engine.RankQ)) |
		(1 << engine.Card(engine.Clubs, engine.RankK)) |
		(1 << engine.Card(engine.Clubs, engine.RankA))
	s.Hands[3] = (1 << engine.Card(engine.Spades, engine.Rank7)) |
		(1 << engine.Card(engine.Spades, engine.Rank8)) |
		(1 << engine.Card(engine.Spades, engine.Rank9)) |
		(1 << engine.Card(engine.Spades, engine.Rank10))

	sv := NewSolver(16)
	result := sv.Solve(s, 32)

	if result.Score != 195 {
		t.Errorf("Score = %d, want 195", result.Score)
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	build := func() *engine.PlayState {
		s := engine.NewPlayState(engine.Hearts)
		s.Hands[0] = (1 << engine.Card(engine.Hearts, engine.RankA)) | (1 << engine.Card(engine.Hearts, engine.RankK))
		s.Hands[1] = (1 << engine.Card(engine.Hearts, engine.Rank7)) | (1 << engine.Card(engine.Hearts, engine.Rank8))
		s.Hands[2] = (1 << engine.Card(engine.Spades, engine.Rank7)) | (1 << engine.Card(engine.Spades, engine.Rank8))
		s.Hands[3] = (1 << engine.Card(engine.Spades, engine.Rank9)) | (1 << engine.Card(engine.Spades, engine.Rank10))
		return s
	}

	sv := NewSolver(16)
	first := sv.Solve(build(), 32)
	// Reuse the same (warmed) table for a structurally identical state.
	second := sv.Solve(build(), 32)

	if first != second {
		t.Errorf("solve not deterministic across a warmed TT: %+v vs %+v", first, second)
	}
}

func TestHeuristicMonotoneInPoints(t *testing.T) {
	s := engine.NewPlayState(engine.Hearts)
	// Both teams hold some strength, so team 0's share of the remaining
	// points is below 1 and extra banked points raise the estimate.
	s.Hands[0] = 1 << engine.Card(engine.Hearts, engine.RankJ)
	s.Hands[1] = 1 << engine.Card(engine.Clubs, engine.RankA)
	s.Hands[2] = 1 << engine.Card(engine.Clubs, engine.Rank8)
	s.Hands[3] = 1 << engine.Card(engine.Clubs, engine.Rank9)

	base := heuristic(s)
	s.Points[0] += 20
	after := heuristic(s)

	if after <= base {
		t.Errorf("heuristic did not increase with points[0]: %d -> %d", base, after)
	}
}
