// Package search implements the iterative-deepening alpha-beta solver over
// engine.PlayState: Zobrist-hashed transposition table, move ordering, and
// a static heuristic cutoff.
package search

import "github.com/demanghon/contree.ai/engine"

// Result is the outcome of a solve: team 0's minimax final point total and
// the recommended card for the player to move.
type Result struct {
	Score int
	Move  uint8
}

// Solver owns a transposition table and drives the search. Not safe for
// concurrent use from multiple goroutines; callers running solves in
// parallel (see the dealgen package) give each worker its own Solver.
type Solver struct {
	tt *Table
}

// NewSolver allocates a solver with a table of 2^sizeLog2 slots.
func NewSolver(sizeLog2 uint) *Solver {
	return &Solver{tt: NewTable(sizeLog2)}
}

// Solve runs iterative deepening up to min(cardsOfMover*4, depthCap) and
// returns the deepest completed pass's result.
func (sv *Solver) Solve(s *engine.PlayState, depthCap int) Result {
	sv.tt.Bump()

	cardsOfMover := engine.CountCards(s.Hands[s.CurrentPlayer])
	dMax := cardsOfMover * 4
	if depthCap < dMax {
		dMax = depthCap
	}

	hash := engine.Hash(s)
	var best Result
	for depth := 1; depth <= dMax; depth++ {
		best = sv.alphaBeta(s, hash, depth, -1_000_000, 1_000_000)
	}
	return best
}

// alphaBeta evaluates s to the given depth, returning team 0's minimax
// score and the best move at this node (0 if terminal/depth-0, where no
// move is played).
func (sv *Solver) alphaBeta(s *engine.PlayState, hash uint64, depth int, alpha, beta int) Result {
	if s.IsTerminal() {
		return Result{Score: int(s.Points[0])}
	}
	if depth == 0 {
		return Result{Score: heuristic(s)}
	}

	pointsNow := s.Points[0]
	alphaNorm := alpha - int(pointsNow)
	betaNorm := beta - int(pointsNow)

	var ttMove uint8
	haveTTMove := false
	if e, ok := sv.tt.Probe(hash); ok {
		ttMove, haveTTMove = e.move, true
		if int(e.depth) >= depth {
			switch e.flag {
			case Exact:
				return Result{Score: renormalise(e.score, pointsNow), Move: e.move}
			case LowerBound:
				if int(e.score) >= betaNorm {
					return Result{Score: renormalise(e.score, pointsNow), Move: e.move}
				}
				if int(e.score) > alphaNorm {
					alphaNorm = int(e.score)
				}
			case UpperBound:
				if int(e.score) <= alphaNorm {
					return Result{Score: renormalise(e.score, pointsNow), Move: e.move}
				}
				if int(e.score) < betaNorm {
					betaNorm = int(e.score)
				}
			}
			if alphaNorm >= betaNorm {
				return Result{Score: renormalise(int16(alphaNorm), pointsNow), Move: e.move}
			}
		}
	}

	maximizing := engine.Team(s.CurrentPlayer) == 0
	legal := s.LegalMoves()
	moves := orderMoves(legal, s.Trump, ttMove, haveTTMove)

	var bestMove uint8
	var bestScore int
	if maximizing {
		bestScore = -1_000_000
	} else {
		bestScore = 1_000_000
	}

	origAlpha, origBeta := alpha, beta
	for i, move := range moves {
		child := s.Clone()
		childHash := nextHash(hash, s, move)
		child.PlayCard(move)

		var childResult Result
		if maximizing {
			childResult = sv.alphaBeta(child, childHash, depth-1, alpha, beta)
			if i == 0 || childResult.Score > bestScore {
				bestScore = childResult.Score
				bestMove = move
			}
			if bestScore > alpha {
				alpha = bestScore
			}
		} else {
			childResult = sv.alphaBeta(child, childHash, depth-1, alpha, beta)
			if i == 0 || childResult.Score < bestScore {
				bestScore = childResult.Score
				bestMove = move
			}
			if bestScore < beta {
				beta = bestScore
			}
		}
		if alpha >= beta {
			break
		}
	}

	flag := Exact
	if bestScore <= origAlpha {
		flag = UpperBound
	} else if bestScore >= origBeta {
		flag = LowerBound
	}
	sv.tt.Store(hash, bestScore, pointsNow, bestMove, flag, uint8(depth))

	return Result{Score: bestScore, Move: bestMove}
}

// nextHash computes the incrementally-updated Zobrist hash for the state
// that results from player s.CurrentPlayer playing card, without mutating
// s. Mirrors engine.PlayState.PlayCard's bookkeeping.
func nextHash(hash uint64, s *engine.PlayState, card uint8) uint64 {
	p := s.CurrentPlayer
	h := hash
	h ^= engine.Zobrist.Hand[p][card]
	h ^= engine.Zobrist.Trick[p][card]
	h ^= engine.Zobrist.Turn[p]

	if s.TrickSize < 3 {
		h ^= engine.Zobrist.Turn[(p+1)%4]
		return h
	}

	// Trick completes: clear every placed trick card's key, then compute
	// the winner the same way resolveTrick does, by simulating the final
	// card into a scratch copy of the trick.
	trick := s.CurrentTrick
	trick[p] = card

	winner := trickWinner(trick, s.TrickStarter, s.Trump)
	for seat := uint8(0); seat < 4; seat++ {
		c := trick[seat]
		if c != engine.NoCard {
			h ^= engine.Zobrist.Trick[seat][c]
		}
	}
	h ^= engine.Zobrist.Turn[winner]

	team := engine.Team(winner)
	if s.TricksWon[team] == 0 {
		h ^= engine.Zobrist.HasWonTrick[team]
	}
	return h
}

// trickWinner determines the winning seat of a completed trick without
// requiring a *engine.PlayState, for use by nextHash's lookahead.
func trickWinner(trick [4]uint8, starter uint8, trump uint8) uint8 {
	bestSeat := starter
	bestCard := trick[starter]

	beats := func(candidate, best uint8) bool {
		candidateTrump := engine.Suit(candidate) == trump
		bestTrump := engine.Suit(best) == trump
		if candidateTrump != bestTrump {
			return candidateTrump
		}
		if engine.Suit(candidate) == engine.Suit(best) {
			return engine.Strength(candidate, trump) > engine.Strength(best, trump)
		}
		return false
	}

	for i := uint8(1); i < 4; i++ {
		seat := (starter + i) % 4
		card := trick[seat]
		if beats(card, bestCard) {
			bestCard = card
			bestSeat = seat
		}
	}
	return bestSeat
}
