package search

import (
	"sort"

	"github.com/demanghon/contree.ai/engine"
)

// orderMoves sorts legal into search order: the TT best move first (if
// present among legal), then trump before plain, then descending strength
// within each class.
func orderMoves(legal uint32, trump uint8, ttMove uint8, haveTTMove bool) []uint8 {
	moves := make([]uint8, 0, engine.CountCards(legal))
	engine.EachCard(legal, func(c uint8) { moves = append(moves, c) })

	key := func(c uint8) int {
		if haveTTMove && c == ttMove {
			return 1 << 30
		}
		k := int(engine.Strength(c, trump))
		if engine.Suit(c) == trump {
			k |= 1 << 10
		}
		return k
	}

	sort.Slice(moves, func(i, j int) bool { return key(moves[i]) > key(moves[j]) })
	return moves
}
