package search

import "github.com/demanghon/contree.ai/engine"

// controlBonusTrump and controlBonusPlain give each rank an extra weight
// beyond its raw point value, reflecting how much trick-taking control a
// card gives its holder. Indexed by engine rank.
var (
	controlBonusTrump = [8]int{0, 0, 35, 20, 50, 10, 15, 25} // 9 +35, 10 +20, J +50, Q +10, K +15, A +25
	controlBonusPlain = [8]int{0, 0, 0, 20, 0, 0, 10, 30}    // 10 +20, K +10, A +30
)

func cardWeight(card, trump uint8) int {
	rank := engine.Rank(card)
	points := int(engine.Points(card, trump))
	if engine.Suit(card) == trump {
		return points + controlBonusTrump[rank]
	}
	return points + controlBonusPlain[rank]
}

func teamStrength(s *engine.PlayState, team uint8) int {
	var total int
	engine.EachCard(s.Hands[team], func(c uint8) { total += cardWeight(c, s.Trump) })
	engine.EachCard(s.Hands[engine.Partner(team)], func(c uint8) { total += cardWeight(c, s.Trump) })
	return total
}

// heuristic returns the static cut-off evaluation: team 0's points so far
// plus its estimated share of the remaining 162 - points[0] - points[1]
// points, apportioned by relative card-control strength.
func heuristic(s *engine.PlayState) int {
	strength0 := teamStrength(s, 0)
	strength1 := teamStrength(s, 1)

	remaining := 162 - int(s.Points[0]) - int(s.Points[1])
	if strength0+strength1 == 0 {
		return int(s.Points[0])
	}
	share := float64(strength0) / float64(strength0+strength1)
	return int(s.Points[0]) + int(share*float64(remaining))
}
