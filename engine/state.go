package engine

import "sync"

// PlayState is a mutable Coinche position: the four hands, the
// in-progress trick, accumulated scores, and trump. It is small and
// trivially copyable by value, which is how the search engine explores the
// tree (copy-before-recurse rather than make/undo).
type PlayState struct {
	Hands        [4]uint32
	CurrentTrick [4]uint8 // NoCard sentinel for an empty seat
	TrickSize    uint8
	TrickStarter uint8
	CurrentPlayer uint8

	TricksWon    [2]uint8
	Points       [2]uint16
	BeloteScored [2]bool
	Trump        uint8

	LastTrick        [4]uint8
	LastTrickStarter uint8
	LastTrickWinner  int8 // -1 = no trick resolved yet
}

// StatePool recycles *PlayState values through GetState/PutState. The
// search package does not draw from it; it copies states with Clone.
var StatePool = sync.Pool{
	New: func() interface{} {
		return &PlayState{}
	},
}

// GetState acquires a zeroed PlayState from the pool.
func GetState() *PlayState {
	s := StatePool.Get().(*PlayState)
	s.Reset(4)
	return s
}

// PutState returns a PlayState to the pool.
func PutState(s *PlayState) {
	StatePool.Put(s)
}

// Reset clears s to a fresh, empty round with the given trump.
func (s *PlayState) Reset(trump uint8) {
	s.Hands = [4]uint32{}
	s.CurrentTrick = [4]uint8{NoCard, NoCard, NoCard, NoCard}
	s.TrickSize = 0
	s.TrickStarter = 0
	s.CurrentPlayer = 0
	s.TricksWon = [2]uint8{}
	s.Points = [2]uint16{}
	s.BeloteScored = [2]bool{}
	s.Trump = trump
	s.LastTrick = [4]uint8{NoCard, NoCard, NoCard, NoCard}
	s.LastTrickStarter = 0
	s.LastTrickWinner = -1
}

// NewPlayState builds a fresh round with the given trump suit.
func NewPlayState(trump uint8) *PlayState {
	s := &PlayState{}
	s.Reset(trump)
	return s
}

// Clone returns a deep copy; since PlayState holds no pointers or slices,
// this is a plain value copy.
func (s *PlayState) Clone() *PlayState {
	clone := *s
	return &clone
}

// Team returns the team a seat belongs to: 0 for seats 0/2, 1 for 1/3.
func Team(seat uint8) uint8 { return seat % 2 }

// Partner returns the seat two positions around the table from seat.
func Partner(seat uint8) uint8 { return (seat + 2) % 4 }

// IsTerminal reports whether every hand is empty.
func (s *PlayState) IsTerminal() bool {
	return s.Hands[0] == 0 && s.Hands[1] == 0 && s.Hands[2] == 0 && s.Hands[3] == 0
}

// currentTrickWinner returns the seat currently winning the in-progress
// trick (0 < TrickSize <= 4 must hold).
func (s *PlayState) currentTrickWinner() uint8 {
	bestSeat := s.TrickStarter
	bestCard := s.CurrentTrick[bestSeat]

	for i := uint8(1); i < s.TrickSize; i++ {
		seat := (s.TrickStarter + i) % 4
		card := s.CurrentTrick[seat]
		if s.beats(card, bestCard) {
			bestCard = card
			bestSeat = seat
		}
	}
	return bestSeat
}

// beats reports whether candidate beats the running-best card of the
// in-progress trick under this state's trump.
func (s *PlayState) beats(candidate, best uint8) bool {
	candidateTrump := Suit(candidate) == s.Trump
	bestTrump := Suit(best) == s.Trump

	if candidateTrump != bestTrump {
		return candidateTrump
	}
	if Suit(candidate) == Suit(best) {
		return Strength(candidate, s.Trump) > Strength(best, s.Trump)
	}
	// Neither is trump and they're of different suits: best is the lead
	// suit (or trump, handled above), so candidate can never beat it.
	return false
}

// PlayCard applies a move assumed legal: Belote detection, hand/trick
// bookkeeping, and trick resolution when the fourth card lands.
func (s *PlayState) PlayCard(card uint8) {
	s.creditBelote(card)

	mover := s.CurrentPlayer
	s.Hands[mover] &^= 1 << card
	s.CurrentTrick[mover] = card
	s.TrickSize++

	if s.TrickSize < 4 {
		s.CurrentPlayer = (s.CurrentPlayer + 1) % 4
		return
	}
	s.resolveTrick()
}

// creditBelote credits the 20-point Belote/Rebelote bonus the first time a
// player plays the K or Q of trump while still holding the other, at most
// once per team per round.
func (s *PlayState) creditBelote(card uint8) {
	if s.Trump >= 4 {
		return
	}
	if Suit(card) != s.Trump {
		return
	}
	rank := Rank(card)
	if rank != RankK && rank != RankQ {
		return
	}

	team := Team(s.CurrentPlayer)
	if s.BeloteScored[team] {
		return
	}

	otherRank := RankQ
	if rank == RankQ {
		otherRank = RankK
	}
	otherCard := Card(s.Trump, otherRank)
	if s.Hands[s.CurrentPlayer]&(1<<otherCard) == 0 {
		return
	}

	s.Points[team] += 20
	s.BeloteScored[team] = true
}

// resolveTrick determines the winner, credits points (plus 10-de-der and
// Capot bonuses where applicable), and resets for the next trick.
func (s *PlayState) resolveTrick() {
	winner := s.currentTrickWinner()
	team := Team(winner)

	var points uint16
	for seat := uint8(0); seat < 4; seat++ {
		points += Points(s.CurrentTrick[seat], s.Trump)
	}

	if s.IsTerminal() {
		points += 10 // 10-de-der
	}
	s.Points[team] += points

	s.LastTrick = s.CurrentTrick
	s.LastTrickStarter = s.TrickStarter
	s.LastTrickWinner = int8(winner)

	s.CurrentTrick = [4]uint8{NoCard, NoCard, NoCard, NoCard}
	s.TrickSize = 0
	s.TrickStarter = winner
	s.CurrentPlayer = winner

	s.TricksWon[team]++
	if s.TricksWon[team] == 8 {
		s.Points[team] += 90 // Capot
	}
}
