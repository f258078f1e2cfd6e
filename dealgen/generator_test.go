package dealgen

import (
	"math/rand"
	"testing"

	"github.com/demanghon/contree.ai/engine"
)

func TestGenerateRandomHandsPartitionTheDeck(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := GenerateRandomHands(rng)

	var union uint32
	for seat, hand := range d.Hands {
		if engine.CountCards(hand) != 8 {
			t.Errorf("seat %d has %d cards, want 8", seat, engine.CountCards(hand))
		}
		if union&hand != 0 {
			t.Errorf("seat %d overlaps an earlier hand", seat)
		}
		union |= hand
	}
	if union != engine.FullDeck {
		t.Errorf("union = %#x, want full deck %#x", union, engine.FullDeck)
	}
}

func TestGenerateForceBeloteForcesKQ(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	d := GenerateForceBelote(rng, engine.Hearts)

	k := uint32(1) << engine.Card(engine.Hearts, engine.RankK)
	q := uint32(1) << engine.Card(engine.Hearts, engine.RankQ)
	if d.Hands[0]&k == 0 || d.Hands[0]&q == 0 {
		t.Error("seat 0 missing the forced K/Q of trump")
	}
	if engine.CountCards(d.Hands[0]) != 8 {
		t.Errorf("seat 0 has %d cards, want 8", engine.CountCards(d.Hands[0]))
	}
}

func TestGenerateForceCapotPassesDetector(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		trump := uint8(trial % 4)
		d := GenerateForceCapot(rng, trump)

		if engine.CountCards(d.Hands[0]) != 8 {
			t.Fatalf("trial %d: seat 0 has %d cards, want 8", trial, engine.CountCards(d.Hands[0]))
		}
		if !IsForceCapot(d.Hands[0], trump) {
			t.Errorf("trial %d: forced hand %#x (trump %d) failed IsForceCapot", trial, d.Hands[0], trump)
		}
	}
}

func TestGenerateForceShapeSumsToEight(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	d := GenerateForceShape(rng, engine.Hearts, 3, [3]int{2, 2, 1})

	if engine.CountCards(d.Hands[0]) != 8 {
		t.Errorf("seat 0 has %d cards, want 8", engine.CountCards(d.Hands[0]))
	}
	trumpCount := engine.CountCards(d.Hands[0] & engine.MaskOfSuit(engine.Hearts))
	if trumpCount != 3 {
		t.Errorf("trump count = %d, want 3", trumpCount)
	}
}

func TestIsForceCapotRejectsGappyHand(t *testing.T) {
	// J, 9, A, K: 4 trumps but K skips over 10 in the strength order, so
	// this is not the strict prefix {J, 9, A, 10}.
	hand := uint32(1<<engine.Card(engine.Hearts, engine.RankJ)) |
		uint32(1<<engine.Card(engine.Hearts, engine.Rank9)) |
		uint32(1<<engine.Card(engine.Hearts, engine.RankA)) |
		uint32(1<<engine.Card(engine.Hearts, engine.RankK))
	if IsForceCapot(hand, engine.Hearts) {
		t.Error("gappy trump holding should not pass IsForceCapot")
	}
}

func TestIsForceCapotRejectsFewerThanFourTrumps(t *testing.T) {
	hand := uint32(1<<engine.Card(engine.Hearts, engine.RankJ)) |
		uint32(1<<engine.Card(engine.Hearts, engine.Rank9)) |
		uint32(1<<engine.Card(engine.Hearts, engine.RankA))
	if IsForceCapot(hand, engine.Hearts) {
		t.Error("3 trumps should never pass IsForceCapot (needs >= 4)")
	}
}

func TestGenerateHandsMixture(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	deals, tags := GenerateHands(rng, 100)

	if len(deals) != 100 {
		t.Fatalf("got %d deals, want 100", len(deals))
	}
	if len(tags) != 100 {
		t.Fatalf("got %d strategy tags, want 100", len(tags))
	}
	for i, d := range deals {
		var union uint32
		for _, hand := range d.Hands {
			union |= hand
		}
		if union != engine.FullDeck {
			t.Errorf("deal %d: union = %#x, want full deck", i, union)
		}
	}
}
