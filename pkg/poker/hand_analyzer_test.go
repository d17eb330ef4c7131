package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"winninghands/pkg/deck"
)

func newAnalyzer(s string) *HandAnalyzer {
	return NewHandAnalyzer(deck.MustHand(s))
}

func TestHandAnalyzer_GetFiveOfAKind(t *testing.T) {
	h := newAnalyzer("4S 4H 4D 4C 4S")
	r, ok := h.GetFiveOfAKind()
	assert.True(t, ok)
	assert.Equal(t, deck.Four, r)

	h = newAnalyzer("4S 4H 4D 4C 5S")
	r, ok = h.GetFiveOfAKind()
	assert.False(t, ok)
	assert.Equal(t, deck.Rank(0), r)
}

func TestHandAnalyzer_GetFourOfAKind(t *testing.T) {
	h := newAnalyzer("2C 3C 3D 3H 3S")
	r, ok := h.GetFourOfAKind()
	assert.True(t, ok)
	assert.Equal(t, deck.Three, r)
	_, ok = h.GetThreeOfAKind()
	assert.False(t, ok)
	_, ok = h.GetPair()
	assert.False(t, ok)
	assert.Equal(t, []deck.Rank{deck.Two}, h.GetKickers())

	h = newAnalyzer("9S 4H 5C 4D 4C")
	r, ok = h.GetFourOfAKind()
	assert.False(t, ok)
	assert.Equal(t, deck.Rank(0), r)
}

func TestHandAnalyzer_GetFullHouse(t *testing.T) {
	h := newAnalyzer("3S 3H 3D 2S 2C")
	r, ok := h.GetFullHouse()
	assert.True(t, ok)
	assert.Equal(t, []deck.Rank{deck.Three, deck.Two}, r)

	// the trips decide the order, not the rank
	h = newAnalyzer("2S 2H 2D AS AC")
	r, ok = h.GetFullHouse()
	assert.True(t, ok)
	assert.Equal(t, []deck.Rank{deck.Two, deck.Ace}, r)

	h = newAnalyzer("3C 3D 3H 4C 5D")
	r, ok = h.GetFullHouse()
	assert.False(t, ok)
	assert.Nil(t, r)

	h = newAnalyzer("3C 3D 3H 3S 5D")
	r, ok = h.GetFullHouse()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestHandAnalyzer_GetHighCard(t *testing.T) {
	h := newAnalyzer("AC 2C 5C 8D 3H")
	r, ok := h.GetHighCard()
	assert.Equal(t, deck.Ace, r)
	assert.True(t, ok)

	// the ace plays low in a wheel
	h = newAnalyzer("AH 2D 3S 4C 5H")
	r, ok = h.GetHighCard()
	assert.Equal(t, deck.Five, r)
	assert.True(t, ok)
}

func TestHandAnalyzer_GetPair(t *testing.T) {
	h := newAnalyzer("2C 5C 2H 5H 6D")
	r, ok := h.GetPair()
	assert.True(t, ok)
	assert.Equal(t, deck.Five, r)

	h = newAnalyzer("2C 3C 4H 5H 7D")
	r, ok = h.GetPair()
	assert.False(t, ok)
	assert.Equal(t, deck.Rank(0), r)
}

func TestHandAnalyzer_GetTrips(t *testing.T) {
	h := newAnalyzer("5C 5H 5D 6D 4C")
	r, ok := h.GetThreeOfAKind()
	assert.True(t, ok)
	assert.Equal(t, deck.Five, r)
	assert.Equal(t, []deck.Rank{deck.Six, deck.Four}, h.GetKickers())

	h = newAnalyzer("2C 3C 4H 4S 2D")
	r, ok = h.GetThreeOfAKind()
	assert.False(t, ok)
	assert.Equal(t, deck.Rank(0), r)
}

func TestHandAnalyzer_GetTwoPair(t *testing.T) {
	h := newAnalyzer("5C 5D 6H 6D 3H")
	r, ok := h.GetTwoPair()
	assert.True(t, ok)
	assert.Equal(t, []deck.Rank{deck.Six, deck.Five}, r)

	h = newAnalyzer("2C 2S 3H 4H 5D")
	r, ok = h.GetTwoPair()
	assert.False(t, ok)
	assert.Nil(t, r)

	// a full house has a pair, but not two of them
	h = newAnalyzer("2C 2S 3H 3D 3S")
	r, ok = h.GetTwoPair()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestHandAnalyzer_GetFlush(t *testing.T) {
	h := newAnalyzer("2C 3C 4C 5C 7C")
	r, ok := h.GetFlush()
	assert.True(t, ok)
	assert.Equal(t, []deck.Rank{deck.Seven, deck.Five, deck.Four, deck.Three, deck.Two}, r)

	h = newAnalyzer("2C 3C 4C 5C 7D")
	r, ok = h.GetFlush()
	assert.False(t, ok)
	assert.Nil(t, r)
}

// nolint:dupl
func TestHandAnalyzer_GetStraightFlush(t *testing.T) {
	h := newAnalyzer("2C 3C 4C 5C 6C")
	r, ok := h.GetStraightFlush()
	assert.True(t, ok)
	assert.Equal(t, deck.Six, r)

	h = newAnalyzer("2S 3S 4S 5S AS")
	r, ok = h.GetStraightFlush()
	assert.True(t, ok)
	assert.Equal(t, deck.Five, r)

	h = newAnalyzer("10H JH QH KH AH")
	r, ok = h.GetStraightFlush()
	assert.True(t, ok)
	assert.Equal(t, deck.Ace, r)

	h = newAnalyzer("2C 3C 4C 5C 7C")
	r, ok = h.GetStraightFlush()
	assert.False(t, ok)
	assert.Equal(t, deck.Rank(0), r)
}

// nolint:dupl
func TestHandAnalyzer_GetStraight(t *testing.T) {
	h := newAnalyzer("2C 3D 4H 5S 6C")
	r, ok := h.GetStraight()
	assert.True(t, ok)
	assert.Equal(t, deck.Six, r)
	assert.False(t, h.IsWheel())

	h = newAnalyzer("2C 3D 4S 5H AS")
	r, ok = h.GetStraight()
	assert.True(t, ok)
	assert.Equal(t, deck.Five, r)
	assert.True(t, h.IsWheel())

	h = newAnalyzer("10C JD QS KH AS")
	r, ok = h.GetStraight()
	assert.True(t, ok)
	assert.Equal(t, deck.Ace, r)
	assert.False(t, h.IsWheel())

	// straights do not wrap around the ace
	h = newAnalyzer("JC QD KS AH 2S")
	r, ok = h.GetStraight()
	assert.False(t, ok)
	assert.Equal(t, deck.Rank(0), r)

	h = newAnalyzer("2C 3D 4H 5S 7C")
	r, ok = h.GetStraight()
	assert.False(t, ok)
	assert.Equal(t, deck.Rank(0), r)

	h = newAnalyzer("2C 3D 4H 5S 5C")
	_, ok = h.GetStraight()
	assert.False(t, ok)
}

func TestHandAnalyzer_EffectiveRanks(t *testing.T) {
	h := newAnalyzer("2S 2H KD 3C 3S")
	assert.Equal(t, []deck.Rank{deck.Three, deck.Three, deck.Two, deck.Two, deck.King}, h.EffectiveRanks())

	h = newAnalyzer("9S AH 9D 4C 2S")
	assert.Equal(t, []deck.Rank{deck.Nine, deck.Nine, deck.Ace, deck.Four, deck.Two}, h.EffectiveRanks())

	h = newAnalyzer("AH 2D 3S 4C 5H")
	assert.Equal(t, []deck.Rank{deck.Five, deck.Four, deck.Three, deck.Two, deck.LowAce}, h.EffectiveRanks())
}

func TestHandAnalyzer_wheelDoesNotModifyHand(t *testing.T) {
	hand := deck.MustHand("AH 2D 3S 4C 5H")
	h := NewHandAnalyzer(hand)

	assert.True(t, h.IsWheel())
	assert.Equal(t, deck.Ace, hand.FirstCard().Rank)
	assert.Equal(t, deck.Ace, h.GetCards().FirstCard().Rank)
}

func TestHandAnalyzer_unsortedHand(t *testing.T) {
	hand := deck.Hand{
		{Rank: deck.Two, Suit: deck.Hearts},
		{Rank: deck.King, Suit: deck.Hearts},
		{Rank: deck.Two, Suit: deck.Spades},
		{Rank: deck.Nine, Suit: deck.Clubs},
		{Rank: deck.King, Suit: deck.Clubs},
	}

	h := NewHandAnalyzer(hand)
	assert.Equal(t, TwoPair, h.GetCategory())
	assert.Equal(t, "KH KC 9C 2H 2S", h.GetCards().String())

	// the caller's copy is untouched
	assert.Equal(t, deck.Two, hand[0].Rank)
}

func TestHandAnalyzer_GetCategory(t *testing.T) {
	tests := []struct {
		hand     string
		category Category
	}{
		{"4S 4H 4D 4C 4S", FiveOfAKind},
		{"AH 2H 3H 4H 5H", StraightFlush},
		{"10C JC QC KC AC", StraightFlush},
		{"3C 4C 5C 6C 7C", StraightFlush},
		{"2C 2D 2H 2S 3H", FourOfAKind},
		{"2C 2D 2H 3C 3H", FullHouse},
		{"2C 4C 5C 6C 9C", Flush},
		{"AH 2D 3S 4C 5H", Straight},
		{"6C 7D 8S 9H TC", Straight},
		{"2C 2D 2H 3C 4H", ThreeOfAKind},
		{"2C 2D 3C 3D 4H", TwoPair},
		{"2C 2D 3C 4C 5H", OnePair},
		{"2C 4C KC 5C 8H", HighCard},
		{"4S 5S 7H 8D JC", HighCard},
	}

	for _, test := range tests {
		h := newAnalyzer(test.hand)
		assert.Equal(t, test.category, h.GetCategory(), test.hand)
	}
}

func BenchmarkNewHandAnalyzer(b *testing.B) {
	hand := deck.MustHand("3S 5S 6H 7H JC")
	for i := 0; i < b.N; i++ {
		h := NewHandAnalyzer(hand)
		h.GetCategory()
	}
}
