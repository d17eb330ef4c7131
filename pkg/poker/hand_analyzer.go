package poker

import (
	"sort"

	"winninghands/pkg/deck"
)

// HandAnalyzer can analyze a hand
type HandAnalyzer struct {
	cards    deck.Hand
	groups   []rankGroup
	flush    bool
	straight bool
	wheel    bool

	category Category
	strength int
}

// NewHandAnalyzer will return a new HandAnalyzer instance
func NewHandAnalyzer(hand deck.Hand) *HandAnalyzer {
	// hand is an array, so sorting never touches the caller's copy
	hand.Sort()

	h := &HandAnalyzer{
		cards: hand,
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateCategory()

	return h
}

// analyzeHand groups the cards by rank and checks for flushes and straights
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	counts := make(map[deck.Rank]int, deck.HandSize)
	suit := h.cards.FirstCard().Suit

	h.flush = true
	for _, card := range h.cards {
		counts[card.Rank]++

		if card.Suit != suit {
			h.flush = false
		}
	}

	h.groups = make([]rankGroup, 0, len(counts))
	for rank, size := range counts {
		h.groups = append(h.groups, rankGroup{rank: rank, size: size})
	}

	sort.Sort(sortByGroup(h.groups))

	h.checkStraight()
}

// calculateCategory will determine the category of the hand
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateCategory() {
	// with five cards, the number of groups and the size of the largest
	// group identify every pairing category
	nGroups := len(h.groups)
	largest := h.groups[0].size

	switch {
	case nGroups == 1:
		h.category = FiveOfAKind
	case h.flush && h.straight:
		h.category = StraightFlush
	case nGroups == 2 && largest == 4:
		h.category = FourOfAKind
	case nGroups == 2:
		h.category = FullHouse
	case h.flush:
		h.category = Flush
	case h.straight:
		h.category = Straight
	case nGroups == 3 && largest == 3:
		h.category = ThreeOfAKind
	case nGroups == 3:
		h.category = TwoPair
	case nGroups == 4:
		h.category = OnePair
	default:
		h.category = HighCard
	}
}

// GetCategory will return the category of the hand
func (h *HandAnalyzer) GetCategory() Category {
	return h.category
}

// GetCards returns the analyzed cards, highest rank first
func (h *HandAnalyzer) GetCards() deck.Hand {
	return h.cards
}

// EffectiveRanks returns the ranks in the order they are compared: the largest
// groups first, higher ranks first within a group size. An ace in a wheel is
// reported as deck.LowAce.
func (h *HandAnalyzer) EffectiveRanks() []deck.Rank {
	ranks := make([]deck.Rank, 0, deck.HandSize)
	for _, g := range h.groups {
		for i := 0; i < g.size; i++ {
			ranks = append(ranks, g.rank)
		}
	}

	if h.wheel {
		ranks = append(ranks[1:], deck.LowAce)
	}

	return ranks
}

// GetFiveOfAKind will return the rank of a five of a kind, if possible
func (h *HandAnalyzer) GetFiveOfAKind() (deck.Rank, bool) {
	if h.groups[0].size == 5 {
		return h.groups[0].rank, true
	}

	return 0, false
}

// GetStraightFlush will return the highest card of a straight flush, if possible
func (h *HandAnalyzer) GetStraightFlush() (deck.Rank, bool) {
	if h.flush && h.straight {
		return h.highCard(), true
	}

	return 0, false
}

// GetFourOfAKind will return the rank of the four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (deck.Rank, bool) {
	if h.groups[0].size == 4 {
		return h.groups[0].rank, true
	}

	return 0, false
}

// GetFullHouse will return the rank of the trips and of the pair, if possible
func (h *HandAnalyzer) GetFullHouse() ([]deck.Rank, bool) {
	if len(h.groups) == 2 && h.groups[0].size == 3 {
		return []deck.Rank{h.groups[0].rank, h.groups[1].rank}, true
	}

	return nil, false
}

// GetFlush will return the ranks of the flush, if possible
func (h *HandAnalyzer) GetFlush() ([]deck.Rank, bool) {
	if h.flush {
		return h.cards.Ranks(), true
	}

	return nil, false
}

// GetStraight will return the highest card of the straight, if possible
// A wheel (A-2-3-4-5) is a five-high straight
func (h *HandAnalyzer) GetStraight() (deck.Rank, bool) {
	if h.straight {
		return h.highCard(), true
	}

	return 0, false
}

// GetThreeOfAKind will return the rank of the three of a kind, if possible
func (h *HandAnalyzer) GetThreeOfAKind() (deck.Rank, bool) {
	if h.groups[0].size == 3 {
		return h.groups[0].rank, true
	}

	return 0, false
}

// GetTwoPair will return the ranks of both pairs, highest first, if possible
func (h *HandAnalyzer) GetTwoPair() ([]deck.Rank, bool) {
	if len(h.groups) == 3 && h.groups[1].size == 2 {
		return []deck.Rank{h.groups[0].rank, h.groups[1].rank}, true
	}

	return nil, false
}

// GetPair will return the rank of the best pair, if possible
func (h *HandAnalyzer) GetPair() (deck.Rank, bool) {
	for _, g := range h.groups {
		if g.size == 2 {
			return g.rank, true
		}
	}

	return 0, false
}

// GetHighCard will return the high card
func (h *HandAnalyzer) GetHighCard() (deck.Rank, bool) {
	return h.highCard(), true
}

// GetKickers returns the ranks of the cards that do not share a rank with any
// other card, highest first
func (h *HandAnalyzer) GetKickers() []deck.Rank {
	kickers := make([]deck.Rank, 0, deck.HandSize)
	for _, g := range h.groups {
		if g.size == 1 {
			kickers = append(kickers, g.rank)
		}
	}

	return kickers
}

// IsWheel returns true if the hand is a five-high straight (A-2-3-4-5)
func (h *HandAnalyzer) IsWheel() bool {
	return h.wheel
}

func (h *HandAnalyzer) highCard() deck.Rank {
	if h.wheel {
		return deck.Five
	}

	return h.cards.FirstCard().Rank
}
