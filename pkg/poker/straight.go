package poker

import "winninghands/pkg/deck"

// checkStraight sets the straight and wheel flags
// The cards must be sorted and the rank groups built before this is called
func (h *HandAnalyzer) checkStraight() {
	// a repeated rank can never be part of a five card straight
	if len(h.groups) != deck.HandSize {
		return
	}

	high := h.cards.FirstCard().Rank
	low := h.cards.LastCard().Rank

	if high-low == deck.HandSize-1 {
		h.straight = true
		return
	}

	// A-5-4-3-2: the ace plays below the two
	if high == deck.Ace && h.cards[1].Rank == deck.Five {
		h.straight = true
		h.wheel = true
	}
}
