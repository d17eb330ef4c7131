package poker

import "winninghands/pkg/deck"

// strengthBase is larger than any rank, so each rank fits in one digit
const strengthBase = 15

// calculateStrength packs the category and up to five tie-break ranks into a
// single number. Two hands compare the same way their strengths do.
func calculateStrength(category Category, ranks []deck.Rank) int {
	fiveRanks := make([]deck.Rank, deck.HandSize)
	copy(fiveRanks, ranks)

	strength := int(category)
	for _, rank := range fiveRanks {
		strength = strength*strengthBase + int(rank)
	}

	return strength
}

// GetStrength returns the strength of the hand
func (h *HandAnalyzer) GetStrength() int {
	if h.strength > 0 {
		return h.strength
	}

	h.strength = h.GetStrengthWithRule(SingleKicker)
	return h.strength
}

// GetStrengthWithRule returns the strength of the hand under the given three of a kind kicker rule
func (h *HandAnalyzer) GetStrengthWithRule(rule KickerRule) int {
	return calculateStrength(h.category, h.tieBreakRanks(rule))
}
