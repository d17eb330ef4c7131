package poker

import (
	"cmp"
	"fmt"

	"winninghands/pkg/deck"
)

// results of Compare
const (
	Less    = -1
	Equal   = 0
	Greater = 1
)

// KickerRule decides how two three of a kinds with the same trips are separated
type KickerRule int

// Constants for KickerRule
const (
	// SingleKicker only compares the highest remaining card
	SingleKicker KickerRule = iota

	// AllKickers compares both remaining cards, highest first
	AllKickers
)

// String returns the configuration name of the rule
func (k KickerRule) String() string {
	switch k {
	case SingleKicker:
		return "single"
	case AllKickers:
		return "all"
	default:
		panic(fmt.Sprintf("unknown kicker rule: %d", k))
	}
}

// ParseKickerRule returns the rule named by s ("single" or "all")
// An empty string is the default rule
func ParseKickerRule(s string) (KickerRule, error) {
	switch s {
	case "", "single":
		return SingleKicker, nil
	case "all":
		return AllKickers, nil
	default:
		return 0, fmt.Errorf("unknown kicker rule: %q", s)
	}
}

// Compare orders two hands: Less if a loses to b, Greater if a beats b, Equal on a tie
func Compare(a, b *HandAnalyzer) int {
	return CompareWithRule(a, b, SingleKicker)
}

// CompareWithRule is Compare with an explicit three of a kind kicker rule
func CompareWithRule(a, b *HandAnalyzer, rule KickerRule) int {
	if c := cmp.Compare(a.category, b.category); c != Equal {
		return c
	}

	return compareRanks(a.tieBreakRanks(rule), b.tieBreakRanks(rule))
}

// tieBreakRanks returns the ranks that separate two hands of the same category,
// most significant first
func (h *HandAnalyzer) tieBreakRanks(rule KickerRule) []deck.Rank {
	switch h.category {
	case FourOfAKind:
		return h.fourOfAKindRanks()
	case FullHouse:
		return h.fullHouseRanks()
	case ThreeOfAKind:
		return h.threeOfAKindRanks(rule)
	default:
		return h.EffectiveRanks()
	}
}

// quads, then the kicker
func (h *HandAnalyzer) fourOfAKindRanks() []deck.Rank {
	return []deck.Rank{h.groups[0].rank, h.groups[1].rank}
}

// trips, then the pair
func (h *HandAnalyzer) fullHouseRanks() []deck.Rank {
	return []deck.Rank{h.groups[0].rank, h.groups[1].rank}
}

// trips, then the highest kicker; the second kicker only counts with AllKickers
func (h *HandAnalyzer) threeOfAKindRanks(rule KickerRule) []deck.Rank {
	ranks := []deck.Rank{h.groups[0].rank, h.groups[1].rank}
	if rule == AllKickers {
		ranks = append(ranks, h.groups[2].rank)
	}

	return ranks
}

func compareRanks(a, b []deck.Rank) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmp.Compare(a[i], b[i]); c != Equal {
			return c
		}
	}

	return cmp.Compare(len(a), len(b))
}
