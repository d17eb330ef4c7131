package poker

import (
	"sort"
)

type tier struct {
	strength int
	results  []*Result
}

// WinManager groups results of equal strength into tiers
type WinManager map[int]*tier

// NewWinManager returns an empty WinManager
func NewWinManager() WinManager {
	return make(WinManager)
}

// AddResult places the result in the tier of its strength
// Results within a tier keep the order they were added in
func (w WinManager) AddResult(r *Result) {
	t, ok := w[r.Strength]
	if !ok {
		t = &tier{
			strength: r.Strength,
			results:  make([]*Result, 0),
		}
	}

	t.results = append(t.results, r)
	w[r.Strength] = t
}

// GetSortedTiers returns every tier, the strongest first
func (w WinManager) GetSortedTiers() [][]*Result {
	tiers := make([]*tier, 0, len(w))
	for _, tier := range w {
		tiers = append(tiers, tier)
	}

	sort.Sort(sort.Reverse(sortByStrength(tiers)))

	tieredResults := make([][]*Result, len(tiers))
	for i, t := range tiers {
		tieredResults[i] = t.results
	}

	return tieredResults
}

type sortByStrength []*tier

func (s sortByStrength) Len() int {
	return len(s)
}

func (s sortByStrength) Less(i, j int) bool {
	return s[i].strength < s[j].strength
}

func (s sortByStrength) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
