package poker

import "winninghands/pkg/deck"

// rankGroup is every card in a hand sharing one rank
type rankGroup struct {
	rank deck.Rank
	size int
}

// sortByGroup puts the largest groups first, and higher ranks first within the same size
type sortByGroup []rankGroup

func (s sortByGroup) Len() int {
	return len(s)
}

func (s sortByGroup) Less(i, j int) bool {
	if s[i].size != s[j].size {
		return s[i].size > s[j].size
	}

	return s[i].rank > s[j].rank
}

func (s sortByGroup) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
