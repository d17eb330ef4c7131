package deck

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// HandSize is the number of cards in a hand
const HandSize = 5

// ErrWrongCardCount is returned when a hand string does not hold exactly HandSize cards
var ErrWrongCardCount = errors.New("wrong card count")

// Hand is five cards sorted by rank, highest first
type Hand [HandSize]Card

type sortByRank []Card

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	return s[i].Rank < s[j].Rank
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// NewHand parses a whitespace separated hand such as "4S 5S 7H 8D JC"
func NewHand(s string) (Hand, error) {
	var h Hand

	tokens := strings.Fields(s)
	if len(tokens) != HandSize {
		return h, fmt.Errorf("%w: expected %d cards, got %d", ErrWrongCardCount, HandSize, len(tokens))
	}

	for i, token := range tokens {
		card, err := ParseCard(token)
		if err != nil {
			return h, err
		}

		h[i] = card
	}

	h.Sort()
	return h, nil
}

// Sort orders the cards by rank, highest first. Cards of equal rank keep their order.
func (h *Hand) Sort() {
	sort.Stable(sort.Reverse(sortByRank(h[:])))
}

// MustHand is like NewHand but panics if the hand cannot be parsed
func MustHand(s string) Hand {
	h, err := NewHand(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse hand `%s`: %v", s, err))
	}

	return h
}

// Ranks returns the rank of each card, highest first
func (h Hand) Ranks() []Rank {
	ranks := make([]Rank, len(h))
	for i, card := range h {
		ranks[i] = card.Rank
	}

	return ranks
}

// FirstCard returns the highest ranked card
func (h Hand) FirstCard() Card {
	return h[0]
}

// LastCard returns the lowest ranked card
func (h Hand) LastCard() Card {
	return h[len(h)-1]
}

func (h Hand) String() string {
	c := make([]string, len(h))
	for i, card := range h {
		c[i] = CardToString(card)
	}

	return strings.Join(c, " ")
}
