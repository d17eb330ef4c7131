package poker

import "fmt"

// Category is a poker hand category, i.e., full house
type Category int

// Constants for category, weakest first
const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	FiveOfAKind
)

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case FiveOfAKind:
		return "Five of a kind"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}
