package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRank is returned when a card token has an unrecognized rank
var ErrInvalidRank = errors.New("invalid rank")

// ErrInvalidSuit is returned when a card token has an unrecognized suit
var ErrInvalidSuit = errors.New("invalid suit")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Rank is the face value of a card
type Rank int

// rank constants, in ascending order
const (
	LowAce Rank = iota // an ace playing below the two in a wheel, never stored on a card
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	HighAce = Ace
)

var rankNames = map[string]Rank{
	"A":  Ace,
	"2":  Two,
	"3":  Three,
	"4":  Four,
	"5":  Five,
	"6":  Six,
	"7":  Seven,
	"8":  Eight,
	"9":  Nine,
	"10": Ten,
	"T":  Ten,
	"J":  Jack,
	"Q":  Queen,
	"K":  King,
}

// String returns the rank in the same notation it is parsed from
func (r Rank) String() string {
	switch r {
	case Ace, LowAce:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		if r > LowAce && r < Jack {
			return fmt.Sprintf("%d", int(r)+1)
		}

		panic(fmt.Sprintf("unknown rank: %d", r))
	}
}

// Card is an individual playing card
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

func (c Card) String() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return c.Rank.String() + suit
}

// ParseCard returns a Card from a token such as "4S", "10h" or "AC".
// Everything but the last character is the rank, the last character is the suit.
func ParseCard(token string) (Card, error) {
	if token == "" {
		return Card{}, fmt.Errorf("%w: empty card", ErrInvalidRank)
	}

	rankText, suitText := token[:len(token)-1], token[len(token)-1:]

	rank, ok := rankNames[rankText]
	if !ok {
		return Card{}, fmt.Errorf("%w: %q in card %q", ErrInvalidRank, rankText, token)
	}

	var suit Suit
	switch strings.ToLower(suitText) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		return Card{}, fmt.Errorf("%w: %q in card %q", ErrInvalidSuit, suitText, token)
	}

	return Card{
		Rank: rank,
		Suit: suit,
	}, nil
}

// CardToString converts a card (Ten of Hearts) to its token (10H)
func CardToString(card Card) string {
	var suit string
	switch card.Suit {
	case Clubs:
		suit = "C"
	case Hearts:
		suit = "H"
	case Diamonds:
		suit = "D"
	case Spades:
		suit = "S"
	}

	return card.Rank.String() + suit
}
