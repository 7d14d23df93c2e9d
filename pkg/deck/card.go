package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Spades   Suit = "spades"
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
)

// Suits is every suit in canonical deck order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// face cards
const (
	Two     = 2
	Ten     = 10
	Jack    = 11
	Queen   = 12
	King    = 13
	Ace     = 14
	HighAce = Ace
	LowAce  = 1
)

// Card is an individual playing card
// Cards are values; two cards are the same card if rank and suit match.
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

func (c Card) String() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♦"
	case Hearts:
		suit = "♥"
	case Spades:
		suit = "♠"
	default:
		suit = "?"
	}

	return rankLabel(c.Rank) + suit
}

func rankLabel(rank int) string {
	switch rank {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(rank)
	}
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// IsValid returns true if the card exists in a standard 52-card deck
func (c Card) IsValid() bool {
	if c.Rank < Two || c.Rank > Ace {
		return false
	}

	switch c.Suit {
	case Spades, Hearts, Diamonds, Clubs:
		return true
	}

	return false
}

// AceLowRank return the rank where Ace is considered low instead of high
func (c Card) AceLowRank() int {
	if c.Rank == Ace {
		return LowAce
	}

	return c.Rank
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4]|[tjqka])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank is 2-14 (or T, J, Q, K, A) and suit in [cdhs]
func CardFromString(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	var rank int
	switch strings.ToUpper(match[1]) {
	case "T":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		// the regexp guarantees a number
		rank, _ = strconv.Atoi(match[1])
	}

	if rank < Two {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// CardsFromString returns a slice of cards
// Cards may be separated by commas or whitespace, i.e., "14s,13s" or "As Ks"
func CardsFromString(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	cards := make([]Card, len(fields))
	for i, field := range fields {
		card, err := CardFromString(field)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// MustCardsFromString is like CardsFromString but panics on malformed input
func MustCardsFromString(s string) []Card {
	cards, err := CardsFromString(s)
	if err != nil {
		panic(err)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card Card) string {
	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}

// MarshalText encodes the card in the 14s format
func (c Card) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: rank %d suit %q", ErrInvalidCard, c.Rank, c.Suit)
	}

	return []byte(CardToString(c)), nil
}

// UnmarshalText decodes a card from either the 14s or As format
func (c *Card) UnmarshalText(b []byte) error {
	card, err := CardFromString(string(b))
	if err != nil {
		return err
	}

	*c = card
	return nil
}
