package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"

	"videopoker/internal/rng"
)

// ErrEndOfDeck is an error when more cards are requested than remain in the deck
var ErrEndOfDeck = errors.New("end of deck reached")

// Size is the number of cards in a full deck
const Size = 52

// Deck represents a playing deck
// The front of Cards is the top of the deck.
type Deck struct {
	Cards []Card `json:"cards"`
}

// Build returns every card in canonical order: suits in Suits order, ranks ascending
func Build() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return cards
}

// Shuffle permutes the cards in place using Fisher-Yates
func Shuffle(cards []Card, g rng.Generator) {
	for j := len(cards) - 1; j > 0; j-- {
		i := g.Intn(j + 1)

		cards[i], cards[j] = cards[j], cards[i]
	}
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	return &Deck{
		Cards: Build(),
	}
}

// Shuffle rebuilds the full deck and shuffles it
// Cards dealt before the call are returned to the deck.
func (d *Deck) Shuffle(g rng.Generator) {
	d.Cards = Build()
	Shuffle(d.Cards, g)
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) == 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// Deal removes and returns the top n cards
// If n exceeds the cards left, nothing is dealt and ErrEndOfDeck is returned
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot deal %d cards", n)
	}

	if !d.CanDraw(n) {
		return nil, fmt.Errorf("deal %d with %d left: %w", n, len(d.Cards), ErrEndOfDeck)
	}

	cards := make([]Card, n)
	copy(cards, d.Cards[:n])
	d.Cards = d.Cards[n:]

	return cards, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// Remaining returns a copy of the cards left in the deck
func (d *Deck) Remaining() []Card {
	cards := make([]Card, len(d.Cards))
	copy(cards, d.Cards)

	return cards
}

// RemoveCard removes the card from the deck
// Returns false if the card was not in the deck
func (d *Deck) RemoveCard(card Card) bool {
	for i, c := range d.Cards {
		if c.Equal(card) {
			d.Cards = append(d.Cards[:i:i], d.Cards[i+1:]...)
			return true
		}
	}

	return false
}
