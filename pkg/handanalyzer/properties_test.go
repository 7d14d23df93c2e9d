package handanalyzer

import (
	"testing"

	"github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"

	"videopoker/internal/rng"
	"videopoker/pkg/combin"
	"videopoker/pkg/deck"
)

// permutations calls fn with every ordering of cards
func permutations(cards []deck.Card, fn func([]deck.Card)) {
	var permute func(k int)
	permute = func(k int) {
		if k == len(cards) {
			fn(cards)
			return
		}

		for i := k; i < len(cards); i++ {
			cards[k], cards[i] = cards[i], cards[k]
			permute(k + 1)
			cards[k], cards[i] = cards[i], cards[k]
		}
	}

	permute(0)
}

func TestClassify_orderIndependent(t *testing.T) {
	g := rng.NewSeeded(42)
	d := deck.New()

	for i := 0; i < 200; i++ {
		d.Shuffle(g)
		hand, err := d.Deal(5)
		assert.NoError(t, err)

		for _, v := range Variants {
			want, err := Classify(hand, v)
			assert.NoError(t, err)

			permutations(deck.Hand(hand).Clone(), func(p []deck.Card) {
				got, _ := Classify(p, v)
				if got != want {
					t.Errorf("%s %s: got %s, want %s", v, deck.Hand(p), got, want)
				}
			})
		}
	}
}

func TestClassify_allHands(t *testing.T) {
	if testing.Short() {
		t.Skip("enumerates every five card hand")
	}

	expect := map[Variant]map[Category]int{
		Standard: {
			RoyalFlush:    4,
			StraightFlush: 36,
			FourOfAKind:   624,
			FullHouse:     3744,
			Flush:         5108,
			Straight:      10200,
			ThreeOfAKind:  54912,
			TwoPair:       123552,
			JacksOrBetter: 337920,
			HighCard:      2062860,
		},
		DeucesWild: {
			NaturalRoyalFlush: 4,
			FourDeuces:        48,
			WildRoyalFlush:    480,
			FiveOfAKind:       624,
			StraightFlush:     2068,
			FourOfAKind:       31552,
			FullHouse:         12672,
			Flush:             14472,
			Straight:          62232,
			ThreeOfAKind:      355080,
			NoWin:             2119728,
		},
	}

	cards := deck.Build()
	hand := make([]deck.Card, 0, HandSize)

	for v, want := range expect {
		got := make(map[Category]int)
		for idx := range combin.Combinations(len(cards), HandSize) {
			hand = combin.Select(hand, cards, idx)
			c, err := Classify(hand, v)
			if err != nil {
				t.Fatal(err)
			}

			got[c]++
		}

		assert.Equal(t, want, got, string(v))
	}
}

func toPoker(t *testing.T, cards []deck.Card) *[5]poker.Card {
	t.Helper()

	var out [5]poker.Card
	for i, c := range cards {
		var suit poker.Suit
		switch c.Suit {
		case deck.Clubs:
			suit = poker.Club
		case deck.Diamonds:
			suit = poker.Diamond
		case deck.Hearts:
			suit = poker.Heart
		case deck.Spades:
			suit = poker.Spade
		}

		card, err := poker.MakeCard(suit, poker.Rank(c.AceLowRank()))
		if err != nil {
			t.Fatal(err)
		}

		out[i] = card
	}

	return &out
}

// Categories must agree with an independent evaluator: a better category is
// always a stronger poker hand.
func TestClassify_agreesWithEvaluator(t *testing.T) {
	g := rng.NewSeeded(7)
	d := deck.New()

	type scored struct {
		hand  []deck.Card
		rank  int
		score int16
	}

	hands := make([]scored, 0, 2000)
	for i := 0; i < cap(hands); i++ {
		d.Shuffle(g)
		hand, err := d.Deal(5)
		assert.NoError(t, err)

		c, err := Classify(hand, Standard)
		assert.NoError(t, err)

		hands = append(hands, scored{
			hand:  hand,
			rank:  Standard.Precedence(c),
			score: poker.Eval5(toPoker(t, hand)),
		})
	}

	for i := 1; i < len(hands); i++ {
		x, y := hands[i-1], hands[i]
		if x.rank < y.rank && x.score <= y.score {
			t.Errorf("%s ranks above %s but scores %d <= %d", deck.Hand(x.hand), deck.Hand(y.hand), x.score, y.score)
		}

		if x.rank > y.rank && x.score >= y.score {
			t.Errorf("%s ranks below %s but scores %d >= %d", deck.Hand(x.hand), deck.Hand(y.hand), x.score, y.score)
		}
	}
}
