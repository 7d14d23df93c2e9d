package game

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"videopoker/internal/rng"
	"videopoker/pkg/deck"
	"videopoker/pkg/handanalyzer"
	"videopoker/pkg/paytable"
	"videopoker/pkg/strategy"
)

func standardOptions() Options {
	return Options{
		Variant:      handanalyzer.Standard,
		BetLevel:     5,
		Denomination: 1,
	}
}

func newRound(t *testing.T, opts Options, seed int64) *Round {
	t.Helper()

	r, err := NewRound(logrus.StandardLogger(), opts, rng.NewSeeded(seed), nil)
	if err != nil {
		t.Fatal(err)
	}

	return r
}

// riggedRound replaces the dealt hand and the rest of the deck
func riggedRound(t *testing.T, opts Options, hand, rest string) *Round {
	t.Helper()

	r := newRound(t, opts, 1)
	r.hand = deck.MustCardsFromString(hand)
	if rest == "" {
		r.deck = &deck.Deck{Cards: deck.Hand(deck.Build()).Without(r.hand)}
	} else {
		r.deck = &deck.Deck{Cards: deck.MustCardsFromString(rest)}
	}

	return r
}

func TestNewRound(t *testing.T) {
	a := assert.New(t)

	r := newRound(t, standardOptions(), 42)
	a.NotEqual(uuid.Nil, r.ID)
	a.Equal(PhaseDealt, r.Phase())
	a.Len(r.Hand(), 5)
	a.Equal(47, r.deck.CardsLeft())
	a.Equal(strategy.NoneHeld, r.Held())
	a.Nil(r.Outcome())

	_, dup := deck.Hand(r.Hand()).Duplicate()
	a.False(dup)

	for _, card := range r.Hand() {
		a.False(deck.Hand(r.deck.Cards).HasCard(card))
	}

	// the same seed deals the same hand
	a.Equal(r.Hand(), newRound(t, standardOptions(), 42).Hand())
}

func TestNewRound_invalidOptions(t *testing.T) {
	a := assert.New(t)

	opts := standardOptions()
	opts.BetLevel = 0
	_, err := NewRound(logrus.StandardLogger(), opts, rng.NewSeeded(1), nil)
	a.ErrorIs(err, paytable.ErrInvalidBet)

	opts = standardOptions()
	opts.Denomination = 0.25
	_, err = NewRound(logrus.StandardLogger(), opts, rng.NewSeeded(1), nil)
	a.ErrorIs(err, ErrInvalidDenomination)

	opts = standardOptions()
	opts.Variant = "bonus-poker"
	_, err = NewRound(logrus.StandardLogger(), opts, rng.NewSeeded(1), nil)
	a.ErrorIs(err, handanalyzer.ErrUnknownVariant)
}

func TestRound_Hand_isCopy(t *testing.T) {
	r := newRound(t, standardOptions(), 1)

	hand := r.Hand()
	hand[0] = deck.Card{Rank: 99, Suit: deck.Clubs}

	assert.NotEqual(t, hand[0], r.Hand()[0])
}

func TestRound_holds(t *testing.T) {
	a := assert.New(t)

	r := newRound(t, standardOptions(), 1)
	a.NoError(r.ToggleHold(0))
	a.NoError(r.ToggleHold(3))
	a.Equal("10010", r.Held().String())
	a.NoError(r.ToggleHold(0))
	a.Equal("00010", r.Held().String())

	a.ErrorIs(r.ToggleHold(5), ErrInvalidSlot)
	a.ErrorIs(r.ToggleHold(-1), ErrInvalidSlot)

	a.NoError(r.SetHold(strategy.AllHeld))
	a.Equal(strategy.AllHeld, r.Held())
	a.ErrorIs(r.SetHold(strategy.HoldMask(32)), ErrInvalidSlot)
}

func TestRound_Draw(t *testing.T) {
	a := assert.New(t)

	r := riggedRound(t, standardOptions(), "As,Ks,Qs,Js,3d", "Ts,4c")

	c, units, err := r.Classification()
	a.NoError(err)
	a.Equal(handanalyzer.HighCard, c)
	a.Equal(0, units)

	mask, _ := strategy.ParseHoldMask("11110")
	a.NoError(r.SetHold(mask))

	outcome, err := r.Draw()
	a.NoError(err)
	a.Equal(&Outcome{
		Hand:        deck.MustCardsFromString("As,Ks,Qs,Js,Ts"),
		Held:        mask,
		Category:    handanalyzer.RoyalFlush,
		PayoutUnits: 4000,
		Payout:      4000,
	}, outcome)
	a.Equal(PhaseComplete, r.Phase())
	a.Equal(outcome, r.Outcome())
	a.Equal(1, r.deck.CardsLeft())

	_, err = r.Draw()
	a.ErrorIs(err, ErrInvalidPhase)
	a.ErrorIs(r.ToggleHold(0), ErrInvalidPhase)
	a.ErrorIs(r.SetHold(strategy.NoneHeld), ErrInvalidPhase)
}

func TestRound_Draw_slotOrder(t *testing.T) {
	a := assert.New(t)

	opts := Options{Variant: handanalyzer.DeucesWild, BetLevel: 1, Denomination: 0.25}
	r := riggedRound(t, opts, "9h,Kd,9c,Qs,9s", "2c,9d,Ah")

	mask, _ := strategy.ParseHoldMask("10101")
	a.NoError(r.SetHold(mask))

	outcome, err := r.Draw()
	a.NoError(err)
	a.Equal(deck.MustCardsFromString("9h,2c,9c,9d,9s"), outcome.Hand)
	a.Equal(handanalyzer.FiveOfAKind, outcome.Category)
	a.Equal(15, outcome.PayoutUnits)
	a.Equal(3.75, outcome.Payout)
	a.Equal(deck.MustCardsFromString("Ah"), r.deck.Cards)
}

func TestRound_Draw_endOfDeck(t *testing.T) {
	a := assert.New(t)

	r := riggedRound(t, standardOptions(), "As,Ks,Qs,Js,3d", "Ts")

	_, err := r.Draw()
	a.ErrorIs(err, deck.ErrEndOfDeck)
	a.Equal(PhaseDealt, r.Phase())
	a.Equal(deck.MustCardsFromString("As,Ks,Qs,Js,3d"), r.Hand())
	a.Equal(1, r.deck.CardsLeft())
}

func TestRound_Recommendation(t *testing.T) {
	a := assert.New(t)

	r := riggedRound(t, standardOptions(), "As,Ks,Qs,Js,3d", "")
	_, ok, err := r.Recommendation(context.Background())
	a.NoError(err)
	a.False(ok)

	opts := standardOptions()
	opts.ShowBestPlay = true
	r = riggedRound(t, opts, "As,Ks,Qs,Js,3d", "")
	mask, ok, err := r.Recommendation(context.Background())
	a.NoError(err)
	a.True(ok)
	a.Equal("11110", mask.String())

	// a shared optimizer tuned for another variant still answers for this round
	shared := strategy.NewOptimizer(logrus.StandardLogger(), strategy.NewEstimator(handanalyzer.Standard, 1))
	r, err = NewRound(logrus.StandardLogger(), Options{
		Variant:      handanalyzer.DeucesWild,
		BetLevel:     5,
		Denomination: 1,
		ShowBestPlay: true,
	}, rng.NewSeeded(1), shared)
	a.NoError(err)
	r.hand = deck.MustCardsFromString("2s,2h,2d,2c,9s")
	r.deck = &deck.Deck{Cards: deck.Hand(deck.Build()).Without(r.hand)}

	mask, ok, err = r.Recommendation(context.Background())
	a.NoError(err)
	a.True(ok)
	a.Equal(strategy.AllHeld, mask)
	a.Equal(handanalyzer.Standard, shared.Estimator.Variant)

	_, err = r.Draw()
	a.NoError(err)
	_, ok, err = r.Recommendation(context.Background())
	a.NoError(err)
	a.False(ok)
}

func TestRound_State(t *testing.T) {
	a := assert.New(t)

	r := riggedRound(t, standardOptions(), "Jc,Jd,3h,7s,9c", "")
	a.NoError(r.ToggleHold(0))

	state, err := r.State()
	a.NoError(err)
	a.Equal(r.ID, state.ID)
	a.Equal("Jacks or Better ($1.00 x 5)", state.Name)
	a.Equal(handanalyzer.JacksOrBetter, state.Category)
	a.Equal(5, state.PayoutUnits)
	a.Nil(state.Outcome)

	b, err := json.Marshal(state)
	a.NoError(err)

	var decoded map[string]interface{}
	a.NoError(json.Unmarshal(b, &decoded))
	a.Equal([]interface{}{"11c", "11d", "3h", "7s", "9c"}, decoded["hand"])
	a.Equal("10000", decoded["held"])
	a.Equal("Jacks or Better", decoded["category"])
	a.Equal("dealt", decoded["phase"])
	a.NotContains(decoded, "recommendation")
}
