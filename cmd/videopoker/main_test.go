package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"videopoker/pkg/deck"
	"videopoker/pkg/strategy"
)

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		hasError string
	}{
		{
			name:  "one argument",
			input: []string{"As,Ks,Qs,Js,Ts"},
		},
		{
			name:  "separate arguments",
			input: []string{"As", "Ks", "Qs", "Js", "Ts"},
		},
		{
			name:  "quoted with spaces",
			input: []string{"14s 13s 12s", "11s 10s"},
		},
		{
			name:     "too few cards",
			input:    []string{"As Ks Qs Js"},
			hasError: "hand must contain exactly 5 cards, got 4",
		},
		{
			name:     "duplicate",
			input:    []string{"As As Qs Js Ts"},
			hasError: "duplicate card: 14s",
		},
		{
			name:     "invalid card",
			input:    []string{"As Ks Qs Js Xy"},
			hasError: `invalid card: "Xy"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards, err := parseCards(tt.input)
			if tt.hasError != "" {
				assert.EqualError(t, err, tt.hasError)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, deck.MustCardsFromString("As,Ks,Qs,Js,Ts"), cards)
		})
	}
}

func TestParseHolds(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		hasError bool
	}{
		{input: "", expected: "00000"},
		{input: "10100", expected: "10100"},
		{input: "1 3 5", expected: "10101"},
		{input: "1,2", expected: "11000"},
		{input: "45", expected: "00011"},
		{input: "all", expected: "11111"},
		{input: "6", hasError: true},
		{input: "1 1", hasError: true},
		{input: "x", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mask, err := parseHolds(tt.input)
			if tt.hasError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, mask.String())
		})
	}
}

func TestParseHolds_quit(t *testing.T) {
	mask, err := parseHolds(" Q ")
	assert.ErrorIs(t, err, errQuit)
	assert.Equal(t, strategy.NoneHeld, mask)
}

func TestFormatHold(t *testing.T) {
	hand := deck.MustCardsFromString("Jc,Jd,3h,7s,9c")
	mask, _ := strategy.ParseHoldMask("11000")

	assert.Equal(t, "[J♣] [J♦]  3♥   7♠   9♣ ", formatHold(hand, mask))
}
