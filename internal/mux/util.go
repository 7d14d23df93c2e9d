package mux

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"videopoker/pkg/deck"
	"videopoker/pkg/handanalyzer"
)

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}

// handPayload is the common body of requests that carry a hand
type handPayload struct {
	Cards   []deck.Card `json:"cards"`
	Variant string      `json:"variant"`
	Bet     int         `json:"bet"`
}

// resolve validates the hand and fills the variant and bet from the config when omitted
func (m *Mux) resolve(p handPayload) (handanalyzer.Variant, int, error) {
	if len(p.Cards) != handanalyzer.HandSize {
		return "", 0, fmt.Errorf("%w: got %d", handanalyzer.ErrMalformedHand, len(p.Cards))
	}

	if card, dup := deck.Hand(p.Cards).Duplicate(); dup {
		return "", 0, fmt.Errorf("duplicate card: %s", deck.CardToString(card))
	}

	variant := p.Variant
	if variant == "" {
		variant = m.config.Game.Variant
	}

	v, err := handanalyzer.ParseVariant(variant)
	if err != nil {
		return "", 0, err
	}

	bet := p.Bet
	if bet == 0 {
		bet = m.config.Game.BetLevel
	}

	return v, bet, nil
}

// validatePool returns an error if pool repeats a card or shares one with hand
func validatePool(hand, pool []deck.Card) error {
	if card, dup := deck.Hand(pool).Duplicate(); dup {
		return fmt.Errorf("duplicate card in remaining: %s", deck.CardToString(card))
	}

	for _, card := range pool {
		if deck.Hand(hand).HasCard(card) {
			return fmt.Errorf("card %s is in both the hand and remaining", deck.CardToString(card))
		}
	}

	return nil
}
