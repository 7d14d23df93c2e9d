package mux

import (
	"errors"
	"net/http"

	"videopoker/pkg/deck"
	"videopoker/pkg/strategy"
)

const (
	defaultTopHolds = 5
	maxTopHolds     = strategy.NumMasks
)

type postHoldPayload struct {
	handPayload
	Remaining []deck.Card `json:"remaining"`
	Top       int         `json:"top"`
}

type holdDecision struct {
	strategy.Decision
	Cards []deck.Card `json:"cards"`
}

type postHoldResponse struct {
	Hold      strategy.HoldMask `json:"hold"`
	Cards     []deck.Card       `json:"cards"`
	EV        float64           `json:"ev"`
	Exact     bool              `json:"exact"`
	Decisions []holdDecision    `json:"decisions"`
}

func (m *Mux) postHold() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p postHoldPayload
		if !decodeRequest(w, r, &p) {
			return
		}

		v, bet, err := m.resolve(p.handPayload)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		top := p.Top
		if top == 0 {
			top = defaultTopHolds
		}

		if top < 0 || top > maxTopHolds {
			writeJSONError(w, http.StatusBadRequest, errors.New("top must be between 1 and 32"))
			return
		}

		remaining := p.Remaining
		if remaining == nil {
			remaining = deck.Hand(deck.Build()).Without(p.Cards)
		} else if err := validatePool(p.Cards, remaining); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		o := m.config.Optimizer(m.logger, v, bet, m.rand)
		decisions, err := o.Evaluate(r.Context(), p.Cards, remaining)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		best := o.Best(decisions)
		ranked := o.Rank(decisions)[:top]

		resp := postHoldResponse{
			Hold:      best.Mask,
			Cards:     best.Mask.Apply(p.Cards),
			EV:        best.EV,
			Exact:     best.Exact,
			Decisions: make([]holdDecision, len(ranked)),
		}

		for i, d := range ranked {
			resp.Decisions[i] = holdDecision{
				Decision: d,
				Cards:    d.Mask.Apply(p.Cards),
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
