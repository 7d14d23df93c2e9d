package mux

import (
	"context"
	"net/http"

	"videopoker/pkg/game"
	"videopoker/pkg/handanalyzer"
	"videopoker/pkg/paytable"
	"videopoker/pkg/strategy"
)

type postRoundPayload struct {
	Variant      string  `json:"variant"`
	Bet          int     `json:"bet"`
	Denomination float64 `json:"denomination"`
	ShowBestPlay *bool   `json:"showBestPlay"`
}

// options fills omitted values from the configured defaults
// The configured coin is swapped for the variant's smallest when the variant does not offer it.
func (m *Mux) options(p postRoundPayload) (game.Options, error) {
	variant := p.Variant
	if variant == "" {
		variant = m.config.Game.Variant
	}

	v, err := handanalyzer.ParseVariant(variant)
	if err != nil {
		return game.Options{}, err
	}

	opts := game.Options{
		Variant:      v,
		BetLevel:     p.Bet,
		Denomination: p.Denomination,
		ShowBestPlay: m.config.Game.ShowBestPlay,
	}

	if opts.BetLevel == 0 {
		opts.BetLevel = m.config.Game.BetLevel
	}

	if opts.Denomination == 0 {
		opts.Denomination = m.config.Game.Denomination
		if !paytable.ValidDenomination(v, opts.Denomination) {
			opts.Denomination = paytable.Denominations(v)[0]
		}
	}

	if p.ShowBestPlay != nil {
		opts.ShowBestPlay = *p.ShowBestPlay
	}

	return opts, opts.Validate()
}

// roundState returns the round's state with the recommendation filled in
func (m *Mux) roundState(ctx context.Context, r *game.Round) (*game.State, error) {
	state, err := r.State()
	if err != nil {
		return nil, err
	}

	mask, ok, err := r.Recommendation(ctx)
	if err != nil {
		return nil, err
	}

	if ok {
		state.Recommendation = &mask
	}

	return state, nil
}

func (m *Mux) postRound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p postRoundPayload
		if !decodeRequest(w, r, &p) {
			return
		}

		opts, err := m.options(p)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		optimizer := m.config.Optimizer(m.logger, opts.Variant, opts.BetLevel, m.rand)
		round, err := game.NewRound(m.logger, opts, m.rand, optimizer)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		state, err := m.roundState(r.Context(), round)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		if err := m.rounds.add(round); err != nil {
			writeJSONError(w, http.StatusServiceUnavailable, err)
			return
		}

		writeJSON(w, http.StatusCreated, state)
	}
}

func (m *Mux) getRoundUUID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry := r.Context().Value(ctxRoundKey).(*roundEntry)
		entry.Lock()
		defer entry.Unlock()

		state, err := m.roundState(r.Context(), entry.round)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, state)
	})
}

type postRoundUUIDDrawPayload struct {
	Hold strategy.HoldMask `json:"hold"`
}

func (m *Mux) postRoundUUIDDraw() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p postRoundUUIDDrawPayload
		if !decodeRequest(w, r, &p) {
			return
		}

		entry := r.Context().Value(ctxRoundKey).(*roundEntry)
		entry.Lock()
		defer entry.Unlock()

		if err := entry.round.SetHold(p.Hold); err != nil {
			writeJSONError(w, http.StatusConflict, err)
			return
		}

		outcome, err := entry.round.Draw()
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		m.rounds.remove(entry.round.ID.String())

		writeJSON(w, http.StatusOK, outcome)
	})
}
