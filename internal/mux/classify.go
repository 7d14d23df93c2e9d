package mux

import (
	"net/http"

	"videopoker/pkg/handanalyzer"
	"videopoker/pkg/paytable"
)

type postClassifyResponse struct {
	Variant     handanalyzer.Variant  `json:"variant"`
	Category    handanalyzer.Category `json:"category"`
	PayoutUnits int                   `json:"payoutUnits"`
}

func (m *Mux) postClassify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p handPayload
		if !decodeRequest(w, r, &p) {
			return
		}

		v, bet, err := m.resolve(p)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		if err := paytable.ValidateBet(bet); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		c, err := handanalyzer.Classify(p.Cards, v)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, postClassifyResponse{
			Variant:     v,
			Category:    c,
			PayoutUnits: paytable.Payout(c, bet, v),
		})
	}
}
