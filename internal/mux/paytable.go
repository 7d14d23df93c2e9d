package mux

import (
	"net/http"

	"github.com/gorilla/mux"

	"videopoker/pkg/handanalyzer"
	"videopoker/pkg/paytable"
)

type getPaytableResponse struct {
	Variant       handanalyzer.Variant `json:"variant"`
	Name          string               `json:"name"`
	Denominations []float64            `json:"denominations"`
	Rows          []paytable.Row       `json:"rows"`
}

func (m *Mux) getPaytable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := handanalyzer.ParseVariant(mux.Vars(r)["variant"])
		if err != nil {
			writeJSONError(w, http.StatusNotFound, err)
			return
		}

		writeJSON(w, http.StatusOK, getPaytableResponse{
			Variant:       v,
			Name:          v.Name(),
			Denominations: paytable.Denominations(v),
			Rows:          paytable.ForVariant(v).Rows(v),
		})
	}
}
