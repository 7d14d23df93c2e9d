package mux

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"videopoker/pkg/game"
	"videopoker/pkg/handanalyzer"
)

func TestMux_round(t *testing.T) {
	a := assert.New(t)

	m := newTestMux(t)
	ts := httptest.NewServer(m)
	defer ts.Close()

	var state game.State
	assertPost(t, ts, "/round", map[string]interface{}{
		"variant":      "jacks-or-better",
		"bet":          1,
		"denomination": 5,
		"showBestPlay": true,
	}, &state, 201)

	a.Equal(game.PhaseDealt, state.Phase)
	a.Len(state.Hand, 5)
	a.Equal(handanalyzer.Standard, state.Options.Variant)
	a.Equal(5.0, state.Options.Denomination)
	if a.NotNil(state.Recommendation) {
		a.True(state.Recommendation.Valid())
	}
	a.Equal(1, m.rounds.len())

	var again game.State
	assertGet(t, ts, "/round/"+state.ID.String(), &again, 200)
	a.Equal(state.ID, again.ID)
	a.Equal(state.Hand, again.Hand)

	var outcome game.Outcome
	assertPost(t, ts, "/round/"+state.ID.String()+"/draw", map[string]interface{}{
		"hold": "11111",
	}, &outcome, 200)
	a.Equal(state.Hand, outcome.Hand)
	a.Equal(state.Category, outcome.Category)
	a.Equal(state.PayoutUnits, outcome.PayoutUnits)
	a.Equal(float64(outcome.PayoutUnits)*5, outcome.Payout)

	// drawn rounds are discarded
	a.Equal(0, m.rounds.len())
	var errObj errorResponse
	assertGet(t, ts, "/round/"+state.ID.String(), &errObj, 404)
	assertPost(t, ts, "/round/"+state.ID.String()+"/draw", map[string]interface{}{"hold": "00000"}, &errObj, 404)
}

func TestMux_round_defaults(t *testing.T) {
	a := assert.New(t)

	ts := httptest.NewServer(newTestMux(t))
	defer ts.Close()

	var state game.State
	assertPost(t, ts, "/round", map[string]interface{}{}, &state, 201)
	a.Equal(handanalyzer.DeucesWild, state.Options.Variant)
	a.Equal(5, state.Options.BetLevel)
	a.Equal(0.25, state.Options.Denomination)
	a.Nil(state.Recommendation)

	// the configured quarter is not offered for jacks or better
	assertPost(t, ts, "/round", map[string]interface{}{"variant": "jacks-or-better"}, &state, 201)
	a.Equal(1.0, state.Options.Denomination)
}

func TestMux_round_errors(t *testing.T) {
	a := assert.New(t)

	ts := httptest.NewServer(newTestMux(t))
	defer ts.Close()

	var errObj errorResponse
	assertPost(t, ts, "/round", map[string]interface{}{"bet": 6}, &errObj, 400)
	a.Equal("invalid bet: 6 is not between 1 and 5", errObj.Message)

	assertPost(t, ts, "/round", map[string]interface{}{"variant": "jacks-or-better", "denomination": 0.5}, &errObj, 400)
	a.Equal("invalid denomination: $0.50 is not offered for Jacks or Better", errObj.Message)

	assertGet(t, ts, "/round/00000000-0000-0000-0000-000000000000", &errObj, 404)
	assertGet(t, ts, "/round/not-a-uuid", nil, 404)

	var state game.State
	assertPost(t, ts, "/round", map[string]interface{}{}, &state, 201)
	assertPost(t, ts, "/round/"+state.ID.String()+"/draw", map[string]interface{}{"hold": "1"}, &errObj, 400)
}

func TestMux_round_limit(t *testing.T) {
	m := newTestMux(t)
	m.rounds = newRoundStore(1)

	ts := httptest.NewServer(m)
	defer ts.Close()

	var state game.State
	assertPost(t, ts, "/round", map[string]interface{}{}, &state, 201)

	var errObj errorResponse
	assertPost(t, ts, "/round", map[string]interface{}{}, &errObj, 503)
	assert.Equal(t, "Service Unavailable", errObj.Message)
}
