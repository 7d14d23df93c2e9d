package game

import (
	"github.com/google/uuid"

	"videopoker/pkg/deck"
	"videopoker/pkg/handanalyzer"
	"videopoker/pkg/strategy"
)

// State is a snapshot of a round for clients
type State struct {
	ID             uuid.UUID             `json:"id"`
	Name           string                `json:"name"`
	Options        Options               `json:"options"`
	Phase          Phase                 `json:"phase"`
	Hand           []deck.Card           `json:"hand"`
	Held           strategy.HoldMask     `json:"held"`
	Category       handanalyzer.Category `json:"category"`
	PayoutUnits    int                   `json:"payoutUnits"`
	Recommendation *strategy.HoldMask    `json:"recommendation,omitempty"`
	Outcome        *Outcome              `json:"outcome,omitempty"`
}

// State returns a snapshot of the round
// The recommendation is left empty; see Recommendation.
func (r *Round) State() (*State, error) {
	c, units, err := r.Classification()
	if err != nil {
		return nil, err
	}

	return &State{
		ID:          r.ID,
		Name:        NameFromOptions(r.options),
		Options:     r.options,
		Phase:       r.phase,
		Hand:        r.Hand(),
		Held:        r.held,
		Category:    c,
		PayoutUnits: units,
		Outcome:     r.outcome,
	}, nil
}
