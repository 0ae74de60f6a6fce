package ui

import (
	"net/http"

	"github.com/mondragon-developer/statools/domain/dice"
	"github.com/mondragon-developer/statools/models"
)

type diceRollRequest struct {
	Dice int `json:"dice"`
}

type diceRollResponse struct {
	Roll        dice.Roll        `json:"roll"`
	Frequencies dice.Frequencies `json:"frequencies"`
}

func (a *App) handleDiceRoll(w http.ResponseWriter, r *http.Request) {
	var req diceRollRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Dice == 0 {
		req.Dice = 2
	}

	roller, err := a.rollerFor(req.Dice)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := diceRollResponse{
		Roll:        roller.Roll(),
		Frequencies: roller.Frequencies(),
	}
	a.record(r, models.KindDice, req, resp.Roll)
	writeJSON(w, http.StatusOK, resp)
}

func (a *App) handleDiceFrequencies(w http.ResponseWriter, r *http.Request) {
	a.diceMu.Lock()
	roller := a.roller
	a.diceMu.Unlock()

	writeJSON(w, http.StatusOK, roller.Frequencies())
}

func (a *App) handleDiceReset(w http.ResponseWriter, r *http.Request) {
	a.diceMu.Lock()
	a.roller.Reset()
	a.diceMu.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// rollerFor returns the active roller, replacing it (and dropping the
// rolling history) when the requested dice count differs.
func (a *App) rollerFor(count int) (*dice.Roller, error) {
	a.diceMu.Lock()
	defer a.diceMu.Unlock()

	if a.roller.Dice() != count {
		roller, err := dice.NewRoller(count, dice.DefaultHistory)
		if err != nil {
			return nil, err
		}
		a.roller = roller
	}
	return a.roller, nil
}
