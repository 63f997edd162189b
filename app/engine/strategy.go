package engine

import "github.com/careers-sim/careers-backend/app/models"

// Strategy plans a non-human player's turn. It returns a semicolon-delimited
// command sequence that is fed back through the dispatcher.
type Strategy interface {
	PlanTurn(g *models.GameState, p *models.Player) string
}

// RollAndDone is the default strategy: roll if allowed, then end the turn.
type RollAndDone struct{}

func (RollAndDone) PlanTurn(g *models.GameState, p *models.Player) string {
	if p.CanRoll {
		return "roll; done"
	}
	return "done"
}
