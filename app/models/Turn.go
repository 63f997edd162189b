package models

// PlayerSnapshot captures the tracked fields of a player before and after a
// turn.
type PlayerSnapshot struct {
	Salary        int             `json:"salary"`
	Cash          int             `json:"cash"`
	Fame          int             `json:"fame"`
	Happiness     int             `json:"happiness"`
	TotalPoints   int             `json:"total_points"`
	Unemployed    bool            `json:"is_unemployed"`
	Sick          bool            `json:"is_sick"`
	CanRetire     bool            `json:"can_retire"`
	Pending       []PendingAction `json:"pending_actions"`
	Opportunities int             `json:"opportunity_cards"`
	Experience    int             `json:"experience_cards"`
}

// Snapshot captures the player's current tracked state.
func (p *Player) Snapshot() PlayerSnapshot {
	return PlayerSnapshot{
		Salary:        p.Salary,
		Cash:          p.Cash,
		Fame:          p.Fame(),
		Happiness:     p.Happiness(),
		TotalPoints:   p.TotalPoints(),
		Unemployed:    p.Unemployed,
		Sick:          p.Sick,
		CanRetire:     p.CanRetire(),
		Pending:       p.Pending.List(),
		Opportunities: len(p.Opportunities),
		Experience:    len(p.Experience),
	}
}

// Turn is the per-turn delta record for one player.
type Turn struct {
	Player   string         `json:"player"`
	Number   int            `json:"number"`
	Commands []string       `json:"commands"`
	Before   PlayerSnapshot `json:"before"`
	After    PlayerSnapshot `json:"after"`
	Outcome  float64        `json:"outcome"`
}

// OutcomeWeights scales each tracked field's delta when scoring a turn.
type OutcomeWeights struct {
	Salary        float64 `json:"salary"`
	TotalPoints   float64 `json:"total_points"`
	Unemployed    float64 `json:"unemployed"`
	Sick          float64 `json:"sick"`
	Cash          float64 `json:"cash"`
	CashGoal      float64 `json:"cash_goal"`
	Fame          float64 `json:"fame"`
	StarsGoal     float64 `json:"stars_goal"`
	Happiness     float64 `json:"happiness"`
	HeartsGoal    float64 `json:"hearts_goal"`
	CanRetire     float64 `json:"can_retire"`
	Opportunities float64 `json:"opportunities"`
	Experience    float64 `json:"experience"`
}
