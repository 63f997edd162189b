package models

// Score is the point-track portion of a player summary.
type Score struct {
	Cash        int `json:"cash"`
	Fame        int `json:"fame"`
	Happiness   int `json:"happiness"`
	TotalPoints int `json:"total_points"`
}

// PlayerSummary is the serialized player shape returned by status commands
// and the API layer. Field names are part of the wire contract.
type PlayerSummary struct {
	Name           string          `json:"name"`
	Number         int             `json:"number"`
	Initials       string          `json:"initials"`
	SuccessFormula SuccessFormula  `json:"success_formula"`
	Score          Score           `json:"score"`
	BoardLocation  BoardLocation   `json:"board_location"`
	IsUnemployed   bool            `json:"is_unemployed"`
	IsSick         bool            `json:"is_sick"`
	OnHoliday      bool            `json:"on_holiday"`
	LoseTurn       bool            `json:"lose_turn"`
	CanRoll        bool            `json:"can_roll"`
	ExtraTurn      int             `json:"extra_turn"`
	SalaryHistory  []int           `json:"salary_history"`
	PendingActions []PendingAction `json:"pending_actions"`
}

// Summary builds the serialized view of the player.
func (p *Player) Summary() PlayerSummary {
	return PlayerSummary{
		Name:           p.Name,
		Number:         p.Number,
		Initials:       p.Initials,
		SuccessFormula: p.Formula,
		Score: Score{
			Cash:        p.Cash,
			Fame:        p.Fame(),
			Happiness:   p.Happiness(),
			TotalPoints: p.TotalPoints(),
		},
		BoardLocation:  p.Location,
		IsUnemployed:   p.Unemployed,
		IsSick:         p.Sick,
		OnHoliday:      p.OnHoliday,
		LoseTurn:       p.LoseTurn,
		CanRoll:        p.CanRoll,
		ExtraTurn:      p.ExtraTurns,
		SalaryHistory:  append([]int(nil), p.SalaryHistory...),
		PendingActions: p.Pending.List(),
	}
}
