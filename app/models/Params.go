package models

// GameParams are the per-edition game defaults, parsed once at load time.
type GameParams struct {
	StartingCash    int            `json:"starting_cash"`
	StartingSalary  int            `json:"starting_salary"`
	TotalPoints     int            `json:"total_points"`
	HeartPrice      int            `json:"heart_price"`
	StarPrice       int            `json:"star_price"`
	ExperiencePrice int            `json:"experience_price"`
	InsurancePrice  int            `json:"insurance_price"`
	TimedLapSeconds int            `json:"timed_lap_seconds"`
	TimedSeconds    int            `json:"timed_seconds"`
	OutcomeWeights  OutcomeWeights `json:"outcome_weights"`
}

// DefaultParams are used when an edition omits a parameter file.
func DefaultParams() GameParams {
	return GameParams{
		StartingCash:    2000,
		StartingSalary:  2000,
		TotalPoints:     60,
		HeartPrice:      500,
		StarPrice:       500,
		ExperiencePrice: 100,
		InsurancePrice:  1000,
		TimedLapSeconds: 60,
		TimedSeconds:    1800,
		OutcomeWeights: OutcomeWeights{
			Salary:        1,
			TotalPoints:   1,
			Unemployed:    -2,
			Sick:          -2,
			Cash:          1,
			CashGoal:      5,
			Fame:          1,
			StarsGoal:     5,
			Happiness:     1,
			HeartsGoal:    5,
			CanRetire:     3,
			Opportunities: 0.5,
			Experience:    0.5,
		},
	}
}
