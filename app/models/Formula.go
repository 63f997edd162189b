package models

import "math/rand"

// SuccessFormula is a player's per-game win target. Money is measured in
// thousands of cash. A formula is only ever replaced wholesale, never
// mutated in place.
type SuccessFormula struct {
	Stars  int `json:"stars"`
	Hearts int `json:"hearts"`
	Money  int `json:"money"`
}

func (f SuccessFormula) Total() int {
	return f.Stars + f.Hearts + f.Money
}

// GenerateSuccessFormula splits a total-points target randomly across the
// three tracks, guaranteeing each track at least one point.
func GenerateSuccessFormula(total int, rng *rand.Rand) SuccessFormula {
	if total < 3 {
		total = 3
	}
	stars := 1 + rng.Intn(total-2)
	hearts := 1 + rng.Intn(total-stars-1)
	return SuccessFormula{
		Stars:  stars,
		Hearts: hearts,
		Money:  total - stars - hearts,
	}
}
