package models

import "fmt"

// SpecialKind tags the effect descriptor attached to a square. The set is
// closed; unknown tags are rejected when an edition is loaded.
type SpecialKind string

const (
	SpecialBonus                  SpecialKind = "bonus"
	SpecialSalaryIncrease         SpecialKind = "salary_increase"
	SpecialSalaryCut              SpecialKind = "salary_cut"
	SpecialCashLoss               SpecialKind = "cash_loss"
	SpecialCashLossOrUnemployment SpecialKind = "cash_loss_or_unemployment"
	SpecialLoseNextTurn           SpecialKind = "lose_next_turn"
	SpecialExtraTurn              SpecialKind = "extra_turn"
	SpecialFavors                 SpecialKind = "favors"
	SpecialShortcut               SpecialKind = "shortcut"
	SpecialTravelBorder           SpecialKind = "travel_border"
	SpecialBackstab               SpecialKind = "backstab"
	SpecialGoto                   SpecialKind = "goto"
	SpecialFameLoss               SpecialKind = "fame_loss"
	SpecialHappinessLoss          SpecialKind = "happiness_loss"
)

var specialKinds = map[SpecialKind]bool{
	SpecialBonus:                  true,
	SpecialSalaryIncrease:         true,
	SpecialSalaryCut:              true,
	SpecialCashLoss:               true,
	SpecialCashLossOrUnemployment: true,
	SpecialLoseNextTurn:           true,
	SpecialExtraTurn:              true,
	SpecialFavors:                 true,
	SpecialShortcut:               true,
	SpecialTravelBorder:           true,
	SpecialBackstab:               true,
	SpecialGoto:                   true,
	SpecialFameLoss:               true,
	SpecialHappinessLoss:          true,
}

// TaxBracket is one threshold→rate pair of an ordered tax table.
type TaxBracket struct {
	Threshold int `json:"threshold"`
	Rate      int `json:"rate"`
}

// SpecialProcessing describes the scripted effect of a square. Which of the
// optional fields are meaningful depends on Kind.
type SpecialProcessing struct {
	Kind           SpecialKind  `json:"kind"`
	Amount         int          `json:"amount,omitempty"`
	Percent        int          `json:"percent,omitempty"`
	Dice           int          `json:"dice,omitempty"`
	Limit          int          `json:"limit,omitempty"`
	Destination    string       `json:"destination,omitempty"`
	NextSquare     int          `json:"next_square,omitempty"`
	TaxTable       []TaxBracket `json:"tax_table,omitempty"`
	MustRoll       []int        `json:"must_roll,omitempty"`
	RequireDoubles bool         `json:"require_doubles,omitempty"`
}

// Validate rejects descriptors whose kind is not in the closed set.
func (s *SpecialProcessing) Validate() error {
	if !specialKinds[s.Kind] {
		return fmt.Errorf("unknown special processing kind %q", s.Kind)
	}
	return nil
}
