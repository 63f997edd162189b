package engine

import "github.com/careers-sim/careers-backend/app/models"

// ScoreTurn derives the turn's scalar outcome: the weighted sum over the
// tracked fields that actually changed. Each field is an explicit typed
// branch over the fixed known set.
func ScoreTurn(t *models.Turn, formula models.SuccessFormula, w models.OutcomeWeights) float64 {
	before, after := t.Before, t.After
	var score float64

	if d := models.FloorDiv(after.Salary-before.Salary, 1000); d != 0 {
		score += w.Salary * float64(d)
	}
	if d := after.TotalPoints - before.TotalPoints; d != 0 {
		score += w.TotalPoints * float64(d)
	}
	if d := flagDelta(before.Unemployed, after.Unemployed); d != 0 {
		score += w.Unemployed * float64(d)
	}
	if d := flagDelta(before.Sick, after.Sick); d != 0 {
		score += w.Sick * float64(d)
	}
	if d := models.FloorDiv(after.Cash-before.Cash, 1000); d != 0 {
		score += w.Cash * float64(d)
	}
	if d := flagDelta(cashGoalMet(before, formula), cashGoalMet(after, formula)); d != 0 {
		score += w.CashGoal * float64(d)
	}
	if d := after.Fame - before.Fame; d != 0 {
		score += w.Fame * float64(d)
	}
	if d := flagDelta(before.Fame >= formula.Stars, after.Fame >= formula.Stars); d != 0 {
		score += w.StarsGoal * float64(d)
	}
	if d := after.Happiness - before.Happiness; d != 0 {
		score += w.Happiness * float64(d)
	}
	if d := flagDelta(before.Happiness >= formula.Hearts, after.Happiness >= formula.Hearts); d != 0 {
		score += w.HeartsGoal * float64(d)
	}
	if d := flagDelta(before.CanRetire, after.CanRetire); d != 0 {
		score += w.CanRetire * float64(d)
	}
	if d := after.Opportunities - before.Opportunities; d != 0 {
		score += w.Opportunities * float64(d)
	}
	if d := after.Experience - before.Experience; d != 0 {
		score += w.Experience * float64(d)
	}
	return score
}

func cashGoalMet(s models.PlayerSnapshot, f models.SuccessFormula) bool {
	return models.FloorDiv(s.Cash, 1000) >= f.Money
}

func flagDelta(before, after bool) int {
	return boolInt(after) - boolInt(before)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
