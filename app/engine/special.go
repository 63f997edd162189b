package engine

import (
	"fmt"

	"github.com/careers-sim/careers-backend/app/models"
)

// applySpecial interprets a square's effect descriptor against the player.
// Every kind resolves deterministically; kinds without product rules are
// explicit no-ops that still end the square cleanly.
func (e *Engine) applySpecial(p *models.Player, sp *models.SpecialProcessing, squareName string) *CommandResult {
	switch sp.Kind {
	case models.SpecialBonus:
		amount, dice := e.diceAmount(sp)
		p.Cash += amount
		return success(rollMsg(dice, fmt.Sprintf("You receive a bonus of %d", amount)))

	case models.SpecialSalaryIncrease:
		amount, dice := e.diceAmount(sp)
		p.SetSalary(p.Salary + amount)
		return success(rollMsg(dice, fmt.Sprintf("Your salary rises by %d to %d", amount, p.Salary)))

	case models.SpecialSalaryCut:
		cut := 0
		if sp.Amount > 0 {
			cut = sp.Amount
		} else if sp.Percent > 0 {
			cut = roundDownThousand(sp.Percent * p.Salary / 100)
		}
		p.SetSalary(p.Salary - cut)
		return success(fmt.Sprintf("Your salary is cut by %d to %d", cut, p.Salary))

	case models.SpecialCashLoss:
		if p.Insured {
			p.Insured = false
			return success("Your insurance covers the loss")
		}
		loss := e.cashLossAmount(p, sp)
		p.Cash -= loss
		return success(fmt.Sprintf("You lose %d", loss))

	case models.SpecialCashLossOrUnemployment:
		// Literal source branch: only affordability is checked.
		if p.Cash < sp.Amount {
			return e.sendToUnemployment(p)
		}
		p.Pending.Add(models.PendingAction{
			Kind:       models.PendingCashLossOrUnemployment,
			Amount:     sp.Amount,
			SquareName: squareName,
		})
		res := choiceResult(
			fmt.Sprintf("Pay %d or go to Unemployment", sp.Amount),
			"pay", "unemployment",
		)
		return res

	case models.SpecialLoseNextTurn:
		p.LoseTurn = true
		return success("You lose your next turn")

	case models.SpecialExtraTurn:
		p.ExtraTurns++
		return success("You get an extra turn")

	case models.SpecialFavors, models.SpecialShortcut, models.SpecialTravelBorder,
		models.SpecialBackstab, models.SpecialGoto, models.SpecialFameLoss,
		models.SpecialHappinessLoss:
		// Placeholder kinds: fail soft until the rules are specified.
		return success("")
	}
	return success("")
}

// diceAmount applies the shared dice multiplier: with dice configured the
// amount is scaled by the roll sum.
func (e *Engine) diceAmount(sp *models.SpecialProcessing) (int, []int) {
	if sp.Dice <= 0 {
		return sp.Amount, nil
	}
	dice := e.roller.Roll(sp.Dice)
	return sp.Amount * sum(dice), dice
}

// cashLossAmount computes a loss from a fixed amount, a percentage of cash,
// or the salary tax table, capped by the descriptor's limit.
func (e *Engine) cashLossAmount(p *models.Player, sp *models.SpecialProcessing) int {
	loss := 0
	switch {
	case sp.Amount > 0:
		loss = sp.Amount
	case sp.Percent > 0:
		loss = sp.Percent * p.Cash / 100
	case len(sp.TaxTable) > 0:
		rate := 0
		for _, bracket := range sp.TaxTable {
			if p.Salary >= bracket.Threshold {
				rate = bracket.Rate
			}
		}
		loss = roundDownThousand(rate * p.Salary / 100)
	}
	if sp.Limit > 0 && loss > sp.Limit {
		loss = sp.Limit
	}
	if loss < 0 {
		loss = 0
	}
	return loss
}

// roundDownThousand rounds down to the nearest 1000.
func roundDownThousand(n int) int {
	return n / 1000 * 1000
}

func rollMsg(dice []int, msg string) string {
	if len(dice) == 0 {
		return msg
	}
	return fmt.Sprintf("You rolled %v. %s", dice, msg)
}
