package engine

import (
	"fmt"
	"strings"

	"github.com/careers-sim/careers-backend/app/models"
)

// ExecuteSquare applies the square under the player: fixed rewards first, in
// a fixed order (text, stars, hearts, opportunities, experience), then the
// attached special processing, merging its result into the final one.
func (e *Engine) ExecuteSquare(p *models.Player) *CommandResult {
	sq, err := e.Board.SquareAt(p.Location)
	if err != nil {
		return errorResult(err.Error())
	}

	var parts []string
	if sq.Text != "" {
		parts = append(parts, sq.Text)
	} else {
		parts = append(parts, sq.Name)
	}
	if sq.Stars > 0 {
		p.AddStars(sq.Stars)
		parts = append(parts, plural(sq.Stars, "star"))
	}
	if sq.Hearts > 0 {
		p.AddHearts(sq.Hearts)
		parts = append(parts, plural(sq.Hearts, "heart"))
	}
	if sq.Opportunities > 0 {
		p.Opportunities = append(p.Opportunities, e.Opportunities.DrawMany(sq.Opportunities)...)
		parts = append(parts, plural(sq.Opportunities, "opportunity card"))
	}
	if sq.Experience > 0 {
		p.Experience = append(p.Experience, e.Experience.DrawMany(sq.Experience)...)
		parts = append(parts, plural(sq.Experience, "experience card"))
	}

	res := success(strings.Join(parts, ". "))
	if sq.Special != nil {
		special := e.applySpecial(p, sq.Special, sq.Name)
		if special.Message != "" {
			res.Message = strings.TrimSpace(res.Message + ". " + special.Message)
		}
		res.Code = special.Code
		res.TurnComplete = special.TurnComplete
		res.NextAction = special.NextAction
		res.Choices = special.Choices
	}
	loc := p.Location
	res.Location = &loc
	return res
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
