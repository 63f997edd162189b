package engine

import (
	"testing"

	"github.com/careers-sim/careers-backend/app/models"
)

func TestExecuteSquareAppliesRewards(t *testing.T) {
	e := newTestEngine(t, "AA")
	p := e.Game.Players[0]
	p.Location.MoveToOccupation("Business", 2) // Director: 2 hearts, 1 experience card

	res := e.ExecuteSquare(p)

	if res.Code != Success {
		t.Fatalf("expected SUCCESS, got %s", res.Code)
	}
	if p.Happiness() != 2 {
		t.Fatalf("expected 2 hearts, got %d", p.Happiness())
	}
	if len(p.Experience) != 1 {
		t.Fatalf("expected 1 experience card, got %d", len(p.Experience))
	}
	if res.Location == nil || res.Location.OccupationName != "Business" {
		t.Fatalf("result must carry the landing location, got %+v", res.Location)
	}
}

func TestExecuteSquareDrawsOneCardPerUnit(t *testing.T) {
	e := newTestEngine(t, "AA")
	p := e.Game.Players[0]
	before := e.Opportunities.Reshuffles()
	p.Location.MoveToBorder(8, "Opportunity")

	e.ExecuteSquare(p)

	if len(p.Opportunities) != 1 {
		t.Fatalf("expected 1 opportunity card, got %d", len(p.Opportunities))
	}
	if e.Opportunities.Reshuffles() != before {
		t.Fatal("a single draw from a fresh deck must not reshuffle")
	}
}

func TestExecuteSquareMergesSpecialResult(t *testing.T) {
	e := newTestEngine(t, "AA")
	p := e.Game.Players[0]
	p.Cash = 1500
	p.Location.MoveToBorder(5, "Divorce")

	res := e.ExecuteSquare(p)

	if res.Code != NeedPlayerChoice {
		t.Fatalf("interpreter code must flow through, got %s", res.Code)
	}
	if res.TurnComplete {
		t.Fatal("open choice must leave the turn open")
	}
	if len(res.Choices) == 0 {
		t.Fatal("choices must flow through to the caller")
	}
}

func TestMoveByCompletesOccupation(t *testing.T) {
	e := newTestEngine(t, "AA")
	p := e.Game.Players[0]
	start := p.Cash
	p.Location.MoveToOccupation("Business", 1)

	res := e.moveBy(p, 5)

	if res.Code != Success {
		t.Fatalf("expected SUCCESS, got %s", res.Code)
	}
	if p.OccupationsCompleted["Business"] != 1 {
		t.Fatal("completion must be counted")
	}
	if p.Cash != start+2000 {
		t.Fatalf("completion bonus not paid: cash %d", p.Cash)
	}
	if p.Location.OnOccupationPath() || p.Location.BorderSquareNumber != 1 {
		t.Fatalf("player should be back on the entry square, got %+v", p.Location)
	}
}

func TestMoveByPaysSalaryOnLap(t *testing.T) {
	e := newTestEngine(t, "AA")
	p := e.Game.Players[0]
	p.Location.MoveToBorder(8, "Opportunity")
	start := p.Cash

	e.moveBy(p, 2) // 8 + 2 wraps past Payday to 0

	if p.Cash != start+p.Salary {
		t.Fatalf("expected payday of %d, got delta %d", p.Salary, p.Cash-start)
	}
	if p.Location.BorderSquareNumber != 0 {
		t.Fatalf("expected square 0, got %d", p.Location.BorderSquareNumber)
	}
}

func TestUseExperienceCardMoves(t *testing.T) {
	e := newTestEngine(t, "AA")
	p := e.Game.Players[0]
	p.Experience = []models.Card{{Type: models.CardExperience, Text: "Move 2", Dice: 2}}

	res := e.Dispatch(p, "use experience")

	if res.Code != Success {
		t.Fatalf("expected SUCCESS, got %s: %s", res.Code, res.Message)
	}
	if p.Location.BorderSquareNumber != 2 {
		t.Fatalf("expected square 2, got %d", p.Location.BorderSquareNumber)
	}
	if len(p.Experience) != 0 {
		t.Fatal("the used card must be consumed")
	}
}

func TestUseOpportunityCardJumps(t *testing.T) {
	e := newTestEngine(t, "AA")
	p := e.Game.Players[0]
	p.Location.MoveToBorder(4, "Back Alley")
	p.Opportunities = []models.Card{{Type: models.CardOpportunity, Text: "Jump", Destination: "Payday"}}

	res := e.Dispatch(p, "use opportunity")

	if res.Code != Success {
		t.Fatalf("expected SUCCESS, got %s: %s", res.Code, res.Message)
	}
	if p.Location.BorderSquareNumber != 0 {
		t.Fatalf("expected Payday square 0, got %d", p.Location.BorderSquareNumber)
	}
}
