package models

import (
	"math/rand"
	"testing"
)

func testPlayer() *Player {
	return NewPlayer("Alice", "AB", 0, SuccessFormula{Stars: 10, Hearts: 10, Money: 20}, 2000, 2000)
}

func TestPointTracksNeverGoNegative(t *testing.T) {
	p := testPlayer()
	steps := []int{5, -9, 3, -1, -100, 4}
	for _, n := range steps {
		p.AddHearts(n)
		p.AddStars(n)
		if p.Happiness() < 0 {
			t.Fatalf("happiness went negative after %+d", n)
		}
		if p.Fame() < 0 {
			t.Fatalf("fame went negative after %+d", n)
		}
	}
	if p.Happiness() != 4 {
		t.Errorf("expected happiness 4, got %d", p.Happiness())
	}
	if len(p.HappinessHistory) != len(steps) {
		t.Errorf("every adjustment should be recorded, got %d entries", len(p.HappinessHistory))
	}
}

func TestSalaryClampedAtZero(t *testing.T) {
	p := testPlayer()
	p.SetSalary(-500)
	if p.Salary != 0 {
		t.Fatalf("expected salary 0, got %d", p.Salary)
	}
	if len(p.SalaryHistory) != 2 {
		t.Fatalf("expected 2 salary history entries, got %d", len(p.SalaryHistory))
	}
}

func TestBankruptResetsCurrenciesButKeepsHistory(t *testing.T) {
	p := testPlayer()
	p.Cash = -300
	p.SetSalary(5000)
	p.Opportunities = []Card{{Type: CardOpportunity, Text: "x"}}
	p.Experience = []Card{{Type: CardExperience, Dice: 3}}
	p.Pending.Add(PendingAction{Kind: PendingBankrupt, Amount: 300})
	p.OccupationsCompleted["Business"] = 2
	p.Degrees = []string{"Law"}
	p.AddStars(5)

	p.Bankrupt()

	if p.Cash != 2000 || p.Salary != 2000 {
		t.Fatalf("currencies not reset: cash=%d salary=%d", p.Cash, p.Salary)
	}
	if len(p.Opportunities) != 0 || len(p.Experience) != 0 {
		t.Error("held cards should be cleared")
	}
	if p.Pending.Size() != 0 {
		t.Error("pending actions should be cleared")
	}
	if p.OccupationsCompleted["Business"] != 2 {
		t.Error("occupation completions must be preserved")
	}
	if !p.HasDegree("Law") {
		t.Error("degrees must be preserved")
	}
	if p.Fame() != 5 {
		t.Error("fame must be preserved")
	}
}

func TestTotalPointsUsesFloorDivision(t *testing.T) {
	p := testPlayer()
	p.Cash = -300
	if got := p.TotalPoints(); got != -1 {
		t.Fatalf("expected -1 total points at cash -300, got %d", got)
	}
}

func TestGenerateSuccessFormulaSumsToTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		f := GenerateSuccessFormula(60, rng)
		if f.Total() != 60 {
			t.Fatalf("formula %+v does not total 60", f)
		}
		if f.Stars < 1 || f.Hearts < 1 || f.Money < 1 {
			t.Fatalf("formula %+v has an empty track", f)
		}
	}
}
