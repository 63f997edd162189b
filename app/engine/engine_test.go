package engine

import (
	"testing"

	"github.com/careers-sim/careers-backend/app/models"
)

func testBoard() *models.Board {
	border := []models.GameSquare{
		{Number: 0, Name: "Payday", Text: "Payday"},
		{Number: 1, Name: "Business", Text: "Entrance to Big Business"},
		{Number: 2, Name: "Main Street"},
		{Number: 3, Name: "Income Taxes", Special: &models.SpecialProcessing{
			Kind: models.SpecialCashLoss,
			TaxTable: []models.TaxBracket{
				{Threshold: 0, Rate: 5},
				{Threshold: 3000, Rate: 25},
				{Threshold: 6000, Rate: 50},
			},
		}},
		{Number: 4, Name: "Back Alley", Special: &models.SpecialProcessing{
			Kind: models.SpecialCashLoss, Amount: 800,
		}},
		{Number: 5, Name: "Divorce", Special: &models.SpecialProcessing{
			Kind: models.SpecialCashLossOrUnemployment, Amount: 1000,
		}},
		{Number: 6, Name: "Hospital", Special: &models.SpecialProcessing{
			Kind: models.SpecialFavors, RequireDoubles: true,
		}},
		{Number: 7, Name: "Overslept", Special: &models.SpecialProcessing{
			Kind: models.SpecialLoseNextTurn,
		}},
		{Number: 8, Name: "Opportunity", Opportunities: 1},
		{Number: 9, Name: "Unemployment", Special: &models.SpecialProcessing{
			Kind: models.SpecialFavors, MustRoll: []int{1, 6},
		}},
	}
	business := &models.Occupation{
		Name:        "Business",
		EntrySquare: 1,
		Bonus:       2000,
		Squares: []models.GameSquare{
			{Number: 0, Name: "Mailroom", Stars: 1},
			{Number: 1, Name: "Manager", Special: &models.SpecialProcessing{
				Kind: models.SpecialSalaryIncrease, Amount: 1000,
			}},
			{Number: 2, Name: "Director", Hearts: 2, Experience: 1},
		},
	}
	return &models.Board{
		BorderSquares: border,
		Occupations:   map[string]*models.Occupation{"Business": business},
	}
}

func testDeckSpecs() ([]models.CardSpec, []models.CardSpec) {
	opportunity := []models.CardSpec{
		{Card: models.Card{Type: models.CardOpportunity, Text: "Jump to Payday", Destination: "Payday"}, Quantity: 8},
	}
	experience := []models.CardSpec{
		{Card: models.Card{Type: models.CardExperience, Text: "Move 2", Dice: 2}, Quantity: 8},
	}
	return opportunity, experience
}

func newTestEngine(t *testing.T, initials ...string) *Engine {
	t.Helper()
	opportunity, experience := testDeckSpecs()
	e := New("test-game", testBoard(), opportunity, experience, models.DefaultParams(), 1)
	for i, ini := range initials {
		if _, err := e.AddPlayer("Player"+string(rune('A'+i)), ini); err != nil {
			t.Fatalf("add player: %v", err)
		}
	}
	return e
}
