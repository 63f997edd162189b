package board

import (
	"strings"
	"testing"

	"github.com/careers-sim/careers-backend/app/models"
)

func TestParseBoardStampsNumbers(t *testing.T) {
	borderJSON := []byte(`[
		{"name": "Payday", "text": "Collect your salary"},
		{"name": "Shady Deal", "special": {"kind": "cash_loss", "amount": 500}},
		{"name": "Park", "hearts": 2}
	]`)
	occJSON := []byte(`[
		{"name": "Farming", "entry_square": 2, "bonus": 1000, "squares": [
			{"name": "Field Hand", "stars": 1},
			{"name": "Foreman", "special": {"kind": "salary_increase", "amount": 500}}
		]}
	]`)

	b, err := ParseBoard(borderJSON, occJSON)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for i, sq := range b.BorderSquares {
		if sq.Number != i {
			t.Fatalf("border square %d numbered %d", i, sq.Number)
		}
	}
	occ, err := b.Occupation("Farming")
	if err != nil {
		t.Fatalf("occupation: %v", err)
	}
	if occ.Squares[1].Number != 1 {
		t.Fatalf("occupation squares must be numbered in order, got %d", occ.Squares[1].Number)
	}
	if occ.Squares[1].Special.Kind != models.SpecialSalaryIncrease {
		t.Fatalf("unexpected special kind %q", occ.Squares[1].Special.Kind)
	}
}

func TestParseBoardRejectsUnknownSpecialKind(t *testing.T) {
	borderJSON := []byte(`[
		{"name": "Payday"},
		{"name": "Mystery", "special": {"kind": "teleport_random"}}
	]`)

	_, err := ParseBoard(borderJSON, []byte(`[]`))
	if err == nil {
		t.Fatal("unknown special kinds must fail the load")
	}
	if !strings.Contains(err.Error(), "teleport_random") {
		t.Fatalf("error should name the bad kind: %v", err)
	}
}

func TestParseBoardRejectsBadEntrySquare(t *testing.T) {
	borderJSON := []byte(`[{"name": "Payday"}]`)
	occJSON := []byte(`[{"name": "Farming", "entry_square": 7, "squares": []}]`)

	if _, err := ParseBoard(borderJSON, occJSON); err == nil {
		t.Fatal("an entry square off the board must fail the load")
	}
}

func TestParseDeckRejectsZeroQuantity(t *testing.T) {
	data := []byte(`[{"text": "Move 3", "dice": 3, "quantity": 0}]`)
	if _, err := ParseDeck(data, models.CardExperience); err == nil {
		t.Fatal("zero-quantity cards must fail the load")
	}
}

func TestParseDeckStampsType(t *testing.T) {
	data := []byte(`[{"text": "Jump to Payday", "destination": "Payday", "quantity": 4}]`)
	specs, err := ParseDeck(data, models.CardOpportunity)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if specs[0].Type != models.CardOpportunity {
		t.Fatalf("type not stamped, got %q", specs[0].Type)
	}
}

func TestLoadEditionFromData(t *testing.T) {
	ed, err := LoadEdition("data")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(ed.Board.BorderSquares) == 0 || len(ed.Board.Occupations) == 0 {
		t.Fatal("edition board is empty")
	}
	if len(ed.Opportunity) == 0 || len(ed.Experience) == 0 {
		t.Fatal("edition decks are empty")
	}
	if ed.Params.StartingCash <= 0 || ed.Params.TotalPoints <= 0 {
		t.Fatalf("edition params not loaded: %+v", ed.Params)
	}
	if _, err := ed.Board.BorderByName("Unemployment"); err != nil {
		t.Fatal("the board needs an Unemployment square")
	}
}

func TestParseDeckRejectsEmptyDeck(t *testing.T) {
	if _, err := ParseDeck([]byte(`[]`), models.CardOpportunity); err == nil {
		t.Fatal("a deck with no cards must fail the load")
	}
}
