package board

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/careers-sim/careers-backend/app/models"
)

// Edition is one board layout with its decks and parameters, loaded once and
// treated as immutable afterwards.
type Edition struct {
	Board       *models.Board
	Opportunity []models.CardSpec
	Experience  []models.CardSpec
	Params      models.GameParams
}

// LoadEdition reads an edition directory: board.json, occupations.json,
// opportunity.json, experience.json and params.json. Unknown special kinds
// fail the load with a descriptive error rather than defaulting.
func LoadEdition(dir string) (*Edition, error) {
	borderData, err := os.ReadFile(filepath.Join(dir, "board.json"))
	if err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}
	occData, err := os.ReadFile(filepath.Join(dir, "occupations.json"))
	if err != nil {
		return nil, fmt.Errorf("read occupations: %w", err)
	}
	oppData, err := os.ReadFile(filepath.Join(dir, "opportunity.json"))
	if err != nil {
		return nil, fmt.Errorf("read opportunity deck: %w", err)
	}
	expData, err := os.ReadFile(filepath.Join(dir, "experience.json"))
	if err != nil {
		return nil, fmt.Errorf("read experience deck: %w", err)
	}

	b, err := ParseBoard(borderData, occData)
	if err != nil {
		return nil, err
	}
	opportunity, err := ParseDeck(oppData, models.CardOpportunity)
	if err != nil {
		return nil, fmt.Errorf("opportunity deck: %w", err)
	}
	experience, err := ParseDeck(expData, models.CardExperience)
	if err != nil {
		return nil, fmt.Errorf("experience deck: %w", err)
	}

	params := models.DefaultParams()
	if paramData, err := os.ReadFile(filepath.Join(dir, "params.json")); err == nil {
		if err := json.Unmarshal(paramData, &params); err != nil {
			return nil, fmt.Errorf("parse params: %w", err)
		}
	}

	return &Edition{Board: b, Opportunity: opportunity, Experience: experience, Params: params}, nil
}

// ParseBoard builds the immutable board from border and occupation JSON.
func ParseBoard(borderData, occData []byte) (*models.Board, error) {
	var border []models.GameSquare
	if err := json.Unmarshal(borderData, &border); err != nil {
		return nil, fmt.Errorf("parse board: %w", err)
	}
	var occupations []*models.Occupation
	if err := json.Unmarshal(occData, &occupations); err != nil {
		return nil, fmt.Errorf("parse occupations: %w", err)
	}

	b := &models.Board{
		BorderSquares: border,
		Occupations:   make(map[string]*models.Occupation, len(occupations)),
	}
	for i := range b.BorderSquares {
		sq := &b.BorderSquares[i]
		sq.Number = i
		if err := validateSpecial(sq); err != nil {
			return nil, fmt.Errorf("border square %d: %w", i, err)
		}
	}
	for _, occ := range occupations {
		if occ.EntrySquare < 0 || occ.EntrySquare >= len(border) {
			return nil, fmt.Errorf("occupation %s: entry square %d out of range", occ.Name, occ.EntrySquare)
		}
		for i := range occ.Squares {
			sq := &occ.Squares[i]
			sq.Number = i
			if err := validateSpecial(sq); err != nil {
				return nil, fmt.Errorf("occupation %s square %d: %w", occ.Name, i, err)
			}
		}
		b.Occupations[occ.Name] = occ
	}
	return b, nil
}

// ParseDeck parses quantity-bearing card specs and stamps their type.
func ParseDeck(data []byte, cardType models.CardType) ([]models.CardSpec, error) {
	var specs []models.CardSpec
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("deck has no cards")
	}
	for i := range specs {
		if specs[i].Quantity <= 0 {
			return nil, fmt.Errorf("card %q: quantity must be positive", specs[i].Text)
		}
		specs[i].Type = cardType
	}
	return specs, nil
}

func validateSpecial(sq *models.GameSquare) error {
	if sq.Special == nil {
		return nil
	}
	return sq.Special.Validate()
}
