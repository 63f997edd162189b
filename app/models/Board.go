package models

import (
	"errors"
	"fmt"
)

// GameSquare is a single position on the board, either on the outer border
// track or inside an occupation path. Reward fields are only populated for
// occupation squares.
type GameSquare struct {
	Number        int                `json:"number"`
	Name          string             `json:"name"`
	Text          string             `json:"text,omitempty"`
	Special       *SpecialProcessing `json:"special,omitempty"`
	Stars         int                `json:"stars,omitempty"`
	Hearts        int                `json:"hearts,omitempty"`
	Opportunities int                `json:"opportunities,omitempty"`
	Experience    int                `json:"experience,omitempty"`
	Bonus         int                `json:"bonus,omitempty"`
}

// Occupation is a named sub-path entered from a border square.
type Occupation struct {
	Name           string       `json:"name"`
	EntrySquare    int          `json:"entry_square"`
	DegreeRequired string       `json:"degree_required,omitempty"`
	Degrees        []string     `json:"degrees,omitempty"`
	DegreePrice    int          `json:"degree_price,omitempty"`
	Bonus          int          `json:"bonus,omitempty"`
	Squares        []GameSquare `json:"squares"`
}

// Board is the immutable square layout for one edition, loaded once.
type Board struct {
	BorderSquares []GameSquare
	Occupations   map[string]*Occupation
}

var ErrSquareNotFound = errors.New("square not found")

func (b *Board) Border(number int) (*GameSquare, error) {
	if number < 0 || number >= len(b.BorderSquares) {
		return nil, fmt.Errorf("border square %d: %w", number, ErrSquareNotFound)
	}
	return &b.BorderSquares[number], nil
}

// BorderByName returns the first border square with the given name. Square
// names are not unique; callers wanting a specific repeat use Border.
func (b *Board) BorderByName(name string) (*GameSquare, error) {
	for i := range b.BorderSquares {
		if b.BorderSquares[i].Name == name {
			return &b.BorderSquares[i], nil
		}
	}
	return nil, fmt.Errorf("border square %q: %w", name, ErrSquareNotFound)
}

func (b *Board) Occupation(name string) (*Occupation, error) {
	occ, ok := b.Occupations[name]
	if !ok {
		return nil, fmt.Errorf("occupation %q: %w", name, ErrSquareNotFound)
	}
	return occ, nil
}

// SquareAt resolves a board location to its square.
func (b *Board) SquareAt(loc BoardLocation) (*GameSquare, error) {
	if !loc.OnOccupationPath() {
		return b.Border(loc.BorderSquareNumber)
	}
	occ, err := b.Occupation(loc.OccupationName)
	if err != nil {
		return nil, err
	}
	if loc.OccupationSquareNumber < 0 || loc.OccupationSquareNumber >= len(occ.Squares) {
		return nil, fmt.Errorf("%s square %d: %w", occ.Name, loc.OccupationSquareNumber, ErrSquareNotFound)
	}
	return &occ.Squares[loc.OccupationSquareNumber], nil
}
