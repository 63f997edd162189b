package models

// BoardLocation is a discriminated board position: either a border square
// or a square on an occupation path. OccupationName empty means the player
// is on the border track. The immediately-prior location is retained for
// undo and reporting.
type BoardLocation struct {
	BorderSquareNumber     int    `json:"border_square_number"`
	BorderSquareName       string `json:"border_square_name"`
	OccupationSquareNumber int    `json:"occupation_square_number,omitempty"`
	OccupationName         string `json:"occupation_name,omitempty"`

	Prior *BoardLocation `json:"-"`
}

func (l *BoardLocation) OnOccupationPath() bool {
	return l.OccupationName != ""
}

func (l *BoardLocation) snapshotPrior() {
	prior := *l
	prior.Prior = nil
	l.Prior = &prior
}

// MoveToBorder places the location on a border square.
func (l *BoardLocation) MoveToBorder(number int, name string) {
	l.snapshotPrior()
	l.BorderSquareNumber = number
	l.BorderSquareName = name
	l.OccupationName = ""
	l.OccupationSquareNumber = 0
}

// MoveToOccupation places the location on an occupation-path square. The
// border fields keep the entry square so leaving the path is cheap.
func (l *BoardLocation) MoveToOccupation(name string, square int) {
	l.snapshotPrior()
	l.OccupationName = name
	l.OccupationSquareNumber = square
}
