package models

// Player is the mutable state of one participant. Players are created once
// at game setup and live for the whole game; bankruptcy resets currencies,
// location, cards and pending actions but preserves occupation and degree
// history.
type Player struct {
	Name     string `json:"name"`
	Initials string `json:"initials"`
	Number   int    `json:"number"`

	Cash          int   `json:"cash"`
	Salary        int   `json:"salary"`
	SalaryHistory []int `json:"salary_history"`

	// Cumulative happiness and fame sequences. The last entry is the
	// current total. Adjust through AddHearts/AddStars, which clamp the
	// running total at zero.
	HappinessHistory []int `json:"happiness_history"`
	FameHistory      []int `json:"fame_history"`

	Formula  SuccessFormula `json:"success_formula"`
	Location BoardLocation  `json:"board_location"`

	Opportunities []Card `json:"opportunities"`
	Experience    []Card `json:"experience"`

	Pending PendingActions `json:"pending_actions"`

	OccupationsCompleted map[string]int `json:"occupations_completed"`
	Degrees              []string       `json:"degrees"`

	Unemployed        bool `json:"is_unemployed"`
	Sick              bool `json:"is_sick"`
	OnHoliday         bool `json:"on_holiday"`
	LoseTurn          bool `json:"lose_turn"`
	CanRoll           bool `json:"can_roll"`
	CanUseOpportunity bool `json:"can_use_opportunity"`
	Insured           bool `json:"insured"`
	ExtraTurns        int  `json:"extra_turn"`

	// Loans owed to other players, keyed by lender seat index.
	Loans map[int]int `json:"loans"`

	CommandHistory []string `json:"command_history"`
	TurnHistory    []*Turn  `json:"turn_history"`
	CurrentTurn    *Turn    `json:"-"`

	StartingCash   int `json:"starting_cash"`
	StartingSalary int `json:"starting_salary"`
}

// NewPlayer creates a seated player with starting currencies and an assigned
// success formula.
func NewPlayer(name, initials string, seat int, formula SuccessFormula, startingCash, startingSalary int) *Player {
	p := &Player{
		Name:                 name,
		Initials:             initials,
		Number:               seat,
		Cash:                 startingCash,
		Salary:               startingSalary,
		SalaryHistory:        []int{startingSalary},
		Formula:              formula,
		OccupationsCompleted: make(map[string]int),
		Loans:                make(map[int]int),
		StartingCash:         startingCash,
		StartingSalary:       startingSalary,
		CanUseOpportunity:    true,
	}
	p.Location.BorderSquareNumber = 0
	return p
}

func (p *Player) Happiness() int {
	if len(p.HappinessHistory) == 0 {
		return 0
	}
	return p.HappinessHistory[len(p.HappinessHistory)-1]
}

func (p *Player) Fame() int {
	if len(p.FameHistory) == 0 {
		return 0
	}
	return p.FameHistory[len(p.FameHistory)-1]
}

// AddHearts adjusts cumulative happiness by n, clamping the running total
// at zero.
func (p *Player) AddHearts(n int) {
	total := p.Happiness() + n
	if total < 0 {
		total = 0
	}
	p.HappinessHistory = append(p.HappinessHistory, total)
}

// AddStars adjusts cumulative fame by n, clamping the running total at zero.
func (p *Player) AddStars(n int) {
	total := p.Fame() + n
	if total < 0 {
		total = 0
	}
	p.FameHistory = append(p.FameHistory, total)
}

// SetSalary records a new salary, clamped at zero, in the salary history.
func (p *Player) SetSalary(salary int) {
	if salary < 0 {
		salary = 0
	}
	p.Salary = salary
	p.SalaryHistory = append(p.SalaryHistory, salary)
}

// TotalPoints is fame plus happiness plus cash in thousands.
func (p *Player) TotalPoints() int {
	return p.Fame() + p.Happiness() + FloorDiv(p.Cash, 1000)
}

// CanRetire reports whether the player has completed enough occupations to
// retire.
func (p *Player) CanRetire() bool {
	completed := 0
	for _, n := range p.OccupationsCompleted {
		completed += n
	}
	return completed >= 3
}

// HasDegree reports whether the player holds the named degree.
func (p *Player) HasDegree(name string) bool {
	for _, d := range p.Degrees {
		if d == name {
			return true
		}
	}
	return false
}

// Bankrupt resets currencies, location, held cards and pending actions to
// their game-start values. Occupation completions, degrees, and point
// histories are preserved.
func (p *Player) Bankrupt() {
	p.Cash = p.StartingCash
	p.SetSalary(p.StartingSalary)
	p.Opportunities = nil
	p.Experience = nil
	p.Pending.Clear()
	p.Loans = make(map[int]int)
	p.Unemployed = false
	p.Sick = false
	p.Location.MoveToBorder(0, "")
}

// FloorDiv divides rounding toward negative infinity, so negative cash maps
// to negative thousands.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
