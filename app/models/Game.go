package models

// GameType tags how a game ends: by reaching a success formula or by
// exhausting a time budget.
type GameType string

const (
	GamePoints GameType = "points"
	GameTimed  GameType = "timed"
)

// GameState tracks whose turn it is, turn counters, and win detection. One
// GameState exists per game id and is mutated by every command; it must be
// accessed by a single writer at a time.
type GameState struct {
	ID             string    `json:"id"`
	Players        []*Player `json:"players"`
	Current        int       `json:"current"`
	TurnNumber     int       `json:"turn_number"`
	Winner         *Player   `json:"-"`
	WinnerInitials string    `json:"winner_initials,omitempty"`
	Ended          bool      `json:"ended"`
	TotalPoints    int       `json:"total_points"`
	Type           GameType  `json:"type"`

	// Timed games only.
	RemainingSeconds int `json:"remaining_seconds,omitempty"`
	LapSeconds       int `json:"lap_seconds,omitempty"`
}

func (g *GameState) CurrentPlayer() *Player {
	if len(g.Players) == 0 {
		return nil
	}
	return g.Players[g.Current]
}

// PlayerByInitials finds a player by unique initials.
func (g *GameState) PlayerByInitials(initials string) *Player {
	for _, p := range g.Players {
		if p.Initials == initials {
			return p
		}
	}
	return nil
}

// Advance moves play to the next eligible seat. A player holding extra
// turns keeps the seat. A lose_turn player is passed over exactly once,
// never recursively. The new current player may roll; wrapping to seat 0
// increments the turn counter.
func (g *GameState) Advance() {
	n := len(g.Players)
	if n == 0 {
		return
	}
	cur := g.Players[g.Current]
	if cur.ExtraTurns > 0 {
		cur.ExtraTurns--
		cur.CanRoll = true
		return
	}
	next := (g.Current + 1) % n
	if g.Players[next].LoseTurn {
		g.Players[next].LoseTurn = false
		next = (next + 1) % n
	}
	g.Current = next
	g.Players[next].CanRoll = true
	if next == 0 {
		g.TurnNumber++
		if g.Type == GameTimed {
			g.RemainingSeconds -= g.LapSeconds
		}
	}
}

// IsComplete reports whether the player satisfies the win condition.
func (g *GameState) IsComplete(p *Player) bool {
	if g.Type == GameTimed {
		return g.RemainingSeconds <= 0
	}
	f := p.Formula
	return p.Happiness() >= f.Hearts &&
		p.Fame() >= f.Stars &&
		FloorDiv(p.Cash, 1000) >= f.Money
}

// CheckWinner scans players in seat order and records the first satisfying
// one as the winner. The scan is stable: among simultaneous winners only
// the lowest seat index is recorded. Returns the winner, if any.
func (g *GameState) CheckWinner() *Player {
	if g.Winner != nil {
		return g.Winner
	}
	for _, p := range g.Players {
		if g.IsComplete(p) {
			g.SetWinner(p)
			break
		}
	}
	return g.Winner
}

// SetWinner records the winning player.
func (g *GameState) SetWinner(p *Player) {
	g.Winner = p
	g.WinnerInitials = p.Initials
}

// Rebind restores pointer fields after a JSON round trip.
func (g *GameState) Rebind() {
	if g.WinnerInitials != "" {
		g.Winner = g.PlayerByInitials(g.WinnerInitials)
	}
}

// Terminal reports whether the game has ended, either by a win or by an
// explicit end command.
func (g *GameState) Terminal() bool {
	return g.Winner != nil || g.Ended
}
