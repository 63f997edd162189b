package engine

import (
	"fmt"
	"math/rand"

	"github.com/careers-sim/careers-backend/app/models"
	"github.com/sirupsen/logrus"
)

// Store is the persistence hook the engine calls outward to. Implementations
// live outside the core.
type Store interface {
	Save(g *models.GameState) error
	Load(id string) (*models.GameState, error)
}

// Engine owns one game's rule resolution. It is not safe for concurrent use;
// a session serializes access per game id.
type Engine struct {
	Game          *models.GameState
	Board         *models.Board
	Opportunities *models.CardDeck
	Experience    *models.CardDeck
	Params        models.GameParams

	roller   *Roller
	rng      *rand.Rand
	handlers map[string]handler
	strategy Strategy
	store    Store
	log      logrus.FieldLogger
}

// Option configures optional engine collaborators.
type Option func(*Engine)

func WithStore(s Store) Option {
	return func(e *Engine) { e.store = s }
}

func WithStrategy(s Strategy) Option {
	return func(e *Engine) { e.strategy = s }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) { e.log = l }
}

// New builds an engine over an edition's immutable data. The seed fixes every
// dice roll and reshuffle for the game's lifetime.
func New(id string, board *models.Board, opportunity, experience []models.CardSpec, params models.GameParams, seed int64, opts ...Option) *Engine {
	rng := rand.New(rand.NewSource(seed))
	e := &Engine{
		Game: &models.GameState{
			ID:          id,
			TotalPoints: params.TotalPoints,
			Type:        models.GamePoints,
			LapSeconds:  params.TimedLapSeconds,
		},
		Board:         board,
		Opportunities: models.NewCardDeck(opportunity, rng),
		Experience:    models.NewCardDeck(experience, rng),
		Params:        params,
		roller:        NewRoller(rng),
		rng:           rng,
		log:           logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.handlers = e.buildHandlers()
	return e
}

// Timed switches the game to the timed variant with the edition's time
// budget.
func (e *Engine) Timed() {
	e.Game.Type = models.GameTimed
	e.Game.RemainingSeconds = e.Params.TimedSeconds
}

// AddPlayer seats a new player with starting currencies and a generated
// success formula. Initials must be unique within the game.
func (e *Engine) AddPlayer(name, initials string) (*models.Player, error) {
	if e.Game.PlayerByInitials(initials) != nil {
		return nil, fmt.Errorf("initials %q already taken", initials)
	}
	formula := models.GenerateSuccessFormula(e.Params.TotalPoints, e.rng)
	p := models.NewPlayer(name, initials, len(e.Game.Players), formula, e.Params.StartingCash, e.Params.StartingSalary)
	if sq, err := e.Board.Border(0); err == nil {
		p.Location.BorderSquareName = sq.Name
	}
	if len(e.Game.Players) == 0 {
		p.CanRoll = true
	}
	e.Game.Players = append(e.Game.Players, p)
	return p, nil
}

// moveToBorder relocates a player to a border square by number.
func (e *Engine) moveToBorder(p *models.Player, number int) (*models.GameSquare, error) {
	sq, err := e.Board.Border(number)
	if err != nil {
		return nil, err
	}
	p.Location.MoveToBorder(sq.Number, sq.Name)
	return sq, nil
}

// Offer enqueues a purchase or gamble choice for the player. Edition rule
// extensions call this when their squares open an offer; the add no-ops if
// one of the kind is already queued.
func (e *Engine) Offer(p *models.Player, kind models.PendingActionKind, amount int, squareName string) bool {
	return p.Pending.Add(models.PendingAction{
		Kind:       kind,
		Amount:     amount,
		SquareName: squareName,
	})
}

// checkBankruptcies enqueues a bankrupt pending action for every player whose
// cash has gone negative. Duplicate adds no-op.
func (e *Engine) checkBankruptcies() {
	for _, p := range e.Game.Players {
		if p.Cash < 0 {
			p.Pending.Add(models.PendingAction{
				Kind:   models.PendingBankrupt,
				Amount: -p.Cash,
			})
		}
	}
}
