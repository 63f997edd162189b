package engine

import (
	"fmt"
	"strings"
	"sync"

	"github.com/careers-sim/careers-backend/app/models"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

// maxChain bounds EXECUTE_NEXT command chains so a bad strategy cannot spin
// a session forever.
const maxChain = 32

// Session serializes all commands for one game id. A game is a single-writer
// resource; the mutex is the per-game discipline, independent games run in
// parallel.
type Session struct {
	mu     sync.Mutex
	engine *Engine
}

func NewSession(e *Engine) *Session {
	return &Session{engine: e}
}

// Join seats a player. Safe to call until the first command is dispatched.
func (s *Session) Join(name, initials string) (*models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.AddPlayer(name, initials)
}

// Do dispatches one command for the player with the given initials (empty
// for administrative commands), following EXECUTE_NEXT chains.
func (s *Session) Do(initials, command string) *CommandResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var p *models.Player
	if initials != "" {
		p = s.engine.Game.PlayerByInitials(initials)
		if p == nil {
			return errorResult(fmt.Sprintf("Unknown player %q", initials))
		}
	}

	res := s.engine.Dispatch(p, command)
	for i := 0; res.Code == ExecuteNext && res.NextAction != "" && i < maxChain; i++ {
		chain := res.NextAction
		res.NextAction = ""
		for _, next := range strings.Split(chain, ";") {
			next = strings.TrimSpace(next)
			if next == "" {
				continue
			}
			res = s.engine.Dispatch(p, next)
			if res.Code == Error || res.Code == Terminate {
				break
			}
		}
	}
	return res
}

// Summaries returns the serialized view of every seated player.
func (s *Session) Summaries() []models.PlayerSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PlayerSummary, 0, len(s.engine.Game.Players))
	for _, p := range s.engine.Game.Players {
		out = append(out, p.Summary())
	}
	return out
}

// Game exposes the underlying state for read-mostly callers. Callers must
// treat it as owned by the session.
func (s *Session) Game() *models.GameState {
	return s.engine.Game
}

// Manager tracks live sessions by game id.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	board       *models.Board
	opportunity []models.CardSpec
	experience  []models.CardSpec
	params      models.GameParams
	opts        []Option
}

func NewManager(board *models.Board, opportunity, experience []models.CardSpec, params models.GameParams, opts ...Option) *Manager {
	return &Manager{
		sessions:    make(map[string]*Session),
		board:       board,
		opportunity: opportunity,
		experience:  experience,
		params:      params,
		opts:        opts,
	}
}

// Create starts a new game session with a random id and seed.
func (m *Manager) Create() (string, *Session) {
	id := uuid.NewV4().String()
	opts := append([]Option{WithLogger(logrus.WithField("game", id))}, m.opts...)
	e := New(id, m.board, m.opportunity, m.experience, m.params, seedFromID(id), opts...)
	s := NewSession(e)
	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()
	return id, s
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *Manager) Remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// seedFromID derives a stable dice seed from the game id so a game replays
// identically given its id.
func seedFromID(id string) int64 {
	var seed int64
	for _, r := range id {
		seed = seed*131 + int64(r)
	}
	return seed
}
