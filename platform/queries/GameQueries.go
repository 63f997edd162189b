package queries

import (
	"encoding/json"
	"fmt"

	"github.com/go-pg/pg/v10"

	"github.com/careers-sim/careers-backend/app/models"
)

// GameRecord is the persisted row for one game.
type GameRecord struct {
	Id     string
	Name   string
	Status string
	State  string
}

// PgStore implements the engine's persistence hook on PostgreSQL: the whole
// game state is stored as one JSON snapshot per game id.
type PgStore struct {
	db *pg.DB
}

func NewPgStore(db *pg.DB) *PgStore {
	return &PgStore{db: db}
}

func (s *PgStore) Save(g *models.GameState) error {
	state, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("marshal game %s: %w", g.ID, err)
	}
	record := &GameRecord{Id: g.ID, State: string(state)}
	if g.Terminal() {
		record.Status = "finished"
	} else {
		record.Status = "in progress"
	}

	existing := &GameRecord{Id: g.ID}
	if err := s.db.Model(existing).WherePK().Select(); err != nil {
		_, err = s.db.Model(record).Insert()
		return err
	}
	_, err = s.db.Model(record).WherePK().
		Set("state = ?, status = ?", record.State, record.Status).
		Update()
	return err
}

func (s *PgStore) Load(id string) (*models.GameState, error) {
	record := &GameRecord{Id: id}
	if err := s.db.Model(record).WherePK().Select(); err != nil {
		return nil, fmt.Errorf("load game %s: %w", id, err)
	}
	var g models.GameState
	if err := json.Unmarshal([]byte(record.State), &g); err != nil {
		return nil, fmt.Errorf("decode game %s: %w", id, err)
	}
	g.Rebind()
	return &g, nil
}

// CreateGame inserts a fresh lobby record.
func CreateGame(db *pg.DB, id, name string) error {
	_, err := db.Model(&GameRecord{Id: id, Name: name, Status: "open"}).Insert()
	return err
}

// VerifyGame reports whether the game id exists.
func VerifyGame(db *pg.DB, id string) bool {
	record := &GameRecord{Id: id}
	return db.Model(record).WherePK().Select() == nil
}

// OpenGames lists games still waiting for players.
func OpenGames(db *pg.DB) ([]GameRecord, error) {
	var games []GameRecord
	err := db.Model(&games).Where("status = ?", "open").Select()
	return games, err
}
