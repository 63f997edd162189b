package queries

import (
	"fmt"

	"github.com/gomodule/redigo/redis"

	"github.com/careers-sim/careers-backend/platform/cache"
)

// Redis registry of live games: which ids are active and whose turn it is.
// The socket layer uses it for cheap turn checks without touching a session.

func RegisterGame(id string, conn redis.Conn) error {
	return cache.SADD("games.active", id, conn)
}

func UnregisterGame(id string, conn redis.Conn) error {
	cache.Del(fmt.Sprintf("%s.turn", id), conn)
	cache.Del(fmt.Sprintf("%s.log", id), conn)
	return cache.SREM("games.active", id, conn)
}

func ActiveGames(conn redis.Conn) ([]string, error) {
	return cache.SMEMBERS("games.active", conn)
}

func SetCurrentTurn(gameID, initials string, conn redis.Conn) error {
	return cache.Set(fmt.Sprintf("%s.turn", gameID), initials, conn)
}

func CurrentTurn(gameID string, conn redis.Conn) (string, error) {
	return cache.Get(fmt.Sprintf("%s.turn", gameID), conn)
}

func IsPlayerTurn(gameID, initials string, conn redis.Conn) bool {
	val, err := CurrentTurn(gameID, conn)
	return err == nil && val == initials
}

// AppendAuditLine pushes one command/result line onto the game's audit list.
func AppendAuditLine(gameID, line string, conn redis.Conn) error {
	return cache.RPUSH(fmt.Sprintf("%s.log", gameID), line, conn)
}
