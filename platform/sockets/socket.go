package socket

import (
	"encoding/json"
	"net/http"

	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/careers-sim/careers-backend/app/engine"
	"github.com/careers-sim/careers-backend/platform/config"
	"github.com/careers-sim/careers-backend/platform/queries"
	"github.com/gomodule/redigo/redis"
)

// CreateSocketIOServer runs the realtime command transport. Every game room
// feeds raw command strings into its session's dispatcher and receives the
// uniform results back.
func CreateSocketIOServer(cfg config.Config, manager *engine.Manager, pool *redis.Pool) error {
	server, err := socketio.NewServer(nil)
	if err != nil {
		return err
	}

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		return nil
	})

	server.OnEvent("/", "join-game", func(s socketio.Conn, jsonStr string) {
		var req map[string]string
		json.Unmarshal([]byte(jsonStr), &req)

		session, ok := manager.Get(req["game_id"])
		if !ok {
			s.Emit("error-message", "Invalid game")
			return
		}
		player, err := session.Join(req["name"], req["initials"])
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		s.Join(req["game_id"])
		server.BroadcastToRoom("/", req["game_id"], "player-join", player.Initials)
	})

	server.OnEvent("/", "start-game", func(s socketio.Conn, gameID string) {
		session, ok := manager.Get(gameID)
		if !ok {
			s.Emit("error-message", "Invalid game")
			return
		}
		game := session.Game()
		if len(game.Players) <= 1 {
			s.Emit("error-message", "Unable to start game")
			return
		}
		conn := pool.Get()
		defer conn.Close()
		queries.RegisterGame(gameID, conn)
		queries.SetCurrentTurn(gameID, game.Players[0].Initials, conn)
		server.BroadcastToRoom("/", gameID, "game-start")
		server.BroadcastToRoom("/", gameID, "change-turn", game.Players[0].Initials)
	})

	server.OnEvent("/", "command", func(s socketio.Conn, jsonStr string) {
		var req map[string]string
		json.Unmarshal([]byte(jsonStr), &req)

		session, ok := manager.Get(req["game_id"])
		if !ok {
			s.Emit("error-message", "Invalid game")
			return
		}
		res := session.Do(req["initials"], req["command"])
		payload, _ := json.Marshal(res)
		server.BroadcastToRoom("/", req["game_id"], "command-result", string(payload))

		conn := pool.Get()
		defer conn.Close()
		queries.AppendAuditLine(req["game_id"], req["command"], conn)

		game := session.Game()
		if res.Code == engine.Terminate || game.Terminal() {
			server.BroadcastToRoom("/", req["game_id"], "game-over")
			queries.UnregisterGame(req["game_id"], conn)
			manager.Remove(req["game_id"])
			return
		}
		if res.TurnComplete {
			current := game.CurrentPlayer()
			if current != nil {
				queries.SetCurrentTurn(req["game_id"], current.Initials, conn)
				server.BroadcastToRoom("/", req["game_id"], "change-turn", current.Initials)
			}
		}
	})

	server.OnEvent("/", "leave-game", func(s socketio.Conn, jsonStr string) {
		var req map[string]string
		json.Unmarshal([]byte(jsonStr), &req)

		session, ok := manager.Get(req["game_id"])
		if !ok {
			return
		}
		s.Leave(req["game_id"])
		res := session.Do("", "quit "+req["initials"])
		payload, _ := json.Marshal(res)
		server.BroadcastToRoom("/", req["game_id"], "player-left", string(payload))
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		logrus.WithError(e).Warn("socket error")
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		s.LeaveAll()
	})

	go server.Serve()
	defer server.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)
	return http.ListenAndServe(cfg.SocketAddr, c.Handler(mux))
}
