package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"github.com/careers-sim/careers-backend/app/controllers"
	"github.com/careers-sim/careers-backend/app/engine"
	"github.com/careers-sim/careers-backend/pkg/routes"
	"github.com/careers-sim/careers-backend/platform/board"
	"github.com/careers-sim/careers-backend/platform/cache"
	"github.com/careers-sim/careers-backend/platform/config"
	"github.com/careers-sim/careers-backend/platform/database"
	"github.com/careers-sim/careers-backend/platform/logging"
	"github.com/careers-sim/careers-backend/platform/queries"
	socket "github.com/careers-sim/careers-backend/platform/sockets"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("configuration")
	}
	logging.Init(cfg.LogLevel)

	edition, err := board.LoadEdition(cfg.EditionDir)
	if err != nil {
		logrus.WithError(err).Fatal("edition load")
	}

	db := database.PostgreSQLConnection(cfg)
	defer db.Close()
	pool := cache.CreateRedisPool(cfg.RedisURL)
	defer pool.Close()

	manager := engine.NewManager(
		edition.Board, edition.Opportunity, edition.Experience, edition.Params,
		engine.WithStore(queries.NewPgStore(db)),
		engine.WithStrategy(engine.RollAndDone{}),
	)

	app := fiber.New()
	app.Use(cors.New())
	routes.GameRoutes(app, &controllers.GameController{DB: db, Manager: manager})

	go func() {
		if err := socket.CreateSocketIOServer(cfg, manager, pool); err != nil {
			logrus.WithError(err).Fatal("socket server")
		}
	}()

	if err := app.Listen(cfg.HTTPAddr); err != nil {
		logrus.WithError(err).Fatal("http server")
	}
}
