package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careers-sim/careers-backend/app/controllers"
)

func GameRoutes(a *fiber.App, gc *controllers.GameController) {
	route := a.Group("/game")
	route.Post("/create", gc.CreateGame)
	route.Get("/verify", gc.VerifyGame)
	route.Get("/all", gc.GetAllAvailGames)
	route.Get("/:id/status", gc.GameStatus)
}
