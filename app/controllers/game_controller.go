package controllers

import (
	"github.com/go-pg/pg/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/careers-sim/careers-backend/app/engine"
	"github.com/careers-sim/careers-backend/platform/queries"
)

// GameController serves the HTTP glue around game sessions.
type GameController struct {
	DB      *pg.DB
	Manager *engine.Manager
}

type gameCreateDto struct {
	Name string `json:"name"`
}

type verifyGameDto struct {
	Code string `query:"code"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	dto := new(gameCreateDto)
	if err := c.BodyParser(dto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	id, _ := gc.Manager.Create()
	if err := queries.CreateGame(gc.DB, id, dto.Name); err != nil {
		gc.Manager.Remove(id)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(fiber.Map{"id": id})
}

func (gc *GameController) VerifyGame(c *fiber.Ctx) error {
	dto := new(verifyGameDto)
	if err := c.QueryParser(dto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	_, live := gc.Manager.Get(dto.Code)
	return c.JSON(fiber.Map{"status": live || queries.VerifyGame(gc.DB, dto.Code)})
}

func (gc *GameController) GetAllAvailGames(c *fiber.Ctx) error {
	games, err := queries.OpenGames(gc.DB)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(games)
}

func (gc *GameController) GameStatus(c *fiber.Ctx) error {
	session, ok := gc.Manager.Get(c.Params("id"))
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}
	game := session.Game()
	return c.JSON(fiber.Map{
		"id":              game.ID,
		"type":            game.Type,
		"turn_number":     game.TurnNumber,
		"winner_initials": game.WinnerInitials,
		"ended":           game.Ended,
		"players":         session.Summaries(),
	})
}
