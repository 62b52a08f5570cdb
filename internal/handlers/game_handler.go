package handlers

import (
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"casino/internal/models"
	"casino/internal/services"
)

// GameHandler handles HTTP requests for game-session records.
type GameHandler struct {
	service  *services.GameService
	validate *validator.Validate
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(service *services.GameService) *GameHandler {
	return &GameHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the game routes with the Fiber app. Creation and
// mutation come from the gameplay systems and require authentication.
func (h *GameHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	gameRoutes := router.Group("/games")
	gameRoutes.Get("/", h.HandleGetGames)
	gameRoutes.Get("/session", h.HandleGetGamesBySession)
	gameRoutes.Get("/duration", h.HandleGetGamesByDuration)
	gameRoutes.Get("/type/:type", h.HandleGetGamesByType)
	gameRoutes.Get("/:id", h.HandleGetGameByID)
	gameRoutes.Post("/", auth, h.HandleCreateGame)
	gameRoutes.Put("/:id", auth, h.HandleUpdateGame)
	gameRoutes.Delete("/:id", auth, h.HandleDeleteGame)
}

// HandleGetGames retrieves all game sessions.
func (h *GameHandler) HandleGetGames(c *fiber.Ctx) error {
	games, err := h.service.GetAllGames()
	if err != nil {
		log.Printf("Error getting all games: %v", err)
		return fail(c, err, "Could not retrieve games")
	}
	return c.JSON(games)
}

// HandleGetGameByID retrieves a single game session.
func (h *GameHandler) HandleGetGameByID(c *fiber.Ctx) error {
	game, err := h.service.GetGameByID(c.Params("id"))
	if err != nil {
		log.Printf("Error getting game %s: %v", c.Params("id"), err)
		return fail(c, err, "Could not retrieve game")
	}
	return c.JSON(game)
}

// HandleGetGamesByType retrieves sessions of one game kind.
func (h *GameHandler) HandleGetGamesByType(c *fiber.Ctx) error {
	games, err := h.service.GetGamesByType(c.Params("type"))
	if err != nil {
		log.Printf("Error getting games by type %s: %v", c.Params("type"), err)
		return fail(c, err, "Could not retrieve games")
	}
	return c.JSON(games)
}

// HandleGetGamesBySession retrieves sessions filtered by the sessionStart and
// sessionEnd query parameters (RFC 3339).
func (h *GameHandler) HandleGetGamesBySession(c *fiber.Ctx) error {
	start, err := parseOptionalTime(c.Query("sessionStart"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid sessionStart parameter",
		})
	}
	end, err := parseOptionalTime(c.Query("sessionEnd"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid sessionEnd parameter",
		})
	}

	games, err := h.service.GetGamesBySession(start, end)
	if err != nil {
		log.Printf("Error getting games by session window: %v", err)
		return fail(c, err, "Could not retrieve games")
	}
	return c.JSON(games)
}

// HandleGetGamesByDuration retrieves sessions filtered by the minDuration and
// maxDuration query parameters, expressed in minutes.
func (h *GameHandler) HandleGetGamesByDuration(c *fiber.Ctx) error {
	min, err := parseOptionalMinutes(c.Query("minDuration"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid minDuration parameter",
		})
	}
	max, err := parseOptionalMinutes(c.Query("maxDuration"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid maxDuration parameter",
		})
	}

	games, err := h.service.GetGamesByDuration(min, max)
	if err != nil {
		log.Printf("Error getting games by duration: %v", err)
		return fail(c, err, "Could not retrieve games")
	}
	return c.JSON(games)
}

// HandleCreateGame records a new game session.
func (h *GameHandler) HandleCreateGame(c *fiber.Ctx) error {
	var game models.Game
	if err := c.BodyParser(&game); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(game); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.CreateGame(&game); err != nil {
		log.Printf("Error creating game: %v", err)
		return fail(c, err, "Could not create game")
	}
	return c.Status(fiber.StatusCreated).JSON(game)
}

// HandleUpdateGame applies a partial update to a game session.
func (h *GameHandler) HandleUpdateGame(c *fiber.Ctx) error {
	var update services.GameUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	game, err := h.service.UpdateGame(c.Params("id"), update)
	if err != nil {
		log.Printf("Error updating game %s: %v", c.Params("id"), err)
		return fail(c, err, "Could not update game")
	}
	return c.JSON(game)
}

// HandleDeleteGame deletes a game session record.
func (h *GameHandler) HandleDeleteGame(c *fiber.Ctx) error {
	if err := h.service.DeleteGame(c.Params("id")); err != nil {
		log.Printf("Error deleting game %s: %v", c.Params("id"), err)
		return fail(c, err, "Could not delete game")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseOptionalTime parses an RFC 3339 query parameter, zero when absent.
func parseOptionalTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// parseOptionalMinutes parses a minutes query parameter, nil when absent.
func parseOptionalMinutes(raw string) (*time.Duration, error) {
	if raw == "" {
		return nil, nil
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	duration := time.Duration(minutes) * time.Minute
	return &duration, nil
}
