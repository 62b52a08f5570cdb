package handlers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"casino/internal/services"
)

// UserHandler handles HTTP requests for user profiles, friends, statistics
// and leaderboards.
type UserHandler struct {
	userService   *services.UserService
	friendService *services.FriendService
	statsService  *services.StatsService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, friendService *services.FriendService, statsService *services.StatsService) *UserHandler {
	return &UserHandler{
		userService:   userService,
		friendService: friendService,
		statsService:  statsService,
	}
}

// RegisterRoutes registers the user routes with the Fiber app. Specific
// paths are registered before the ":id" catch-all.
func (h *UserHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler, admin fiber.Handler) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/me", auth, h.HandleGetMe)
	userRoutes.Get("/me/stats", auth, h.HandleGetStats)
	userRoutes.Get("/me/games/:count", auth, h.HandleGetRecentGames)
	userRoutes.Get("/top/balance/:count", h.HandleTopBalance)
	userRoutes.Get("/top/games/:count", h.HandleTopGames)
	userRoutes.Get("/top/wins/:count", h.HandleTopWins)
	userRoutes.Get("/top/winrate/:count", h.HandleTopWinrate)
	userRoutes.Post("/friends/:id", auth, h.HandleAddFriend)
	userRoutes.Delete("/friends/:id", auth, h.HandleRemoveFriend)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Put("/:id", auth, admin, h.HandleUpdateUser)
	userRoutes.Delete("/:id", auth, admin, h.HandleDeleteUser)
}

// HandleGetUsers retrieves all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		log.Printf("Error getting all users: %v", err)
		return fail(c, err, "Could not retrieve users")
	}
	return c.JSON(users)
}

// HandleGetUserByID retrieves a single user by their ID.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	user, err := h.userService.GetUserByID(c.Params("id"))
	if err != nil {
		log.Printf("Error getting user %s: %v", c.Params("id"), err)
		return fail(c, err, "Could not retrieve user")
	}
	return c.JSON(user)
}

// HandleGetMe retrieves the authenticated user's own profile.
func (h *UserHandler) HandleGetMe(c *fiber.Ctx) error {
	user, err := h.userService.GetUserByID(currentUserID(c))
	if err != nil {
		log.Printf("Error getting current user: %v", err)
		return fail(c, err, "Could not retrieve user")
	}
	return c.JSON(user)
}

// HandleGetStats returns the authenticated user's game statistics.
func (h *UserHandler) HandleGetStats(c *fiber.Ctx) error {
	stats, err := h.statsService.UserStats(currentUserID(c))
	if err != nil {
		log.Printf("Error getting user statistics: %v", err)
		return fail(c, err, "Could not retrieve statistics")
	}
	return c.JSON(stats)
}

// HandleGetRecentGames returns the authenticated user's latest sessions.
func (h *UserHandler) HandleGetRecentGames(c *fiber.Ctx) error {
	count := parseCount(c.Params("count"), 3)
	games, err := h.statsService.RecentGames(currentUserID(c), count)
	if err != nil {
		log.Printf("Error getting recent games: %v", err)
		return fail(c, err, "Could not retrieve games")
	}
	return c.JSON(games)
}

// HandleTopBalance returns the richest users.
func (h *UserHandler) HandleTopBalance(c *fiber.Ctx) error {
	users, err := h.statsService.TopByBalance(parseCount(c.Params("count"), 10))
	if err != nil {
		log.Printf("Error getting top balances: %v", err)
		return fail(c, err, "Could not retrieve leaderboard")
	}
	return c.JSON(users)
}

// HandleTopGames returns the users with the most sessions played.
func (h *UserHandler) HandleTopGames(c *fiber.Ctx) error {
	entries, err := h.statsService.TopByGamesPlayed(parseCount(c.Params("count"), 10))
	if err != nil {
		log.Printf("Error getting top games played: %v", err)
		return fail(c, err, "Could not retrieve leaderboard")
	}
	return c.JSON(entries)
}

// HandleTopWins returns the users with the most winning sessions.
func (h *UserHandler) HandleTopWins(c *fiber.Ctx) error {
	entries, err := h.statsService.TopByWins(parseCount(c.Params("count"), 10))
	if err != nil {
		log.Printf("Error getting top wins: %v", err)
		return fail(c, err, "Could not retrieve leaderboard")
	}
	return c.JSON(entries)
}

// HandleTopWinrate returns the users with the best win rate over at least
// minGames sessions (query parameter, default 1).
func (h *UserHandler) HandleTopWinrate(c *fiber.Ctx) error {
	minGames := parseCount(c.Query("minGames"), 1)
	entries, err := h.statsService.TopByWinRate(parseCount(c.Params("count"), 10), minGames)
	if err != nil {
		log.Printf("Error getting top win rates: %v", err)
		return fail(c, err, "Could not retrieve leaderboard")
	}
	return c.JSON(entries)
}

// HandleAddFriend adds the target user to the authenticated user's friend
// set.
func (h *UserHandler) HandleAddFriend(c *fiber.Ctx) error {
	if err := h.friendService.AddFriend(currentUserID(c), c.Params("id")); err != nil {
		log.Printf("Error adding friend: %v", err)
		return fail(c, err, "Could not add friend")
	}
	user, err := h.userService.GetUserByID(currentUserID(c))
	if err != nil {
		return fail(c, err, "Could not retrieve user")
	}
	return c.JSON(user)
}

// HandleRemoveFriend removes the target user from the authenticated user's
// friend set.
func (h *UserHandler) HandleRemoveFriend(c *fiber.Ctx) error {
	if err := h.friendService.RemoveFriend(currentUserID(c), c.Params("id")); err != nil {
		log.Printf("Error removing friend: %v", err)
		return fail(c, err, "Could not remove friend")
	}
	user, err := h.userService.GetUserByID(currentUserID(c))
	if err != nil {
		return fail(c, err, "Could not retrieve user")
	}
	return c.JSON(user)
}

// HandleUpdateUser applies a partial profile update.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	var update services.UserUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	user, err := h.userService.UpdateUser(c.Params("id"), update)
	if err != nil {
		log.Printf("Error updating user %s: %v", c.Params("id"), err)
		return fail(c, err, "Could not update user")
	}
	return c.JSON(user)
}

// HandleDeleteUser hard-deletes a user account.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	if err := h.userService.DeleteUser(c.Params("id")); err != nil {
		log.Printf("Error deleting user %s: %v", c.Params("id"), err)
		return fail(c, err, "Could not delete user")
	}
	return c.JSON(fiber.Map{
		"message": "Success deleting user",
	})
}

// parseCount parses a positive integer parameter, falling back to def when
// the parameter is absent. A present but malformed value yields 0 so the
// service rejects it as invalid.
func parseCount(raw string, def int) int {
	if raw == "" {
		return def
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return count
}
