package middleware

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"casino/internal/models"
	"casino/internal/services"
)

// AuthRequired is a Fiber middleware to check for a valid JWT token. Revoked
// tokens are rejected before signature verification. On success the resolved
// user id and the raw token are stored in the request locals.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		tokenString := parts[1]

		userID, err := authService.ValidateToken(c.Context(), tokenString)
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			if errors.Is(err, models.ErrTokenRevoked) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"message": "Token has been revoked",
				})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		// Store identity in Fiber context for subsequent handlers
		c.Locals("user_id", userID)
		c.Locals("token", tokenString)

		// Continue to the next handler
		return c.Next()
	}
}

// AdminRequired gates a route on the authenticated user's admin flag. It must
// run after AuthRequired.
func AdminRequired(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("user_id").(string)
		if !ok || userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Not logged in",
			})
		}

		user, err := userService.GetUserByID(userID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unknown user",
			})
		}
		if !user.Admin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Admin access required",
			})
		}

		return c.Next()
	}
}
