package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"casino/internal/models"
)

// statusForError maps business errors to HTTP statuses. Anything unmapped is
// a storage or internal failure and surfaces as a 500 with a generic message.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrCosmeticNotFound),
		errors.Is(err, models.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrUsernameTaken),
		errors.Is(err, models.ErrNameTaken):
		return fiber.StatusConflict
	case errors.Is(err, models.ErrInvalidAmount),
		errors.Is(err, models.ErrInsufficientFunds),
		errors.Is(err, models.ErrAlreadyOwned),
		errors.Is(err, models.ErrNotOwned),
		errors.Is(err, models.ErrWrongCategory),
		errors.Is(err, models.ErrSelfFriend),
		errors.Is(err, models.ErrMissingTarget),
		errors.Is(err, models.ErrInvalidParameter),
		errors.Is(err, models.ErrInvalidGameType):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrWrongCredentials),
		errors.Is(err, models.ErrPasswordMismatch),
		errors.Is(err, models.ErrTokenRevoked):
		return fiber.StatusForbidden
	case errors.Is(err, models.ErrMissingToken),
		errors.Is(err, models.ErrInvalidToken):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// fail writes the standard error response for err.
func fail(c *fiber.Ctx, err error, message string) error {
	status := statusForError(err)
	body := fiber.Map{"message": message}
	if status != fiber.StatusInternalServerError {
		body["error"] = err.Error()
	}
	return c.Status(status).JSON(body)
}

// currentUserID returns the identity stored by the auth middleware.
func currentUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals("user_id").(string)
	return userID
}
