package handlers

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"casino/internal/models"
	"casino/internal/services"
)

// CosmeticHandler handles HTTP requests for cosmetics. Reads are public;
// mutations are administrative.
type CosmeticHandler struct {
	service  *services.CosmeticService
	validate *validator.Validate
}

// NewCosmeticHandler creates a new CosmeticHandler.
func NewCosmeticHandler(service *services.CosmeticService) *CosmeticHandler {
	return &CosmeticHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cosmetic routes with the Fiber app.
func (h *CosmeticHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler, admin fiber.Handler) {
	cosmeticRoutes := router.Group("/cosmetics")
	cosmeticRoutes.Get("/", h.HandleGetCosmetics)
	cosmeticRoutes.Get("/value", h.HandleGetCosmeticsByValue)
	cosmeticRoutes.Get("/name/:name", h.HandleGetCosmeticByName)
	cosmeticRoutes.Get("/:id", h.HandleGetCosmeticByID)
	cosmeticRoutes.Post("/", auth, admin, h.HandleCreateCosmetic)
	cosmeticRoutes.Put("/:id", auth, admin, h.HandleUpdateCosmetic)
	cosmeticRoutes.Delete("/:id", auth, admin, h.HandleDeleteCosmetic)
}

// HandleGetCosmetics retrieves all cosmetics.
func (h *CosmeticHandler) HandleGetCosmetics(c *fiber.Ctx) error {
	cosmetics, err := h.service.GetAllCosmetics()
	if err != nil {
		log.Printf("Error getting all cosmetics: %v", err)
		return fail(c, err, "Could not retrieve cosmetics")
	}
	return c.JSON(cosmetics)
}

// HandleGetCosmeticByID retrieves a single cosmetic by its ID.
func (h *CosmeticHandler) HandleGetCosmeticByID(c *fiber.Ctx) error {
	cosmetic, err := h.service.GetCosmeticByID(c.Params("id"))
	if err != nil {
		log.Printf("Error getting cosmetic %s: %v", c.Params("id"), err)
		return fail(c, err, "Could not retrieve cosmetic")
	}
	return c.JSON(cosmetic)
}

// HandleGetCosmeticByName retrieves a single cosmetic by its display name.
func (h *CosmeticHandler) HandleGetCosmeticByName(c *fiber.Ctx) error {
	cosmetic, err := h.service.GetCosmeticByName(c.Params("name"))
	if err != nil {
		log.Printf("Error getting cosmetic by name %s: %v", c.Params("name"), err)
		return fail(c, err, "Could not retrieve cosmetic")
	}
	return c.JSON(cosmetic)
}

// HandleGetCosmeticsByValue retrieves cosmetics within the min/max query
// bounds.
func (h *CosmeticHandler) HandleGetCosmeticsByValue(c *fiber.Ctx) error {
	min, err := parseOptionalFloat(c.Query("min"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid min parameter",
		})
	}
	max, err := parseOptionalFloat(c.Query("max"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid max parameter",
		})
	}

	cosmetics, err := h.service.GetCosmeticsByValue(min, max)
	if err != nil {
		log.Printf("Error getting cosmetics by value: %v", err)
		return fail(c, err, "Could not retrieve cosmetics")
	}
	return c.JSON(cosmetics)
}

// HandleCreateCosmetic creates a new cosmetic.
func (h *CosmeticHandler) HandleCreateCosmetic(c *fiber.Ctx) error {
	var cosmetic models.Cosmetic
	if err := c.BodyParser(&cosmetic); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(cosmetic); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.CreateCosmetic(&cosmetic); err != nil {
		log.Printf("Error creating cosmetic: %v", err)
		return fail(c, err, "Could not create cosmetic")
	}
	return c.Status(fiber.StatusCreated).JSON(cosmetic)
}

// HandleUpdateCosmetic applies a partial update to a cosmetic.
func (h *CosmeticHandler) HandleUpdateCosmetic(c *fiber.Ctx) error {
	var update services.CosmeticUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	cosmetic, err := h.service.UpdateCosmetic(c.Params("id"), update)
	if err != nil {
		log.Printf("Error updating cosmetic %s: %v", c.Params("id"), err)
		return fail(c, err, "Could not update cosmetic")
	}
	return c.JSON(cosmetic)
}

// HandleDeleteCosmetic deletes a cosmetic.
func (h *CosmeticHandler) HandleDeleteCosmetic(c *fiber.Ctx) error {
	if err := h.service.DeleteCosmetic(c.Params("id")); err != nil {
		log.Printf("Error deleting cosmetic %s: %v", c.Params("id"), err)
		return fail(c, err, "Could not delete cosmetic")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseOptionalFloat parses a float query parameter, nil when absent.
func parseOptionalFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
