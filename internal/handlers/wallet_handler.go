package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"casino/internal/services"
)

// WalletHandler handles HTTP requests for the authenticated user's balance,
// purchases and equipment.
type WalletHandler struct {
	walletService    *services.WalletService
	inventoryService *services.InventoryService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletService *services.WalletService, inventoryService *services.InventoryService) *WalletHandler {
	return &WalletHandler{
		walletService:    walletService,
		inventoryService: inventoryService,
	}
}

// RegisterRoutes registers the wallet routes with the Fiber app. All wallet
// routes operate on the authenticated user.
func (h *WalletHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	walletRoutes := router.Group("/wallet", auth)
	walletRoutes.Get("/", h.HandleGetBalance)
	walletRoutes.Post("/add", h.HandleAddBalance)
	walletRoutes.Post("/remove", h.HandleRemoveBalance)
	walletRoutes.Post("/buy", h.HandleBuyItem)
	walletRoutes.Post("/equip/border", h.HandleEquipBorder)
	walletRoutes.Post("/equip/banner", h.HandleEquipBanner)
}

// AmountRequest represents a balance mutation request body.
type AmountRequest struct {
	Amount float64 `json:"amount"`
}

// ItemRequest represents a purchase or equip request body.
type ItemRequest struct {
	ItemID string `json:"item_id"`
}

// HandleGetBalance returns the authenticated user's balance.
func (h *WalletHandler) HandleGetBalance(c *fiber.Ctx) error {
	balance, err := h.walletService.GetBalance(currentUserID(c))
	if err != nil {
		log.Printf("Error getting balance: %v", err)
		return fail(c, err, "Could not retrieve balance")
	}
	return c.JSON(fiber.Map{
		"balance": balance,
	})
}

// HandleAddBalance credits the authenticated user's account.
func (h *WalletHandler) HandleAddBalance(c *fiber.Ctx) error {
	var req AmountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	balance, err := h.walletService.AddBalance(currentUserID(c), req.Amount)
	if err != nil {
		log.Printf("Error adding balance: %v", err)
		return fail(c, err, "Could not add balance")
	}
	return c.JSON(fiber.Map{
		"message": "Success adding balance",
		"balance": balance,
	})
}

// HandleRemoveBalance debits the authenticated user's account.
func (h *WalletHandler) HandleRemoveBalance(c *fiber.Ctx) error {
	var req AmountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	balance, err := h.walletService.RemoveBalance(currentUserID(c), req.Amount)
	if err != nil {
		log.Printf("Error removing balance: %v", err)
		return fail(c, err, "Could not remove balance")
	}
	return c.JSON(fiber.Map{
		"message": "Success removing balance",
		"balance": balance,
	})
}

// HandleBuyItem purchases a cosmetic for the authenticated user.
func (h *WalletHandler) HandleBuyItem(c *fiber.Ctx) error {
	var req ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.ItemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Please provide an item id",
		})
	}

	balance, err := h.walletService.BuyItem(currentUserID(c), req.ItemID)
	if err != nil {
		log.Printf("Error buying item %s: %v", req.ItemID, err)
		return fail(c, err, "Could not buy item")
	}
	return c.JSON(fiber.Map{
		"message": "Success buying item",
		"balance": balance,
	})
}

// HandleEquipBorder equips an owned frame into the border slot.
func (h *WalletHandler) HandleEquipBorder(c *fiber.Ctx) error {
	return h.equip(c, h.inventoryService.EquipBorder, "border")
}

// HandleEquipBanner equips an owned banner into the banner slot.
func (h *WalletHandler) HandleEquipBanner(c *fiber.Ctx) error {
	return h.equip(c, h.inventoryService.EquipBanner, "banner")
}

func (h *WalletHandler) equip(c *fiber.Ctx, equipFn func(userID, itemID string) error, slot string) error {
	var req ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.ItemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Please provide a " + slot + " id",
		})
	}

	if err := equipFn(currentUserID(c), req.ItemID); err != nil {
		log.Printf("Error equipping %s %s: %v", slot, req.ItemID, err)
		return fail(c, err, "Could not equip "+slot)
	}
	return c.JSON(fiber.Map{
		"message": "Success equipping " + slot,
		slot:      req.ItemID,
	})
}
