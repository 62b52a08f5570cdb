package services

import (
	"casino/internal/models"
	"casino/internal/repositories"
)

// InventoryService handles equipping owned cosmetics into their slots.
// Emotes are ownable but have no slot.
type InventoryService struct {
	userRepo     repositories.UserRepository
	cosmeticRepo repositories.CosmeticRepository
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(userRepo repositories.UserRepository, cosmeticRepo repositories.CosmeticRepository) *InventoryService {
	return &InventoryService{
		userRepo:     userRepo,
		cosmeticRepo: cosmeticRepo,
	}
}

// EquipBorder places an owned frame into the user's border slot.
func (s *InventoryService) EquipBorder(userID, itemID string) error {
	if err := s.checkEquippable(userID, itemID, models.CosmeticFrame); err != nil {
		return err
	}
	return s.userRepo.SetBorder(userID, itemID)
}

// EquipBanner places an owned banner into the user's banner slot.
func (s *InventoryService) EquipBanner(userID, itemID string) error {
	if err := s.checkEquippable(userID, itemID, models.CosmeticBanner); err != nil {
		return err
	}
	return s.userRepo.SetBanner(userID, itemID)
}

// checkEquippable verifies the item exists, matches the slot's category and
// is owned by the user.
func (s *InventoryService) checkEquippable(userID, itemID, wantType string) error {
	item, err := s.cosmeticRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item.Type != wantType {
		return models.ErrWrongCategory
	}
	owned, err := s.userRepo.OwnsCosmetic(userID, itemID)
	if err != nil {
		return err
	}
	if !owned {
		return models.ErrNotOwned
	}
	return nil
}
