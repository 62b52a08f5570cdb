package repositories

import "casino/internal/models"

// CosmeticRepository defines the interface for cosmetic data access.
type CosmeticRepository interface {
	GetAll() ([]models.Cosmetic, error)
	GetByID(id string) (*models.Cosmetic, error)
	GetByName(name string) (*models.Cosmetic, error)
	// GetByValueRange returns cosmetics whose value lies within the given
	// bounds; a nil bound is open-ended.
	GetByValueRange(min, max *float64) ([]models.Cosmetic, error)
	Create(cosmetic *models.Cosmetic) error
	Update(cosmetic *models.Cosmetic) error
	Delete(id string) error
}
