package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"casino/internal/models"
)

// GORMCosmeticRepository is a GORM implementation of CosmeticRepository.
type GORMCosmeticRepository struct {
	db *gorm.DB
}

// NewGORMCosmeticRepository creates a new instance of GORMCosmeticRepository.
func NewGORMCosmeticRepository(db *gorm.DB) *GORMCosmeticRepository {
	return &GORMCosmeticRepository{
		db: db,
	}
}

// GetAll retrieves all cosmetics.
func (r *GORMCosmeticRepository) GetAll() ([]models.Cosmetic, error) {
	var cosmetics []models.Cosmetic
	if err := r.db.Find(&cosmetics).Error; err != nil {
		return nil, fmt.Errorf("failed to get all cosmetics: %w", err)
	}
	return cosmetics, nil
}

// GetByID retrieves a single cosmetic by its ID.
func (r *GORMCosmeticRepository) GetByID(id string) (*models.Cosmetic, error) {
	var cosmetic models.Cosmetic
	if err := r.db.First(&cosmetic, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCosmeticNotFound
		}
		return nil, fmt.Errorf("failed to get cosmetic by ID %s: %w", id, err)
	}
	return &cosmetic, nil
}

// GetByName retrieves a single cosmetic by its unique display name.
func (r *GORMCosmeticRepository) GetByName(name string) (*models.Cosmetic, error) {
	var cosmetic models.Cosmetic
	if err := r.db.First(&cosmetic, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCosmeticNotFound
		}
		return nil, fmt.Errorf("failed to get cosmetic by name %s: %w", name, err)
	}
	return &cosmetic, nil
}

// GetByValueRange retrieves cosmetics within the given value bounds.
func (r *GORMCosmeticRepository) GetByValueRange(min, max *float64) ([]models.Cosmetic, error) {
	query := r.db
	if min != nil {
		query = query.Where("value >= ?", *min)
	}
	if max != nil {
		query = query.Where("value <= ?", *max)
	}
	var cosmetics []models.Cosmetic
	if err := query.Find(&cosmetics).Error; err != nil {
		return nil, fmt.Errorf("failed to get cosmetics by value: %w", err)
	}
	return cosmetics, nil
}

// Create creates a new cosmetic. A unique-index violation on the name is
// surfaced as models.ErrNameTaken.
func (r *GORMCosmeticRepository) Create(cosmetic *models.Cosmetic) error {
	if cosmetic.ID == "" {
		cosmetic.ID = uuid.New().String()
	}
	if err := r.db.Create(cosmetic).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "duplicate key") {
			return models.ErrNameTaken
		}
		return fmt.Errorf("failed to create cosmetic: %w", err)
	}
	return nil
}

// Update updates an existing cosmetic.
func (r *GORMCosmeticRepository) Update(cosmetic *models.Cosmetic) error {
	res := r.db.Save(cosmetic)
	if res.Error != nil {
		return fmt.Errorf("failed to update cosmetic: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrCosmeticNotFound
	}
	return nil
}

// Delete deletes a cosmetic by its ID. Ownership and equip references are
// deliberately left in place; see DESIGN.md.
func (r *GORMCosmeticRepository) Delete(id string) error {
	res := r.db.Delete(&models.Cosmetic{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cosmetic: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrCosmeticNotFound
	}
	return nil
}
