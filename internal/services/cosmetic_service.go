package services

import (
	"casino/internal/models"
	"casino/internal/repositories"
)

// CosmeticUpdate is a partial update: only non-nil fields overwrite the
// stored value.
type CosmeticUpdate struct {
	Name         *string  `json:"name"`
	Type         *string  `json:"type"`
	ResourcePath *string  `json:"resource_path"`
	Value        *float64 `json:"value"`
}

// CosmeticService handles business logic related to cosmetics.
type CosmeticService struct {
	repo repositories.CosmeticRepository
}

// NewCosmeticService creates a new CosmeticService.
func NewCosmeticService(repo repositories.CosmeticRepository) *CosmeticService {
	return &CosmeticService{
		repo: repo,
	}
}

// GetAllCosmetics retrieves all cosmetics.
func (s *CosmeticService) GetAllCosmetics() ([]models.Cosmetic, error) {
	return s.repo.GetAll()
}

// GetCosmeticByID retrieves a single cosmetic by its ID.
func (s *CosmeticService) GetCosmeticByID(id string) (*models.Cosmetic, error) {
	return s.repo.GetByID(id)
}

// GetCosmeticByName retrieves a single cosmetic by its display name.
func (s *CosmeticService) GetCosmeticByName(name string) (*models.Cosmetic, error) {
	return s.repo.GetByName(name)
}

// GetCosmeticsByValue retrieves cosmetics within the given value bounds.
func (s *CosmeticService) GetCosmeticsByValue(min, max *float64) ([]models.Cosmetic, error) {
	return s.repo.GetByValueRange(min, max)
}

// CreateCosmetic creates a new cosmetic; a duplicate display name fails with
// ErrNameTaken.
func (s *CosmeticService) CreateCosmetic(cosmetic *models.Cosmetic) error {
	if existing, err := s.repo.GetByName(cosmetic.Name); err == nil && existing != nil {
		return models.ErrNameTaken
	}
	return s.repo.Create(cosmetic)
}

// UpdateCosmetic applies a partial update to a cosmetic. Renaming onto an
// existing name fails with ErrNameTaken.
func (s *CosmeticService) UpdateCosmetic(id string, update CosmeticUpdate) (*models.Cosmetic, error) {
	cosmetic, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil && *update.Name != cosmetic.Name {
		if existing, err := s.repo.GetByName(*update.Name); err == nil && existing != nil {
			return nil, models.ErrNameTaken
		}
		cosmetic.Name = *update.Name
	}
	if update.Type != nil {
		cosmetic.Type = *update.Type
	}
	if update.ResourcePath != nil {
		cosmetic.ResourcePath = *update.ResourcePath
	}
	if update.Value != nil {
		cosmetic.Value = *update.Value
	}

	if err := s.repo.Update(cosmetic); err != nil {
		return nil, err
	}
	return cosmetic, nil
}

// DeleteCosmetic deletes a cosmetic. Ownership and equipped references are
// not cascaded; see DESIGN.md.
func (s *CosmeticService) DeleteCosmetic(id string) error {
	return s.repo.Delete(id)
}
