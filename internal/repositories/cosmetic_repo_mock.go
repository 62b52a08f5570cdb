package repositories

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"casino/internal/models"
)

// MockCosmeticRepository is an in-memory implementation of CosmeticRepository.
type MockCosmeticRepository struct {
	cosmetics map[string]models.Cosmetic
	mu        sync.RWMutex
}

// NewMockCosmeticRepository creates a new instance of MockCosmeticRepository.
func NewMockCosmeticRepository() *MockCosmeticRepository {
	return &MockCosmeticRepository{
		cosmetics: make(map[string]models.Cosmetic),
	}
}

// GetAll returns all cosmetics.
func (r *MockCosmeticRepository) GetAll() ([]models.Cosmetic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cosmeticList := make([]models.Cosmetic, 0, len(r.cosmetics))
	for _, c := range r.cosmetics {
		cosmeticList = append(cosmeticList, c)
	}
	sort.Slice(cosmeticList, func(i, j int) bool { return cosmeticList[i].ID < cosmeticList[j].ID })
	return cosmeticList, nil
}

// GetByID returns a cosmetic by its ID.
func (r *MockCosmeticRepository) GetByID(id string) (*models.Cosmetic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cosmetic, ok := r.cosmetics[id]
	if !ok {
		return nil, models.ErrCosmeticNotFound
	}
	return &cosmetic, nil
}

// GetByName returns a cosmetic by its unique display name.
func (r *MockCosmeticRepository) GetByName(name string) (*models.Cosmetic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.cosmetics {
		if c.Name == name {
			cosmetic := c
			return &cosmetic, nil
		}
	}
	return nil, models.ErrCosmeticNotFound
}

// GetByValueRange returns cosmetics within the given value bounds.
func (r *MockCosmeticRepository) GetByValueRange(min, max *float64) ([]models.Cosmetic, error) {
	all, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Cosmetic, 0, len(all))
	for _, c := range all {
		if min != nil && c.Value < *min {
			continue
		}
		if max != nil && c.Value > *max {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered, nil
}

// Create adds a new cosmetic, rejecting duplicate names.
func (r *MockCosmeticRepository) Create(cosmetic *models.Cosmetic) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.cosmetics {
		if existing.Name == cosmetic.Name {
			return models.ErrNameTaken
		}
	}
	if cosmetic.ID == "" {
		cosmetic.ID = uuid.New().String()
	}
	r.cosmetics[cosmetic.ID] = *cosmetic
	return nil
}

// Update modifies an existing cosmetic.
func (r *MockCosmeticRepository) Update(cosmetic *models.Cosmetic) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cosmetics[cosmetic.ID]; !ok {
		return models.ErrCosmeticNotFound
	}
	r.cosmetics[cosmetic.ID] = *cosmetic
	return nil
}

// Delete removes a cosmetic by its ID.
func (r *MockCosmeticRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cosmetics[id]; !ok {
		return models.ErrCosmeticNotFound
	}
	delete(r.cosmetics, id)
	return nil
}
