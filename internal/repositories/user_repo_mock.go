package repositories

import (
	"math"
	"sort"
	"sync"

	"github.com/google/uuid"

	"casino/internal/models"
)

// MockUserRepository is an in-memory implementation of UserRepository.
// The mutex is held across every check-and-mutate, so its balance operations
// give the same all-or-nothing guarantee as the conditional SQL updates.
type MockUserRepository struct {
	users   map[string]models.User
	owned   map[string]map[string]bool
	friends map[string]map[string]bool
	mu      sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:   make(map[string]models.User),
		owned:   make(map[string]map[string]bool),
		friends: make(map[string]map[string]bool),
	}
}

// Create adds a new user.
func (r *MockUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return models.ErrUsernameTaken
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[user.ID] = *user
	return nil
}

// GetByID returns a user by their ID, with owned cosmetic ids and friend ids
// materialized onto the returned value.
func (r *MockUserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.materialize(id)
}

// GetByUsername returns a user by their username.
func (r *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id, user := range r.users {
		if user.Username == username {
			return r.materialize(id)
		}
	}
	return nil, models.ErrUserNotFound
}

// GetAll returns all users.
func (r *MockUserRepository) GetAll() ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userList := make([]models.User, 0, len(r.users))
	for id := range r.users {
		user, _ := r.materialize(id)
		userList = append(userList, *user)
	}
	sort.Slice(userList, func(i, j int) bool { return userList[i].ID < userList[j].ID })
	return userList, nil
}

// Update replaces the user's scalar fields.
func (r *MockUserRepository) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return models.ErrUserNotFound
	}
	stored := *user
	stored.Cosmetics = nil
	stored.Friends = nil
	r.users[user.ID] = stored
	return nil
}

// Delete removes a user and their association entries.
func (r *MockUserRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return models.ErrUserNotFound
	}
	delete(r.users, id)
	delete(r.owned, id)
	delete(r.friends, id)
	for _, set := range r.friends {
		delete(set, id)
	}
	return nil
}

// AddBalance increments the balance and returns the new value.
func (r *MockUserRepository) AddBalance(id string, amount float64) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return 0, models.ErrUserNotFound
	}
	user.Balance += amount
	r.users[id] = user
	return user.Balance, nil
}

// DeductBalance decrements the balance unless the result would be negative.
func (r *MockUserRepository) DeductBalance(id string, amount float64) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return 0, models.ErrUserNotFound
	}
	if user.Balance-amount < 0 {
		return 0, models.ErrInsufficientFunds
	}
	user.Balance -= amount
	r.users[id] = user
	return user.Balance, nil
}

// PurchaseCosmetic debits the item's value and grants ownership together.
func (r *MockUserRepository) PurchaseCosmetic(id string, item *models.Cosmetic) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return 0, models.ErrUserNotFound
	}
	if r.owned[id][item.ID] {
		return 0, models.ErrAlreadyOwned
	}
	if user.Balance < item.Value {
		return 0, models.ErrInsufficientFunds
	}
	user.Balance -= item.Value
	r.users[id] = user
	if r.owned[id] == nil {
		r.owned[id] = make(map[string]bool)
	}
	r.owned[id][item.ID] = true
	return user.Balance, nil
}

// OwnsCosmetic reports whether the user owns the given cosmetic.
func (r *MockUserRepository) OwnsCosmetic(id, cosmeticID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.users[id]; !ok {
		return false, models.ErrUserNotFound
	}
	return r.owned[id][cosmeticID], nil
}

// GrantCosmetic adds a cosmetic to the ownership set without charging.
// Test helper for seeding fixtures.
func (r *MockUserRepository) GrantCosmetic(id, cosmeticID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.owned[id] == nil {
		r.owned[id] = make(map[string]bool)
	}
	r.owned[id][cosmeticID] = true
}

// SetBorder sets the user's border slot.
func (r *MockUserRepository) SetBorder(id, cosmeticID string) error {
	return r.setSlot(id, cosmeticID, true)
}

// SetBanner sets the user's banner slot.
func (r *MockUserRepository) SetBanner(id, cosmeticID string) error {
	return r.setSlot(id, cosmeticID, false)
}

func (r *MockUserRepository) setSlot(id, cosmeticID string, border bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return models.ErrUserNotFound
	}
	slot := cosmeticID
	if border {
		user.BorderID = &slot
	} else {
		user.BannerID = &slot
	}
	r.users[id] = user
	return nil
}

// AddFriend adds the relation with set semantics.
func (r *MockUserRepository) AddFriend(id, friendID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return models.ErrUserNotFound
	}
	if r.friends[id] == nil {
		r.friends[id] = make(map[string]bool)
	}
	r.friends[id][friendID] = true
	return nil
}

// RemoveFriend removes the relation; removing a non-member is a no-op.
func (r *MockUserRepository) RemoveFriend(id, friendID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return models.ErrUserNotFound
	}
	delete(r.friends[id], friendID)
	return nil
}

// TopByBalance returns the richest users, ties broken by ascending id.
func (r *MockUserRepository) TopByBalance(count int) ([]models.User, error) {
	users, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Balance != users[j].Balance {
			return users[i].Balance > users[j].Balance
		}
		return users[i].ID < users[j].ID
	})
	limit := int(math.Min(float64(count), float64(len(users))))
	return users[:limit], nil
}

// materialize copies the stored user and attaches ownership and friend ids.
// Callers must hold at least the read lock.
func (r *MockUserRepository) materialize(id string) (*models.User, error) {
	stored, ok := r.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	user := stored
	for cosmeticID := range r.owned[id] {
		user.Cosmetics = append(user.Cosmetics, models.Cosmetic{ID: cosmeticID})
	}
	sort.Slice(user.Cosmetics, func(i, j int) bool { return user.Cosmetics[i].ID < user.Cosmetics[j].ID })
	for friendID := range r.friends[id] {
		if friend, ok := r.users[friendID]; ok {
			f := friend
			user.Friends = append(user.Friends, &f)
		}
	}
	sort.Slice(user.Friends, func(i, j int) bool { return user.Friends[i].ID < user.Friends[j].ID })
	return &user, nil
}
