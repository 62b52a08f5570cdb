package repositories

import "casino/internal/models"

// UserRepository defines the interface for user data access.
//
// Balance mutations are expressed as storage-level atomic operations so that
// concurrent requests against the same account cannot produce a negative
// balance: DeductBalance and PurchaseCosmetic apply their decrement only when
// the resulting balance stays non-negative.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAll() ([]models.User, error)
	Update(user *models.User) error
	Delete(id string) error

	// AddBalance atomically increments the balance and returns the new value.
	AddBalance(id string, amount float64) (float64, error)
	// DeductBalance atomically decrements the balance, failing with
	// models.ErrInsufficientFunds when the decrement would go below zero.
	DeductBalance(id string, amount float64) (float64, error)
	// PurchaseCosmetic debits the item's value and grants ownership as a
	// single all-or-nothing operation.
	PurchaseCosmetic(id string, item *models.Cosmetic) (float64, error)
	OwnsCosmetic(id, cosmeticID string) (bool, error)
	SetBorder(id, cosmeticID string) error
	SetBanner(id, cosmeticID string) error

	// AddFriend and RemoveFriend have set semantics: adding an existing
	// member or removing a non-member is a no-op success.
	AddFriend(id, friendID string) error
	RemoveFriend(id, friendID string) error

	// TopByBalance returns up to count users ordered by balance descending,
	// ties broken by ascending id.
	TopByBalance(count int) ([]models.User, error)
}
