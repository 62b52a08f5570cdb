package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"casino/internal/models"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create creates a new user in the database. A unique-index violation on the
// username is surfaced as models.ErrUsernameTaken so a late duplicate that
// slipped past the pre-check still fails cleanly.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "duplicate key") {
			return models.ErrUsernameTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by their ID, with cosmetics and friends preloaded.
func (r *GORMUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Cosmetics").Preload("Friends").First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return &user, nil
}

// GetByUsername retrieves a user by their username.
func (r *GORMUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username %s: %w", username, err)
	}
	return &user, nil
}

// GetAll retrieves all users.
func (r *GORMUserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Preload("Cosmetics").Preload("Friends").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	return users, nil
}

// Update saves the user's scalar fields. Association sets are managed through
// the dedicated operations, not through Update.
func (r *GORMUserRepository) Update(user *models.User) error {
	res := r.db.Omit("Cosmetics", "Friends").Save(user)
	if res.Error != nil {
		return fmt.Errorf("failed to update user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// Delete hard-deletes a user and their association rows.
func (r *GORMUserRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM user_cosmetics WHERE user_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to clear cosmetics for user %s: %w", id, err)
		}
		if err := tx.Exec("DELETE FROM user_friends WHERE user_id = ? OR friend_id = ?", id, id).Error; err != nil {
			return fmt.Errorf("failed to clear friends for user %s: %w", id, err)
		}
		res := tx.Delete(&models.User{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete user: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return models.ErrUserNotFound
		}
		return nil
	})
}

// AddBalance applies an atomic increment and returns the new balance.
func (r *GORMUserRepository) AddBalance(id string, amount float64) (float64, error) {
	res := r.db.Model(&models.User{}).Where("id = ?", id).
		UpdateColumn("balance", gorm.Expr("balance + ?", amount))
	if res.Error != nil {
		return 0, fmt.Errorf("failed to add balance: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, models.ErrUserNotFound
	}
	return r.currentBalance(r.db, id)
}

// DeductBalance applies a conditional atomic decrement. The balance guard is
// part of the UPDATE itself, so two concurrent deductions can never both pass
// a stale in-memory check.
func (r *GORMUserRepository) DeductBalance(id string, amount float64) (float64, error) {
	res := r.db.Model(&models.User{}).Where("id = ? AND balance >= ?", id, amount).
		UpdateColumn("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return 0, fmt.Errorf("failed to deduct balance: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		if exists, err := r.userExists(r.db, id); err != nil {
			return 0, err
		} else if !exists {
			return 0, models.ErrUserNotFound
		}
		return 0, models.ErrInsufficientFunds
	}
	return r.currentBalance(r.db, id)
}

// PurchaseCosmetic debits the item's value and records ownership inside one
// transaction, so the user is never charged without being granted the item.
func (r *GORMUserRepository) PurchaseCosmetic(id string, item *models.Cosmetic) (float64, error) {
	var newBalance float64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var owned int64
		if err := tx.Table("user_cosmetics").
			Where("user_id = ? AND cosmetic_id = ?", id, item.ID).
			Count(&owned).Error; err != nil {
			return fmt.Errorf("failed to check ownership: %w", err)
		}
		if owned > 0 {
			return models.ErrAlreadyOwned
		}

		res := tx.Model(&models.User{}).Where("id = ? AND balance >= ?", id, item.Value).
			UpdateColumn("balance", gorm.Expr("balance - ?", item.Value))
		if res.Error != nil {
			return fmt.Errorf("failed to debit balance: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			if exists, err := r.userExists(tx, id); err != nil {
				return err
			} else if !exists {
				return models.ErrUserNotFound
			}
			return models.ErrInsufficientFunds
		}

		if err := tx.Exec("INSERT INTO user_cosmetics (user_id, cosmetic_id) VALUES (?, ?)", id, item.ID).Error; err != nil {
			return fmt.Errorf("failed to grant cosmetic: %w", err)
		}

		balance, err := r.currentBalance(tx, id)
		if err != nil {
			return err
		}
		newBalance = balance
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

// OwnsCosmetic reports whether the user owns the given cosmetic.
func (r *GORMUserRepository) OwnsCosmetic(id, cosmeticID string) (bool, error) {
	var owned int64
	if err := r.db.Table("user_cosmetics").
		Where("user_id = ? AND cosmetic_id = ?", id, cosmeticID).
		Count(&owned).Error; err != nil {
		return false, fmt.Errorf("failed to check ownership: %w", err)
	}
	return owned > 0, nil
}

// SetBorder sets the user's border slot.
func (r *GORMUserRepository) SetBorder(id, cosmeticID string) error {
	return r.setSlot(id, "border_id", cosmeticID)
}

// SetBanner sets the user's banner slot.
func (r *GORMUserRepository) SetBanner(id, cosmeticID string) error {
	return r.setSlot(id, "banner_id", cosmeticID)
}

func (r *GORMUserRepository) setSlot(id, column, cosmeticID string) error {
	if exists, err := r.userExists(r.db, id); err != nil {
		return err
	} else if !exists {
		return models.ErrUserNotFound
	}
	if err := r.db.Model(&models.User{}).Where("id = ?", id).
		UpdateColumn(column, cosmeticID).Error; err != nil {
		return fmt.Errorf("failed to set %s: %w", column, err)
	}
	return nil
}

// AddFriend inserts the relation if absent. The join table's composite
// primary key makes the insert a no-op on conflict.
func (r *GORMUserRepository) AddFriend(id, friendID string) error {
	err := r.db.Exec(
		"INSERT INTO user_friends (user_id, friend_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		id, friendID,
	).Error
	if err != nil {
		return fmt.Errorf("failed to add friend: %w", err)
	}
	return nil
}

// RemoveFriend deletes the relation; removing a non-member is a no-op.
func (r *GORMUserRepository) RemoveFriend(id, friendID string) error {
	err := r.db.Exec(
		"DELETE FROM user_friends WHERE user_id = ? AND friend_id = ?",
		id, friendID,
	).Error
	if err != nil {
		return fmt.Errorf("failed to remove friend: %w", err)
	}
	return nil
}

// TopByBalance returns the richest users, ties broken by ascending id.
func (r *GORMUserRepository) TopByBalance(count int) ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("balance DESC, id ASC").Limit(count).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get top balances: %w", err)
	}
	return users, nil
}

func (r *GORMUserRepository) userExists(tx *gorm.DB, id string) (bool, error) {
	var count int64
	if err := tx.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to look up user %s: %w", id, err)
	}
	return count > 0, nil
}

func (r *GORMUserRepository) currentBalance(tx *gorm.DB, id string) (float64, error) {
	var user models.User
	if err := tx.Select("balance").First(&user, "id = ?", id).Error; err != nil {
		return 0, fmt.Errorf("failed to read balance for user %s: %w", id, err)
	}
	return user.Balance, nil
}
