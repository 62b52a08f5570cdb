package services

import (
	"encoding/json"
	"log"
	"math"
	"time"

	"casino/internal/models"
	"casino/internal/repositories"
)

// EventPublisher publishes wallet events to the message broker.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// WalletService handles business logic for balance mutations and purchases.
// Every mutation is all-or-nothing at the repository layer; the service only
// validates input and emits events after the commit.
type WalletService struct {
	userRepo     repositories.UserRepository
	cosmeticRepo repositories.CosmeticRepository
	publisher    EventPublisher
}

// NewWalletService creates a new WalletService.
func NewWalletService(userRepo repositories.UserRepository, cosmeticRepo repositories.CosmeticRepository, publisher EventPublisher) *WalletService {
	return &WalletService{
		userRepo:     userRepo,
		cosmeticRepo: cosmeticRepo,
		publisher:    publisher,
	}
}

// GetBalance returns the user's current balance.
func (s *WalletService) GetBalance(userID string) (float64, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return 0, err
	}
	return user.Balance, nil
}

// AddBalance credits the account and returns the new balance.
func (s *WalletService) AddBalance(userID string, amount float64) (float64, error) {
	if !validAmount(amount) {
		return 0, models.ErrInvalidAmount
	}
	newBalance, err := s.userRepo.AddBalance(userID, amount)
	if err != nil {
		return 0, err
	}
	s.publishEvent("balance.credited", userID, map[string]interface{}{
		"amount":  amount,
		"balance": newBalance,
	})
	return newBalance, nil
}

// RemoveBalance debits the account, failing with ErrInsufficientFunds when
// the debit would push the balance below zero.
func (s *WalletService) RemoveBalance(userID string, amount float64) (float64, error) {
	if !validAmount(amount) {
		return 0, models.ErrInvalidAmount
	}
	newBalance, err := s.userRepo.DeductBalance(userID, amount)
	if err != nil {
		return 0, err
	}
	s.publishEvent("balance.debited", userID, map[string]interface{}{
		"amount":  amount,
		"balance": newBalance,
	})
	return newBalance, nil
}

// BuyItem charges the item's value and grants ownership as one atomic
// operation. The user is never charged without receiving the item, and never
// receives it without being charged.
func (s *WalletService) BuyItem(userID, itemID string) (float64, error) {
	item, err := s.cosmeticRepo.GetByID(itemID)
	if err != nil {
		return 0, err
	}
	newBalance, err := s.userRepo.PurchaseCosmetic(userID, item)
	if err != nil {
		return 0, err
	}
	s.publishEvent("cosmetic.purchased", userID, map[string]interface{}{
		"item_id": item.ID,
		"value":   item.Value,
		"balance": newBalance,
	})
	return newBalance, nil
}

// publishEvent emits a wallet event after a committed mutation. Publishing is
// best-effort: a broker failure is logged and never rolls back the mutation.
func (s *WalletService) publishEvent(routingKey, userID string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	payload["user_id"] = userID
	payload["at"] = time.Now().Format(time.RFC3339)

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal wallet event: %v", err)
		return
	}
	if err := s.publisher.Publish("wallet", routingKey, body); err != nil {
		log.Printf("Warning: Failed to publish %s event for user %s: %v", routingKey, userID, err)
	}
}

// validAmount reports whether amount is a positive finite number.
func validAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 0) && !math.IsNaN(amount)
}
