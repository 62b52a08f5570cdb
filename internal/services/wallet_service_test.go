package services_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"casino/internal/models"
	"casino/internal/repositories"
	"casino/internal/services"
)

func newWalletFixture(t *testing.T, balance float64) (*services.WalletService, *repositories.MockUserRepository, *repositories.MockCosmeticRepository, string) {
	t.Helper()

	userRepo := repositories.NewMockUserRepository()
	cosmeticRepo := repositories.NewMockCosmeticRepository()
	user := &models.User{Username: "player1", Mail: "p1@example.com", Password: "hash", Balance: balance}
	assert.NoError(t, userRepo.Create(user))

	return services.NewWalletService(userRepo, cosmeticRepo, nil), userRepo, cosmeticRepo, user.ID
}

func TestWalletService_AddBalance(t *testing.T) {
	walletService, _, _, userID := newWalletFixture(t, 100)

	newBalance, err := walletService.AddBalance(userID, 50)
	assert.NoError(t, err)
	assert.Equal(t, 150.0, newBalance)

	balance, err := walletService.GetBalance(userID)
	assert.NoError(t, err)
	assert.Equal(t, 150.0, balance)

	_, err = walletService.AddBalance("no-such-user", 50)
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestWalletService_RemoveBalance(t *testing.T) {
	walletService, _, _, userID := newWalletFixture(t, 100)

	newBalance, err := walletService.RemoveBalance(userID, 40)
	assert.NoError(t, err)
	assert.Equal(t, 60.0, newBalance)

	// Debiting the exact remaining balance leaves zero.
	newBalance, err = walletService.RemoveBalance(userID, 60)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, newBalance)

	// Anything past zero is rejected and the balance is unchanged.
	_, err = walletService.RemoveBalance(userID, 0.01)
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)

	balance, err := walletService.GetBalance(userID)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, balance)
}

func TestWalletService_InvalidAmounts(t *testing.T) {
	walletService, _, _, userID := newWalletFixture(t, 100)

	for _, amount := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := walletService.AddBalance(userID, amount)
		assert.ErrorIs(t, err, models.ErrInvalidAmount)

		_, err = walletService.RemoveBalance(userID, amount)
		assert.ErrorIs(t, err, models.ErrInvalidAmount)
	}

	balance, err := walletService.GetBalance(userID)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, balance)
}

func TestWalletService_BuyItem(t *testing.T) {
	walletService, userRepo, cosmeticRepo, userID := newWalletFixture(t, 100)

	cheap := &models.Cosmetic{Name: "Gold Frame", Type: models.CosmeticFrame, ResourcePath: "/frames/gold.png", Value: 80}
	pricey := &models.Cosmetic{Name: "Dragon Banner", Type: models.CosmeticBanner, ResourcePath: "/banners/dragon.png", Value: 150}
	assert.NoError(t, cosmeticRepo.Create(cheap))
	assert.NoError(t, cosmeticRepo.Create(pricey))

	// Too expensive: the balance is untouched and nothing is granted.
	_, err := walletService.BuyItem(userID, pricey.ID)
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)

	owns, err := userRepo.OwnsCosmetic(userID, pricey.ID)
	assert.NoError(t, err)
	assert.False(t, owns)

	balance, _ := walletService.GetBalance(userID)
	assert.Equal(t, 100.0, balance)

	// Affordable: charged once, owned afterwards.
	newBalance, err := walletService.BuyItem(userID, cheap.ID)
	assert.NoError(t, err)
	assert.Equal(t, 20.0, newBalance)

	owns, err = userRepo.OwnsCosmetic(userID, cheap.ID)
	assert.NoError(t, err)
	assert.True(t, owns)

	// Buying an item twice is rejected without another charge.
	_, err = walletService.BuyItem(userID, cheap.ID)
	assert.ErrorIs(t, err, models.ErrAlreadyOwned)

	balance, _ = walletService.GetBalance(userID)
	assert.Equal(t, 20.0, balance)

	// Unknown item
	_, err = walletService.BuyItem(userID, "no-such-item")
	assert.ErrorIs(t, err, models.ErrCosmeticNotFound)
}

// Two debits racing for more than the balance combined: exactly one must win.
func TestWalletService_ConcurrentDebit(t *testing.T) {
	walletService, _, _, userID := newWalletFixture(t, 100)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = walletService.RemoveBalance(userID, 60)
		}(i)
	}
	wg.Wait()

	var succeeded, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, models.ErrInsufficientFunds):
			rejected++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)

	balance, err := walletService.GetBalance(userID)
	assert.NoError(t, err)
	assert.Equal(t, 40.0, balance)
}
