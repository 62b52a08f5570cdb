package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"casino/internal/models"
	"casino/internal/repositories"
	"casino/internal/services"
)

func TestUserService_UpdateUser(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	userService := services.NewUserService(userRepo)

	user := &models.User{Username: "player1", Mail: "p1@example.com", Password: "hash", PicturePath: "default", Balance: 100}
	assert.NoError(t, userRepo.Create(user))

	// Only the fields present in the update change.
	newMail := "new@example.com"
	updated, err := userService.UpdateUser(user.ID, services.UserUpdate{Mail: &newMail})
	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Mail)
	assert.Equal(t, "player1", updated.Username)
	assert.Equal(t, "default", updated.PicturePath)
	assert.Equal(t, 100.0, updated.Balance)

	// A password in the update is hashed before storage.
	newPassword := "freshpass1"
	updated, err = userService.UpdateUser(user.ID, services.UserUpdate{Password: &newPassword})
	assert.NoError(t, err)
	assert.NotEqual(t, "freshpass1", updated.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("freshpass1")))

	// Negative balances never enter the store.
	negative := -10.0
	_, err = userService.UpdateUser(user.ID, services.UserUpdate{Balance: &negative})
	assert.ErrorIs(t, err, models.ErrInvalidAmount)

	stored, err := userService.GetUserByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, stored.Balance)

	_, err = userService.UpdateUser("no-such-user", services.UserUpdate{Mail: &newMail})
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestUserService_UpdatePicture(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	userService := services.NewUserService(userRepo)

	user := &models.User{Username: "player1", Mail: "p1@example.com", Password: "hash", PicturePath: "default"}
	assert.NoError(t, userRepo.Create(user))

	updated, err := userService.UpdatePicture(user.ID, "uploads/abc123.png")
	assert.NoError(t, err)
	assert.Equal(t, "uploads/abc123.png", updated.PicturePath)
}

func TestUserService_DeleteUser(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	userService := services.NewUserService(userRepo)

	user := &models.User{Username: "player1", Mail: "p1@example.com", Password: "hash"}
	assert.NoError(t, userRepo.Create(user))

	assert.NoError(t, userService.DeleteUser(user.ID))
	_, err := userService.GetUserByID(user.ID)
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	assert.ErrorIs(t, userService.DeleteUser(user.ID), models.ErrUserNotFound)
}
