package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"casino/internal/models"
	"casino/internal/repositories"
	"casino/internal/services"
)

func newFriendFixture(t *testing.T) (*services.FriendService, *repositories.MockUserRepository, *models.User, *models.User) {
	t.Helper()

	userRepo := repositories.NewMockUserRepository()
	alice := &models.User{Username: "alice", Mail: "alice@example.com", Password: "hash"}
	bob := &models.User{Username: "bob", Mail: "bob@example.com", Password: "hash"}
	assert.NoError(t, userRepo.Create(alice))
	assert.NoError(t, userRepo.Create(bob))

	return services.NewFriendService(userRepo), userRepo, alice, bob
}

func TestFriendService_AddFriend(t *testing.T) {
	friendService, userRepo, alice, bob := newFriendFixture(t)

	assert.NoError(t, friendService.AddFriend(alice.ID, bob.ID))

	stored, err := userRepo.GetByID(alice.ID)
	assert.NoError(t, err)
	if assert.Len(t, stored.Friends, 1) {
		assert.Equal(t, bob.ID, stored.Friends[0].ID)
	}

	// The relation is one-directional.
	stored, err = userRepo.GetByID(bob.ID)
	assert.NoError(t, err)
	assert.Empty(t, stored.Friends)

	// Adding the same friend again keeps set semantics.
	assert.NoError(t, friendService.AddFriend(alice.ID, bob.ID))
	stored, err = userRepo.GetByID(alice.ID)
	assert.NoError(t, err)
	assert.Len(t, stored.Friends, 1)
}

func TestFriendService_AddFriendRejections(t *testing.T) {
	friendService, _, alice, _ := newFriendFixture(t)

	assert.ErrorIs(t, friendService.AddFriend(alice.ID, alice.ID), models.ErrSelfFriend)
	assert.ErrorIs(t, friendService.AddFriend(alice.ID, ""), models.ErrMissingTarget)
	assert.ErrorIs(t, friendService.AddFriend(alice.ID, "no-such-user"), models.ErrUserNotFound)
}

func TestFriendService_RemoveFriend(t *testing.T) {
	friendService, userRepo, alice, bob := newFriendFixture(t)

	assert.NoError(t, friendService.AddFriend(alice.ID, bob.ID))
	assert.NoError(t, friendService.RemoveFriend(alice.ID, bob.ID))

	stored, err := userRepo.GetByID(alice.ID)
	assert.NoError(t, err)
	assert.Empty(t, stored.Friends)

	// Removing a non-member is a no-op success.
	assert.NoError(t, friendService.RemoveFriend(alice.ID, bob.ID))

	assert.ErrorIs(t, friendService.RemoveFriend(alice.ID, alice.ID), models.ErrSelfFriend)
	assert.ErrorIs(t, friendService.RemoveFriend(alice.ID, ""), models.ErrMissingTarget)
}
