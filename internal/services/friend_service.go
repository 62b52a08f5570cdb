package services

import (
	"casino/internal/models"
	"casino/internal/repositories"
)

// FriendService maintains the friend relation. The relation is
// one-directional: adding A's friend B does not add B's friend A.
type FriendService struct {
	userRepo repositories.UserRepository
}

// NewFriendService creates a new FriendService.
func NewFriendService(userRepo repositories.UserRepository) *FriendService {
	return &FriendService{
		userRepo: userRepo,
	}
}

// AddFriend adds friendID to userID's friend set. Adding an existing member
// is a no-op success.
func (s *FriendService) AddFriend(userID, friendID string) error {
	if err := s.validate(userID, friendID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(friendID); err != nil {
		return err
	}
	return s.userRepo.AddFriend(userID, friendID)
}

// RemoveFriend removes friendID from userID's friend set. Removing a
// non-member is a no-op success.
func (s *FriendService) RemoveFriend(userID, friendID string) error {
	if err := s.validate(userID, friendID); err != nil {
		return err
	}
	return s.userRepo.RemoveFriend(userID, friendID)
}

func (s *FriendService) validate(userID, friendID string) error {
	if friendID == "" {
		return models.ErrMissingTarget
	}
	if userID == friendID {
		return models.ErrSelfFriend
	}
	return nil
}
