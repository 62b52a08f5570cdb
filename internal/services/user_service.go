package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"casino/internal/models"
	"casino/internal/repositories"
)

// UserUpdate is a partial update: only non-nil fields overwrite the stored
// value.
type UserUpdate struct {
	Username    *string  `json:"username"`
	Password    *string  `json:"password"`
	PicturePath *string  `json:"picture_path"`
	Mail        *string  `json:"mail"`
	Admin       *bool    `json:"admin"`
	Balance     *float64 `json:"balance"`
	BorderID    *string  `json:"border"`
	BannerID    *string  `json:"banner"`
}

// UserService handles profile-level user management.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// GetUserByID retrieves a single user.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// UpdateUser applies a partial update to the user. A password in the update
// is hashed before storage; a balance in the update must not be negative.
func (s *UserService) UpdateUser(id string, update UserUpdate) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
	}
	if update.PicturePath != nil {
		user.PicturePath = *update.PicturePath
	}
	if update.Mail != nil {
		user.Mail = *update.Mail
	}
	if update.Admin != nil {
		user.Admin = *update.Admin
	}
	if update.Balance != nil {
		if *update.Balance < 0 {
			return nil, models.ErrInvalidAmount
		}
		user.Balance = *update.Balance
	}
	if update.BorderID != nil {
		user.BorderID = update.BorderID
	}
	if update.BannerID != nil {
		user.BannerID = update.BannerID
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePicture stores the reference string returned by the upload
// collaborator.
func (s *UserService) UpdatePicture(id, storedPath string) (*models.User, error) {
	return s.UpdateUser(id, UserUpdate{PicturePath: &storedPath})
}

// DeleteUser hard-deletes a user account.
func (s *UserService) DeleteUser(id string) error {
	return s.userRepo.Delete(id)
}
