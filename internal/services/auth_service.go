package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"casino/internal/models"
	"casino/internal/repositories"
	"casino/internal/revocation"
)

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo   repositories.UserRepository
	revoked    revocation.Store
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, revoked revocation.Store, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		revoked:    revoked,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: time.Hour, // Token valid for 1 hour
	}
}

// Register registers a new user, hashes their password, populates account
// defaults and issues a JWT token. Username uniqueness is pre-checked by the
// caller pipeline; a late duplicate still surfaces as ErrUsernameTaken from
// the repository.
func (s *AuthService) Register(user *models.User) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)

	// Account defaults; registration input cannot grant itself privileges
	// or funds.
	user.Admin = false
	user.Balance = 0
	user.Joined = time.Now()
	user.BorderID = nil
	user.BannerID = nil
	user.Cosmetics = nil
	user.Friends = nil
	if user.PicturePath == "" {
		user.PicturePath = "default"
	}

	if err := s.userRepo.Create(user); err != nil {
		return "", err
	}

	return s.IssueToken(user.ID)
}

// Login authenticates a user and returns the account plus a JWT token. The
// error is the same for an unknown username and a wrong password so the
// response cannot be used for username enumeration.
func (s *AuthService) Login(username, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, "", models.ErrWrongCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", models.ErrWrongCredentials
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// IssueToken produces a signed token embedding the user id with a 1-hour
// expiry.
func (s *AuthService) IssueToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(s.tokenDurat).Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken checks the revocation set, then parses and validates the
// token, returning the embedded user id.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	if tokenString == "" {
		return "", models.ErrMissingToken
	}

	revoked, err := s.revoked.IsRevoked(ctx, tokenString)
	if err != nil {
		return "", fmt.Errorf("failed to check revocation: %w", err)
	}
	if revoked {
		return "", models.ErrTokenRevoked
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return "", models.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", models.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", models.ErrInvalidToken
	}
	return userID, nil
}

// Logout adds the raw token to the revocation set for the remainder of its
// validity window. Revoking twice is a no-op the second time.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	if tokenString == "" {
		return models.ErrMissingToken
	}
	return s.revoked.Revoke(ctx, tokenString, s.remainingValidity(tokenString))
}

// ChangePassword re-hashes and stores the new password after verifying the
// old one. Tokens issued before the change stay valid; see DESIGN.md.
func (s *AuthService) ChangePassword(userID, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return models.ErrPasswordMismatch
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)
	return s.userRepo.Update(user)
}

// remainingValidity returns how long the token would stay valid if it were
// not revoked. Tokens that cannot be parsed are kept on the revocation set
// for the full validity window.
func (s *AuthService) remainingValidity(tokenString string) time.Duration {
	parser := &jwt.Parser{}
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			return time.Until(time.Unix(int64(exp), 0))
		}
	}
	return s.tokenDurat
}
