package models

import "errors"

// Business-rule errors shared by the repository and service layers.
// Handlers map these to HTTP statuses with errors.Is.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrCosmeticNotFound  = errors.New("cosmetic not found")
	ErrGameNotFound      = errors.New("game not found")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrNameTaken         = errors.New("cosmetic name already exists")
	ErrInvalidAmount     = errors.New("amount must be a positive number")
	ErrInsufficientFunds = errors.New("not enough balance")
	ErrAlreadyOwned      = errors.New("user already owns this item")
	ErrNotOwned          = errors.New("user does not own this item")
	ErrWrongCategory     = errors.New("item cannot be equipped in this slot")
	ErrSelfFriend        = errors.New("cannot add yourself as a friend")
	ErrMissingTarget     = errors.New("friend id is required")
	ErrWrongCredentials  = errors.New("wrong username or password")
	ErrPasswordMismatch  = errors.New("mismatched passwords")
	ErrMissingToken      = errors.New("missing token")
	ErrTokenRevoked      = errors.New("token has been revoked")
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrInvalidGameType   = errors.New("game type does not exist")
)
