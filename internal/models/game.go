package models

import "time"

// Game kinds recorded by the gameplay systems.
const (
	GamePlinko    = "plinko"
	GameRoulette  = "roulette"
	GameBlackjack = "blackjack"
)

// ValidGameType reports whether t is one of the known game kinds.
func ValidGameType(t string) bool {
	switch t {
	case GamePlinko, GameRoulette, GameBlackjack:
		return true
	}
	return false
}

// Game represents a completed game session. Records are produced by the
// gameplay systems and are append-only as far as statistics are concerned.
type Game struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Type         string    `json:"type" gorm:"type:varchar(20);index" validate:"required,oneof=plinko roulette blackjack"`
	UserID       string    `json:"user_id" gorm:"type:varchar(36);index"`
	SessionStart time.Time `json:"session_start"`
	SessionEnd   time.Time `json:"session_end"`
	TotalBet     float64   `json:"total_bet"`
	BalanceStart float64   `json:"balance_start"`
	BalanceEnd   float64   `json:"balance_end"`
	RoundsPlayed int       `json:"rounds_played"`
}

// Win reports whether the session ended above its starting balance.
func (g *Game) Win() bool {
	return g.BalanceEnd > g.BalanceStart
}

// Profit returns the session's balance delta, negative for a loss.
func (g *Game) Profit() float64 {
	return g.BalanceEnd - g.BalanceStart
}
