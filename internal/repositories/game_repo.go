package repositories

import (
	"time"

	"casino/internal/models"
)

// PlayerTally pairs a user id with an aggregate count, as produced by the
// leaderboard aggregations.
type PlayerTally struct {
	UserID string `json:"user_id"`
	Count  int    `json:"count"`
}

// PlayerRecord carries a user's per-session win aggregation.
type PlayerRecord struct {
	UserID      string  `json:"user_id"`
	GamesPlayed int     `json:"games_played"`
	Wins        int     `json:"wins"`
	WinRate     float64 `json:"win_rate"`
}

// GameRepository defines the interface for game-session data access.
type GameRepository interface {
	GetAll() ([]models.Game, error)
	GetByID(id string) (*models.Game, error)
	GetByUser(userID string) ([]models.Game, error)
	// GetRecentByUser returns up to count sessions ordered by session start,
	// newest first.
	GetRecentByUser(userID string, count int) ([]models.Game, error)
	GetByType(gameType string) ([]models.Game, error)
	// GetBySession returns sessions whose start falls within the given
	// window; a zero bound is open-ended.
	GetBySession(start, end time.Time) ([]models.Game, error)
	Create(game *models.Game) error
	Update(game *models.Game) error
	Delete(id string) error

	// Leaderboard aggregations, ordered by their metric descending with
	// ties broken by ascending user id.
	TopByGamesPlayed(count int) ([]PlayerTally, error)
	TopByWins(count int) ([]PlayerTally, error)
	TopByWinRate(count, minGames int) ([]PlayerRecord, error)
}
