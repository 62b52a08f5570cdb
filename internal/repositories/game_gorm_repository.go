package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"casino/internal/models"
)

// GORMGameRepository is a GORM implementation of GameRepository.
type GORMGameRepository struct {
	db *gorm.DB
}

// NewGORMGameRepository creates a new instance of GORMGameRepository.
func NewGORMGameRepository(db *gorm.DB) *GORMGameRepository {
	return &GORMGameRepository{
		db: db,
	}
}

// GetAll retrieves all game sessions.
func (r *GORMGameRepository) GetAll() ([]models.Game, error) {
	var games []models.Game
	if err := r.db.Find(&games).Error; err != nil {
		return nil, fmt.Errorf("failed to get all games: %w", err)
	}
	return games, nil
}

// GetByID retrieves a single game session by its ID.
func (r *GORMGameRepository) GetByID(id string) (*models.Game, error) {
	var game models.Game
	if err := r.db.First(&game, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game by ID %s: %w", id, err)
	}
	return &game, nil
}

// GetByUser retrieves all sessions owned by the given user.
func (r *GORMGameRepository) GetByUser(userID string) ([]models.Game, error) {
	var games []models.Game
	if err := r.db.Find(&games, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get games for user %s: %w", userID, err)
	}
	return games, nil
}

// GetRecentByUser retrieves the user's latest sessions, newest first.
func (r *GORMGameRepository) GetRecentByUser(userID string, count int) ([]models.Game, error) {
	var games []models.Game
	if err := r.db.Where("user_id = ?", userID).
		Order("session_start DESC").Limit(count).Find(&games).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent games for user %s: %w", userID, err)
	}
	return games, nil
}

// GetByType retrieves all sessions of one game kind.
func (r *GORMGameRepository) GetByType(gameType string) ([]models.Game, error) {
	var games []models.Game
	if err := r.db.Find(&games, "type = ?", gameType).Error; err != nil {
		return nil, fmt.Errorf("failed to get games by type %s: %w", gameType, err)
	}
	return games, nil
}

// GetBySession retrieves sessions whose start falls within the window.
func (r *GORMGameRepository) GetBySession(start, end time.Time) ([]models.Game, error) {
	query := r.db
	if !start.IsZero() {
		query = query.Where("session_start >= ?", start)
	}
	if !end.IsZero() {
		query = query.Where("session_start <= ?", end)
	}
	var games []models.Game
	if err := query.Find(&games).Error; err != nil {
		return nil, fmt.Errorf("failed to get games by session window: %w", err)
	}
	return games, nil
}

// Create creates a new game session record.
func (r *GORMGameRepository) Create(game *models.Game) error {
	if game.ID == "" {
		game.ID = uuid.New().String()
	}
	if err := r.db.Create(game).Error; err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

// Update updates an existing game session record.
func (r *GORMGameRepository) Update(game *models.Game) error {
	res := r.db.Save(game)
	if res.Error != nil {
		return fmt.Errorf("failed to update game: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrGameNotFound
	}
	return nil
}

// Delete deletes a game session record by its ID.
func (r *GORMGameRepository) Delete(id string) error {
	res := r.db.Delete(&models.Game{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete game: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrGameNotFound
	}
	return nil
}

// TopByGamesPlayed groups sessions per user and returns the busiest players.
func (r *GORMGameRepository) TopByGamesPlayed(count int) ([]PlayerTally, error) {
	var tallies []PlayerTally
	err := r.db.Model(&models.Game{}).
		Select("user_id, COUNT(*) AS count").
		Group("user_id").
		Order("count DESC, user_id ASC").
		Limit(count).
		Scan(&tallies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate games played: %w", err)
	}
	return tallies, nil
}

// TopByWins counts winning sessions per user.
func (r *GORMGameRepository) TopByWins(count int) ([]PlayerTally, error) {
	var tallies []PlayerTally
	err := r.db.Model(&models.Game{}).
		Select("user_id, COUNT(*) AS count").
		Where("balance_end > balance_start").
		Group("user_id").
		Order("count DESC, user_id ASC").
		Limit(count).
		Scan(&tallies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate wins: %w", err)
	}
	return tallies, nil
}

// TopByWinRate computes per-user win rates over users with at least minGames
// sessions.
func (r *GORMGameRepository) TopByWinRate(count, minGames int) ([]PlayerRecord, error) {
	var records []PlayerRecord
	err := r.db.Model(&models.Game{}).
		Select("user_id, COUNT(*) AS games_played, " +
			"SUM(CASE WHEN balance_end > balance_start THEN 1 ELSE 0 END) AS wins, " +
			"CAST(SUM(CASE WHEN balance_end > balance_start THEN 1 ELSE 0 END) AS FLOAT) / COUNT(*) AS win_rate").
		Group("user_id").
		Having("COUNT(*) >= ?", minGames).
		Order("win_rate DESC, user_id ASC").
		Limit(count).
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate win rates: %w", err)
	}
	return records, nil
}
