package services

import (
	"time"

	"casino/internal/models"
	"casino/internal/repositories"
)

// GameUpdate is a partial update: only non-nil fields overwrite the stored
// value.
type GameUpdate struct {
	Type         *string    `json:"type"`
	UserID       *string    `json:"user_id"`
	SessionStart *time.Time `json:"session_start"`
	SessionEnd   *time.Time `json:"session_end"`
	TotalBet     *float64   `json:"total_bet"`
	BalanceStart *float64   `json:"balance_start"`
	BalanceEnd   *float64   `json:"balance_end"`
	RoundsPlayed *int       `json:"rounds_played"`
}

// GameService handles CRUD and filtering over game-session records, which
// are produced by the gameplay systems.
type GameService struct {
	repo repositories.GameRepository
}

// NewGameService creates a new GameService.
func NewGameService(repo repositories.GameRepository) *GameService {
	return &GameService{
		repo: repo,
	}
}

// GetAllGames retrieves all game sessions.
func (s *GameService) GetAllGames() ([]models.Game, error) {
	return s.repo.GetAll()
}

// GetGameByID retrieves a single game session.
func (s *GameService) GetGameByID(id string) (*models.Game, error) {
	return s.repo.GetByID(id)
}

// GetGamesByType retrieves sessions of one game kind.
func (s *GameService) GetGamesByType(gameType string) ([]models.Game, error) {
	if !models.ValidGameType(gameType) {
		return nil, models.ErrInvalidGameType
	}
	return s.repo.GetByType(gameType)
}

// GetGamesBySession retrieves sessions whose start falls within the window.
// A start bound without an end bound is capped at now, matching the
// session-filter contract.
func (s *GameService) GetGamesBySession(start, end time.Time) ([]models.Game, error) {
	if !start.IsZero() && end.IsZero() {
		end = time.Now()
	}
	return s.repo.GetBySession(start, end)
}

// GetGamesByDuration retrieves sessions whose duration lies within the given
// bounds; a nil bound is open-ended.
func (s *GameService) GetGamesByDuration(min, max *time.Duration) ([]models.Game, error) {
	games, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Game, 0, len(games))
	for _, game := range games {
		duration := game.SessionEnd.Sub(game.SessionStart)
		if min != nil && duration < *min {
			continue
		}
		if max != nil && duration > *max {
			continue
		}
		filtered = append(filtered, game)
	}
	return filtered, nil
}

// CreateGame records a new game session.
func (s *GameService) CreateGame(game *models.Game) error {
	if !models.ValidGameType(game.Type) {
		return models.ErrInvalidGameType
	}
	return s.repo.Create(game)
}

// UpdateGame applies a partial update to a game session.
func (s *GameService) UpdateGame(id string, update GameUpdate) (*models.Game, error) {
	game, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Type != nil {
		if !models.ValidGameType(*update.Type) {
			return nil, models.ErrInvalidGameType
		}
		game.Type = *update.Type
	}
	if update.UserID != nil {
		game.UserID = *update.UserID
	}
	if update.SessionStart != nil {
		game.SessionStart = *update.SessionStart
	}
	if update.SessionEnd != nil {
		game.SessionEnd = *update.SessionEnd
	}
	if update.TotalBet != nil {
		game.TotalBet = *update.TotalBet
	}
	if update.BalanceStart != nil {
		game.BalanceStart = *update.BalanceStart
	}
	if update.BalanceEnd != nil {
		game.BalanceEnd = *update.BalanceEnd
	}
	if update.RoundsPlayed != nil {
		game.RoundsPlayed = *update.RoundsPlayed
	}

	if err := s.repo.Update(game); err != nil {
		return nil, err
	}
	return game, nil
}

// DeleteGame deletes a game session record.
func (s *GameService) DeleteGame(id string) error {
	return s.repo.Delete(id)
}
