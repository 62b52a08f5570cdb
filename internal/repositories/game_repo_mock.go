package repositories

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"casino/internal/models"
)

// MockGameRepository is an in-memory implementation of GameRepository.
type MockGameRepository struct {
	games map[string]models.Game
	mu    sync.RWMutex
}

// NewMockGameRepository creates a new instance of MockGameRepository.
func NewMockGameRepository() *MockGameRepository {
	return &MockGameRepository{
		games: make(map[string]models.Game),
	}
}

// GetAll returns all game sessions.
func (r *MockGameRepository) GetAll() ([]models.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(models.Game) bool { return true }), nil
}

// GetByID returns a game session by its ID.
func (r *MockGameRepository) GetByID(id string) (*models.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	game, ok := r.games[id]
	if !ok {
		return nil, models.ErrGameNotFound
	}
	return &game, nil
}

// GetByUser returns all sessions owned by the given user.
func (r *MockGameRepository) GetByUser(userID string) ([]models.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(g models.Game) bool { return g.UserID == userID }), nil
}

// GetRecentByUser returns the user's latest sessions, newest first.
func (r *MockGameRepository) GetRecentByUser(userID string, count int) ([]models.Game, error) {
	games, err := r.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(games, func(i, j int) bool { return games[i].SessionStart.After(games[j].SessionStart) })
	if len(games) > count {
		games = games[:count]
	}
	return games, nil
}

// GetByType returns all sessions of one game kind.
func (r *MockGameRepository) GetByType(gameType string) ([]models.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(g models.Game) bool { return g.Type == gameType }), nil
}

// GetBySession returns sessions whose start falls within the window.
func (r *MockGameRepository) GetBySession(start, end time.Time) ([]models.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(g models.Game) bool {
		if !start.IsZero() && g.SessionStart.Before(start) {
			return false
		}
		if !end.IsZero() && g.SessionStart.After(end) {
			return false
		}
		return true
	}), nil
}

// Create adds a new game session.
func (r *MockGameRepository) Create(game *models.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if game.ID == "" {
		game.ID = uuid.New().String()
	}
	r.games[game.ID] = *game
	return nil
}

// Update modifies an existing game session.
func (r *MockGameRepository) Update(game *models.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.games[game.ID]; !ok {
		return models.ErrGameNotFound
	}
	r.games[game.ID] = *game
	return nil
}

// Delete removes a game session by its ID.
func (r *MockGameRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.games[id]; !ok {
		return models.ErrGameNotFound
	}
	delete(r.games, id)
	return nil
}

// TopByGamesPlayed groups sessions per user and returns the busiest players.
func (r *MockGameRepository) TopByGamesPlayed(count int) ([]PlayerTally, error) {
	return r.tally(count, func(models.Game) bool { return true })
}

// TopByWins counts winning sessions per user.
func (r *MockGameRepository) TopByWins(count int) ([]PlayerTally, error) {
	return r.tally(count, func(g models.Game) bool { return g.Win() })
}

// TopByWinRate computes per-user win rates over users with at least minGames
// sessions.
func (r *MockGameRepository) TopByWinRate(count, minGames int) ([]PlayerRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byUser := make(map[string]*PlayerRecord)
	for _, g := range r.games {
		rec, ok := byUser[g.UserID]
		if !ok {
			rec = &PlayerRecord{UserID: g.UserID}
			byUser[g.UserID] = rec
		}
		rec.GamesPlayed++
		if g.Win() {
			rec.Wins++
		}
	}

	records := make([]PlayerRecord, 0, len(byUser))
	for _, rec := range byUser {
		if rec.GamesPlayed < minGames {
			continue
		}
		rec.WinRate = float64(rec.Wins) / float64(rec.GamesPlayed)
		records = append(records, *rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].WinRate != records[j].WinRate {
			return records[i].WinRate > records[j].WinRate
		}
		return records[i].UserID < records[j].UserID
	})
	if len(records) > count {
		records = records[:count]
	}
	return records, nil
}

func (r *MockGameRepository) tally(count int, include func(models.Game) bool) ([]PlayerTally, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int)
	for _, g := range r.games {
		if include(g) {
			counts[g.UserID]++
		}
	}
	tallies := make([]PlayerTally, 0, len(counts))
	for userID, n := range counts {
		tallies = append(tallies, PlayerTally{UserID: userID, Count: n})
	}
	sort.Slice(tallies, func(i, j int) bool {
		if tallies[i].Count != tallies[j].Count {
			return tallies[i].Count > tallies[j].Count
		}
		return tallies[i].UserID < tallies[j].UserID
	})
	if len(tallies) > count {
		tallies = tallies[:count]
	}
	return tallies, nil
}

// collect returns matching games sorted by id. Callers must hold the lock.
func (r *MockGameRepository) collect(include func(models.Game) bool) []models.Game {
	games := make([]models.Game, 0, len(r.games))
	for _, g := range r.games {
		if include(g) {
			games = append(games, g)
		}
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games
}
