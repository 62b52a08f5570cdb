package services

import (
	"casino/internal/models"
	"casino/internal/repositories"
)

// Stats summarizes a user's game history.
type Stats struct {
	GamesPlayed   int     `json:"gamesPlayed"`
	Wins          int     `json:"wins"`
	TotalEarnings float64 `json:"totalEarnings"`
	WinRate       float64 `json:"winRate"`
}

// LeaderboardEntry pairs a user with the metric values that ranked them.
type LeaderboardEntry struct {
	User        models.User `json:"user"`
	GamesPlayed int         `json:"gamesPlayed,omitempty"`
	Wins        int         `json:"wins,omitempty"`
	WinRate     float64     `json:"winRate,omitempty"`
}

// StatsService derives win/loss/earnings metrics from stored game sessions.
type StatsService struct {
	userRepo repositories.UserRepository
	gameRepo repositories.GameRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(userRepo repositories.UserRepository, gameRepo repositories.GameRepository) *StatsService {
	return &StatsService{
		userRepo: userRepo,
		gameRepo: gameRepo,
	}
}

// UserStats scans all of the user's sessions. A session counts as a win when
// it ended above its starting balance; earnings sum the per-session profit
// and can be negative.
func (s *StatsService) UserStats(userID string) (*Stats, error) {
	games, err := s.gameRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	stats := &Stats{GamesPlayed: len(games)}
	for _, game := range games {
		stats.TotalEarnings += game.Profit()
		if game.Win() {
			stats.Wins++
		}
	}
	if stats.GamesPlayed > 0 {
		stats.WinRate = float64(stats.Wins) / float64(stats.GamesPlayed)
	}
	return stats, nil
}

// RecentGames returns the user's latest sessions, newest first.
func (s *StatsService) RecentGames(userID string, count int) ([]models.Game, error) {
	if count <= 0 {
		return nil, models.ErrInvalidParameter
	}
	return s.gameRepo.GetRecentByUser(userID, count)
}

// TopByBalance ranks users by balance.
func (s *StatsService) TopByBalance(count int) ([]models.User, error) {
	if count <= 0 {
		return nil, models.ErrInvalidParameter
	}
	return s.userRepo.TopByBalance(count)
}

// TopByGamesPlayed ranks users by total sessions played.
func (s *StatsService) TopByGamesPlayed(count int) ([]LeaderboardEntry, error) {
	if count <= 0 {
		return nil, models.ErrInvalidParameter
	}
	tallies, err := s.gameRepo.TopByGamesPlayed(count)
	if err != nil {
		return nil, err
	}
	entries := make([]LeaderboardEntry, 0, len(tallies))
	for _, tally := range tallies {
		user, err := s.userRepo.GetByID(tally.UserID)
		if err != nil {
			// Sessions can reference deleted accounts; skip them.
			continue
		}
		entries = append(entries, LeaderboardEntry{User: *user, GamesPlayed: tally.Count})
	}
	return entries, nil
}

// TopByWins ranks users by winning sessions.
func (s *StatsService) TopByWins(count int) ([]LeaderboardEntry, error) {
	if count <= 0 {
		return nil, models.ErrInvalidParameter
	}
	tallies, err := s.gameRepo.TopByWins(count)
	if err != nil {
		return nil, err
	}
	entries := make([]LeaderboardEntry, 0, len(tallies))
	for _, tally := range tallies {
		user, err := s.userRepo.GetByID(tally.UserID)
		if err != nil {
			continue
		}
		entries = append(entries, LeaderboardEntry{User: *user, Wins: tally.Count})
	}
	return entries, nil
}

// TopByWinRate ranks users by win rate over at least minGames sessions.
func (s *StatsService) TopByWinRate(count, minGames int) ([]LeaderboardEntry, error) {
	if count <= 0 || minGames <= 0 {
		return nil, models.ErrInvalidParameter
	}
	records, err := s.gameRepo.TopByWinRate(count, minGames)
	if err != nil {
		return nil, err
	}
	entries := make([]LeaderboardEntry, 0, len(records))
	for _, record := range records {
		user, err := s.userRepo.GetByID(record.UserID)
		if err != nil {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			User:        *user,
			GamesPlayed: record.GamesPlayed,
			Wins:        record.Wins,
			WinRate:     record.WinRate,
		})
	}
	return entries, nil
}
