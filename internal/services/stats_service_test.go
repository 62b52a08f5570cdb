package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"casino/internal/models"
	"casino/internal/repositories"
	"casino/internal/services"
)

// seedGame stores one finished session lasting ten minutes.
func seedGame(t *testing.T, gameRepo *repositories.MockGameRepository, userID, gameType string, start time.Time, balanceStart, balanceEnd float64) {
	t.Helper()
	assert.NoError(t, gameRepo.Create(&models.Game{
		Type:         gameType,
		UserID:       userID,
		SessionStart: start,
		SessionEnd:   start.Add(10 * time.Minute),
		TotalBet:     50,
		BalanceStart: balanceStart,
		BalanceEnd:   balanceEnd,
		RoundsPlayed: 5,
	}))
}

func TestStatsService_UserStats(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	gameRepo := repositories.NewMockGameRepository()
	statsService := services.NewStatsService(userRepo, gameRepo)

	user := &models.User{Username: "player1", Mail: "p1@example.com", Password: "hash"}
	assert.NoError(t, userRepo.Create(user))

	now := time.Now()
	seedGame(t, gameRepo, user.ID, models.GamePlinko, now.Add(-2*time.Hour), 100, 150)
	seedGame(t, gameRepo, user.ID, models.GameRoulette, now.Add(-time.Hour), 150, 140)

	stats, err := statsService.UserStats(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, stats.GamesPlayed)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 40.0, stats.TotalEarnings)
	assert.Equal(t, 0.5, stats.WinRate)

	// A user with no sessions has all-zero stats, not an error.
	other := &models.User{Username: "player2", Mail: "p2@example.com", Password: "hash"}
	assert.NoError(t, userRepo.Create(other))
	stats, err = statsService.UserStats(other.ID)
	assert.NoError(t, err)
	assert.Equal(t, &services.Stats{}, stats)
}

func TestStatsService_RecentGames(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	gameRepo := repositories.NewMockGameRepository()
	statsService := services.NewStatsService(userRepo, gameRepo)

	user := &models.User{Username: "player1", Mail: "p1@example.com", Password: "hash"}
	assert.NoError(t, userRepo.Create(user))

	now := time.Now()
	seedGame(t, gameRepo, user.ID, models.GamePlinko, now.Add(-3*time.Hour), 100, 110)
	seedGame(t, gameRepo, user.ID, models.GameRoulette, now.Add(-2*time.Hour), 110, 90)
	seedGame(t, gameRepo, user.ID, models.GameBlackjack, now.Add(-time.Hour), 90, 200)

	games, err := statsService.RecentGames(user.ID, 2)
	assert.NoError(t, err)
	if assert.Len(t, games, 2) {
		// Newest first.
		assert.Equal(t, models.GameBlackjack, games[0].Type)
		assert.Equal(t, models.GameRoulette, games[1].Type)
	}

	_, err = statsService.RecentGames(user.ID, 0)
	assert.ErrorIs(t, err, models.ErrInvalidParameter)
}

func TestStatsService_Leaderboards(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	gameRepo := repositories.NewMockGameRepository()
	statsService := services.NewStatsService(userRepo, gameRepo)

	alice := &models.User{Username: "alice", Mail: "alice@example.com", Password: "hash", Balance: 300}
	bob := &models.User{Username: "bob", Mail: "bob@example.com", Password: "hash", Balance: 500}
	assert.NoError(t, userRepo.Create(alice))
	assert.NoError(t, userRepo.Create(bob))

	now := time.Now()
	// alice: 3 sessions, 1 win. bob: 2 sessions, 2 wins.
	seedGame(t, gameRepo, alice.ID, models.GamePlinko, now.Add(-5*time.Hour), 100, 150)
	seedGame(t, gameRepo, alice.ID, models.GamePlinko, now.Add(-4*time.Hour), 150, 120)
	seedGame(t, gameRepo, alice.ID, models.GameRoulette, now.Add(-3*time.Hour), 120, 100)
	seedGame(t, gameRepo, bob.ID, models.GameBlackjack, now.Add(-2*time.Hour), 200, 250)
	seedGame(t, gameRepo, bob.ID, models.GameBlackjack, now.Add(-time.Hour), 250, 300)

	top, err := statsService.TopByBalance(10)
	assert.NoError(t, err)
	if assert.Len(t, top, 2) {
		assert.Equal(t, bob.ID, top[0].ID)
		assert.Equal(t, alice.ID, top[1].ID)
	}

	byPlayed, err := statsService.TopByGamesPlayed(10)
	assert.NoError(t, err)
	if assert.Len(t, byPlayed, 2) {
		assert.Equal(t, alice.ID, byPlayed[0].User.ID)
		assert.Equal(t, 3, byPlayed[0].GamesPlayed)
		assert.Equal(t, bob.ID, byPlayed[1].User.ID)
		assert.Equal(t, 2, byPlayed[1].GamesPlayed)
	}

	byWins, err := statsService.TopByWins(10)
	assert.NoError(t, err)
	if assert.Len(t, byWins, 2) {
		assert.Equal(t, bob.ID, byWins[0].User.ID)
		assert.Equal(t, 2, byWins[0].Wins)
		assert.Equal(t, alice.ID, byWins[1].User.ID)
		assert.Equal(t, 1, byWins[1].Wins)
	}

	byRate, err := statsService.TopByWinRate(10, 1)
	assert.NoError(t, err)
	if assert.Len(t, byRate, 2) {
		assert.Equal(t, bob.ID, byRate[0].User.ID)
		assert.Equal(t, 1.0, byRate[0].WinRate)
		assert.Equal(t, alice.ID, byRate[1].User.ID)
		assert.InDelta(t, 1.0/3.0, byRate[1].WinRate, 1e-9)
	}

	// The minimum-games floor filters out small samples.
	byRate, err = statsService.TopByWinRate(10, 3)
	assert.NoError(t, err)
	if assert.Len(t, byRate, 1) {
		assert.Equal(t, alice.ID, byRate[0].User.ID)
	}

	// Sessions referencing a deleted account are skipped.
	assert.NoError(t, userRepo.Delete(bob.ID))
	byWins, err = statsService.TopByWins(10)
	assert.NoError(t, err)
	if assert.Len(t, byWins, 1) {
		assert.Equal(t, alice.ID, byWins[0].User.ID)
	}

	_, err = statsService.TopByBalance(0)
	assert.ErrorIs(t, err, models.ErrInvalidParameter)
	_, err = statsService.TopByGamesPlayed(-1)
	assert.ErrorIs(t, err, models.ErrInvalidParameter)
	_, err = statsService.TopByWinRate(5, 0)
	assert.ErrorIs(t, err, models.ErrInvalidParameter)
}
