package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"casino/internal/models"
	"casino/internal/repositories"
	"casino/internal/services"
)

func TestGameService_CreateGame(t *testing.T) {
	gameService := services.NewGameService(repositories.NewMockGameRepository())

	now := time.Now()
	game := &models.Game{
		Type:         models.GamePlinko,
		UserID:       "user-123",
		SessionStart: now.Add(-time.Hour),
		SessionEnd:   now,
		TotalBet:     200,
		BalanceStart: 100,
		BalanceEnd:   180,
		RoundsPlayed: 12,
	}
	assert.NoError(t, gameService.CreateGame(game))
	assert.NotEmpty(t, game.ID)

	stored, err := gameService.GetGameByID(game.ID)
	assert.NoError(t, err)
	assert.True(t, stored.Win())
	assert.Equal(t, 80.0, stored.Profit())

	// Unknown game kinds are rejected.
	err = gameService.CreateGame(&models.Game{Type: "poker", UserID: "user-123"})
	assert.ErrorIs(t, err, models.ErrInvalidGameType)
}

func TestGameService_GetGamesByType(t *testing.T) {
	gameRepo := repositories.NewMockGameRepository()
	gameService := services.NewGameService(gameRepo)

	now := time.Now()
	assert.NoError(t, gameRepo.Create(&models.Game{Type: models.GamePlinko, UserID: "u1", SessionStart: now}))
	assert.NoError(t, gameRepo.Create(&models.Game{Type: models.GameRoulette, UserID: "u1", SessionStart: now}))
	assert.NoError(t, gameRepo.Create(&models.Game{Type: models.GamePlinko, UserID: "u2", SessionStart: now}))

	games, err := gameService.GetGamesByType(models.GamePlinko)
	assert.NoError(t, err)
	assert.Len(t, games, 2)

	_, err = gameService.GetGamesByType("poker")
	assert.ErrorIs(t, err, models.ErrInvalidGameType)
}

func TestGameService_GetGamesBySession(t *testing.T) {
	gameRepo := repositories.NewMockGameRepository()
	gameService := services.NewGameService(gameRepo)

	now := time.Now()
	old := now.Add(-48 * time.Hour)
	recent := now.Add(-time.Hour)
	assert.NoError(t, gameRepo.Create(&models.Game{Type: models.GamePlinko, UserID: "u1", SessionStart: old, SessionEnd: old.Add(time.Hour)}))
	assert.NoError(t, gameRepo.Create(&models.Game{Type: models.GamePlinko, UserID: "u1", SessionStart: recent, SessionEnd: now}))

	// Start bound only: the window closes at now.
	games, err := gameService.GetGamesBySession(now.Add(-24*time.Hour), time.Time{})
	assert.NoError(t, err)
	assert.Len(t, games, 1)

	// Fully open window returns everything.
	games, err = gameService.GetGamesBySession(time.Time{}, time.Time{})
	assert.NoError(t, err)
	assert.Len(t, games, 2)

	// End bound excludes later sessions.
	games, err = gameService.GetGamesBySession(time.Time{}, now.Add(-24*time.Hour))
	assert.NoError(t, err)
	assert.Len(t, games, 1)
}

func TestGameService_GetGamesByDuration(t *testing.T) {
	gameRepo := repositories.NewMockGameRepository()
	gameService := services.NewGameService(gameRepo)

	now := time.Now()
	short := &models.Game{Type: models.GamePlinko, UserID: "u1", SessionStart: now.Add(-5 * time.Minute), SessionEnd: now}
	long := &models.Game{Type: models.GameBlackjack, UserID: "u1", SessionStart: now.Add(-2 * time.Hour), SessionEnd: now}
	assert.NoError(t, gameRepo.Create(short))
	assert.NoError(t, gameRepo.Create(long))

	min := 30 * time.Minute
	games, err := gameService.GetGamesByDuration(&min, nil)
	assert.NoError(t, err)
	if assert.Len(t, games, 1) {
		assert.Equal(t, long.ID, games[0].ID)
	}

	max := 30 * time.Minute
	games, err = gameService.GetGamesByDuration(nil, &max)
	assert.NoError(t, err)
	if assert.Len(t, games, 1) {
		assert.Equal(t, short.ID, games[0].ID)
	}

	games, err = gameService.GetGamesByDuration(nil, nil)
	assert.NoError(t, err)
	assert.Len(t, games, 2)
}

func TestGameService_UpdateGame(t *testing.T) {
	gameRepo := repositories.NewMockGameRepository()
	gameService := services.NewGameService(gameRepo)

	now := time.Now()
	game := &models.Game{Type: models.GamePlinko, UserID: "u1", SessionStart: now.Add(-time.Hour), SessionEnd: now, BalanceStart: 100, BalanceEnd: 90}
	assert.NoError(t, gameRepo.Create(game))

	newEnd := 120.0
	updated, err := gameService.UpdateGame(game.ID, services.GameUpdate{BalanceEnd: &newEnd})
	assert.NoError(t, err)
	assert.Equal(t, 120.0, updated.BalanceEnd)
	assert.Equal(t, models.GamePlinko, updated.Type)

	badType := "poker"
	_, err = gameService.UpdateGame(game.ID, services.GameUpdate{Type: &badType})
	assert.ErrorIs(t, err, models.ErrInvalidGameType)

	_, err = gameService.UpdateGame("no-such-id", services.GameUpdate{BalanceEnd: &newEnd})
	assert.ErrorIs(t, err, models.ErrGameNotFound)
}

func TestGameService_DeleteGame(t *testing.T) {
	gameRepo := repositories.NewMockGameRepository()
	gameService := services.NewGameService(gameRepo)

	game := &models.Game{Type: models.GamePlinko, UserID: "u1", SessionStart: time.Now()}
	assert.NoError(t, gameRepo.Create(game))

	assert.NoError(t, gameService.DeleteGame(game.ID))
	_, err := gameService.GetGameByID(game.ID)
	assert.ErrorIs(t, err, models.ErrGameNotFound)
}
