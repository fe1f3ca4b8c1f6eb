package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/game"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/repository"
)

var errStorageIsFull = errors.New("storage is full")

// countingRepo - counts writes on top of the memory repository.
type countingRepo struct {
	repository.GameRepository
	writes   int
	writeErr error
}

func (that *countingRepo) CreateOrUpdate(ctx context.Context, game *entity.GameState) error {
	that.writes++
	if that.writeErr != nil {
		return that.writeErr
	}
	return that.GameRepository.CreateOrUpdate(ctx, game)
}

func newCountingRepo() *countingRepo {
	return &countingRepo{GameRepository: repository.NewMemoryGameRepository(time.Hour)}
}

func TestGameService_CreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores a fresh game", func(t *testing.T) {
		// Given: an empty repository
		repo := newCountingRepo()
		gameService := NewGameService(repo)

		// When: a game is created
		created, err := gameService.CreateGame(ctx)

		// Then: it has a valid id and is retrievable
		require.NoError(t, err)
		assert.True(t, pkg.IsValidGameID(created.ID))

		stored, err := gameService.GetGameByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, stored)
	})

	t.Run("Storage failure", func(t *testing.T) {
		repo := newCountingRepo()
		repo.writeErr = errStorageIsFull
		gameService := NewGameService(repo)

		created, err := gameService.CreateGame(ctx)

		require.ErrorIs(t, err, errStorageIsFull)
		assert.Nil(t, created)
	})
}

func TestGameService_DeleteGame(t *testing.T) {
	ctx := context.Background()
	gameService := NewGameService(newCountingRepo())

	created, err := gameService.CreateGame(ctx)
	require.NoError(t, err)

	require.NoError(t, gameService.DeleteGame(ctx, created.ID))
	require.ErrorIs(t, gameService.DeleteGame(ctx, created.ID), apperror.ErrGameNotFound)

	_, err = gameService.GetGameByID(ctx, created.ID)
	require.ErrorIs(t, err, apperror.ErrGameNotFound)
}

func TestGamePlayService_Apply(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	t.Run("Changed game is stored", func(t *testing.T) {
		// Given: a stored game
		repo := newCountingRepo()
		gameService := NewGameService(repo)
		gamePlayService := NewGamePlayService(logger, gameService)
		created, err := gameService.CreateGame(ctx)
		require.NoError(t, err)

		// When: a click is applied
		current, err := gamePlayService.Apply(ctx, created.ID, func(g *game.Game) bool {
			return g.HandleClick(4)
		})

		// Then: the move is written back
		require.NoError(t, err)
		assert.Equal(t, 2, repo.writes)
		assert.Equal(t, entity.PlayerX, current.State().CurrentBoard()[4].Text)

		stored, err := gameService.GetGameByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, current.State(), stored)
	})

	t.Run("Ignored event is not stored", func(t *testing.T) {
		repo := newCountingRepo()
		gameService := NewGameService(repo)
		gamePlayService := NewGamePlayService(logger, gameService)
		created, err := gameService.CreateGame(ctx)
		require.NoError(t, err)

		_, err = gamePlayService.Apply(ctx, created.ID, func(g *game.Game) bool {
			return g.JumpTo(7)
		})

		require.NoError(t, err)
		assert.Equal(t, 1, repo.writes)
	})

	t.Run("Unknown game", func(t *testing.T) {
		gamePlayService := NewGamePlayService(logger, NewGameService(newCountingRepo()))

		current, err := gamePlayService.Apply(ctx, "missing", func(*game.Game) bool { return true })

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, current)
	})

	t.Run("Write failure", func(t *testing.T) {
		repo := newCountingRepo()
		gameService := NewGameService(repo)
		created, err := gameService.CreateGame(ctx)
		require.NoError(t, err)

		repo.writeErr = errStorageIsFull
		gamePlayService := NewGamePlayService(logger, gameService)

		_, err = gamePlayService.Apply(ctx, created.ID, func(g *game.Game) bool {
			return g.HandleClick(0)
		})

		require.ErrorIs(t, err, errStorageIsFull)
	})
}
