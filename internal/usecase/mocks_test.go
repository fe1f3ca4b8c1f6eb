package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/game"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/service"
)

type mockGameService struct {
	mock.Mock
}

func (that *mockGameService) CreateGame(ctx context.Context) (*entity.GameState, error) {
	args := that.Called(ctx)
	state, _ := args.Get(0).(*entity.GameState)
	return state, args.Error(1)
}

func (that *mockGameService) GetGameByID(ctx context.Context, id string) (*entity.GameState, error) {
	args := that.Called(ctx, id)
	state, _ := args.Get(0).(*entity.GameState)
	return state, args.Error(1)
}

func (that *mockGameService) DeleteGame(ctx context.Context, gameID string) error {
	return that.Called(ctx, gameID).Error(0)
}

type mockGamePlayService struct {
	mock.Mock
}

func (that *mockGamePlayService) Apply(ctx context.Context, gameID string, event service.Event) (*game.Game, error) {
	args := that.Called(ctx, gameID, event)
	current, _ := args.Get(0).(*game.Game)
	return current, args.Error(1)
}
