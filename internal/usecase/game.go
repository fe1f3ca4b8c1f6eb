package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/game"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/service"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/view"
)

type GameUseCase interface {
	NewGame(ctx context.Context) (view.Game, error)
	Show(ctx context.Context, gameID string) (view.Game, error)
	Abandon(ctx context.Context, gameID string) error

	Click(ctx context.Context, gameID string, cell int) (view.Game, error)
	JumpTo(ctx context.Context, gameID string, step int) (view.Game, error)
	ToggleOrder(ctx context.Context, gameID string) (view.Game, error)
}

type gameService interface {
	CreateGame(ctx context.Context) (*entity.GameState, error)
	GetGameByID(ctx context.Context, id string) (*entity.GameState, error)
	DeleteGame(ctx context.Context, gameID string) error
}

type gamePlayService interface {
	Apply(ctx context.Context, gameID string, event service.Event) (*game.Game, error)
}

// gameUseCase - events are handled one at a time, the same way a UI event loop would.
type gameUseCase struct {
	logger *slog.Logger
	mu     sync.Mutex

	gameService     gameService
	gamePlayService gamePlayService
}

func NewGameUseCase(logger *slog.Logger, gameService gameService, gamePlayService gamePlayService) GameUseCase {
	return &gameUseCase{
		logger:          logger.With("component", "usecase"),
		gameService:     gameService,
		gamePlayService: gamePlayService,
	}
}

func (that *gameUseCase) NewGame(ctx context.Context) (view.Game, error) {
	state, err := that.gameService.CreateGame(ctx)
	if err != nil {
		return view.Game{}, fmt.Errorf("could not create game: %w", err)
	}

	that.logger.Info("game created", "gameID", state.ID)

	return game.FromState(state).Render(), nil
}

func (that *gameUseCase) Show(ctx context.Context, gameID string) (view.Game, error) {
	if !pkg.IsValidGameID(gameID) {
		return view.Game{}, apperror.ErrInvalidID
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	state, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return view.Game{}, fmt.Errorf("failed to get game: %w", err)
	}

	return game.FromState(state).Render(), nil
}

func (that *gameUseCase) Abandon(ctx context.Context, gameID string) error {
	if !pkg.IsValidGameID(gameID) {
		return apperror.ErrInvalidID
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.gameService.DeleteGame(ctx, gameID); err != nil {
		return fmt.Errorf("failed to abandon game: %w", err)
	}

	that.logger.Info("game abandoned", "gameID", gameID)

	return nil
}

func (that *gameUseCase) Click(ctx context.Context, gameID string, cell int) (view.Game, error) {
	if !tictactoe.IsValidCell(cell) {
		return view.Game{}, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	return that.apply(ctx, gameID, func(g *game.Game) bool {
		return g.HandleClick(cell)
	})
}

func (that *gameUseCase) JumpTo(ctx context.Context, gameID string, step int) (view.Game, error) {
	if step < 0 {
		return view.Game{}, fmt.Errorf("%w: step %d", apperror.ErrInvalidStep, step)
	}

	var outOfRange bool
	rendered, err := that.apply(ctx, gameID, func(g *game.Game) bool {
		if step >= len(g.State().History) {
			outOfRange = true
			return false
		}
		return g.JumpTo(step)
	})
	if err != nil {
		return view.Game{}, err
	}

	if outOfRange {
		return view.Game{}, fmt.Errorf("%w: step %d", apperror.ErrInvalidStep, step)
	}

	return rendered, nil
}

func (that *gameUseCase) ToggleOrder(ctx context.Context, gameID string) (view.Game, error) {
	return that.apply(ctx, gameID, func(g *game.Game) bool {
		g.ToggleAscending()
		return true
	})
}

func (that *gameUseCase) apply(ctx context.Context, gameID string, event service.Event) (view.Game, error) {
	if !pkg.IsValidGameID(gameID) {
		return view.Game{}, apperror.ErrInvalidID
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	current, err := that.gamePlayService.Apply(ctx, gameID, event)
	if err != nil {
		return view.Game{}, fmt.Errorf("failed to apply event: %w", err)
	}

	return current.Render(), nil
}
