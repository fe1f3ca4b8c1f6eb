package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/game"
)

// Event - one user action applied to a game. It reports whether the state changed.
type Event func(g *game.Game) bool

type GamePlayService interface {
	// Apply - loads the game, runs the event and stores the result if anything changed.
	Apply(ctx context.Context, gameID string, event Event) (*game.Game, error)
}

type gamePlayService struct {
	logger *slog.Logger

	gameService GameService
}

func NewGamePlayService(logger *slog.Logger, gameService GameService) GamePlayService {
	return &gamePlayService{
		logger:      logger.With("component", "gameplay"),
		gameService: gameService,
	}
}

func (that *gamePlayService) Apply(ctx context.Context, gameID string, event Event) (*game.Game, error) {
	log := that.logger.With("method", "Apply", "gameID", gameID)

	state, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	current := game.FromState(state)
	if !event(current) {
		log.Debug("event ignored")
		return current, nil
	}

	if err = that.gameService.UpdateGame(ctx, current.State()); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	log.Debug("event applied", "step", state.StepNumber, "history", len(state.History))

	return current, nil
}
