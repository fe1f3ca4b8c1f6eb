package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/view"
)

type GameHandler interface {
	NewGame(ctx echo.Context) error
	Show(ctx echo.Context) error
	ShowJSON(ctx echo.Context) error
	Abandon(ctx echo.Context) error

	Click(ctx echo.Context) error
	JumpTo(ctx echo.Context) error
	ToggleOrder(ctx echo.Context) error
}

type gameHandler struct {
	logger *slog.Logger

	games usecase.GameUseCase
}

func NewGameHandler(logger *slog.Logger, games usecase.GameUseCase) GameHandler {
	return &gameHandler{
		logger: logger.With("component", "rest"),
		games:  games,
	}
}

func (that *gameHandler) NewGame(ctx echo.Context) error {
	rendered, err := that.games.NewGame(ctx.Request().Context())
	if err != nil {
		return that.fail(ctx, "NewGame", err)
	}

	return ctx.Redirect(http.StatusSeeOther, gamePath(rendered.ID))
}

func (that *gameHandler) Show(ctx echo.Context) error {
	rendered, err := that.games.Show(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.fail(ctx, "Show", err)
	}

	return ctx.Render(http.StatusOK, pageTemplate, rendered)
}

func (that *gameHandler) ShowJSON(ctx echo.Context) error {
	rendered, err := that.games.Show(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.fail(ctx, "ShowJSON", err)
	}

	return ctx.JSON(http.StatusOK, rendered)
}

func (that *gameHandler) Abandon(ctx echo.Context) error {
	if err := that.games.Abandon(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return that.fail(ctx, "Abandon", err)
	}

	if wantsJSON(ctx) {
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.Redirect(http.StatusSeeOther, "/")
}

func (that *gameHandler) Click(ctx echo.Context) error {
	cell, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return that.fail(ctx, "Click", apperror.ErrInvalidCell)
	}

	rendered, err := that.games.Click(ctx.Request().Context(), ctx.Param("id"), cell)
	if err != nil {
		return that.fail(ctx, "Click", err)
	}

	return that.respond(ctx, rendered)
}

func (that *gameHandler) JumpTo(ctx echo.Context) error {
	step, err := strconv.Atoi(ctx.Param("step"))
	if err != nil {
		return that.fail(ctx, "JumpTo", apperror.ErrInvalidStep)
	}

	rendered, err := that.games.JumpTo(ctx.Request().Context(), ctx.Param("id"), step)
	if err != nil {
		return that.fail(ctx, "JumpTo", err)
	}

	return that.respond(ctx, rendered)
}

func (that *gameHandler) ToggleOrder(ctx echo.Context) error {
	rendered, err := that.games.ToggleOrder(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.fail(ctx, "ToggleOrder", err)
	}

	return that.respond(ctx, rendered)
}

// respond - JSON clients get the new view, browsers are sent back to the page (post/redirect/get).
func (that *gameHandler) respond(ctx echo.Context, rendered view.Game) error {
	if wantsJSON(ctx) {
		return ctx.JSON(http.StatusOK, rendered)
	}

	return ctx.Redirect(http.StatusSeeOther, gamePath(rendered.ID))
}

func (that *gameHandler) fail(ctx echo.Context, method string, err error) error {
	log := that.logger.With("method", method)

	var status int
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrInvalidStep),
		errors.Is(err, apperror.ErrInvalidID):
		status = http.StatusBadRequest
	default:
		log.Error("request failed", "error", err)
		return ctx.String(http.StatusInternalServerError, "Internal Server Error")
	}

	log.Debug("request rejected", "status", status, "error", err)

	if wantsJSON(ctx) {
		return ctx.JSON(status, map[string]string{"error": err.Error()})
	}

	return ctx.Render(status, errorTemplate, errorPage{Status: status, Message: http.StatusText(status)})
}

func wantsJSON(ctx echo.Context) bool {
	return strings.HasPrefix(ctx.Path(), "/api/") ||
		strings.Contains(ctx.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

func gamePath(id string) string {
	return "/games/" + id
}
