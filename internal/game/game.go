package game

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/view"
)

const (
	labelGameStart = "Go to game start"

	toggleDescending = "Show history descending"
	toggleAscending  = "Show history ascending"
)

// Game owns the mutable state of one match and applies user events to it.
type Game struct {
	state *entity.GameState
}

func New(id string) *Game {
	return &Game{state: entity.NewGameState(id)}
}

// FromState - wraps a state loaded from storage. The game mutates it in place.
func FromState(state *entity.GameState) *Game {
	return &Game{state: state}
}

func (that *Game) State() *entity.GameState {
	return that.state
}

// HandleClick - plays the next mark into cell i. Clicks on an occupied cell, outside the
// board or after the game is won are ignored; the return value reports whether anything changed.
func (that *Game) HandleClick(i int) bool {
	if !tictactoe.IsValidCell(i) {
		return false
	}

	history := that.state.History[:that.state.StepNumber+1]
	squares := history[len(history)-1].Squares

	// the winner check runs on a scratch copy so stored boards are never marked
	scratch := squares
	if tictactoe.CalculateWinner(&scratch) != "" || !squares[i].IsEmpty() {
		return false
	}

	squares[i] = entity.Cell{Text: that.state.NextMark()}

	move := i
	next := make([]entity.HistoryEntry, len(history), len(history)+1)
	copy(next, history)

	that.state.History = append(next, entity.HistoryEntry{Squares: squares, Move: &move})
	that.state.StepNumber = len(history)
	that.state.XIsNext = !that.state.XIsNext

	return true
}

// JumpTo - moves the view to an earlier (or later) step. Future entries are kept until the next move.
func (that *Game) JumpTo(step int) bool {
	if step < 0 || step >= len(that.state.History) {
		return false
	}

	that.state.StepNumber = step
	that.state.XIsNext = step%2 == 0

	return true
}

// ToggleAscending - flips the display order of the move list.
func (that *Game) ToggleAscending() {
	that.state.ListAscending = !that.state.ListAscending
}

// Render - builds the view of the current step. Winner and draw are derived on every call.
func (that *Game) Render() view.Game {
	current := that.state.CurrentBoard()
	winner := tictactoe.CalculateWinner(&current)
	full := tictactoe.IsFull(current)

	var status string
	switch {
	case winner != "":
		status = "Winner: " + winner
	case full:
		status = "Game result: Draw"
	default:
		status = "Next player: " + that.state.NextMark()
	}

	moves := make([]view.MoveView, 0, len(that.state.History))
	for step, entry := range that.state.History {
		moves = append(moves, view.MoveView{
			Step:    step,
			Label:   moveLabel(step, entry),
			Current: step == that.state.StepNumber,
		})
	}

	toggle := toggleDescending
	if !that.state.ListAscending {
		toggle = toggleAscending
		for l, r := 0, len(moves)-1; l < r; l, r = l+1, r-1 {
			moves[l], moves[r] = moves[r], moves[l]
		}
	}

	return view.Game{
		ID:            that.state.ID,
		Board:         view.Board(current),
		Status:        status,
		Winner:        winner,
		Draw:          winner == "" && full,
		StepNumber:    that.state.StepNumber,
		Moves:         moves,
		ListAscending: that.state.ListAscending,
		ToggleLabel:   toggle,
	}
}

func moveLabel(step int, entry entity.HistoryEntry) string {
	if step == 0 || entry.Move == nil {
		return labelGameStart
	}

	i := *entry.Move
	return fmt.Sprintf("Go to move #%d (%d,%d)", step, tictactoe.ColNum(i), tictactoe.RowNum(i))
}
