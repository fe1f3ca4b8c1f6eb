// Package view holds the stateless renderers of the game: plain data built from a
// board, consumed by the HTML templates and the terminal front-end alike.
package view

import (
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

const (
	SquareClass       = "square"
	SquareWinnerClass = "square square-winner"

	boardRows = 3
	boardCols = 3
)

// SquareView is one rendered cell. Index is what a click on it reports.
type SquareView struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	Class string `json:"class"`
	IsWin bool   `json:"is_win"`
}

// BoardView is the board laid out as 3 rows of 3 squares.
type BoardView struct {
	Rows [boardRows][boardCols]SquareView `json:"rows"`
}

// MoveView is one history list entry; Step is what a click on it jumps to.
type MoveView struct {
	Step    int    `json:"step"`
	Label   string `json:"label"`
	Current bool   `json:"current"`
}

// Game is the whole rendered widget.
type Game struct {
	ID            string     `json:"id"`
	Board         BoardView  `json:"board"`
	Status        string     `json:"status"`
	Winner        string     `json:"winner,omitempty"`
	Draw          bool       `json:"draw"`
	StepNumber    int        `json:"step_number"`
	Moves         []MoveView `json:"moves"`
	ListAscending bool       `json:"list_ascending"`
	ToggleLabel   string     `json:"toggle_label"`
}

// Square renders a single cell.
func Square(cell entity.Cell, index int) SquareView {
	class := SquareClass
	if cell.IsWin {
		class = SquareWinnerClass
	}

	return SquareView{
		Index: index,
		Text:  cell.Text,
		Class: class,
		IsWin: cell.IsWin,
	}
}

// Board renders the 9 squares row by row.
func Board(board entity.Board) BoardView {
	var out BoardView
	for row := 0; row < boardRows; row++ {
		for col := 0; col < boardCols; col++ {
			i := row*boardCols + col
			out.Rows[row][col] = Square(board[i], i)
		}
	}

	return out
}
