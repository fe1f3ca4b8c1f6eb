package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

const boardWidth = 3

// WinCombos - rows, then columns, then diagonals. The order decides which line wins
// when a board holds more than one.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// CalculateWinner - returns the mark owning the first complete line, or "" if there is none.
// The three cells of that line get IsWin set on the passed board.
func CalculateWinner(board *entity.Board) string {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]].Text, board[combo[1]].Text, board[combo[2]].Text
		if a != entity.EmptyCell && a == b && b == c {
			for _, i := range combo {
				board[i].IsWin = true
			}
			return a
		}
	}

	return ""
}

// IsFull - true when no cell is empty.
func IsFull(board entity.Board) bool {
	for _, cell := range board {
		if cell.IsEmpty() {
			return false
		}
	}

	return true
}

// ColNum - 1-based column of a flat index.
func ColNum(i int) int {
	return i%boardWidth + 1
}

// RowNum - 1-based row of a flat index.
func RowNum(i int) int {
	return i/boardWidth + 1
}

// IsValidCell - reports whether i addresses a board cell.
func IsValidCell(i int) bool {
	return i >= 0 && i < entity.BoardSize
}
