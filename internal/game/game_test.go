package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/view"
)

func play(t *testing.T, game *Game, cells ...int) {
	t.Helper()

	for _, cell := range cells {
		require.True(t, game.HandleClick(cell), "click on %d", cell)
	}
}

func labels(moves []view.MoveView) []string {
	out := make([]string, 0, len(moves))
	for _, move := range moves {
		out = append(out, move.Label)
	}
	return out
}

func TestNew(t *testing.T) {
	// When: a new game is created
	game := New("123")

	// Then: the state matches a fresh game
	require.Equal(t, entity.NewGameState("123"), game.State())

	// Then: the first render prompts X
	rendered := game.Render()
	assert.Equal(t, "Next player: X", rendered.Status)
	assert.Equal(t, []string{"Go to game start"}, labels(rendered.Moves))
	assert.True(t, rendered.Moves[0].Current)
	assert.Equal(t, "Show history descending", rendered.ToggleLabel)
}

func TestGame_HandleClick(t *testing.T) {
	t.Run("First move in the centre", func(t *testing.T) {
		// Given: an empty board
		game := New("123")

		// When: X clicks cell 4
		changed := game.HandleClick(4)

		// Then: cell 4 is X, O is next and the history grew
		require.True(t, changed)
		state := game.State()
		assert.Equal(t, entity.PlayerX, state.CurrentBoard()[4].Text)
		assert.False(t, state.XIsNext)
		assert.Len(t, state.History, 2)
		assert.Equal(t, 1, state.StepNumber)
		require.NotNil(t, state.History[1].Move)
		assert.Equal(t, 4, *state.History[1].Move)
	})

	t.Run("Previous entries are not modified", func(t *testing.T) {
		game := New("123")
		play(t, game, 0, 1)

		state := game.State()
		assert.Equal(t, entity.Board{}, state.History[0].Squares)
		assert.Equal(t, entity.PlayerX, state.History[1].Squares[0].Text)
		assert.True(t, state.History[1].Squares[1].IsEmpty())
		assert.Equal(t, entity.PlayerO, state.History[2].Squares[1].Text)
	})

	t.Run("Occupied cell is ignored", func(t *testing.T) {
		// Given: a game where X took cell 0
		game := New("123")
		play(t, game, 0)
		before := game.State().Clone()

		// When: O clicks cell 0 again
		changed := game.HandleClick(0)

		// Then: nothing changes
		assert.False(t, changed)
		assert.Equal(t, before, game.State())
	})

	t.Run("Clicks after a win are ignored", func(t *testing.T) {
		// Given: X has won along the left column
		game := New("123")
		play(t, game, 0, 1, 3, 2, 6)
		before := game.State().Clone()

		// When: any empty cell is clicked
		for _, cell := range []int{4, 5, 7, 8} {
			assert.False(t, game.HandleClick(cell))
		}

		// Then: the state is unchanged
		assert.Equal(t, before, game.State())
	})

	t.Run("Out of range cells are ignored", func(t *testing.T) {
		game := New("123")

		assert.False(t, game.HandleClick(-1))
		assert.False(t, game.HandleClick(9))
		assert.Equal(t, entity.NewGameState("123"), game.State())
	})

	t.Run("Stored boards are never marked as winning", func(t *testing.T) {
		game := New("123")
		play(t, game, 0, 1, 3, 2, 6)
		game.Render()
		game.HandleClick(8)

		for _, entry := range game.State().History {
			for _, cell := range entry.Squares {
				assert.False(t, cell.IsWin)
			}
		}
	})
}

func TestGame_Render(t *testing.T) {
	t.Run("Winner", func(t *testing.T) {
		// Given: moves X:0, O:1, X:3, O:2, X:6
		game := New("123")
		play(t, game, 0, 1, 3, 2, 6)

		// When: rendering
		rendered := game.Render()

		// Then: X is announced and the left column is highlighted
		assert.Equal(t, "Winner: X", rendered.Status)
		assert.Equal(t, entity.PlayerX, rendered.Winner)
		assert.False(t, rendered.Draw)

		var winners []int
		for _, row := range rendered.Board.Rows {
			for _, square := range row {
				if square.IsWin {
					winners = append(winners, square.Index)
					assert.Equal(t, view.SquareWinnerClass, square.Class)
				} else {
					assert.Equal(t, view.SquareClass, square.Class)
				}
			}
		}
		assert.Equal(t, []int{0, 3, 6}, winners)
	})

	t.Run("Draw", func(t *testing.T) {
		// Given: a full board with no line
		// X O X
		// X O O
		// O X X
		game := New("123")
		play(t, game, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		// When: rendering
		rendered := game.Render()

		// Then: a draw is announced
		assert.Equal(t, "Game result: Draw", rendered.Status)
		assert.True(t, rendered.Draw)
		assert.Empty(t, rendered.Winner)
	})

	t.Run("Win on the last cell is not a draw", func(t *testing.T) {
		// Given: X completes the main diagonal with the ninth mark
		// X O X
		// O X O
		// O X X
		game := New("123")
		play(t, game, 0, 1, 2, 3, 4, 5, 7, 6, 8)

		// When: rendering
		rendered := game.Render()

		// Then: the win takes priority over the full board
		assert.Equal(t, "Winner: X", rendered.Status)
		assert.False(t, rendered.Draw)
	})

	t.Run("Next player", func(t *testing.T) {
		game := New("123")
		play(t, game, 4)

		assert.Equal(t, "Next player: O", game.Render().Status)
	})

	t.Run("Move labels", func(t *testing.T) {
		// Given: moves in the centre, the top right and the bottom left
		game := New("123")
		play(t, game, 4, 2, 6)

		// When: rendering
		rendered := game.Render()

		// Then: labels carry the step and the (col,row) of each move
		assert.Equal(t, []string{
			"Go to game start",
			"Go to move #1 (2,2)",
			"Go to move #2 (3,1)",
			"Go to move #3 (1,3)",
		}, labels(rendered.Moves))

		// Then: only the last entry is current
		for i, move := range rendered.Moves {
			assert.Equal(t, i, move.Step)
			assert.Equal(t, i == 3, move.Current)
		}
	})

	t.Run("Render does not change state", func(t *testing.T) {
		game := New("123")
		play(t, game, 0, 1, 3, 2, 6)
		before := game.State().Clone()

		game.Render()
		game.Render()

		assert.Equal(t, before, game.State())
	})
}

func TestGame_JumpTo(t *testing.T) {
	t.Run("Jump back and branch", func(t *testing.T) {
		// Given: three moves
		game := New("123")
		play(t, game, 0, 4, 8)

		// When: jumping to step 1
		require.True(t, game.JumpTo(1))

		// Then: the board shows only the first move and O is next
		state := game.State()
		assert.Equal(t, 1, state.StepNumber)
		assert.False(t, state.XIsNext)
		assert.Len(t, state.History, 4)

		rendered := game.Render()
		assert.Equal(t, entity.PlayerX, rendered.Board.Rows[0][0].Text)
		assert.Equal(t, "", rendered.Board.Rows[1][1].Text)
		assert.Equal(t, "", rendered.Board.Rows[2][2].Text)
		assert.True(t, rendered.Moves[1].Current)
		assert.Equal(t, "Next player: O", rendered.Status)

		// When: O plays somewhere else
		require.True(t, game.HandleClick(2))

		// Then: the old second and third moves are gone
		state = game.State()
		require.Len(t, state.History, 3)
		assert.Equal(t, 2, state.StepNumber)
		assert.Equal(t, 2, *state.History[2].Move)
		assert.Equal(t, entity.PlayerO, state.History[2].Squares[2].Text)
		assert.True(t, state.History[2].Squares[4].IsEmpty())
		assert.True(t, state.XIsNext)
	})

	t.Run("Jump to start", func(t *testing.T) {
		game := New("123")
		play(t, game, 0, 4)

		require.True(t, game.JumpTo(0))

		assert.True(t, game.State().XIsNext)
		assert.Equal(t, view.Board(entity.Board{}), game.Render().Board)
	})

	t.Run("Jump forward again", func(t *testing.T) {
		game := New("123")
		play(t, game, 0, 4, 8)
		require.True(t, game.JumpTo(0))

		// When: jumping back to the last step without playing
		require.True(t, game.JumpTo(3))

		// Then: nothing was pruned
		assert.Len(t, game.State().History, 4)
		assert.False(t, game.State().XIsNext)
		assert.Equal(t, entity.PlayerX, game.State().CurrentBoard()[8].Text)
	})

	t.Run("Out of range steps are ignored", func(t *testing.T) {
		game := New("123")
		play(t, game, 0)

		assert.False(t, game.JumpTo(-1))
		assert.False(t, game.JumpTo(2))
		assert.Equal(t, 1, game.State().StepNumber)
	})
}

func TestGame_ToggleAscending(t *testing.T) {
	// Given: a game with two moves
	game := New("123")
	play(t, game, 0, 4)
	ascending := game.Render()
	before := game.State().Clone()

	// When: toggling the list order
	game.ToggleAscending()
	descending := game.Render()

	// Then: only the displayed order is reversed
	assert.Equal(t, []string{"Go to game start", "Go to move #1 (1,1)", "Go to move #2 (2,2)"}, labels(ascending.Moves))
	assert.Equal(t, []string{"Go to move #2 (2,2)", "Go to move #1 (1,1)", "Go to game start"}, labels(descending.Moves))
	assert.True(t, descending.Moves[0].Current)
	assert.Equal(t, "Show history ascending", descending.ToggleLabel)
	assert.False(t, descending.ListAscending)

	assert.Equal(t, before.History, game.State().History)
	assert.Equal(t, before.StepNumber, game.State().StepNumber)
	assert.Equal(t, ascending.Board, descending.Board)
	assert.Equal(t, ascending.Status, descending.Status)

	// When: toggling back
	game.ToggleAscending()

	// Then: the original order is restored
	assert.Equal(t, ascending, game.Render())
}
