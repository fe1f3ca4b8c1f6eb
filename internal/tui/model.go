package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/game"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/view"
)

const (
	localGameID = "local"
	boardWidth  = 3
)

// Model is the terminal host of a single game
type Model struct {
	game   *game.Game
	styles *Styles
	cursor int
	width  int
	height int
}

// NewModel creates a model with a fresh game and the cursor in the centre
func NewModel() Model {
	return Model{
		game:   game.New(localGameID),
		styles: createStyles(),
		cursor: 4,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses; each one is a single game event
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-boardWidth)
		case "down", "j":
			m.moveCursor(boardWidth)
		case "left", "h":
			if m.cursor%boardWidth > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor%boardWidth < boardWidth-1 {
				m.cursor++
			}
		case "enter", " ":
			m.game.HandleClick(m.cursor)
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			m.cursor = int(key[0] - '1')
			m.game.HandleClick(m.cursor)
		case "[":
			m.game.JumpTo(m.game.State().StepNumber - 1)
		case "]":
			m.game.JumpTo(m.game.State().StepNumber + 1)
		case "g":
			m.game.JumpTo(0)
		case "o":
			m.game.ToggleAscending()
		case "n":
			m.game = game.New(localGameID)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next >= 0 && next < boardWidth*boardWidth {
		m.cursor = next
	}
}

// View renders the board next to the status and the move list
func (m Model) View() string {
	rendered := m.game.Render()

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderBoard(rendered.Board),
		"   ",
		m.renderInfo(rendered),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, "", m.renderHelp()) + "\n"
}

func (m Model) renderSquare(square view.SquareView) string {
	text := square.Text
	if text == "" {
		text = "·"
	}

	style := m.styles.square
	if square.Class == view.SquareWinnerClass {
		style = m.styles.squareWinner
	}

	out := style.Render(text)
	if square.Index == m.cursor {
		out = m.styles.cursor.Render(out)
	}

	return out
}

func (m Model) renderBoard(board view.BoardView) string {
	rows := make([]string, 0, len(board.Rows))
	for _, row := range board.Rows {
		squares := make([]string, 0, len(row))
		for _, square := range row {
			squares = append(squares, m.renderSquare(square))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, squares...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderInfo(rendered view.Game) string {
	lines := []string{
		m.styles.status.Render(rendered.Status),
		m.styles.toggle.Render("o: " + rendered.ToggleLabel),
	}

	for _, move := range rendered.Moves {
		label := fmt.Sprintf("%d. %s", move.Step+1, move.Label)
		if move.Current {
			lines = append(lines, m.styles.moveCurrent.Render(label))
		} else {
			lines = append(lines, m.styles.move.Render(label))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderHelp() string {
	keys := []string{
		"←↑↓→/hjkl move",
		"enter/space play",
		"1-9 play square",
		"[ ] step back/forward",
		"g game start",
		"n new game",
		"q quit",
	}

	return m.styles.help.Render(strings.Join(keys, " • "))
}
