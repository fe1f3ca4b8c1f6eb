package entity

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""

	BoardSize = 9
)

// Cell is one board position. IsWin marks membership in the winning line.
type Cell struct {
	Text  string `json:"text"`
	IsWin bool   `json:"is_win"`
}

// IsEmpty reports whether nobody has played the cell yet.
func (that Cell) IsEmpty() bool {
	return that.Text == EmptyCell
}

// Board is the 3x3 grid in row-major order (index = row*3 + col).
// Being an array, assigning a Board copies every cell.
type Board [BoardSize]Cell

// HistoryEntry is a snapshot of the board after a move. Move is nil for the initial entry.
type HistoryEntry struct {
	Squares Board `json:"squares"`
	Move    *int  `json:"move"`
}

// GameState is everything the game owner keeps between events.
type GameState struct {
	ID            string         `json:"id"`
	History       []HistoryEntry `json:"history"`
	StepNumber    int            `json:"step_number"`
	XIsNext       bool           `json:"x_is_next"`
	ListAscending bool           `json:"list_ascending"`
}

func NewGameState(id string) *GameState {
	return &GameState{
		ID:            id,
		History:       []HistoryEntry{{Squares: Board{}, Move: nil}},
		StepNumber:    0,
		XIsNext:       true,
		ListAscending: true,
	}
}

// CurrentBoard returns a copy of the board at StepNumber.
func (that *GameState) CurrentBoard() Board {
	return that.History[that.StepNumber].Squares
}

// NextMark returns the symbol of the player to move.
func (that *GameState) NextMark() string {
	if that.XIsNext {
		return PlayerX
	}
	return PlayerO
}

// Clone returns a copy that shares no memory with the receiver.
func (that *GameState) Clone() *GameState {
	clone := *that

	clone.History = make([]HistoryEntry, len(that.History))
	for i, entry := range that.History {
		clone.History[i].Squares = entry.Squares
		if entry.Move != nil {
			move := *entry.Move
			clone.History[i].Move = &move
		}
	}

	return &clone
}
