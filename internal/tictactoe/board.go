package tictactoe

import "errors"

// Mark is the value occupying a single cell.
type Mark string

const (
	Empty   Mark = ""
	PlayerX Mark = "X"
	PlayerO Mark = "O"
)

// ErrInvalidMove - returned by Apply when the move targets a cell that is
// occupied or outside the grid.
var ErrInvalidMove = errors.New("invalid move")

// Board is a 3x3 grid of marks. It is a plain value type: making a move
// produces a fresh board and never touches the original, so the search can
// branch from one ancestor without the siblings corrupting each other.
type Board [3][3]Mark

// Move addresses a cell by row and column, both in 0..2.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InitialBoard returns the all-empty starting board.
func InitialBoard() Board {
	return Board{}
}

// Apply returns the board that results from the player whose turn it is
// marking the cell at move. The input board is left unchanged.
func Apply(board Board, move Move) (Board, error) {
	if !inBounds(move) {
		return board, ErrInvalidMove
	}

	if board[move.Row][move.Col] != Empty {
		return board, ErrInvalidMove
	}

	return place(board, move, Turn(board)), nil
}

func inBounds(move Move) bool {
	return move.Row >= 0 && move.Row < gridSize && move.Col >= 0 && move.Col < gridSize
}

// place puts mark on the cell at move. The board parameter is already a
// copy (arrays are passed by value), so the caller's board is untouched.
func place(board Board, move Move, mark Mark) Board {
	board[move.Row][move.Col] = mark
	return board
}
