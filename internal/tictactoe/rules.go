package tictactoe

const gridSize = 3

// Turn returns the mark that moves next. X opens the game, so X is on turn
// whenever both players hold the same number of cells. The result carries
// no meaning on a terminal board.
func Turn(board Board) Mark {
	var xCount, oCount int

	for _, row := range board {
		for _, mark := range row {
			switch mark {
			case PlayerX:
				xCount++
			case PlayerO:
				oCount++
			}
		}
	}

	if xCount == oCount {
		return PlayerX
	}

	return PlayerO
}

// LegalMoves returns every empty cell on the board. The order of the result
// is not part of the contract.
func LegalMoves(board Board) []Move {
	moves := make([]Move, 0, gridSize*gridSize)

	for row := range board {
		for col := range board[row] {
			if board[row][col] == Empty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// Winner returns the mark holding a complete row, column or diagonal, or
// Empty when no line is complete. A valid board has at most one winner;
// rows are checked first, then columns, then the diagonals.
func Winner(board Board) Mark {
	if mark := rowWinner(board); mark != Empty {
		return mark
	}

	if mark := columnWinner(board); mark != Empty {
		return mark
	}

	return diagonalWinner(board)
}

func rowWinner(board Board) Mark {
	for row := range board {
		candidate := board[row][0]
		if candidate != Empty && candidate == board[row][1] && candidate == board[row][2] {
			return candidate
		}
	}

	return Empty
}

func columnWinner(board Board) Mark {
	for col := range board[0] {
		candidate := board[0][col]
		if candidate != Empty && candidate == board[1][col] && candidate == board[2][col] {
			return candidate
		}
	}

	return Empty
}

// diagonalWinner tests both diagonals through the center cell: the center
// against the two main-diagonal corners, or against the two anti-diagonal
// corners. Either pair alone is sufficient.
func diagonalWinner(board Board) Mark {
	center := board[1][1]
	if center == Empty {
		return Empty
	}

	if (center == board[0][0] && center == board[2][2]) ||
		(center == board[0][2] && center == board[2][0]) {
		return center
	}

	return Empty
}

// IsTerminal reports whether the game is over: a player has completed a
// line, or no empty cell remains.
func IsTerminal(board Board) bool {
	if Winner(board) != Empty {
		return true
	}

	return isFull(board)
}

func isFull(board Board) bool {
	for _, row := range board {
		for _, mark := range row {
			if mark == Empty {
				return false
			}
		}
	}

	return true
}

// Utility scores a terminal board from X's point of view: +1 when X has
// won, -1 when O has won, 0 on a draw. Callers must only invoke it on
// terminal boards; the value is unspecified otherwise.
func Utility(board Board) int {
	switch Winner(board) {
	case PlayerX:
		return 1
	case PlayerO:
		return -1
	default:
		return 0
	}
}
