package tictactoe

// Minimax walks the full game tree: every legal move is played out to a
// terminal position under optimal replies from both sides. The 3x3 tree is
// bounded by 9! nodes, so there is no pruning, no caching and no depth
// limit; each recursion fills one more cell and bottoms out within 9 levels.

// Scores outside the -1..1 utility range, used to seed the best-so-far
// trackers below.
const (
	belowWorstScore = -2
	aboveBestScore  = 2
)

// BestMove returns the optimal move for the player on turn: the move that
// maximizes X's guaranteed outcome when X moves, or minimizes it when O
// moves. The second return value is false when the board is terminal. When
// several moves are equally good, the first one found is returned.
func BestMove(board Board) (Move, bool) {
	if IsTerminal(board) {
		return Move{}, false
	}

	if Turn(board) == PlayerX {
		_, move := maxValue(board)
		return move, true
	}

	_, move := minValue(board)
	return move, true
}

// maxValue scores the board for X, who takes the highest utility O will
// allow. It returns the score together with the move achieving it; the
// move is meaningless on terminal boards.
func maxValue(board Board) (int, Move) {
	if IsTerminal(board) {
		return Utility(board), Move{}
	}

	bestScore := belowWorstScore
	var bestMove Move

	mover := Turn(board)
	for _, move := range LegalMoves(board) {
		score, _ := minValue(place(board, move, mover))
		if score > bestScore {
			bestScore = score
			bestMove = move
		}
	}

	return bestScore, bestMove
}

// minValue is the adversary half: it scores the board for O, who takes the
// lowest utility X will allow.
func minValue(board Board) (int, Move) {
	if IsTerminal(board) {
		return Utility(board), Move{}
	}

	bestScore := aboveBestScore
	var bestMove Move

	mover := Turn(board)
	for _, move := range LegalMoves(board) {
		score, _ := maxValue(place(board, move, mover))
		if score < bestScore {
			bestScore = score
			bestMove = move
		}
	}

	return bestScore, bestMove
}
