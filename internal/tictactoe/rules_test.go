package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurn(t *testing.T) {
	t.Run("X opens the game", func(t *testing.T) {
		assert.Equal(t, PlayerX, Turn(InitialBoard()))
	})

	t.Run("O moves when X is one mark ahead", func(t *testing.T) {
		board := Board{
			{PlayerX, Empty, Empty},
			{Empty, Empty, Empty},
			{Empty, Empty, Empty},
		}

		assert.Equal(t, PlayerO, Turn(board))
	})

	t.Run("X moves again once counts are level", func(t *testing.T) {
		board := Board{
			{PlayerX, PlayerO, Empty},
			{Empty, Empty, Empty},
			{Empty, Empty, Empty},
		}

		assert.Equal(t, PlayerX, Turn(board))
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("All nine cells are open on the starting board", func(t *testing.T) {
		moves := LegalMoves(InitialBoard())

		assert.Len(t, moves, 9)
	})

	t.Run("Moves plus placed marks always cover the grid", func(t *testing.T) {
		// Given: boards at different stages of a game
		boards := []Board{
			InitialBoard(),
			{
				{PlayerX, Empty, Empty},
				{Empty, PlayerO, Empty},
				{Empty, Empty, Empty},
			},
			{
				{PlayerX, PlayerO, PlayerX},
				{PlayerX, PlayerO, PlayerO},
				{PlayerO, PlayerX, Empty},
			},
		}

		for _, board := range boards {
			// When: counting open cells and placed marks
			var marks int
			for _, row := range board {
				for _, mark := range row {
					if mark != Empty {
						marks++
					}
				}
			}

			// Then: together they account for every cell
			assert.Equal(t, 9, len(LegalMoves(board))+marks)
		}
	})

	t.Run("Only empty cells are returned", func(t *testing.T) {
		board := Board{
			{PlayerX, Empty, Empty},
			{Empty, PlayerO, Empty},
			{Empty, Empty, Empty},
		}

		for _, move := range LegalMoves(board) {
			assert.Equal(t, Empty, board[move.Row][move.Col])
		}
	})
}

func TestWinner(t *testing.T) {
	t.Run("Row win", func(t *testing.T) {
		// Given: X holding the top row
		board := Board{
			{PlayerX, PlayerX, PlayerX},
			{Empty, Empty, Empty},
			{Empty, Empty, Empty},
		}

		// Then: X wins, the board is terminal and scores +1
		require.Equal(t, PlayerX, Winner(board))
		assert.True(t, IsTerminal(board))
		assert.Equal(t, 1, Utility(board))
	})

	t.Run("Column win", func(t *testing.T) {
		board := Board{
			{PlayerO, PlayerX, Empty},
			{PlayerO, PlayerX, Empty},
			{PlayerO, Empty, PlayerX},
		}

		assert.Equal(t, PlayerO, Winner(board))
	})

	t.Run("Main diagonal win", func(t *testing.T) {
		board := Board{
			{PlayerX, PlayerO, Empty},
			{PlayerO, PlayerX, Empty},
			{Empty, Empty, PlayerX},
		}

		assert.Equal(t, PlayerX, Winner(board))
	})

	t.Run("Anti-diagonal win", func(t *testing.T) {
		// Given: X at (0,2), (1,1) and (2,0), rest empty
		board := Board{
			{Empty, Empty, PlayerX},
			{Empty, PlayerX, Empty},
			{PlayerX, Empty, Empty},
		}

		assert.Equal(t, PlayerX, Winner(board))
	})

	t.Run("No winner while the game is open", func(t *testing.T) {
		board := Board{
			{PlayerX, PlayerO, Empty},
			{Empty, PlayerX, Empty},
			{Empty, Empty, Empty},
		}

		assert.Equal(t, Empty, Winner(board))
	})

	t.Run("Corners alone do not win a diagonal", func(t *testing.T) {
		// Given: X in opposite corners but an empty center
		board := Board{
			{PlayerX, Empty, Empty},
			{Empty, Empty, Empty},
			{Empty, Empty, PlayerX},
		}

		assert.Equal(t, Empty, Winner(board))
	})

	t.Run("Repeated calls return the same result", func(t *testing.T) {
		board := Board{
			{PlayerX, PlayerX, PlayerX},
			{PlayerO, PlayerO, Empty},
			{Empty, Empty, Empty},
		}

		assert.Equal(t, Winner(board), Winner(board))
	})
}

func TestIsTerminal(t *testing.T) {
	t.Run("Win ends the game", func(t *testing.T) {
		board := Board{
			{PlayerX, PlayerX, PlayerX},
			{PlayerO, PlayerO, Empty},
			{Empty, Empty, Empty},
		}

		// Then: terminal, and consistently so with the winner check
		require.True(t, IsTerminal(board))
		assert.NotEqual(t, Empty, Winner(board))
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		board := Board{
			{PlayerO, PlayerX, PlayerO},
			{PlayerO, PlayerX, PlayerX},
			{PlayerX, PlayerO, PlayerX},
		}

		require.True(t, IsTerminal(board))
		assert.Equal(t, Empty, Winner(board))
		assert.Equal(t, 0, Utility(board))
	})

	t.Run("Open game is not terminal", func(t *testing.T) {
		board := Board{
			{PlayerX, PlayerO, Empty},
			{Empty, PlayerX, Empty},
			{Empty, Empty, Empty},
		}

		assert.False(t, IsTerminal(board))
	})
}

func TestUtility(t *testing.T) {
	t.Run("O win scores -1", func(t *testing.T) {
		board := Board{
			{PlayerO, PlayerO, PlayerO},
			{PlayerX, PlayerX, Empty},
			{PlayerX, Empty, Empty},
		}

		assert.Equal(t, -1, Utility(board))
	})

	t.Run("Utility stays within the score range on terminal boards", func(t *testing.T) {
		boards := []Board{
			{
				{PlayerX, PlayerX, PlayerX},
				{PlayerO, PlayerO, Empty},
				{Empty, Empty, Empty},
			},
			{
				{PlayerO, PlayerO, PlayerO},
				{PlayerX, PlayerX, Empty},
				{PlayerX, Empty, Empty},
			},
			{
				{PlayerO, PlayerX, PlayerO},
				{PlayerO, PlayerX, PlayerX},
				{PlayerX, PlayerO, PlayerX},
			},
		}

		for _, board := range boards {
			require.True(t, IsTerminal(board))
			assert.Contains(t, []int{-1, 0, 1}, Utility(board))
		}
	})
}
