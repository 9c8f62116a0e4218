package service

import (
	"testing"

	"github.com/perfectplay/tictactoe-backend/internal/entity"
	"github.com/perfectplay/tictactoe-backend/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBotGame(botMark tictactoe.Mark) *entity.Game {
	humanMark := tictactoe.PlayerX
	if botMark == tictactoe.PlayerX {
		humanMark = tictactoe.PlayerO
	}

	game := entity.NewGame("123", entity.WithBotType)
	game.Status = entity.StatusOngoing
	game.Players = []*entity.Player{
		{ID: "human", Mark: humanMark, GameID: game.ID},
		{ID: entity.BotIDPrefix + "123", Mark: botMark, GameID: game.ID},
	}

	return game
}

func TestBotService_MakeTurn(t *testing.T) {
	botService := NewBotService()

	t.Run("Bot takes an immediate win", func(t *testing.T) {
		// Given: the bot plays O and can complete the middle row
		game := newBotGame(tictactoe.PlayerO)
		game.Board = tictactoe.Board{
			{tictactoe.PlayerX, tictactoe.PlayerX, tictactoe.Empty},
			{tictactoe.PlayerO, tictactoe.PlayerO, tictactoe.Empty},
			{tictactoe.Empty, tictactoe.Empty, tictactoe.PlayerX},
		}
		game.UpdateGameState()
		require.Equal(t, tictactoe.PlayerO, game.Turn)

		// When: the bot moves
		err := botService.MakeTurn(game)
		require.NoError(t, err)

		// Then: the bot wins on the spot
		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, string(tictactoe.PlayerO), game.Winner)
	})

	t.Run("Bot blocks the opponent's threat", func(t *testing.T) {
		// Given: the bot plays O holding the center, X threatens the top row
		game := newBotGame(tictactoe.PlayerO)
		game.Board = tictactoe.Board{
			{tictactoe.PlayerX, tictactoe.PlayerX, tictactoe.Empty},
			{tictactoe.Empty, tictactoe.PlayerO, tictactoe.Empty},
			{tictactoe.Empty, tictactoe.Empty, tictactoe.Empty},
		}
		game.UpdateGameState()
		require.Equal(t, tictactoe.PlayerO, game.Turn)

		// When: the bot moves
		err := botService.MakeTurn(game)
		require.NoError(t, err)

		// Then: the threatened cell is taken
		assert.Equal(t, tictactoe.PlayerO, game.Board[0][2])
	})

	t.Run("Bot opens when playing X", func(t *testing.T) {
		// Given: a fresh game with the bot on X
		game := newBotGame(tictactoe.PlayerX)

		// When: the bot opens
		err := botService.MakeTurn(game)
		require.NoError(t, err)

		// Then: exactly one X is on the board and O is on turn
		assert.Equal(t, 1, game.MovesPlayed())
		assert.Equal(t, tictactoe.PlayerO, game.Turn)
	})

	t.Run("Bot never loses to itself", func(t *testing.T) {
		// Given: two perfect players sharing one board
		game := newBotGame(tictactoe.PlayerX)

		// When: the bot plays both sides until the game ends
		for !game.IsFinished() {
			// alternate the bot's mark so it moves for whoever is on turn
			game.Players[1].Mark = game.Turn
			err := botService.MakeTurn(game)
			require.NoError(t, err)
		}

		// Then: perfect play against itself is always a tie
		assert.Equal(t, entity.PlayerTie, game.Winner)
	})

	t.Run("Error when the game has no bot player", func(t *testing.T) {
		// Given: an ongoing game between two humans
		game := entity.NewGame("123", entity.PublicType)
		game.Status = entity.StatusOngoing
		game.Players = []*entity.Player{
			{ID: "human1", Mark: tictactoe.PlayerX},
			{ID: "human2", Mark: tictactoe.PlayerO},
		}

		// When: the bot is asked to move
		err := botService.MakeTurn(game)

		// Then: ErrBotNotFound must be returned
		assert.ErrorIs(t, err, ErrBotNotFound)
	})

	t.Run("Error when the board is terminal", func(t *testing.T) {
		// Given: a game X has already won
		game := newBotGame(tictactoe.PlayerO)
		game.Board = tictactoe.Board{
			{tictactoe.PlayerX, tictactoe.PlayerX, tictactoe.PlayerX},
			{tictactoe.PlayerO, tictactoe.PlayerO, tictactoe.Empty},
			{tictactoe.Empty, tictactoe.Empty, tictactoe.Empty},
		}

		// When: the bot is asked to move
		err := botService.MakeTurn(game)

		// Then: ErrNoAvailableMoves must be returned
		assert.ErrorIs(t, err, ErrNoAvailableMoves)
	})
}
