package service

import (
	"errors"
	"fmt"

	"github.com/perfectplay/tictactoe-backend/internal/entity"
	"github.com/perfectplay/tictactoe-backend/internal/tictactoe"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// MakeTurn - plays the strongest reply for the game's bot player. The move
// comes from an exhaustive minimax search of the remaining game tree, so
// the bot never loses a game it could have drawn and never draws a game it
// could have won.
func (that *botService) MakeTurn(game *entity.Game) error {
	move, ok := tictactoe.BestMove(game.Board)
	if !ok {
		return ErrNoAvailableMoves
	}

	var botPlayer *entity.Player
	for _, player := range game.Players {
		if player.IsBot() {
			botPlayer = player
			break
		}
	}

	if botPlayer == nil {
		return ErrBotNotFound
	}

	if err := game.MakeTurn(botPlayer.Mark, move); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
