package entity

import (
	"strings"

	"github.com/perfectplay/tictactoe-backend/internal/tictactoe"
)

// BotIDPrefix distinguishes bot players from humans in storage.
const BotIDPrefix = "bot:"

type Player struct {
	ID     string         `json:"id"`
	Mark   tictactoe.Mark `json:"mark,omitempty"`
	GameID string         `json:"game_id,omitempty"`
}

func (that *Player) IsBot() bool {
	return strings.HasPrefix(that.ID, BotIDPrefix)
}
