package pkg

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/google/uuid"

	"github.com/perfectplay/tictactoe-backend/internal/entity"
)

// GenerateNewSessionID - generates a new unique session id for a player.
func GenerateNewSessionID() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "error-generating-session-id"
	}

	return base64.RawURLEncoding.EncodeToString(b)
}

// GenerateGameID - generates a unique identifier for a game room.
func GenerateGameID() string {
	return uuid.NewString()
}

// GenerateBotID - generates a player id recognizable as a bot.
func GenerateBotID() string {
	return entity.BotIDPrefix + uuid.NewString()
}
