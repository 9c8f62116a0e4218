package entity

import "time"

// GameResult is the archived outcome of a finished game.
type GameResult struct {
	GameID     string    `json:"game_id"`
	Winner     string    `json:"winner"`
	Moves      int       `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}
