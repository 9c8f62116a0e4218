package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/perfectplay/tictactoe-backend/internal/apperror"
	"github.com/perfectplay/tictactoe-backend/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	// PlayerTie marks a finished game nobody won.
	PlayerTie = "-"
)

const (
	PublicType  = "public"
	PrivateType = "private"
	WithBotType = "bot"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Game struct {
	ID      string          `json:"id"`
	Board   tictactoe.Board `json:"board"`
	Winner  string          `json:"winner"`
	Status  string          `json:"status"`
	Turn    tictactoe.Mark  `json:"player_turn"`
	Players []*Player       `json:"players,omitempty"`
	Type    string          `json:"type,omitempty"`
}

func NewGame(id, gameType string) *Game {
	return &Game{
		ID:     id,
		Board:  tictactoe.InitialBoard(),
		Turn:   tictactoe.PlayerX,
		Status: StatusWaiting,
		Type:   gameType,
	}
}

// MakeTurn - places playerMark on the cell at move and advances the game
// state. The move must come from the player whose turn it is.
func (that *Game) MakeTurn(playerMark tictactoe.Mark, move tictactoe.Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	next, err := tictactoe.Apply(that.Board, move)
	if errors.Is(err, tictactoe.ErrInvalidMove) {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrCellOccupied, move.Row, move.Col)
	}

	if err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	that.Board = next
	that.UpdateGameState()

	return nil
}

// UpdateGameState - re-derives winner, status and turn from the board.
func (that *Game) UpdateGameState() {
	switch {
	case tictactoe.Winner(that.Board) != tictactoe.Empty:
		that.Winner = string(tictactoe.Winner(that.Board))
		that.Status = StatusFinished
		that.Turn = tictactoe.Empty
	case tictactoe.IsTerminal(that.Board):
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = tictactoe.Empty
	default:
		that.Status = StatusOngoing
		that.Turn = tictactoe.Turn(that.Board)
	}
}

// MovesPlayed - counts the marks already on the board.
func (that *Game) MovesPlayed() int {
	var moves int

	for _, row := range that.Board {
		for _, mark := range row {
			if mark != tictactoe.Empty {
				moves++
			}
		}
	}

	return moves
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsPublic() bool {
	return that.Type == PublicType
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

func (that *Game) GetRandomMarks() (tictactoe.Mark, tictactoe.Mark) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return tictactoe.PlayerX, tictactoe.PlayerO
	}
	return tictactoe.PlayerO, tictactoe.PlayerX
}
