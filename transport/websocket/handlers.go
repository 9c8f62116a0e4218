package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/perfectplay/tictactoe-backend/internal/entity"
)

const (
	actionConnect  = "connect"
	actionNewGame  = "game:new"
	actionJoinGame = "game:join"
	actionTurn     = "game:turn"
)

var ErrMoveRequired = errors.New("move is required")

func (that *Server) handleConnect(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	var playerID string
	if payload.Player != nil {
		playerID = payload.Player.ID
	}

	player, err := that.gameplay.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to get or create player: %w", err)
	}

	if player.ID == playerID {
		that.logger.Info("Player connected", "playerID", player.ID)
	} else {
		that.logger.Info("Registered new player", "playerID", player.ID)
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Player: player})
}

func (that *Server) handleNewGame(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if payload.Player == nil {
		return errors.New("player is required")
	}

	gameType := payload.Type
	if gameType == "" {
		gameType = entity.PublicType
	}

	game, err := that.gameplay.GetOrCreateGame(ctx, payload.Player.ID, gameType)
	if err != nil {
		return fmt.Errorf("failed to get or create game: %w", err)
	}

	that.logger.Info("Game ready", "gameID", game.ID, "type", game.Type, "status", game.Status)

	return that.sendMessage(conn, msg.Action, ResponsePayload{Game: game})
}

// handleJoinGame - joins a specific game when a game id is supplied,
// otherwise looks for any public game waiting for an opponent.
func (that *Server) handleJoinGame(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if payload.Player == nil {
		return errors.New("player is required")
	}

	var game *entity.Game
	if payload.GameID != "" {
		game, err = that.gameplay.JoinGameByID(ctx, payload.GameID, payload.Player.ID)
	} else {
		game, err = that.gameplay.JoinWaitingPublicGame(ctx, payload.Player.ID)
	}

	if err != nil {
		return fmt.Errorf("failed to join game: %w", err)
	}

	that.logger.Info("Player joined game", "gameID", game.ID, "playerID", payload.Player.ID)

	return that.sendMessage(conn, msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handleTurn(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if payload.Player == nil {
		return errors.New("player is required")
	}

	if payload.Move == nil {
		return ErrMoveRequired
	}

	game, err := that.gameplay.MakeTurn(ctx, payload.Player.ID, *payload.Move)
	if err != nil {
		// invalid turns are part of the protocol: report them on the game
		// payload so the client can retry
		if game != nil {
			return that.sendMessage(conn, msg.Action, ResponsePayload{Game: game, Error: err.Error()})
		}

		return fmt.Errorf("failed to make turn: %w", err)
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Game: game})
}

func decodePayload(msg *Message) (*RequestPayload, error) {
	var payload RequestPayload

	if len(msg.Payload) == 0 {
		return &payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return &payload, nil
}
