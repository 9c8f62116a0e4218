package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/perfectplay/tictactoe-backend/internal/apperror"
	"github.com/perfectplay/tictactoe-backend/internal/entity"
	"github.com/perfectplay/tictactoe-backend/internal/pkg"
	"github.com/perfectplay/tictactoe-backend/internal/tictactoe"
)

type GamePlayService interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)
	GetOrCreateGame(ctx context.Context, playerID, gameType string) (*entity.Game, error)

	JoinGameByID(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	JoinWaitingPublicGame(ctx context.Context, playerID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, playerID string, move tictactoe.Move) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game)
}

type statsRepo interface {
	Record(ctx context.Context, result *entity.GameResult) error
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   GameService
	botService    BotService
	statsRepo     statsRepo
}

func NewGamePlayService(
	logger *slog.Logger,
	playerService PlayerService,
	gameService GameService,
	botService BotService,
	statsRepo statsRepo,
) GamePlayService {
	return &gamePlayService{
		logger:        logger,
		playerService: playerService,
		gameService:   gameService,
		botService:    botService,
		statsRepo:     statsRepo,
	}
}

func (that *gamePlayService) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	player, err := that.playerService.GetOrCreate(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create player: %w", err)
	}

	return player, nil
}

func (that *gamePlayService) GetOrCreateGame(ctx context.Context, playerID, gameType string) (*entity.Game, error) {
	player, err := that.playerService.GetOrCreate(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create player: %w", err)
	}

	if player.GameID != "" {
		game, err := that.gameService.GetGameByID(ctx, player.GameID)
		if err != nil {
			return nil, fmt.Errorf("failed to get game by id: %w", err)
		}

		return game, nil
	}

	game, err := that.gameService.CreateGame(ctx, player, gameType)
	if err != nil {
		return nil, fmt.Errorf("failed to create new game: %w", err)
	}

	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if game.IsWithBot() {
		if err = that.seatBot(ctx, game, player); err != nil {
			return nil, fmt.Errorf("failed to seat bot: %w", err)
		}
	}

	return game, nil
}

// seatBot - adds a bot opponent to a fresh game and starts it. Marks are
// dealt at random; when the bot draws X it makes the opening move.
func (that *gamePlayService) seatBot(ctx context.Context, game *entity.Game, player *entity.Player) error {
	playerMark, botMark := game.GetRandomMarks()

	player.Mark = playerMark
	if err := that.playerService.UpdatePlayer(ctx, player); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	botPlayer := &entity.Player{
		ID:     pkg.GenerateBotID(),
		Mark:   botMark,
		GameID: game.ID,
	}

	game.Players = append(game.Players, botPlayer)
	game.Status = entity.StatusOngoing

	if botMark == tictactoe.PlayerX {
		if err := that.botService.MakeTurn(game); err != nil {
			return fmt.Errorf("bot failed to open the game: %w", err)
		}
	}

	if err := that.gameService.UpdateGame(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *gamePlayService) JoinGameByID(ctx context.Context, gameID, playerID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return that.joinAsOpponent(ctx, game, playerID)
}

func (that *gamePlayService) JoinWaitingPublicGame(ctx context.Context, playerID string) (*entity.Game, error) {
	game, err := that.gameService.GetWaitingPublicGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get waiting public game: %w", err)
	}

	return that.joinAsOpponent(ctx, game, playerID)
}

func (that *gamePlayService) joinAsOpponent(ctx context.Context, game *entity.Game, playerID string) (*entity.Game, error) {
	player, err := that.playerService.GetOrCreate(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create player: %w", err)
	}

	if player.GameID == game.ID {
		return game, nil
	}

	if len(game.Players) >= 2 {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrGameAlreadyExists, game.ID)
	}

	player.GameID = game.ID
	player.Mark = tictactoe.PlayerO
	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	game.Status = entity.StatusOngoing
	game.Players = append(game.Players, player)
	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) MakeTurn(ctx context.Context, playerID string, move tictactoe.Move) (*entity.Game, error) {
	player, err := that.playerService.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return game, err
	}

	if err = game.MakeTurn(player.Mark, move); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if !game.IsFinished() && game.IsWithBot() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		that.recordResult(ctx, game)
		that.CleanupGame(ctx, game)
	}

	return game, nil
}

// CleanupGame - removes a finished game and releases its players.
func (that *gamePlayService) CleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "CleanupGame")

	if err := that.gameService.DeleteGame(ctx, game.ID); err != nil {
		log.Error("could not delete game", "gameID", game.ID, "error", err)
	}

	for _, player := range game.Players {
		player.GameID = ""
		player.Mark = tictactoe.Empty

		if err := that.playerService.UpdatePlayer(ctx, player); err != nil {
			log.Error("could not release player", "playerID", player.ID, "error", err)
		}
	}
}

// recordResult - archives the outcome of a finished game. Archiving is a
// side effect of play, so failures are logged rather than returned.
func (that *gamePlayService) recordResult(ctx context.Context, game *entity.Game) {
	result := &entity.GameResult{
		GameID:     game.ID,
		Winner:     game.Winner,
		Moves:      game.MovesPlayed(),
		FinishedAt: time.Now(),
	}

	if err := that.statsRepo.Record(ctx, result); err != nil {
		that.logger.Error("could not record game result", "gameID", game.ID, "error", err)
	}
}
