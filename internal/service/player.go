package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/perfectplay/tictactoe-backend/internal/entity"
	"github.com/perfectplay/tictactoe-backend/internal/pkg"
	"github.com/perfectplay/tictactoe-backend/internal/repository"
)

type PlayerService interface {
	GetOrCreate(ctx context.Context, id string) (*entity.Player, error)
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	UpdatePlayer(ctx context.Context, player *entity.Player) error
}

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type playerService struct {
	playerRepo playerRepo
}

func NewPlayerService(playerRepo playerRepo) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
	}
}

// GetOrCreate - returns the stored player, registering a new one when the
// id is empty or unknown.
func (that *playerService) GetOrCreate(ctx context.Context, id string) (*entity.Player, error) {
	if id == "" {
		id = pkg.GenerateNewSessionID()
	}

	existingPlayer, err := that.playerRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrPlayerNotFound) {
		newPlayer := &entity.Player{ID: id}
		if err = that.playerRepo.CreateOrUpdate(ctx, newPlayer); err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}

		return newPlayer, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return existingPlayer, nil
}

func (that *playerService) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	existingPlayer, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return existingPlayer, nil
}

func (that *playerService) UpdatePlayer(ctx context.Context, player *entity.Player) error {
	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	return nil
}
