package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/perfectplay/tictactoe-backend/internal/entity"
)

type StatsRepository interface {
	Record(ctx context.Context, result *entity.GameResult) error
	CountByWinner(ctx context.Context, winner string) (int, error)
}

type dbStats struct {
	conn *sql.DB
}

func NewStatsRepository(conn *sql.DB) StatsRepository {
	return &dbStats{
		conn: conn,
	}
}

func (that *dbStats) Record(ctx context.Context, result *entity.GameResult) error {
	query := `INSERT INTO game_results (game_id, winner, moves, finished_at) VALUES (?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query, result.GameID, result.Winner, result.Moves, result.FinishedAt)
	if err != nil {
		return fmt.Errorf("can't save game result: %w", err)
	}

	return nil
}

func (that *dbStats) CountByWinner(ctx context.Context, winner string) (int, error) {
	query := `SELECT COUNT(*) FROM game_results WHERE winner = ?`

	var count int
	if err := that.conn.QueryRowContext(ctx, query, winner).Scan(&count); err != nil {
		return 0, fmt.Errorf("can't count game results: %w", err)
	}

	return count, nil
}
