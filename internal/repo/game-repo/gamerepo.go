package gamerepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/deadpigeons/server/internal/domain"
	"github.com/deadpigeons/server/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const gameColumns = `id, week_number, winning_numbers, draw_date, is_active, created_at`

func scanGame(row pgx.Row) (*domain.Game, error) {
	var game domain.Game
	err := row.Scan(&game.ID, &game.WeekNumber, &game.WinningNumbers, &game.DrawDate, &game.IsActive, &game.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *Repository) FindActive(ctx context.Context) (*domain.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE is_active`
	game, err := scanGame(r.db.QueryRow(ctx, query))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find active game", zap.Error(err))
		return nil, err
	}
	return game, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE id = $1`
	game, err := scanGame(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find game", zap.Error(err))
		return nil, err
	}
	return game, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get games", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var games []domain.Game
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			zap.L().Error("can't scan game row", zap.Error(err))
			return nil, err
		}
		games = append(games, *game)
	}
	return games, nil
}

func (r *Repository) Create(ctx context.Context, game *domain.Game) (*domain.Game, error) {
	query := `
		INSERT INTO games (id, week_number, winning_numbers, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, game.ID, game.WeekNumber, game.WinningNumbers, game.IsActive).Scan(&game.CreatedAt)
	if err != nil {
		zap.L().Error("can't save game", zap.Error(err))
		return nil, err
	}
	return game, nil
}

func (r *Repository) Deactivate(ctx context.Context, id string) error {
	query := `
		UPDATE games
		SET is_active = FALSE
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't deactivate game", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetWinningNumbers(ctx context.Context, id string, numbers []int32, drawDate time.Time) error {
	query := `
		UPDATE games
		SET winning_numbers = $1, draw_date = $2
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, numbers, drawDate, id)
	if err != nil {
		zap.L().Error("can't set winning numbers", zap.Error(err))
		return err
	}
	return nil
}
