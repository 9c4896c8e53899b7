package boardrepo

import (
	"context"
	"errors"

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

const boardColumns = `id, user_id, game_id, selected_numbers, winner, repeat, created_at`

func scanBoard(row pgx.Row) (*domain.Board, error) {
	var board domain.Board
	err := row.Scan(&board.ID, &board.UserID, &board.GameID, &board.SelectedNumbers,
		&board.Winner, &board.Repeat, &board.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *Repository) Create(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	query := `
		INSERT INTO boards (id, user_id, game_id, selected_numbers, winner, repeat)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, board.ID, board.UserID, board.GameID,
		board.SelectedNumbers, board.Winner, board.Repeat).Scan(&board.CreatedAt)
	if err != nil {
		zap.L().Error("can't save board", zap.Error(err))
		return nil, err
	}
	return board, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Board, error) {
	query := `SELECT ` + boardColumns + ` FROM boards WHERE id = $1`
	board, err := scanBoard(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find board", zap.Error(err))
		return nil, err
	}
	return board, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID string) ([]domain.Board, error) {
	query := `SELECT ` + boardColumns + ` FROM boards WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryBoards(ctx, query, userID)
}

// FindActiveByUserID returns the user's boards on the currently active game.
func (r *Repository) FindActiveByUserID(ctx context.Context, userID string) ([]domain.Board, error) {
	query := `
		SELECT b.id, b.user_id, b.game_id, b.selected_numbers, b.winner, b.repeat, b.created_at
		FROM boards b
		JOIN games g ON g.id = b.game_id
		WHERE b.user_id = $1 AND g.is_active
		ORDER BY b.created_at DESC
	`
	return r.queryBoards(ctx, query, userID)
}

func (r *Repository) FindByGameID(ctx context.Context, gameID string) ([]domain.Board, error) {
	query := `SELECT ` + boardColumns + ` FROM boards WHERE game_id = $1 ORDER BY created_at`
	return r.queryBoards(ctx, query, gameID)
}

func (r *Repository) FindRepeatsByGameID(ctx context.Context, gameID string) ([]domain.Board, error) {
	query := `SELECT ` + boardColumns + ` FROM boards WHERE game_id = $1 AND repeat ORDER BY created_at`
	return r.queryBoards(ctx, query, gameID)
}

func (r *Repository) queryBoards(ctx context.Context, query string, args ...any) ([]domain.Board, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get boards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var boards []domain.Board
	for rows.Next() {
		board, err := scanBoard(rows)
		if err != nil {
			zap.L().Error("can't scan board row", zap.Error(err))
			return nil, err
		}
		boards = append(boards, *board)
	}
	return boards, nil
}

func (r *Repository) FindAllWithOwner(ctx context.Context) ([]domain.BoardWithOwner, error) {
	query := `
		SELECT b.id, b.user_id, b.game_id, b.selected_numbers, b.winner, b.repeat, b.created_at,
		       u.first_name || ' ' || u.last_name AS owner_name, u.phone AS owner_phone
		FROM boards b
		JOIN users u ON u.id = b.user_id
		ORDER BY b.created_at DESC
	`
	return r.queryBoardsWithOwner(ctx, query)
}

// FindByGameIDWithOwner returns the game's boards, winners first.
func (r *Repository) FindByGameIDWithOwner(ctx context.Context, gameID string) ([]domain.BoardWithOwner, error) {
	query := `
		SELECT b.id, b.user_id, b.game_id, b.selected_numbers, b.winner, b.repeat, b.created_at,
		       u.first_name || ' ' || u.last_name AS owner_name, u.phone AS owner_phone
		FROM boards b
		JOIN users u ON u.id = b.user_id
		WHERE b.game_id = $1
		ORDER BY b.winner DESC, b.created_at DESC
	`
	return r.queryBoardsWithOwner(ctx, query, gameID)
}

func (r *Repository) queryBoardsWithOwner(ctx context.Context, query string, args ...any) ([]domain.BoardWithOwner, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get boards with owners", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var boards []domain.BoardWithOwner
	for rows.Next() {
		var b domain.BoardWithOwner
		err := rows.Scan(&b.ID, &b.UserID, &b.GameID, &b.SelectedNumbers, &b.Winner,
			&b.Repeat, &b.CreatedAt, &b.OwnerName, &b.OwnerPhone)
		if err != nil {
			zap.L().Error("can't scan board row", zap.Error(err))
			return nil, err
		}
		boards = append(boards, b)
	}
	return boards, nil
}

func (r *Repository) UpdateWinner(ctx context.Context, id string, winner bool) error {
	query := `
		UPDATE boards
		SET winner = $1
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, winner, id)
	if err != nil {
		zap.L().Error("can't update board winner flag", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateRepeat(ctx context.Context, id string, repeat bool) (*domain.Board, error) {
	query := `
		UPDATE boards
		SET repeat = $1
		WHERE id = $2
		RETURNING ` + boardColumns
	board, err := scanBoard(r.db.QueryRow(ctx, query, repeat, id))
	if err != nil {
		zap.L().Error("can't update board repeat flag", zap.Error(err))
		return nil, err
	}
	return board, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM boards WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete board", zap.Error(err))
		return err
	}
	return nil
}

// CountByUserID returns the user's total board count and win count.
func (r *Repository) CountByUserID(ctx context.Context, userID string) (int, int, error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE winner)
		FROM boards
		WHERE user_id = $1
	`
	var total, wins int
	err := r.db.QueryRow(ctx, query, userID).Scan(&total, &wins)
	if err != nil {
		zap.L().Error("can't count boards", zap.Error(err))
		return 0, 0, err
	}
	return total, wins, nil
}
