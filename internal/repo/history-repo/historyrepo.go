package historyrepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, log *domain.HistoryLog) (*domain.HistoryLog, error) {
	query := `
		INSERT INTO history_logs (id, content)
		VALUES ($1, $2)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, log.ID, log.Content).Scan(&log.CreatedAt)
	if err != nil {
		zap.L().Error("can't save history log", zap.Error(err))
		return nil, err
	}
	return log, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.HistoryLog, error) {
	query := `
		SELECT id, content, created_at
		FROM history_logs
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get history logs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var logs []domain.HistoryLog
	for rows.Next() {
		var log domain.HistoryLog
		err := rows.Scan(&log.ID, &log.Content, &log.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan history log row", zap.Error(err))
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, nil
}

// Delete removes a single entry; deleting an absent id is a no-op.
func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM history_logs WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete history log", zap.Error(err))
		return err
	}
	return nil
}

// FindBoardHistoryByUserID joins the user's boards with their owning games,
// newest board first.
func (r *Repository) FindBoardHistoryByUserID(ctx context.Context, userID string) ([]domain.BoardHistoryEntry, error) {
	query := `
		SELECT b.id, b.user_id, b.selected_numbers, b.winner,
		       g.week_number, g.winning_numbers, g.draw_date
		FROM boards b
		JOIN games g ON g.id = b.game_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get board history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.BoardHistoryEntry
	for rows.Next() {
		var e domain.BoardHistoryEntry
		err := rows.Scan(&e.BoardID, &e.UserID, &e.SelectedNumbers, &e.Winner,
			&e.WeekNumber, &e.WinningNumbers, &e.DrawDate)
		if err != nil {
			zap.L().Error("can't scan board history row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
