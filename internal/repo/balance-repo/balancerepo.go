package balancerepo

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

const logColumns = `id, user_id, amount, transaction_number, approved, created_at`

func scanLog(row pgx.Row) (*domain.BalanceLog, error) {
	var log domain.BalanceLog
	err := row.Scan(&log.ID, &log.UserID, &log.Amount, &log.TransactionNumber, &log.Approved, &log.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *Repository) Create(ctx context.Context, log *domain.BalanceLog) (*domain.BalanceLog, error) {
	query := `
		INSERT INTO balance_logs (user_id, amount, transaction_number, approved)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, log.UserID, log.Amount, log.TransactionNumber, log.Approved).
		Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		zap.L().Error("can't save balance log", zap.Error(err))
		return nil, err
	}
	return log, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.BalanceLog, error) {
	query := `SELECT ` + logColumns + ` FROM balance_logs WHERE id = $1`
	log, err := scanLog(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find balance log", zap.Error(err))
		return nil, err
	}
	return log, nil
}

func (r *Repository) Approve(ctx context.Context, id int) (*domain.BalanceLog, error) {
	query := `
		UPDATE balance_logs
		SET approved = TRUE
		WHERE id = $1
		RETURNING ` + logColumns
	log, err := scanLog(r.db.QueryRow(ctx, query, id))
	if err != nil {
		zap.L().Error("can't approve balance log", zap.Error(err))
		return nil, err
	}
	return log, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID string) ([]domain.BalanceLog, error) {
	query := `SELECT ` + logColumns + ` FROM balance_logs WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get balance logs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var logs []domain.BalanceLog
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			zap.L().Error("can't scan balance log row", zap.Error(err))
			return nil, err
		}
		logs = append(logs, *log)
	}
	return logs, nil
}

// RecentByUserID returns the user's latest transactions, newest first.
func (r *Repository) RecentByUserID(ctx context.Context, userID string, limit int) ([]domain.BalanceLog, error) {
	query := `SELECT ` + logColumns + ` FROM balance_logs WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("can't get recent balance logs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var logs []domain.BalanceLog
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			zap.L().Error("can't scan balance log row", zap.Error(err))
			return nil, err
		}
		logs = append(logs, *log)
	}
	return logs, nil
}

func (r *Repository) FindAllWithOwner(ctx context.Context) ([]domain.BalanceLogWithOwner, error) {
	query := `
		SELECT bl.id, bl.user_id, bl.amount, bl.transaction_number, bl.approved, bl.created_at,
		       u.first_name || ' ' || u.last_name AS owner_name
		FROM balance_logs bl
		JOIN users u ON u.id = bl.user_id
		ORDER BY bl.created_at DESC
	`
	return r.queryLogsWithOwner(ctx, query)
}

func (r *Repository) FindByApprovedWithOwner(ctx context.Context, approved bool) ([]domain.BalanceLogWithOwner, error) {
	query := `
		SELECT bl.id, bl.user_id, bl.amount, bl.transaction_number, bl.approved, bl.created_at,
		       u.first_name || ' ' || u.last_name AS owner_name
		FROM balance_logs bl
		JOIN users u ON u.id = bl.user_id
		WHERE bl.approved = $1
		ORDER BY bl.created_at DESC
	`
	return r.queryLogsWithOwner(ctx, query, approved)
}

func (r *Repository) queryLogsWithOwner(ctx context.Context, query string, args ...any) ([]domain.BalanceLogWithOwner, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get balance logs with owners", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var logs []domain.BalanceLogWithOwner
	for rows.Next() {
		var log domain.BalanceLogWithOwner
		err := rows.Scan(&log.ID, &log.UserID, &log.Amount, &log.TransactionNumber,
			&log.Approved, &log.CreatedAt, &log.OwnerName)
		if err != nil {
			zap.L().Error("can't scan balance log row", zap.Error(err))
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, nil
}

// Summary aggregates a user's transactions by approval status.
type Summary struct {
	ApprovedSum   float64
	PendingSum    float64
	ApprovedCount int
	PendingCount  int
}

func (r *Repository) SummaryByUserID(ctx context.Context, userID string) (*Summary, error) {
	query := `
		SELECT COALESCE(SUM(amount) FILTER (WHERE approved), 0),
		       COALESCE(SUM(amount) FILTER (WHERE NOT approved), 0),
		       COUNT(*) FILTER (WHERE approved),
		       COUNT(*) FILTER (WHERE NOT approved)
		FROM balance_logs
		WHERE user_id = $1
	`
	var s Summary
	err := r.db.QueryRow(ctx, query, userID).Scan(&s.ApprovedSum, &s.PendingSum, &s.ApprovedCount, &s.PendingCount)
	if err != nil {
		zap.L().Error("can't get balance summary", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) CountByUserID(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM balance_logs WHERE user_id = $1`
	var count int
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count balance logs", zap.Error(err))
		return 0, err
	}
	return count, nil
}
