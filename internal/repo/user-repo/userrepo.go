package userrepo

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

const userColumns = `id, first_name, last_name, email, phone, password_hash, balance, is_active, is_admin, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Phone,
		&user.PasswordHash, &user.Balance, &user.IsActive, &user.IsAdmin, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY last_name, first_name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

func (r *Repository) SearchByPhone(ctx context.Context, phone string) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE phone LIKE '%' || $1 || '%' ORDER BY last_name, first_name`
	rows, err := r.db.Query(ctx, query, phone)
	if err != nil {
		zap.L().Error("can't search users by phone", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, first_name, last_name, email, phone, password_hash, balance, is_active, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, user.ID, user.FirstName, user.LastName, user.Email,
		user.Phone, user.PasswordHash, user.Balance, user.IsActive, user.IsAdmin).Scan(&user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, email = $3, phone = $4, password_hash = $5
		WHERE id = $6
	`
	_, err := r.db.Exec(ctx, query, user.FirstName, user.LastName, user.Email, user.Phone, user.PasswordHash, user.ID)
	if err != nil {
		zap.L().Error("can't update user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM users WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete user", zap.Error(err))
		return err
	}
	return nil
}

// AdjustBalance applies a signed delta and returns the new balance.
func (r *Repository) AdjustBalance(ctx context.Context, userID string, delta float64) (float64, error) {
	query := `
		UPDATE users
		SET balance = balance + $1
		WHERE id = $2
		RETURNING balance
	`
	var balance float64
	err := r.db.QueryRow(ctx, query, delta, userID).Scan(&balance)
	if err != nil {
		zap.L().Error("can't adjust user balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (r *Repository) SetActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	query := `
		UPDATE users
		SET is_active = $1
		WHERE id = $2
		RETURNING ` + userColumns
	user, err := scanUser(r.db.QueryRow(ctx, query, active, id))
	if err != nil {
		zap.L().Error("can't set user active status", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) SetAdmin(ctx context.Context, id string, admin bool) (*domain.User, error) {
	query := `
		UPDATE users
		SET is_admin = $1
		WHERE id = $2
		RETURNING ` + userColumns
	user, err := scanUser(r.db.QueryRow(ctx, query, admin, id))
	if err != nil {
		zap.L().Error("can't set user admin status", zap.Error(err))
		return nil, err
	}
	return user, nil
}
