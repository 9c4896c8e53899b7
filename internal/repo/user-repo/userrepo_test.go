package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/deadpigeons/server/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var now = time.Date(2024, 11, 4, 12, 0, 0, 0, time.UTC)

func userRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "first_name", "last_name", "email", "phone",
		"password_hash", "balance", "is_active", "is_admin", "created_at"})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "User found",
			id:   "user-1",
			mockSetup: func() {
				rows := userRows().
					AddRow("user-1", "Jens", "Hansen", "jens@example.com", "+4512345678",
						"hashed", 120.5, true, false, now)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, first_name, last_name, email, phone, password_hash, balance, is_active, is_admin, created_at FROM users WHERE id = $1`)).
					WithArgs("user-1").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           "user-1",
				FirstName:    "Jens",
				LastName:     "Hansen",
				Email:        "jens@example.com",
				Phone:        "+4512345678",
				PasswordHash: "hashed",
				Balance:      120.5,
				IsActive:     true,
				IsAdmin:      false,
				CreatedAt:    now,
			},
		},
		{
			name: "User not found",
			id:   "missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, first_name, last_name, email, phone, password_hash, balance, is_active, is_admin, created_at FROM users WHERE id = $1`)).
					WithArgs("missing").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			id:   "user-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, first_name, last_name, email, phone, password_hash, balance, is_active, is_admin, created_at FROM users WHERE id = $1`)).
					WithArgs("user-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name:  "User found",
			email: "jens@example.com",
			mockSetup: func() {
				rows := userRows().
					AddRow("user-1", "Jens", "Hansen", "jens@example.com", "+4512345678",
						"hashed", 0.0, true, false, now)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, first_name, last_name, email, phone, password_hash, balance, is_active, is_admin, created_at FROM users WHERE email = $1`)).
					WithArgs("jens@example.com").
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name:  "User not found",
			email: "missing@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, first_name, last_name, email, phone, password_hash, balance, is_active, is_admin, created_at FROM users WHERE email = $1`)).
					WithArgs("missing@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.found {
					assert.NotNil(t, result)
					assert.Equal(t, tt.email, result.Email)
				} else {
					assert.Nil(t, result)
				}
			}
		})
	}
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)

	rows := userRows().
		AddRow("user-2", "Anna", "Andersen", "anna@example.com", "+4587654321",
			"hashed", 50.0, true, false, now).
		AddRow("user-1", "Jens", "Hansen", "jens@example.com", "+4512345678",
			"hashed", 120.5, true, true, now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, first_name, last_name, email, phone, password_hash, balance, is_active, is_admin, created_at FROM users ORDER BY last_name, first_name`)).
		WillReturnRows(rows)

	users, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "Andersen", users[0].LastName)
	assert.Equal(t, "Hansen", users[1].LastName)
}

func TestRepository_SearchByPhone(t *testing.T) {
	repo, mock := NewMock(t)

	rows := userRows().
		AddRow("user-1", "Jens", "Hansen", "jens@example.com", "+4512345678",
			"hashed", 0.0, true, false, now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, first_name, last_name, email, phone, password_hash, balance, is_active, is_admin, created_at FROM users WHERE phone LIKE '%' || $1 || '%' ORDER BY last_name, first_name`)).
		WithArgs("1234").
		WillReturnRows(rows)

	users, err := repo.SearchByPhone(context.Background(), "1234")
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, "+4512345678", users[0].Phone)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create user successfully",
			user: &domain.User{
				ID:           "user-1",
				FirstName:    "Jens",
				LastName:     "Hansen",
				Email:        "jens@example.com",
				Phone:        "+4512345678",
				PasswordHash: "hashed",
				IsActive:     true,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (id, first_name, last_name, email, phone, password_hash, balance, is_active, is_admin)`)).
					WithArgs("user-1", "Jens", "Hansen", "jens@example.com", "+4512345678",
						"hashed", 0.0, true, false).
					WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			user: &domain.User{ID: "user-1", IsActive: true},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
					WithArgs("user-1", "", "", "", "", "", 0.0, true, false).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, now, result.CreatedAt)
			}
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)

	user := &domain.User{
		ID:           "user-1",
		FirstName:    "Jens",
		LastName:     "Hansen",
		Email:        "jens@example.com",
		Phone:        "+4512345678",
		PasswordHash: "rehashed",
	}
	mock.ExpectExec(regexp.QuoteMeta(`SET first_name = $1, last_name = $2, email = $3, phone = $4, password_hash = $5`)).
		WithArgs("Jens", "Hansen", "jens@example.com", "+4512345678", "rehashed", "user-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	result, err := repo.Update(context.Background(), user)
	assert.NoError(t, err)
	assert.Equal(t, user, result)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Delete successfully",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
					WithArgs("user-1").
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
					WithArgs("user-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Delete(context.Background(), "user-1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_AdjustBalance(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		delta     float64
		mockSetup func()
		expectErr bool
		balance   float64
	}{
		{
			name:  "Debit purchase price",
			delta: -20,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SET balance = balance + $1`)).
					WithArgs(-20.0, "user-1").
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(99979.0))
			},
			balance: 99979,
		},
		{
			name:  "Credit approved deposit",
			delta: 200,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE users`)).
					WithArgs(200.0, "user-1").
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(220.0))
			},
			balance: 220,
		},
		{
			name:  "Database error",
			delta: -20,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE users`)).
					WithArgs(-20.0, "user-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			balance, err := repo.AdjustBalance(context.Background(), "user-1", tt.delta)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.balance, balance)
			}
		})
	}
}

func TestRepository_SetActive(t *testing.T) {
	repo, mock := NewMock(t)

	rows := userRows().
		AddRow("user-1", "Jens", "Hansen", "jens@example.com", "+4512345678",
			"hashed", 0.0, false, false, now)
	mock.ExpectQuery(regexp.QuoteMeta(`SET is_active = $1`)).
		WithArgs(false, "user-1").
		WillReturnRows(rows)

	user, err := repo.SetActive(context.Background(), "user-1", false)
	assert.NoError(t, err)
	assert.False(t, user.IsActive)
}

func TestRepository_SetAdmin(t *testing.T) {
	repo, mock := NewMock(t)

	rows := userRows().
		AddRow("user-1", "Jens", "Hansen", "jens@example.com", "+4512345678",
			"hashed", 0.0, true, true, now)
	mock.ExpectQuery(regexp.QuoteMeta(`SET is_admin = $1`)).
		WithArgs(true, "user-1").
		WillReturnRows(rows)

	user, err := repo.SetAdmin(context.Background(), "user-1", true)
	assert.NoError(t, err)
	assert.True(t, user.IsAdmin)
}
