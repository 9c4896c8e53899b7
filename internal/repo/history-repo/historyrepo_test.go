package historyrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		log       *domain.HistoryLog
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create log successfully",
			log:  &domain.HistoryLog{ID: "log-1", Content: "Purchased board board-1 for 20 DKK"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO history_logs (id, content)`)).
					WithArgs("log-1", "Purchased board board-1 for 20 DKK").
					WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))
			},
		},
		{
			name: "Database error",
			log:  &domain.HistoryLog{ID: "log-1", Content: "content"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO history_logs`)).
					WithArgs("log-1", "content").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.log)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, now, result.CreatedAt)
			}
		})
	}
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"id", "content", "created_at"}).
		AddRow("log-2", "Drew winning numbers", now.Add(time.Hour)).
		AddRow("log-1", "Purchased board", now)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM history_logs`)).
		WillReturnRows(rows)

	logs, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, logs, 2)
	assert.Equal(t, "log-2", logs[0].ID)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Delete existing log",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM history_logs WHERE id = $1`)).
					WithArgs("log-1").
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			name: "Delete absent log is a no-op",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM history_logs WHERE id = $1`)).
					WithArgs("log-1").
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM history_logs WHERE id = $1`)).
					WithArgs("log-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Delete(context.Background(), "log-1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_FindBoardHistoryByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	drawDate := now.Add(2 * time.Hour)
	rows := pgxmock.NewRows([]string{"id", "user_id", "selected_numbers", "winner",
		"week_number", "winning_numbers", "draw_date"}).
		AddRow("board-2", "user-1", []int32{1, 2, 3, 4, 5, 6}, false, "46", []int32{}, nil).
		AddRow("board-1", "user-1", []int32{3, 7, 12, 14, 16}, true, "45", []int32{3, 7, 12}, &drawDate)
	mock.ExpectQuery(regexp.QuoteMeta(`JOIN games g ON g.id = b.game_id`)).
		WithArgs("user-1").
		WillReturnRows(rows)

	entries, err := repo.FindBoardHistoryByUserID(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "46", entries[0].WeekNumber)
	assert.Nil(t, entries[0].DrawDate)
	assert.True(t, entries[1].Winner)
	assert.Equal(t, []int32{3, 7, 12}, entries[1].WinningNumbers)
}
