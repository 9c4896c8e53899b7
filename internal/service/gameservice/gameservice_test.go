package gameservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/deadpigeons/server/internal/domain"
	"github.com/deadpigeons/server/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockGameRepo, *MockBoardRepo, *MockBoardPurchaser, *pg.MockTXManager, *MockHistoryLogger) {
	ctrl := gomock.NewController(t)
	gameRepo := NewMockGameRepo(ctrl)
	boardRepo := NewMockBoardRepo(ctrl)
	purchaser := NewMockBoardPurchaser(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	history := NewMockHistoryLogger(ctrl)

	service := New(gameRepo, boardRepo, purchaser, txManager, history)
	defer ctrl.Finish()
	return service, gameRepo, boardRepo, purchaser, txManager, history
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

func TestCreateGame(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(gameRepo *MockGameRepo, boardRepo *MockBoardRepo, purchaser *MockBoardPurchaser, txManager *pg.MockTXManager, history *MockHistoryLogger)
		expectedWeek  string
		expectedError bool
	}{
		{
			name: "First game starts at week 1",
			prepareMock: func(gameRepo *MockGameRepo, boardRepo *MockBoardRepo, purchaser *MockBoardPurchaser, txManager *pg.MockTXManager, history *MockHistoryLogger) {
				passthroughTx(txManager)
				gameRepo.EXPECT().FindActive(gomock.Any()).Return(nil, nil)
				gameRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, game *domain.Game) (*domain.Game, error) {
						assert.Equal(t, "1", game.WeekNumber)
						assert.True(t, game.IsActive)
						assert.Empty(t, game.WinningNumbers)
						return game, nil
					})
				history.EXPECT().CreateLog(gomock.Any(), gomock.Any()).Return(&domain.HistoryLog{}, nil)
			},
			expectedWeek: "1",
		},
		{
			name: "Rollover deactivates current game and carries repeat boards",
			prepareMock: func(gameRepo *MockGameRepo, boardRepo *MockBoardRepo, purchaser *MockBoardPurchaser, txManager *pg.MockTXManager, history *MockHistoryLogger) {
				passthroughTx(txManager)
				gameRepo.EXPECT().FindActive(gomock.Any()).Return(&domain.Game{ID: "game-45", WeekNumber: "45", IsActive: true}, nil)
				boardRepo.EXPECT().FindRepeatsByGameID(gomock.Any(), "game-45").Return([]domain.Board{
					{ID: "board-1", UserID: "user-1", SelectedNumbers: []int32{1, 2, 3, 4, 5}, Repeat: true},
					{ID: "board-2", UserID: "user-2", SelectedNumbers: []int32{2, 4, 6, 8, 10, 12}, Repeat: true},
				}, nil)
				gameRepo.EXPECT().Deactivate(gomock.Any(), "game-45").Return(nil)
				gameRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, game *domain.Game) (*domain.Game, error) {
						assert.Equal(t, "46", game.WeekNumber)
						return game, nil
					})
				purchaser.EXPECT().CreateBoard(gomock.Any(), "user-1", []int32{1, 2, 3, 4, 5}, true, true).Return(&domain.Board{}, nil)
				purchaser.EXPECT().CreateBoard(gomock.Any(), "user-2", []int32{2, 4, 6, 8, 10, 12}, true, true).Return(&domain.Board{}, nil)
				history.EXPECT().CreateLog(gomock.Any(), gomock.Any()).Return(&domain.HistoryLog{}, nil)
			},
			expectedWeek: "46",
		},
		{
			name: "Carry-forward failure rolls the whole rollover back",
			prepareMock: func(gameRepo *MockGameRepo, boardRepo *MockBoardRepo, purchaser *MockBoardPurchaser, txManager *pg.MockTXManager, history *MockHistoryLogger) {
				passthroughTx(txManager)
				gameRepo.EXPECT().FindActive(gomock.Any()).Return(&domain.Game{ID: "game-45", WeekNumber: "45", IsActive: true}, nil)
				boardRepo.EXPECT().FindRepeatsByGameID(gomock.Any(), "game-45").Return([]domain.Board{
					{ID: "board-1", UserID: "user-1", SelectedNumbers: []int32{1, 2, 3, 4, 5}, Repeat: true},
				}, nil)
				gameRepo.EXPECT().Deactivate(gomock.Any(), "game-45").Return(nil)
				gameRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, game *domain.Game) (*domain.Game, error) {
						return game, nil
					})
				purchaser.EXPECT().CreateBoard(gomock.Any(), "user-1", []int32{1, 2, 3, 4, 5}, true, true).Return(nil, errors.New("insufficient funds"))
			},
			expectedError: true,
		},
		{
			name: "Repo failure",
			prepareMock: func(gameRepo *MockGameRepo, boardRepo *MockBoardRepo, purchaser *MockBoardPurchaser, txManager *pg.MockTXManager, history *MockHistoryLogger) {
				passthroughTx(txManager)
				gameRepo.EXPECT().FindActive(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, gameRepo, boardRepo, purchaser, txManager, history := NewMock(t)
			tt.prepareMock(gameRepo, boardRepo, purchaser, txManager, history)

			game, err := service.CreateGame(context.Background())
			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, game)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedWeek, game.WeekNumber)
				assert.True(t, game.IsActive)
			}
		})
	}
}

func TestDrawWinningNumbers(t *testing.T) {
	tests := []struct {
		name          string
		numbers       []int32
		prepareMock   func(gameRepo *MockGameRepo, boardRepo *MockBoardRepo, txManager *pg.MockTXManager, history *MockHistoryLogger)
		expectedError error
	}{
		{
			name:    "Draw marks winners and losers",
			numbers: []int32{3, 7, 12},
			prepareMock: func(gameRepo *MockGameRepo, boardRepo *MockBoardRepo, txManager *pg.MockTXManager, history *MockHistoryLogger) {
				passthroughTx(txManager)
				gameRepo.EXPECT().FindActive(gomock.Any()).Return(&domain.Game{ID: "game-1", WeekNumber: "45", IsActive: true}, nil)
				gameRepo.EXPECT().SetWinningNumbers(gomock.Any(), "game-1", []int32{3, 7, 12}, gomock.Any()).Return(nil)
				boardRepo.EXPECT().FindByGameID(gomock.Any(), "game-1").Return([]domain.Board{
					{ID: "board-1", UserID: "user-1", SelectedNumbers: []int32{3, 7, 12, 14, 16}},
					{ID: "board-2", UserID: "user-2", SelectedNumbers: []int32{1, 3, 7, 9, 11}},
				}, nil)
				boardRepo.EXPECT().UpdateWinner(gomock.Any(), "board-1", true).Return(nil)
				boardRepo.EXPECT().UpdateWinner(gomock.Any(), "board-2", false).Return(nil)
				history.EXPECT().CreateLog(gomock.Any(), gomock.Any()).Return(&domain.HistoryLog{}, nil)
			},
		},
		{
			name:    "Too few numbers",
			numbers: []int32{3, 7},
			prepareMock: func(gameRepo *MockGameRepo, boardRepo *MockBoardRepo, txManager *pg.MockTXManager, history *MockHistoryLogger) {
			},
			expectedError: ErrInvalidDraw,
		},
		{
			name:    "Duplicate numbers",
			numbers: []int32{3, 7, 7},
			prepareMock: func(gameRepo *MockGameRepo, boardRepo *MockBoardRepo, txManager *pg.MockTXManager, history *MockHistoryLogger) {
			},
			expectedError: ErrInvalidDraw,
		},
		{
			name:    "No active game",
			numbers: []int32{3, 7, 12},
			prepareMock: func(gameRepo *MockGameRepo, boardRepo *MockBoardRepo, txManager *pg.MockTXManager, history *MockHistoryLogger) {
				passthroughTx(txManager)
				gameRepo.EXPECT().FindActive(gomock.Any()).Return(nil, nil)
			},
			expectedError: ErrNoActiveGame,
		},
		{
			name:    "Numbers already drawn",
			numbers: []int32{3, 7, 12},
			prepareMock: func(gameRepo *MockGameRepo, boardRepo *MockBoardRepo, txManager *pg.MockTXManager, history *MockHistoryLogger) {
				passthroughTx(txManager)
				gameRepo.EXPECT().FindActive(gomock.Any()).Return(&domain.Game{
					ID:             "game-1",
					WinningNumbers: []int32{1, 2, 3},
					IsActive:       true,
				}, nil)
			},
			expectedError: ErrAlreadyDrawn,
		},
		{
			name:    "Winner update failure aborts the draw",
			numbers: []int32{3, 7, 12},
			prepareMock: func(gameRepo *MockGameRepo, boardRepo *MockBoardRepo, txManager *pg.MockTXManager, history *MockHistoryLogger) {
				passthroughTx(txManager)
				gameRepo.EXPECT().FindActive(gomock.Any()).Return(&domain.Game{ID: "game-1", IsActive: true}, nil)
				gameRepo.EXPECT().SetWinningNumbers(gomock.Any(), "game-1", []int32{3, 7, 12}, gomock.Any()).Return(nil)
				boardRepo.EXPECT().FindByGameID(gomock.Any(), "game-1").Return([]domain.Board{
					{ID: "board-1", SelectedNumbers: []int32{3, 7, 12, 14, 16}},
				}, nil)
				boardRepo.EXPECT().UpdateWinner(gomock.Any(), "board-1", true).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, gameRepo, boardRepo, _, txManager, history := NewMock(t)
			tt.prepareMock(gameRepo, boardRepo, txManager, history)

			game, err := service.DrawWinningNumbers(context.Background(), tt.numbers)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, game)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.numbers, game.WinningNumbers)
				assert.NotNil(t, game.DrawDate)
			}
		})
	}
}

func TestContainsAll(t *testing.T) {
	tests := []struct {
		name     string
		selected []int32
		winning  []int32
		expected bool
	}{
		{"All present", []int32{3, 7, 12, 14, 16}, []int32{3, 7, 12}, true},
		{"One missing", []int32{3, 7, 14, 15, 16}, []int32{3, 7, 12}, false},
		{"None present", []int32{1, 2, 4, 5, 6}, []int32{3, 7, 12}, false},
		{"Order does not matter", []int32{16, 12, 7, 3, 1}, []int32{3, 7, 12}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, containsAll(tt.selected, tt.winning))
		})
	}
}

func TestGetCurrentGame(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(gameRepo *MockGameRepo)
		expectedError error
	}{
		{
			name: "Active game found",
			prepareMock: func(gameRepo *MockGameRepo) {
				gameRepo.EXPECT().FindActive(gomock.Any()).Return(&domain.Game{ID: "game-1", IsActive: true}, nil)
			},
		},
		{
			name: "No active game",
			prepareMock: func(gameRepo *MockGameRepo) {
				gameRepo.EXPECT().FindActive(gomock.Any()).Return(nil, nil)
			},
			expectedError: ErrNoActiveGame,
		},
		{
			name: "Repo failure",
			prepareMock: func(gameRepo *MockGameRepo) {
				gameRepo.EXPECT().FindActive(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, gameRepo, _, _, _, _ := NewMock(t)
			tt.prepareMock(gameRepo)

			game, err := service.GetCurrentGame(context.Background())
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, game)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "game-1", game.ID)
			}
		})
	}
}

func TestGetCurrentGameDetails(t *testing.T) {
	service, gameRepo, boardRepo, _, _, _ := NewMock(t)

	gameRepo.EXPECT().FindActive(gomock.Any()).Return(&domain.Game{ID: "game-1", WeekNumber: "45", IsActive: true}, nil)
	boardRepo.EXPECT().FindByGameIDWithOwner(gomock.Any(), "game-1").Return([]domain.BoardWithOwner{
		{Board: domain.Board{ID: "board-1", Winner: true}, OwnerName: "Anna Jensen"},
		{Board: domain.Board{ID: "board-2"}, OwnerName: "Bo Madsen"},
		{Board: domain.Board{ID: "board-3"}, OwnerName: "Carl Holm"},
	}, nil)

	details, err := service.GetCurrentGameDetails(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, details.TotalBoards)
	assert.Equal(t, 1, details.TotalWinners)
	assert.Len(t, details.WinningBoards, 1)
	assert.Equal(t, "board-1", details.WinningBoards[0].ID)
}

func TestGetGameByID(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(gameRepo *MockGameRepo, boardRepo *MockBoardRepo)
		expectedError error
	}{
		{
			name: "Game found with boards",
			prepareMock: func(gameRepo *MockGameRepo, boardRepo *MockBoardRepo) {
				gameRepo.EXPECT().FindByID(gomock.Any(), "game-1").Return(&domain.Game{ID: "game-1"}, nil)
				boardRepo.EXPECT().FindByGameIDWithOwner(gomock.Any(), "game-1").Return([]domain.BoardWithOwner{}, nil)
			},
		},
		{
			name: "Game not found",
			prepareMock: func(gameRepo *MockGameRepo, boardRepo *MockBoardRepo) {
				gameRepo.EXPECT().FindByID(gomock.Any(), "game-1").Return(nil, nil)
			},
			expectedError: ErrGameNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, gameRepo, boardRepo, _, _, _ := NewMock(t)
			tt.prepareMock(gameRepo, boardRepo)

			details, err := service.GetGameByID(context.Background(), "game-1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, details)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "game-1", details.Game.ID)
			}
		})
	}
}

func TestGetGameHistory(t *testing.T) {
	service, gameRepo, _, _, _, _ := NewMock(t)

	gameRepo.EXPECT().FindAll(gomock.Any()).Return([]domain.Game{
		{ID: "game-2", WeekNumber: "46"},
		{ID: "game-1", WeekNumber: "45"},
	}, nil)

	games, err := service.GetGameHistory(context.Background())
	assert.NoError(t, err)
	assert.Len(t, games, 2)
	assert.Equal(t, "46", games[0].WeekNumber)
}
