package game

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/deadpigeons/server/internal/domain"
	"github.com/deadpigeons/server/internal/dto"
	"github.com/deadpigeons/server/internal/service/gameservice"
	"github.com/deadpigeons/server/pkg/utils"
)

func NewMock(t *testing.T) (*GameHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateGameHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Game created",
			prepareMock: func() {
				service.EXPECT().CreateGame(gomock.Any()).Return(&domain.Game{
					ID: "game-1", WeekNumber: "46", IsActive: true,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Service failure",
			prepareMock: func() {
				service.EXPECT().CreateGame(gomock.Any()).Return(nil, assert.AnError)
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to create game",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/game/create", nil)
			rr := httptest.NewRecorder()

			handler.CreateGame(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.GameResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "46", resp.WeekNumber)
				assert.False(t, resp.HasWinningNumbers)
			}
		})
	}
}

func TestDrawWinningNumbersHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Numbers drawn",
			body: `{"winning_numbers":[3,7,12]}`,
			prepareMock: func() {
				service.EXPECT().DrawWinningNumbers(gomock.Any(), []int32{3, 7, 12}).Return(&domain.Game{
					ID: "game-1", WinningNumbers: []int32{3, 7, 12},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Invalid draw",
			body: `{"winning_numbers":[3,7]}`,
			prepareMock: func() {
				service.EXPECT().DrawWinningNumbers(gomock.Any(), []int32{3, 7}).Return(nil, gameservice.ErrInvalidDraw)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: gameservice.ErrInvalidDraw.Error(),
		},
		{
			name: "No active game",
			body: `{"winning_numbers":[3,7,12]}`,
			prepareMock: func() {
				service.EXPECT().DrawWinningNumbers(gomock.Any(), []int32{3, 7, 12}).Return(nil, gameservice.ErrNoActiveGame)
			},
			expectedCode:  http.StatusConflict,
			expectedError: gameservice.ErrNoActiveGame.Error(),
		},
		{
			name: "Already drawn",
			body: `{"winning_numbers":[3,7,12]}`,
			prepareMock: func() {
				service.EXPECT().DrawWinningNumbers(gomock.Any(), []int32{3, 7, 12}).Return(nil, gameservice.ErrAlreadyDrawn)
			},
			expectedCode:  http.StatusConflict,
			expectedError: gameservice.ErrAlreadyDrawn.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/game/draw", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.DrawWinningNumbers(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.GameResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.True(t, resp.HasWinningNumbers)
				assert.Equal(t, []int32{3, 7, 12}, resp.WinningNumbers)
			}
		})
	}
}

func TestGetCurrentGameHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Active game returned",
			prepareMock: func() {
				service.EXPECT().GetCurrentGame(gomock.Any()).Return(&domain.Game{ID: "game-1", IsActive: true}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No active game",
			prepareMock: func() {
				service.EXPECT().GetCurrentGame(gomock.Any()).Return(nil, gameservice.ErrNoActiveGame)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: gameservice.ErrNoActiveGame.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/game/current", nil)
			rr := httptest.NewRecorder()

			handler.GetCurrentGame(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetCurrentGameDetailsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetCurrentGameDetails(gomock.Any()).Return(&gameservice.Details{
		Game:         domain.Game{ID: "game-1", WeekNumber: "45"},
		TotalBoards:  2,
		TotalWinners: 1,
		Boards: []domain.BoardWithOwner{
			{Board: domain.Board{ID: "board-1", Winner: true}, OwnerName: "Anna Jensen"},
			{Board: domain.Board{ID: "board-2"}, OwnerName: "Bo Madsen"},
		},
		WinningBoards: []domain.BoardWithOwner{
			{Board: domain.Board{ID: "board-1", Winner: true}, OwnerName: "Anna Jensen"},
		},
	}, nil)

	req := httptest.NewRequest("GET", "/api/game/current/details", nil)
	rr := httptest.NewRecorder()

	handler.GetCurrentGameDetails(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.GameDetailsResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 2, resp.TotalBoards)
	assert.Equal(t, 1, resp.TotalWinners)
	assert.Len(t, resp.Boards, 2)
	assert.Len(t, resp.WinningBoards, 1)
	assert.Equal(t, "Anna Jensen", resp.WinningBoards[0].OwnerName)
}

func TestGetGameHistoryHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetGameHistory(gomock.Any()).Return([]domain.Game{
		{ID: "game-2", WeekNumber: "46", IsActive: true},
		{ID: "game-1", WeekNumber: "45", WinningNumbers: []int32{3, 7, 12}},
	}, nil)

	req := httptest.NewRequest("GET", "/api/game/history", nil)
	rr := httptest.NewRecorder()

	handler.GetGameHistory(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.GameResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 2)
	assert.False(t, resp[0].HasWinningNumbers)
	assert.True(t, resp[1].HasWinningNumbers)
}

func TestGetGameByIDHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Game found",
			prepareMock: func() {
				service.EXPECT().GetGameByID(gomock.Any(), "game-1").Return(&gameservice.Details{
					Game: domain.Game{ID: "game-1"},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Game not found",
			prepareMock: func() {
				service.EXPECT().GetGameByID(gomock.Any(), "game-1").Return(nil, gameservice.ErrGameNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: gameservice.ErrGameNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withURLParam(httptest.NewRequest("GET", "/api/game/game-1", nil), "gameId", "game-1")
			rr := httptest.NewRecorder()

			handler.GetGameByID(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
