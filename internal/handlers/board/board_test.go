package board

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
	"github.com/deadpigeons/server/internal/service/boardservice"
	"github.com/deadpigeons/server/pkg/auth"
	"github.com/deadpigeons/server/pkg/utils"
	"github.com/deadpigeons/server/pkg/validate"
)

func NewMock(t *testing.T) (*BoardHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withUserID(req *http.Request, userID string) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, userID))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateBoardHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Board purchased",
			body: `{"selected_numbers":[1,2,3,4,5],"repeat":true}`,
			prepareMock: func() {
				service.EXPECT().CreateBoard(gomock.Any(), "user-1", []int32{1, 2, 3, 4, 5}, true, false).Return(&domain.Board{
					ID: "board-1", UserID: "user-1", GameID: "game-1",
					SelectedNumbers: []int32{1, 2, 3, 4, 5}, Repeat: true,
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
			name: "Too few numbers",
			body: `{"selected_numbers":[1,2,3]}`,
			prepareMock: func() {
				service.EXPECT().CreateBoard(gomock.Any(), "user-1", []int32{1, 2, 3}, false, false).Return(nil, validate.ErrSelectionSize)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: validate.ErrSelectionSize.Error(),
		},
		{
			name: "No active game",
			body: `{"selected_numbers":[1,2,3,4,5]}`,
			prepareMock: func() {
				service.EXPECT().CreateBoard(gomock.Any(), "user-1", []int32{1, 2, 3, 4, 5}, false, false).Return(nil, boardservice.ErrNoActiveGame)
			},
			expectedCode:  http.StatusConflict,
			expectedError: boardservice.ErrNoActiveGame.Error(),
		},
		{
			name: "Purchases cut off",
			body: `{"selected_numbers":[1,2,3,4,5]}`,
			prepareMock: func() {
				service.EXPECT().CreateBoard(gomock.Any(), "user-1", []int32{1, 2, 3, 4, 5}, false, false).Return(nil, boardservice.ErrWeekendCutoff)
			},
			expectedCode:  http.StatusConflict,
			expectedError: boardservice.ErrWeekendCutoff.Error(),
		},
		{
			name: "Inactive user",
			body: `{"selected_numbers":[1,2,3,4,5]}`,
			prepareMock: func() {
				service.EXPECT().CreateBoard(gomock.Any(), "user-1", []int32{1, 2, 3, 4, 5}, false, false).Return(nil, boardservice.ErrInactiveUser)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: boardservice.ErrInactiveUser.Error(),
		},
		{
			name: "Insufficient funds",
			body: `{"selected_numbers":[1,2,3,4,5]}`,
			prepareMock: func() {
				service.EXPECT().CreateBoard(gomock.Any(), "user-1", []int32{1, 2, 3, 4, 5}, false, false).Return(nil, boardservice.ErrInsufficientFunds)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: boardservice.ErrInsufficientFunds.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/board/create", bytes.NewReader([]byte(tt.body)))
			req = withUserID(req, "user-1")
			rr := httptest.NewRecorder()

			handler.CreateBoard(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.BoardResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "board-1", resp.ID)
				assert.True(t, resp.Repeat)
			}
		})
	}
}

func TestGetBoardsByUserHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetBoardsByUser(gomock.Any(), "user-1").Return([]domain.Board{
		{ID: "board-1"}, {ID: "board-2"},
	}, nil)

	req := withURLParam(httptest.NewRequest("GET", "/api/board/user/user-1", nil), "userId", "user-1")
	rr := httptest.NewRecorder()

	handler.GetBoardsByUser(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.BoardResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 2)
}

func TestGetActiveBoardsByUserHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetActiveBoardsByUser(gomock.Any(), "user-1").Return([]domain.Board{
		{ID: "board-1"},
	}, nil)

	req := withURLParam(httptest.NewRequest("GET", "/api/board/user/user-1/active", nil), "userId", "user-1")
	rr := httptest.NewRecorder()

	handler.GetActiveBoardsByUser(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.BoardResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 1)
}

func TestGetAllBoardsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetAllBoards(gomock.Any()).Return([]domain.BoardWithOwner{
		{Board: domain.Board{ID: "board-1"}, OwnerName: "Anna Jensen", OwnerPhone: "+4512345678"},
	}, nil)

	req := httptest.NewRequest("GET", "/api/board/all", nil)
	rr := httptest.NewRecorder()

	handler.GetAllBoards(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.BoardWithOwnerResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "Anna Jensen", resp[0].OwnerName)
}

func TestGetBoardByIDHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Board found",
			prepareMock: func() {
				service.EXPECT().GetBoardByID(gomock.Any(), "board-1").Return(&domain.Board{ID: "board-1"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Board not found",
			prepareMock: func() {
				service.EXPECT().GetBoardByID(gomock.Any(), "board-1").Return(nil, boardservice.ErrBoardNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: boardservice.ErrBoardNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withURLParam(httptest.NewRequest("GET", "/api/board/board-1", nil), "boardId", "board-1")
			rr := httptest.NewRecorder()

			handler.GetBoardByID(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetBoardsForGameHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetBoardsForGame(gomock.Any(), "game-1").Return([]domain.BoardWithOwner{
		{Board: domain.Board{ID: "board-1", Winner: true}, OwnerName: "Anna Jensen"},
	}, nil)

	req := withURLParam(httptest.NewRequest("GET", "/api/board/game/game-1", nil), "gameId", "game-1")
	rr := httptest.NewRecorder()

	handler.GetBoardsForGame(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.BoardWithOwnerResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 1)
	assert.True(t, resp[0].Winner)
}

func TestDeleteBoardHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Board deleted and refunded",
			prepareMock: func() {
				service.EXPECT().DeleteBoard(gomock.Any(), "board-1").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Board not found",
			prepareMock: func() {
				service.EXPECT().DeleteBoard(gomock.Any(), "board-1").Return(boardservice.ErrBoardNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: boardservice.ErrBoardNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withURLParam(httptest.NewRequest("DELETE", "/api/board/board-1", nil), "boardId", "board-1")
			rr := httptest.NewRecorder()

			handler.DeleteBoard(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestToggleRepeatHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ToggleRepeat(gomock.Any(), "board-1", false).Return(&domain.Board{ID: "board-1", Repeat: false}, nil)

	req := withURLParam(httptest.NewRequest("PATCH", "/api/board/board-1/repeat", bytes.NewReader([]byte(`{"repeat":false}`))), "boardId", "board-1")
	rr := httptest.NewRecorder()

	handler.ToggleRepeat(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.BoardResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.False(t, resp.Repeat)
}

func TestValidateBoardHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expected     dto.ValidateBoardResponseDTO
	}{
		{
			name: "Valid selection quoted",
			body: `{"selected_numbers":[1,2,3,4,5]}`,
			prepareMock: func() {
				service.EXPECT().ValidateBoard([]int32{1, 2, 3, 4, 5}).Return(&boardservice.ValidationResult{
					IsValid: true, Price: 20, NumberOfFields: 5,
				})
			},
			expectedCode: http.StatusOK,
			expected:     dto.ValidateBoardResponseDTO{IsValid: true, Price: 20, NumberOfFields: 5},
		},
		{
			name: "Invalid selection explained",
			body: `{"selected_numbers":[1,2,3]}`,
			prepareMock: func() {
				service.EXPECT().ValidateBoard([]int32{1, 2, 3}).Return(&boardservice.ValidationResult{
					IsValid: false, ErrorMessage: validate.ErrSelectionSize.Error(),
				})
			},
			expectedCode: http.StatusOK,
			expected:     dto.ValidateBoardResponseDTO{IsValid: false, ErrorMessage: validate.ErrSelectionSize.Error()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/board/validate", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.ValidateBoard(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			var resp dto.ValidateBoardResponseDTO
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expected, resp)
		})
	}
}
