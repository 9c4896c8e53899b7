package user

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
	"github.com/deadpigeons/server/internal/service/userservice"
	"github.com/deadpigeons/server/pkg/utils"
)

func NewMock(t *testing.T) (*UserHandler, *MockService) {
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

func TestCreateUserHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "User created",
			body: `{"first_name":"Anna","last_name":"Jensen","email":"anna@example.com","phone":"+4512345678","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().CreateUser(gomock.Any(), userservice.UserParams{
					FirstName: "Anna", LastName: "Jensen",
					Email: "anna@example.com", Phone: "+4512345678", Password: "password123",
				}).Return(&domain.User{
					ID: "user-1", FirstName: "Anna", LastName: "Jensen",
					Email: "anna@example.com", IsActive: true,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Missing fields",
			body: `{"first_name":"Anna"}`,
			prepareMock: func() {
				service.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, userservice.ErrMissingFields)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: userservice.ErrMissingFields.Error(),
		},
		{
			name: "Email already exists",
			body: `{"first_name":"Anna","last_name":"Jensen","email":"anna@example.com","phone":"+4512345678","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, userservice.ErrEmailTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: userservice.ErrEmailTaken.Error(),
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/user/create", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.CreateUser(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.UserResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "user-1", resp.ID)
				assert.True(t, resp.IsActive)
			}
		})
	}
}

func TestUpdateUserHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Profile updated",
			body: `{"first_name":"Anna","last_name":"Holm","email":"anna@example.com","phone":"+4512345678"}`,
			prepareMock: func() {
				service.EXPECT().UpdateUser(gomock.Any(), "user-1", userservice.UserParams{
					FirstName: "Anna", LastName: "Holm",
					Email: "anna@example.com", Phone: "+4512345678",
				}).Return(&domain.User{ID: "user-1", LastName: "Holm"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "User not found",
			body: `{"first_name":"Anna","last_name":"Holm","email":"anna@example.com","phone":"+4512345678"}`,
			prepareMock: func() {
				service.EXPECT().UpdateUser(gomock.Any(), "user-1", gomock.Any()).Return(nil, userservice.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: userservice.ErrUserNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withURLParam(httptest.NewRequest("PUT", "/api/user/user-1", bytes.NewReader([]byte(tt.body))), "userId", "user-1")
			rr := httptest.NewRecorder()

			handler.UpdateUser(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestDeleteUserHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "User deleted",
			prepareMock: func() {
				service.EXPECT().DeleteUser(gomock.Any(), "user-1").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "User has boards",
			prepareMock: func() {
				service.EXPECT().DeleteUser(gomock.Any(), "user-1").Return(userservice.ErrUserHasBoards)
			},
			expectedCode:  http.StatusConflict,
			expectedError: userservice.ErrUserHasBoards.Error(),
		},
		{
			name: "User has balance",
			prepareMock: func() {
				service.EXPECT().DeleteUser(gomock.Any(), "user-1").Return(userservice.ErrUserHasBalance)
			},
			expectedCode:  http.StatusConflict,
			expectedError: userservice.ErrUserHasBalance.Error(),
		},
		{
			name: "User has transactions",
			prepareMock: func() {
				service.EXPECT().DeleteUser(gomock.Any(), "user-1").Return(userservice.ErrUserHasTransactions)
			},
			expectedCode:  http.StatusConflict,
			expectedError: userservice.ErrUserHasTransactions.Error(),
		},
		{
			name: "User not found",
			prepareMock: func() {
				service.EXPECT().DeleteUser(gomock.Any(), "user-1").Return(userservice.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: userservice.ErrUserNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withURLParam(httptest.NewRequest("DELETE", "/api/user/user-1", nil), "userId", "user-1")
			rr := httptest.NewRecorder()

			handler.DeleteUser(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetUserHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "User found",
			prepareMock: func() {
				service.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&domain.User{ID: "user-1"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "User not found",
			prepareMock: func() {
				service.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(nil, userservice.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: userservice.ErrUserNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withURLParam(httptest.NewRequest("GET", "/api/user/user-1", nil), "userId", "user-1")
			rr := httptest.NewRecorder()

			handler.GetUser(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetAllUsersHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetAllUsers(gomock.Any()).Return([]domain.User{
		{ID: "user-1"}, {ID: "user-2"},
	}, nil)

	req := httptest.NewRequest("GET", "/api/user/all", nil)
	rr := httptest.NewRecorder()

	handler.GetAllUsers(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.UserResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 2)
}

func TestSearchByPhoneHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().SearchByPhone(gomock.Any(), "1234").Return([]domain.User{
		{ID: "user-1", Phone: "+4512345678"},
	}, nil)

	req := httptest.NewRequest("GET", "/api/user/search?phone=1234", nil)
	rr := httptest.NewRecorder()

	handler.SearchByPhone(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.UserResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 1)
}

func TestGetUserDetailsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetUserDetails(gomock.Any(), "user-1").Return(&userservice.UserDetails{
		User:              domain.User{ID: "user-1", FirstName: "Anna"},
		TotalBoards:       7,
		WinningBoards:     2,
		TotalTransactions: 4,
		Boards: []domain.Board{
			{ID: "board-1"},
		},
		RecentTransactions: []domain.BalanceLog{
			{ID: 9, Amount: 200, Approved: true},
		},
	}, nil)

	req := withURLParam(httptest.NewRequest("GET", "/api/user/user-1/details", nil), "userId", "user-1")
	rr := httptest.NewRecorder()

	handler.GetUserDetails(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.UserDetailsResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 7, resp.TotalBoards)
	assert.Equal(t, 2, resp.WinningBoards)
	assert.Equal(t, 4, resp.TotalTransactions)
	assert.Len(t, resp.Boards, 1)
	assert.Len(t, resp.RecentTransactions, 1)
	assert.Equal(t, "Approved", resp.RecentTransactions[0].Status)
}

func TestToggleActiveHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ToggleActive(gomock.Any(), "user-1").Return(&domain.User{ID: "user-1", IsActive: false}, nil)

	req := withURLParam(httptest.NewRequest("PATCH", "/api/user/user-1/toggle-active", nil), "userId", "user-1")
	rr := httptest.NewRecorder()

	handler.ToggleActive(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.UserStatusResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Inactive", resp.Status)
}

func TestSetActiveHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().SetActive(gomock.Any(), "user-1", true).Return(&domain.User{ID: "user-1", IsActive: true}, nil)

	req := withURLParam(httptest.NewRequest("PATCH", "/api/user/user-1/set-active", bytes.NewReader([]byte(`{"is_active":true}`))), "userId", "user-1")
	rr := httptest.NewRecorder()

	handler.SetActive(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.UserStatusResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Active", resp.Status)
}

func TestSetAdminHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().SetAdmin(gomock.Any(), "user-1", true).Return(&domain.User{ID: "user-1", IsAdmin: true}, nil)

	req := withURLParam(httptest.NewRequest("PATCH", "/api/user/user-1/set-admin", bytes.NewReader([]byte(`{"is_admin":true}`))), "userId", "user-1")
	rr := httptest.NewRecorder()

	handler.SetAdmin(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.UserResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.IsAdmin)
}
