package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/deadpigeons/server/internal/domain"
	"github.com/deadpigeons/server/internal/dto"
	"github.com/deadpigeons/server/internal/service/userservice"
	"github.com/deadpigeons/server/pkg/utils"
)

type Service interface {
	CreateUser(ctx context.Context, params userservice.UserParams) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, params userservice.UserParams) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	GetAllUsers(ctx context.Context) ([]domain.User, error)
	SearchByPhone(ctx context.Context, phone string) ([]domain.User, error)
	GetUserDetails(ctx context.Context, id string) (*userservice.UserDetails, error)
	ToggleActive(ctx context.Context, id string) (*domain.User, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.User, error)
	SetAdmin(ctx context.Context, id string, admin bool) (*domain.User, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func userToDTO(user *domain.User) dto.UserResponseDTO {
	return dto.UserResponseDTO{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
		Balance:   user.Balance,
		IsActive:  user.IsActive,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
	}
}

func usersToDTO(users []domain.User) []dto.UserResponseDTO {
	response := make([]dto.UserResponseDTO, len(users))
	for i := range users {
		response[i] = userToDTO(&users[i])
	}
	return response
}

func statusDTO(user *domain.User) dto.UserStatusResponseDTO {
	status := "Inactive"
	if user.IsActive {
		status = "Active"
	}
	return dto.UserStatusResponseDTO{
		UserResponseDTO: userToDTO(user),
		Status:          status,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, userservice.ErrMissingFields):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, userservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, userservice.ErrEmailTaken),
		errors.Is(err, userservice.ErrUserHasBoards),
		errors.Is(err, userservice.ErrUserHasBalance),
		errors.Is(err, userservice.ErrUserHasTransactions):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// CreateUser godoc
//
//	@Summary		Create a new player
//	@Description	Admin registers a player; the account starts active with a zero balance
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateUserRequestDTO	true	"User fields"
//	@Success		200		{object}	dto.UserResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing fields"
//	@Failure		409		{object}	utils.Response	"Email already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/create [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(r.Context(), userservice.UserParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, userToDTO(user))
}

// UpdateUser godoc
//
//	@Summary	Update a player's profile
//	@Tags		Users
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		userId	path		string						true	"User ID"
//	@Param		request	body		dto.UpdateUserRequestDTO	true	"Updated fields"
//	@Success	200		{object}	dto.UserResponseDTO
//	@Failure	400		{object}	utils.Response	"Missing fields"
//	@Failure	404		{object}	utils.Response	"User not found"
//	@Failure	409		{object}	utils.Response	"Email already exists"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/user/{userId} [put]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var req dto.UpdateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), userID, userservice.UserParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, userToDTO(user))
}

// DeleteUser godoc
//
//	@Summary		Delete a player
//	@Description	Refused while the player still has boards, a balance or transactions
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userId	path		string	true	"User ID"
//	@Success		200		{object}	utils.Response
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		409		{object}	utils.Response	"User has boards, balance or transactions"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/{userId} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	if err := h.userService.DeleteUser(r.Context(), userID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "User deleted"})
}

// GetUser godoc
//
//	@Summary	Get one player
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Param		userId	path		string	true	"User ID"
//	@Success	200		{object}	dto.UserResponseDTO
//	@Failure	404		{object}	utils.Response	"User not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/user/{userId} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	user, err := h.userService.GetUserByID(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, userToDTO(user))
}

// GetAllUsers godoc
//
//	@Summary	List all players
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.UserResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/user/all [get]
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.GetAllUsers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, usersToDTO(users))
}

// SearchByPhone godoc
//
//	@Summary	Search players by phone number fragment
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Param		phone	query		string	true	"Phone fragment"
//	@Success	200		{array}		dto.UserResponseDTO
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/user/search [get]
func (h *UserHandler) SearchByPhone(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")

	users, err := h.userService.SearchByPhone(r.Context(), phone)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to search users")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, usersToDTO(users))
}

// GetUserDetails godoc
//
//	@Summary	Get a player with board and transaction stats
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Param		userId	path		string	true	"User ID"
//	@Success	200		{object}	dto.UserDetailsResponseDTO
//	@Failure	404		{object}	utils.Response	"User not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/user/{userId}/details [get]
func (h *UserHandler) GetUserDetails(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	details, err := h.userService.GetUserDetails(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	boards := make([]dto.BoardResponseDTO, len(details.Boards))
	for i := range details.Boards {
		board := &details.Boards[i]
		boards[i] = dto.BoardResponseDTO{
			ID:              board.ID,
			UserID:          board.UserID,
			GameID:          board.GameID,
			SelectedNumbers: board.SelectedNumbers,
			Winner:          board.Winner,
			Repeat:          board.Repeat,
			CreatedAt:       board.CreatedAt,
		}
	}
	recent := make([]dto.TransactionResponseDTO, len(details.RecentTransactions))
	for i := range details.RecentTransactions {
		log := &details.RecentTransactions[i]
		status := "Pending"
		if log.Approved {
			status = "Approved"
		}
		recent[i] = dto.TransactionResponseDTO{
			ID:                log.ID,
			UserID:            log.UserID,
			Amount:            log.Amount,
			TransactionNumber: log.TransactionNumber,
			Approved:          log.Approved,
			Status:            status,
			CreatedAt:         log.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserDetailsResponseDTO{
		UserResponseDTO:    userToDTO(&details.User),
		TotalBoards:        details.TotalBoards,
		WinningBoards:      details.WinningBoards,
		TotalTransactions:  details.TotalTransactions,
		Boards:             boards,
		RecentTransactions: recent,
	})
}

// ToggleActive godoc
//
//	@Summary	Flip a player's active flag
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Param		userId	path		string	true	"User ID"
//	@Success	200		{object}	dto.UserStatusResponseDTO
//	@Failure	404		{object}	utils.Response	"User not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/user/{userId}/toggle-active [patch]
func (h *UserHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	user, err := h.userService.ToggleActive(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, statusDTO(user))
}

// SetActive godoc
//
//	@Summary	Set a player's active flag
//	@Tags		Users
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		userId	path		string						true	"User ID"
//	@Param		request	body		dto.SetUserActiveRequestDTO	true	"Desired state"
//	@Success	200		{object}	dto.UserStatusResponseDTO
//	@Failure	404		{object}	utils.Response	"User not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/user/{userId}/set-active [patch]
func (h *UserHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var req dto.SetUserActiveRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.SetActive(r.Context(), userID, req.IsActive)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, statusDTO(user))
}

// SetAdmin godoc
//
//	@Summary	Grant or revoke admin rights
//	@Tags		Users
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		userId	path		string						true	"User ID"
//	@Param		request	body		dto.SetUserAdminRequestDTO	true	"Desired state"
//	@Success	200		{object}	dto.UserResponseDTO
//	@Failure	404		{object}	utils.Response	"User not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/user/{userId}/set-admin [patch]
func (h *UserHandler) SetAdmin(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var req dto.SetUserAdminRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.SetAdmin(r.Context(), userID, req.IsAdmin)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, userToDTO(user))
}
